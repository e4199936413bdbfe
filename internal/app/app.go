package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"jobnet_client/internal/config"
	"jobnet_client/internal/logger"
)

// App wires the full client stack and drives an interactive terminal
// session against the configured API.
type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (a *App) initServiceProvider() {
	a.ServiceProvider = newServiceProvider()
}

func (a *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		logger.Warn().Err(err).Msg("no .env file loaded")
	}
	a.initServiceProvider()

	if err := logger.Init(a.ServiceProvider.ClientCfg().LogLevel(), a.ServiceProvider.ClientCfg().LogFormat()); err != nil {
		return err
	}

	ctx := context.Background()
	authServ := a.ServiceProvider.AuthService()

	restored, err := authServ.Restore(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("session restore failed, continuing signed out")
	}
	if restored {
		logger.Info().Str("identifier", authServ.Identifier()).Msg("session restored")
	} else if err := a.signIn(ctx); err != nil {
		return err
	}

	return a.browse(ctx)
}

func (a *App) signIn(ctx context.Context) error {
	authServ := a.ServiceProvider.AuthService()
	in := bufio.NewReader(os.Stdin)

	fmt.Print("email or phone: ")
	identifier, err := in.ReadString('\n')
	if err != nil {
		return err
	}
	authServ.SetIdentifier(strings.TrimSpace(identifier))

	if err := authServ.Login(ctx); err != nil {
		return err
	}

	fmt.Print("one-time code: ")
	code, err := in.ReadString('\n')
	if err != nil {
		return err
	}
	if err := authServ.Verify(ctx, strings.TrimSpace(code)); err != nil {
		return err
	}

	logger.Info().Str("identifier", authServ.Identifier()).Msg("signed in")
	return nil
}

// browse loads the first pages of the main collections and prints them,
// which exercises the whole query layer end to end.
func (a *App) browse(ctx context.Context) error {
	q := a.ServiceProvider.Queries()

	if err := q.Posts.Load(ctx); err != nil {
		return err
	}
	fmt.Println("--- feed ---")
	for _, p := range q.Posts.Items() {
		fmt.Printf("%s (%s): %s [likes %d, comments %d]\n",
			p.Author.Name, p.CreatedAt.Format("2006-01-02"), p.Text, p.LikeCount, p.CommentCount)
	}

	if err := q.Jobs.Load(ctx); err != nil {
		return err
	}
	fmt.Println("--- jobs ---")
	for _, j := range q.Jobs.Items() {
		fmt.Printf("%s at %s (%s)\n", j.Title, j.Company, j.Location)
	}

	me, err := q.Me.Get(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("--- signed in as %s (%s) ---\n", me.Name, me.Identifier)
	return nil
}
