package service

import (
	"context"
	"net/url"

	"jobnet_client/internal/model"
)

// HTTPClient is the transport surface the services translate onto.
// Implemented by transport.Client.
type HTTPClient interface {
	Get(ctx context.Context, op, path string, query url.Values, out any) error
	Post(ctx context.Context, op, path string, body, out any) error
	Put(ctx context.Context, op, path string, body, out any) error
}

// AuthService owns the sign-in state machine, the token pair and the
// in-memory user identity. It is the only writer of the token store.
type AuthService interface {
	SetIdentifier(s string)
	Identifier() string
	State() model.SessionState
	User() *model.User

	Login(ctx context.Context) error
	Verify(ctx context.Context, code string) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (bool, error)
}

type PostService interface {
	List(ctx context.Context, cursor string) (*model.PostPage, error)
	Create(ctx context.Context, text, imageURL string) (*model.Post, error)
	ToggleLike(ctx context.Context, postID string) (*model.LikeResult, error)
	Comments(ctx context.Context, postID string) (*model.CommentList, error)
	AddComment(ctx context.Context, postID, text string) (*model.Comment, error)
}

type JobService interface {
	List(ctx context.Context, cursor string) (*model.JobPage, error)
	Get(ctx context.Context, id string) (*model.Job, error)
	Apply(ctx context.Context, id string) (*model.Application, error)
	Applications(ctx context.Context) (*model.ApplicationList, error)
}

type UserService interface {
	Me(ctx context.Context) (*model.User, error)
	UpdateMe(ctx context.Context, update model.ProfileUpdate) (*model.User, error)
}
