package main

import (
	"jobnet_client/internal/app"
	"jobnet_client/internal/logger"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		logger.Error().Err(err).Msg("client exited with error")
	}
}
