package main

import (
	"net/http"

	"jobnet_client/internal/config"
	"jobnet_client/internal/config/env"
	"jobnet_client/internal/devserver"
	"jobnet_client/internal/logger"
)

func main() {
	if err := config.Load(".env"); err != nil {
		logger.Warn().Err(err).Msg("no .env file loaded")
	}

	jwtCfg, err := env.NewJWTConfig()
	if err != nil {
		logger.Error().Err(err).Msg("jwt config")
		return
	}
	httpCfg, err := env.NewHTTPConfig()
	if err != nil {
		logger.Error().Err(err).Msg("http config")
		return
	}

	srv := devserver.New(jwtCfg.AccessTokenSecretKey(), devserver.WithAccessTTL(jwtCfg.AccessTokenDuration()))

	logger.Info().Str("address", httpCfg.Address()).Msg("dev server listening")
	if err := http.ListenAndServe(httpCfg.Address(), srv.Router()); err != nil {
		logger.Error().Err(err).Msg("server stopped")
	}
}
