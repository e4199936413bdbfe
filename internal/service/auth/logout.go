package auth

import (
	"context"

	"jobnet_client/internal/logger"
	"jobnet_client/internal/model"
)

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Logout revokes the refresh token server-side on a best-effort basis,
// then unconditionally clears the token store and resets the in-memory
// session. Local cleanup proceeds even when revocation fails; that is the
// one error this package deliberately swallows.
func (s *serv) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	refresh, err := s.tokens.Refresh(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("reading refresh token for revocation failed")
	}
	if refresh != "" {
		err := s.client.Post(ctx, "auth.logout", "/api/auth/logout", logoutRequest{RefreshToken: refresh}, nil)
		if err != nil {
			logger.Warn().Err(err).Msg("server-side token revocation failed")
		}
	}

	clearErr := s.tokens.Clear(ctx)

	s.user = nil
	s.identifier = ""
	s.state = model.StateAnonymous

	return clearErr
}
