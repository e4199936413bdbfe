package auth

import (
	"context"

	"jobnet_client/internal/model"
	"jobnet_client/pkg/apierr"
)

type loginRequest struct {
	Identifier string `json:"identifier"`
}

// Login asks the server to deliver an OTP for the pending identifier.
// Safe to re-invoke at any time while pending or awaiting verification;
// that is the resend path. Any cooldown is a presentation concern.
func (s *serv) Login(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identifier == "" {
		return apierr.New(apierr.KindValidation, "auth.login", "identifier required")
	}

	err := s.client.Post(ctx, "auth.login", "/api/auth/login", loginRequest{Identifier: s.identifier}, nil)
	if err != nil {
		// State is unchanged; the caller may retry the same call.
		return err
	}

	s.state = model.StateAwaitingVerification
	return nil
}
