package auth

import (
	"context"

	"jobnet_client/internal/model"
	"jobnet_client/pkg/apierr"
)

const otpLength = 6

type verifyRequest struct {
	Identifier string `json:"identifier"`
	OTP        string `json:"otp"`
}

// Verify exchanges the identifier + code for the token pair and the user
// profile. Token persistence and the in-memory identity must both land
// before the call succeeds: if the store write fails, the user stays nil
// and the caller has to verify again. A half-applied session is never
// left behind.
func (s *serv) Verify(ctx context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(code) != otpLength {
		return apierr.New(apierr.KindValidation, "auth.verify", "verification code incomplete")
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return apierr.New(apierr.KindValidation, "auth.verify", "verification code must be digits")
		}
	}

	switch s.state {
	case model.StateAwaitingVerification:
		// expected
	case model.StateAuthenticated:
		// Idempotent retry of an already-verified session.
		return nil
	default:
		return apierr.New(apierr.KindValidation, "auth.verify", "no verification in progress")
	}

	var data model.AuthData
	err := s.client.Post(ctx, "auth.verify", "/api/auth/verify",
		verifyRequest{Identifier: s.identifier, OTP: code}, &data)
	if err != nil {
		return err
	}

	if err := s.tokens.Save(ctx, data.AccessToken, data.RefreshToken); err != nil {
		// The store rolled its partial write back; force re-verification
		// rather than degrading into a token-less "authenticated" session.
		s.user = nil
		return apierr.Wrap(err, apierr.KindTransport, "auth.verify")
	}

	s.user = &data.User
	s.state = model.StateAuthenticated
	return nil
}
