package auth

import (
	"context"

	"jobnet_client/internal/model"
	"jobnet_client/pkg/apierr"
)

// Restore rebuilds the session on app start from a previously persisted
// token pair. Reports whether a session was restored. Rejected credentials
// clear the store; transient failures leave the pair in place so a flaky
// network does not log the user out.
func (s *serv) Restore(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	access, err := s.tokens.Access(ctx)
	if err != nil {
		return false, apierr.Wrap(err, apierr.KindTransport, "auth.restore")
	}
	refresh, err := s.tokens.Refresh(ctx)
	if err != nil {
		return false, apierr.Wrap(err, apierr.KindTransport, "auth.restore")
	}
	if access == "" || refresh == "" {
		return false, nil
	}

	var me model.User
	if err := s.client.Get(ctx, "auth.restore", "/api/users/me", nil, &me); err != nil {
		if apierr.IsAuth(err) {
			_ = s.tokens.Clear(ctx)
			s.user = nil
			s.state = model.StateAnonymous
			return false, nil
		}
		return false, err
	}

	s.user = &me
	s.identifier = me.Identifier
	s.state = model.StateAuthenticated
	return true, nil
}
