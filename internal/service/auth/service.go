package auth

import (
	"strings"
	"sync"

	"jobnet_client/internal/model"
	"jobnet_client/internal/service"
	"jobnet_client/internal/tokenstore"
)

// serv drives the sign-in state machine:
//
//	Anonymous -> Pending -> AwaitingVerification -> Authenticated -> Anonymous
//
// It is the sole writer of the token store; everything else reads tokens
// through the store. The mutex covers each operation end to end, so a
// concurrent reader never observes a half-applied transition.
type serv struct {
	mu     sync.Mutex
	client service.HTTPClient
	tokens tokenstore.Store

	identifier string
	user       *model.User
	state      model.SessionState
}

func NewService(client service.HTTPClient, tokens tokenstore.Store) *serv {
	return &serv{
		client: client,
		tokens: tokens,
		state:  model.StateAnonymous,
	}
}

// SetIdentifier records the pending email or phone number. Whitespace is
// trimmed before storage so a trailing space cannot cause an OTP mismatch
// later. No network side effect.
func (s *serv) SetIdentifier(identifier string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identifier = strings.TrimSpace(identifier)
	if s.state == model.StateAnonymous && s.identifier != "" {
		s.state = model.StatePending
	}
	if s.state == model.StatePending && s.identifier == "" {
		s.state = model.StateAnonymous
	}
}

func (s *serv) Identifier() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identifier
}

func (s *serv) State() model.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the in-memory identity, non-nil only while authenticated.
func (s *serv) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
