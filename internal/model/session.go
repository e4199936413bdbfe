package model

// SessionState tracks where the sign-in flow currently is.
type SessionState int

const (
	StateAnonymous SessionState = iota
	StatePending
	StateAwaitingVerification
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StatePending:
		return "pending"
	case StateAwaitingVerification:
		return "awaiting_verification"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// AuthData is the POST /api/auth/verify response: the token pair plus the
// verified user's profile.
type AuthData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}
