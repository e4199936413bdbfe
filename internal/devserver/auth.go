package devserver

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"jobnet_client/internal/logger"
	"jobnet_client/internal/model"
	"jobnet_client/pkg/token"
)

type loginRequest struct {
	Identifier string `json:"identifier"`
}

// handleLogin provisions the identifier on first contact and issues an OTP.
// The code is printed to the log; DevOTP always works too.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := decode[loginRequest](r)
	if err != nil || strings.TrimSpace(body.Identifier) == "" {
		writeError(w, http.StatusBadRequest, "identifier required")
		return
	}
	identifier := strings.TrimSpace(body.Identifier)

	code, err := generateOTP()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "otp generation failed")
		return
	}

	s.store.mu.Lock()
	s.store.userForIdentifier(identifier)
	s.store.otpByIdentifier[identifier] = code
	s.store.mu.Unlock()

	logger.Info().Str("identifier", identifier).Str("otp", code).Msg("otp issued")
	w.WriteHeader(http.StatusNoContent)
}

type verifyRequest struct {
	Identifier string `json:"identifier"`
	OTP        string `json:"otp"`
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	body, err := decode[verifyRequest](r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	identifier := strings.TrimSpace(body.Identifier)

	s.store.mu.Lock()
	issued, ok := s.store.otpByIdentifier[identifier]
	if !ok || (body.OTP != issued && body.OTP != DevOTP) {
		s.store.mu.Unlock()
		writeError(w, http.StatusUnauthorized, "invalid code")
		return
	}
	delete(s.store.otpByIdentifier, identifier)
	user := s.store.userForIdentifier(identifier)
	s.store.mu.Unlock()

	accessToken, err := token.GenerateAccessToken(user.ID, s.secret, s.accessTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token generation failed")
		return
	}
	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token generation failed")
		return
	}

	s.store.mu.Lock()
	s.store.sessionsByHash[token.HashRefreshToken(refreshToken)] = user.ID
	snapshot := *user
	s.store.mu.Unlock()

	writeJSON(w, http.StatusOK, model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         snapshot,
	})
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	body, err := decode[logoutRequest](r)
	if err != nil || body.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "refresh token required")
		return
	}

	s.store.mu.Lock()
	delete(s.store.sessionsByHash, token.HashRefreshToken(body.RefreshToken))
	s.store.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
