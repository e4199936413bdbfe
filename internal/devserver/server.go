// Package devserver is an in-memory implementation of the remote API the
// client consumes. It backs local development and integration tests; the
// production backend owns the authoritative contract.
package devserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"jobnet_client/internal/logger"
	"jobnet_client/pkg/token"
)

// DevOTP is accepted for every identifier, alongside the per-login code
// printed to the log.
const DevOTP = "123456"

type Server struct {
	store      *memStore
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

type Option func(*Server)

func WithAccessTTL(d time.Duration) Option {
	return func(s *Server) { s.accessTTL = d }
}

func New(secret []byte, opts ...Option) *Server {
	s := &Server{
		store:      newMemStore(),
		secret:     secret,
		accessTTL:  15 * time.Minute,
		refreshTTL: 30 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Route("/api/auth", func(rr chi.Router) {
		rr.Post("/login", s.handleLogin)
		rr.Post("/verify", s.handleVerify)
		rr.Post("/logout", s.handleLogout)
	})

	r.Group(func(rr chi.Router) {
		rr.Use(s.requireAuth)

		rr.Get("/api/users/me", s.handleMe)
		rr.Put("/api/users/me", s.handleUpdateMe)

		rr.Get("/api/posts", s.handleListPosts)
		rr.Post("/api/posts", s.handleCreatePost)
		rr.Post("/api/posts/{id}/like", s.handleToggleLike)
		rr.Get("/api/posts/{id}/comments", s.handleListComments)
		rr.Post("/api/posts/{id}/comments", s.handleAddComment)

		rr.Get("/api/jobs", s.handleListJobs)
		rr.Get("/api/jobs/{id}", s.handleGetJob)
		rr.Post("/api/jobs/{id}/apply", s.handleApply)
		rr.Get("/api/applications/me", s.handleApplications)
	})

	return r
}

type ctxKey int

const userIDKey ctxKey = 0

// requireAuth verifies the bearer token and stashes the user id in the
// request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := token.VerifyAccessToken(strings.TrimPrefix(header, "Bearer "), s.secret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		s.store.mu.Lock()
		_, known := s.store.usersByID[userID]
		s.store.mu.Unlock()
		if !known {
			writeError(w, http.StatusUnauthorized, "unknown user")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

func requestUserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	return v, err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("encoding response failed")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
