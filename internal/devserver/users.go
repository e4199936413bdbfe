package devserver

import (
	"net/http"

	"jobnet_client/internal/model"
)

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	user := s.store.usersByID[requestUserID(r)]
	writeJSON(w, http.StatusOK, *user)
}

func (s *Server) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	body, err := decode[model.ProfileUpdate](r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	user := s.store.usersByID[requestUserID(r)]
	if body.Name != nil {
		user.Name = *body.Name
	}
	if body.Headline != nil {
		user.Headline = *body.Headline
	}
	if body.Location != nil {
		user.Location = *body.Location
	}
	if body.AvatarURL != nil {
		user.AvatarURL = *body.AvatarURL
	}
	if body.Skills != nil {
		user.Skills = *body.Skills
	}

	writeJSON(w, http.StatusOK, *user)
}
