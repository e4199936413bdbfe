package devserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"jobnet_client/internal/model"
)

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pagination parameters")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	page := model.JobPage{Jobs: []model.Job{}}
	end := offset + limit
	if end > len(s.store.jobs) {
		end = len(s.store.jobs)
	}
	for _, j := range s.store.jobs[offset:end] {
		page.Jobs = append(page.Jobs, *j)
	}
	if end < len(s.store.jobs) {
		page.NextCursor = encodeCursor(end)
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for _, j := range s.store.jobs {
		if j.ID == jobID {
			writeJSON(w, http.StatusOK, *j)
			return
		}
	}
	writeError(w, http.StatusNotFound, "job not found")
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")
	userID := requestUserID(r)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var job *model.Job
	for _, j := range s.store.jobs {
		if j.ID == jobID {
			job = j
			break
		}
	}
	if job == nil {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}

	for _, a := range s.store.applicationsByUser[userID] {
		if a.Job.ID == jobID {
			writeError(w, http.StatusConflict, "you have already applied to this job")
			return
		}
	}

	application := model.Application{
		ID:        uuid.NewString(),
		Status:    "submitted",
		Job:       *job, // denormalized snapshot
		CreatedAt: time.Now().UTC(),
	}
	s.store.applicationsByUser[userID] = append(s.store.applicationsByUser[userID], application)

	writeJSON(w, http.StatusCreated, application)
}

func (s *Server) handleApplications(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	list := model.ApplicationList{Applications: s.store.applicationsByUser[userID]}
	if list.Applications == nil {
		list.Applications = []model.Application{}
	}
	writeJSON(w, http.StatusOK, list)
}
