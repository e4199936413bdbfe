package devserver

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobnet_client/internal/model"
)

// memStore holds all server state in memory. It stands in for the real
// backend's database during development and integration tests.
type memStore struct {
	mu sync.Mutex

	usersByID         map[string]*model.User
	userByIdentifier  map[string]string // identifier -> user id
	otpByIdentifier   map[string]string
	sessionsByHash    map[string]string // refresh token hash -> user id
	posts             []*model.Post     // newest first
	commentsByPost    map[string][]model.Comment
	likesByPost       map[string]map[string]bool // post id -> user id -> liked
	jobs              []*model.Job // newest first
	applicationsByUser map[string][]model.Application
}

func newMemStore() *memStore {
	s := &memStore{
		usersByID:          make(map[string]*model.User),
		userByIdentifier:   make(map[string]string),
		otpByIdentifier:    make(map[string]string),
		sessionsByHash:     make(map[string]string),
		commentsByPost:     make(map[string][]model.Comment),
		likesByPost:        make(map[string]map[string]bool),
		applicationsByUser: make(map[string][]model.Application),
	}
	s.seed()
	return s
}

// seed loads deterministic fixture data so the client has something to
// scroll through on first run.
func (s *memStore) seed() {
	now := time.Now().UTC()

	authors := []model.Author{
		{ID: uuid.NewString(), Name: "Priya Shah", Headline: "Staff Engineer at Vectorly"},
		{ID: uuid.NewString(), Name: "Marco Ruiz", Headline: "Engineering Manager"},
		{ID: uuid.NewString(), Name: "Lena Fischer", Headline: "Product Designer"},
	}

	for i := 0; i < 25; i++ {
		author := authors[i%len(authors)]
		s.posts = append(s.posts, &model.Post{
			ID:        uuid.NewString(),
			Text:      fmt.Sprintf("Seed post %d: shipped something new today.", i+1),
			LikeCount: (i * 3) % 17,
			Author:    author,
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}

	companies := []string{"Vectorly", "Northwind", "Acme Cloud", "Datagrove"}
	titles := []string{"Backend Engineer", "Go Developer", "Platform Engineer", "SRE"}
	for i := 0; i < 18; i++ {
		s.jobs = append(s.jobs, &model.Job{
			ID:              uuid.NewString(),
			Title:           titles[i%len(titles)],
			Company:         companies[i%len(companies)],
			Location:        "Remote",
			Description:     "Build and operate distributed services in Go.",
			PayMin:          90000 + i*5000,
			PayMax:          120000 + i*5000,
			SalaryCurrency:  "USD",
			EmploymentType:  "Full-time",
			ExperienceLevel: "Mid-Senior",
			CreatedAt:       now.Add(-time.Duration(i) * 6 * time.Hour),
		})
	}
}

func (s *memStore) userForIdentifier(identifier string) *model.User {
	if id, ok := s.userByIdentifier[identifier]; ok {
		return s.usersByID[id]
	}
	u := &model.User{
		ID:         uuid.NewString(),
		Identifier: identifier,
		Name:       "New Member",
		Skills:     []string{},
	}
	s.usersByID[u.ID] = u
	s.userByIdentifier[identifier] = u.ID
	return u
}

// cursors encode a plain offset; the client must treat them as opaque.
func encodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte("o:" + strconv.Itoa(offset)))
}

func decodeCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("bad cursor: %w", err)
	}
	var offset int
	if _, err := fmt.Sscanf(string(raw), "o:%d", &offset); err != nil {
		return 0, fmt.Errorf("bad cursor: %w", err)
	}
	return offset, nil
}
