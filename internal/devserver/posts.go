package devserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"jobnet_client/internal/model"
)

func pageParams(r *http.Request) (limit, offset int, err error) {
	limit = 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return 0, 0, err
		}
	}
	offset, err = decodeCursor(r.URL.Query().Get("cursor"))
	return limit, offset, err
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pagination parameters")
		return
	}
	userID := requestUserID(r)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	page := model.PostPage{Posts: []model.Post{}}
	end := offset + limit
	if end > len(s.store.posts) {
		end = len(s.store.posts)
	}
	for _, p := range s.store.posts[offset:end] {
		view := *p
		view.Liked = s.store.likesByPost[p.ID][userID]
		page.Posts = append(page.Posts, view)
	}
	if end < len(s.store.posts) {
		page.NextCursor = encodeCursor(end)
	}

	writeJSON(w, http.StatusOK, page)
}

type createPostRequest struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	body, err := decode[createPostRequest](r)
	if err != nil || strings.TrimSpace(body.Text) == "" {
		writeError(w, http.StatusBadRequest, "post text required")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	author := s.store.usersByID[requestUserID(r)]
	post := &model.Post{
		ID:       uuid.NewString(),
		Text:     body.Text,
		ImageURL: body.ImageURL,
		Author: model.Author{
			ID:        author.ID,
			Name:      author.Name,
			Headline:  author.Headline,
			AvatarURL: author.AvatarURL,
		},
		CreatedAt: time.Now().UTC(),
	}
	// Newest first.
	s.store.posts = append([]*model.Post{post}, s.store.posts...)

	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	userID := requestUserID(r)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var post *model.Post
	for _, p := range s.store.posts {
		if p.ID == postID {
			post = p
			break
		}
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	likes := s.store.likesByPost[postID]
	if likes == nil {
		likes = make(map[string]bool)
		s.store.likesByPost[postID] = likes
	}
	if likes[userID] {
		delete(likes, userID)
		post.LikeCount--
	} else {
		likes[userID] = true
		post.LikeCount++
	}

	writeJSON(w, http.StatusOK, model.LikeResult{
		PostID:    postID,
		Liked:     likes[userID],
		LikeCount: post.LikeCount,
	})
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	list := model.CommentList{Comments: s.store.commentsByPost[postID]}
	if list.Comments == nil {
		list.Comments = []model.Comment{}
	}
	writeJSON(w, http.StatusOK, list)
}

type addCommentRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	body, err := decode[addCommentRequest](r)
	if err != nil || strings.TrimSpace(body.Text) == "" {
		writeError(w, http.StatusBadRequest, "comment text required")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var post *model.Post
	for _, p := range s.store.posts {
		if p.ID == postID {
			post = p
			break
		}
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	author := s.store.usersByID[requestUserID(r)]
	comment := model.Comment{
		ID:     uuid.NewString(),
		PostID: postID,
		Text:   body.Text,
		Author: model.Author{
			ID:        author.ID,
			Name:      author.Name,
			Headline:  author.Headline,
			AvatarURL: author.AvatarURL,
		},
		CreatedAt: time.Now().UTC(),
	}
	s.store.commentsByPost[postID] = append(s.store.commentsByPost[postID], comment)
	post.CommentCount++

	writeJSON(w, http.StatusCreated, comment)
}
