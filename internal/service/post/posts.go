package post

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"jobnet_client/internal/model"
	"jobnet_client/pkg/apierr"
)

// List fetches one page of the feed. The cursor is forwarded verbatim;
// an empty cursor requests the first page.
func (s *serv) List(ctx context.Context, cursor string) (*model.PostPage, error) {
	query := url.Values{"limit": {strconv.Itoa(s.pageLimit)}}
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	var page model.PostPage
	if err := s.client.Get(ctx, "posts.list", "/api/posts", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

type createRequest struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func (s *serv) Create(ctx context.Context, text, imageURL string) (*model.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apierr.New(apierr.KindValidation, "posts.create", "post text required")
	}

	var created model.Post
	err := s.client.Post(ctx, "posts.create", "/api/posts", createRequest{Text: text, ImageURL: imageURL}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}
