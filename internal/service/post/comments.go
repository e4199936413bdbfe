package post

import (
	"context"
	"strings"

	"jobnet_client/internal/model"
	"jobnet_client/pkg/apierr"
)

func (s *serv) Comments(ctx context.Context, postID string) (*model.CommentList, error) {
	var list model.CommentList
	err := s.client.Get(ctx, "comments.list", "/api/posts/"+postID+"/comments", nil, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

type addCommentRequest struct {
	Text string `json:"text"`
}

func (s *serv) AddComment(ctx context.Context, postID, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apierr.New(apierr.KindValidation, "comments.add", "comment text required")
	}

	var created model.Comment
	err := s.client.Post(ctx, "comments.add", "/api/posts/"+postID+"/comments", addCommentRequest{Text: text}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}
