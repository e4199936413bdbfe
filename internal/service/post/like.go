package post

import (
	"context"

	"jobnet_client/internal/model"
)

// ToggleLike flips the caller's like on a post. The response carries the
// authoritative like count.
func (s *serv) ToggleLike(ctx context.Context, postID string) (*model.LikeResult, error) {
	var result model.LikeResult
	err := s.client.Post(ctx, "posts.like", "/api/posts/"+postID+"/like", nil, &result)
	if err != nil {
		return nil, err
	}
	result.PostID = postID
	return &result, nil
}
