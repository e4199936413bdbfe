package queries

import (
	"context"

	"jobnet_client/internal/model"
	"jobnet_client/internal/querycache"
)

// ApplyToJob submits an application. Success invalidates the applications
// list; a conflict means the job was already applied to and the caller
// should disable the action.
func (s *Set) ApplyToJob(ctx context.Context, jobID string) (*model.Application, error) {
	var application *model.Application
	err := s.cache.Mutate(ctx, "jobs.apply", func(ctx context.Context) error {
		a, err := s.jobs.Apply(ctx, jobID)
		if err != nil {
			return err
		}
		application = a
		return nil
	}, querycache.MutationOptions{
		Invalidates: []querycache.Key{ApplicationsKey()},
	})
	if err != nil {
		return nil, err
	}
	return application, nil
}

// CreatePost publishes a post and invalidates the feed.
func (s *Set) CreatePost(ctx context.Context, text, imageURL string) (*model.Post, error) {
	var created *model.Post
	err := s.cache.Mutate(ctx, "posts.create", func(ctx context.Context) error {
		p, err := s.posts.Create(ctx, text, imageURL)
		if err != nil {
			return err
		}
		created = p
		return nil
	}, querycache.MutationOptions{
		Invalidates: []querycache.Key{PostsKey()},
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// AddComment invalidates the post's comment list and the feed, since the
// post carries a denormalized comment count.
func (s *Set) AddComment(ctx context.Context, postID, text string) (*model.Comment, error) {
	var created *model.Comment
	err := s.cache.Mutate(ctx, "comments.add", func(ctx context.Context) error {
		c, err := s.posts.AddComment(ctx, postID, text)
		if err != nil {
			return err
		}
		created = c
		return nil
	}, querycache.MutationOptions{
		Invalidates: []querycache.Key{CommentsKey(postID), PostsKey()},
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateProfile saves profile fields and invalidates the own-profile view.
func (s *Set) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.User, error) {
	var updated *model.User
	err := s.cache.Mutate(ctx, "users.update", func(ctx context.Context) error {
		u, err := s.users.UpdateMe(ctx, update)
		if err != nil {
			return err
		}
		updated = u
		return nil
	}, querycache.MutationOptions{
		Invalidates: []querycache.Key{MeKey()},
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ToggleLike flips the like on a post. The count is patched in every cached
// feed page immediately; the server's authoritative value overwrites it on
// success, and a non-conflict failure rolls the patch back.
func (s *Set) ToggleLike(ctx context.Context, postID string) (*model.LikeResult, error) {
	var result *model.LikeResult
	err := s.cache.Mutate(ctx, "posts.like", func(ctx context.Context) error {
		r, err := s.posts.ToggleLike(ctx, postID)
		if err != nil {
			return err
		}
		result = r
		return nil
	}, querycache.MutationOptions{
		Optimistic: func() func() {
			applied := s.Posts.Patch(func(p *model.Post) bool {
				if p.ID != postID {
					return false
				}
				flipLike(p)
				return true
			})
			return func() {
				if !applied {
					return
				}
				s.Posts.Patch(func(p *model.Post) bool {
					if p.ID != postID {
						return false
					}
					flipLike(p)
					return true
				})
			}
		},
	})
	if err != nil {
		return nil, err
	}

	// Reconcile with the authoritative count.
	s.Posts.Patch(func(p *model.Post) bool {
		if p.ID != result.PostID {
			return false
		}
		p.Liked = result.Liked
		p.LikeCount = result.LikeCount
		return true
	})
	return result, nil
}

func flipLike(p *model.Post) {
	if p.Liked {
		p.Liked = false
		p.LikeCount--
	} else {
		p.Liked = true
		p.LikeCount++
	}
}
