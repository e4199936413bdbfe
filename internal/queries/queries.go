// Package queries binds the resource services to cache entries and owns
// the static table of invalidation edges between mutations and keys.
package queries

import (
	"context"
	"sync"

	"jobnet_client/internal/model"
	"jobnet_client/internal/querycache"
	"jobnet_client/internal/service"
)

// Set is the full collection of typed query handles the UI reads through.
type Set struct {
	cache *querycache.Cache
	posts service.PostService
	jobs  service.JobService
	users service.UserService

	Posts        *querycache.Paged[model.Post]
	Jobs         *querycache.Paged[model.Job]
	Applications *querycache.Query[*model.ApplicationList]
	Me           *querycache.Query[*model.User]

	mu          sync.Mutex
	jobByID     map[string]*querycache.Query[*model.Job]
	commentsByID map[string]*querycache.Query[*model.CommentList]
}

func New(cache *querycache.Cache, posts service.PostService, jobs service.JobService, users service.UserService) *Set {
	s := &Set{
		cache:        cache,
		posts:        posts,
		jobs:         jobs,
		users:        users,
		jobByID:      make(map[string]*querycache.Query[*model.Job]),
		commentsByID: make(map[string]*querycache.Query[*model.CommentList]),
	}

	s.Posts = querycache.NewPaged(cache, PostsKey(), func(ctx context.Context, cursor string) (querycache.Page[model.Post], error) {
		page, err := posts.List(ctx, cursor)
		if err != nil {
			return querycache.Page[model.Post]{}, err
		}
		return querycache.Page[model.Post]{Items: page.Posts, NextCursor: page.NextCursor}, nil
	})

	s.Jobs = querycache.NewPaged(cache, JobsKey(), func(ctx context.Context, cursor string) (querycache.Page[model.Job], error) {
		page, err := jobs.List(ctx, cursor)
		if err != nil {
			return querycache.Page[model.Job]{}, err
		}
		return querycache.Page[model.Job]{Items: page.Jobs, NextCursor: page.NextCursor}, nil
	})

	s.Applications = querycache.NewQuery(cache, ApplicationsKey(), func(ctx context.Context) (*model.ApplicationList, error) {
		return jobs.Applications(ctx)
	})

	s.Me = querycache.NewQuery(cache, MeKey(), func(ctx context.Context) (*model.User, error) {
		return users.Me(ctx)
	})

	return s
}

// Job returns the point query for one job's detail. Handles are memoized
// per id so every caller shares the same logical entry.
func (s *Set) Job(id string) *querycache.Query[*model.Job] {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.jobByID[id]
	if !ok {
		q = querycache.NewQuery(s.cache, JobKey(id), func(ctx context.Context) (*model.Job, error) {
			return s.jobs.Get(ctx, id)
		})
		s.jobByID[id] = q
	}
	return q
}

// Comments returns the comment list query for one post.
func (s *Set) Comments(postID string) *querycache.Query[*model.CommentList] {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.commentsByID[postID]
	if !ok {
		q = querycache.NewQuery(s.cache, CommentsKey(postID), func(ctx context.Context) (*model.CommentList, error) {
			return s.posts.Comments(ctx, postID)
		})
		s.commentsByID[postID] = q
	}
	return q
}
