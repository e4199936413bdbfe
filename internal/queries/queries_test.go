package queries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobnet_client/internal/model"
	"jobnet_client/internal/querycache"
	"jobnet_client/pkg/apierr"
)

type fakePostService struct {
	listCalls    int
	commentCalls int
	toggleLike   func(ctx context.Context, postID string) (*model.LikeResult, error)
	addComment   func(ctx context.Context, postID, text string) (*model.Comment, error)
}

func (f *fakePostService) List(_ context.Context, cursor string) (*model.PostPage, error) {
	f.listCalls++
	return &model.PostPage{Posts: []model.Post{
		{ID: "p1", Text: "hello", LikeCount: 5},
		{ID: "p2", Text: "world", LikeCount: 0, CommentCount: 1},
	}}, nil
}

func (f *fakePostService) Create(_ context.Context, text, imageURL string) (*model.Post, error) {
	return &model.Post{ID: "new", Text: text, ImageURL: imageURL}, nil
}

func (f *fakePostService) ToggleLike(ctx context.Context, postID string) (*model.LikeResult, error) {
	return f.toggleLike(ctx, postID)
}

func (f *fakePostService) Comments(_ context.Context, postID string) (*model.CommentList, error) {
	f.commentCalls++
	return &model.CommentList{Comments: []model.Comment{{ID: "c1", PostID: postID}}}, nil
}

func (f *fakePostService) AddComment(ctx context.Context, postID, text string) (*model.Comment, error) {
	return f.addComment(ctx, postID, text)
}

type fakeJobService struct {
	applicationCalls int
	apply            func(ctx context.Context, id string) (*model.Application, error)
}

func (f *fakeJobService) List(_ context.Context, cursor string) (*model.JobPage, error) {
	return &model.JobPage{Jobs: []model.Job{{ID: "j1", Title: "Go Engineer"}}}, nil
}

func (f *fakeJobService) Get(_ context.Context, id string) (*model.Job, error) {
	return &model.Job{ID: id, Title: "Go Engineer"}, nil
}

func (f *fakeJobService) Apply(ctx context.Context, id string) (*model.Application, error) {
	return f.apply(ctx, id)
}

func (f *fakeJobService) Applications(_ context.Context) (*model.ApplicationList, error) {
	f.applicationCalls++
	return &model.ApplicationList{}, nil
}

type fakeUserService struct{}

func (f *fakeUserService) Me(_ context.Context) (*model.User, error) {
	return &model.User{ID: "u1", Name: "Ada"}, nil
}

func (f *fakeUserService) UpdateMe(_ context.Context, update model.ProfileUpdate) (*model.User, error) {
	u := model.User{ID: "u1", Name: "Ada"}
	if update.Headline != nil {
		u.Headline = *update.Headline
	}
	return &u, nil
}

func newTestSet(posts *fakePostService, jobs *fakeJobService) *Set {
	return New(querycache.New(), posts, jobs, &fakeUserService{})
}

func likeCountOf(s *Set, postID string) int {
	for _, p := range s.Posts.Items() {
		if p.ID == postID {
			return p.LikeCount
		}
	}
	return -1
}

func TestToggleLikeIsOptimisticThenConverges(t *testing.T) {
	ctx := context.Background()
	posts := &fakePostService{}
	var s *Set
	posts.toggleLike = func(ctx context.Context, postID string) (*model.LikeResult, error) {
		// The patch must be visible before the network call resolves.
		assert.Equal(t, 6, likeCountOf(s, postID))
		return &model.LikeResult{PostID: postID, Liked: true, LikeCount: 6}, nil
	}
	s = newTestSet(posts, &fakeJobService{})
	require.NoError(t, s.Posts.Load(ctx))

	result, err := s.ToggleLike(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 6, result.LikeCount)
	assert.Equal(t, 6, likeCountOf(s, "p1"), "authoritative value must converge with the optimistic one")
}

func TestToggleLikeRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	posts := &fakePostService{}
	posts.toggleLike = func(ctx context.Context, postID string) (*model.LikeResult, error) {
		return nil, apierr.New(apierr.KindTransport, "posts.like", "network unreachable")
	}
	s := newTestSet(posts, &fakeJobService{})
	require.NoError(t, s.Posts.Load(ctx))

	_, err := s.ToggleLike(ctx, "p1")
	require.Error(t, err)
	assert.Equal(t, 5, likeCountOf(s, "p1"), "failed toggle must restore the original count")
}

func TestToggleLikeKeepsPatchOnConflict(t *testing.T) {
	ctx := context.Background()
	posts := &fakePostService{}
	posts.toggleLike = func(ctx context.Context, postID string) (*model.LikeResult, error) {
		return nil, apierr.New(apierr.KindConflict, "posts.like", "already liked")
	}
	s := newTestSet(posts, &fakeJobService{})
	require.NoError(t, s.Posts.Load(ctx))

	_, err := s.ToggleLike(ctx, "p1")
	require.Error(t, err)
	assert.Equal(t, 6, likeCountOf(s, "p1"))
}

func TestApplyInvalidatesApplications(t *testing.T) {
	ctx := context.Background()
	jobs := &fakeJobService{}
	jobs.apply = func(ctx context.Context, id string) (*model.Application, error) {
		return &model.Application{ID: "a1", Status: "submitted", Job: model.Job{ID: id}}, nil
	}
	s := newTestSet(&fakePostService{}, jobs)

	_, err := s.Applications.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, jobs.applicationCalls)

	application, err := s.ApplyToJob(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, "submitted", application.Status)

	_, err = s.Applications.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, jobs.applicationCalls, "applications must refetch after an apply")
}

func TestApplyConflictDoesNotInvalidate(t *testing.T) {
	ctx := context.Background()
	jobs := &fakeJobService{}
	jobs.apply = func(ctx context.Context, id string) (*model.Application, error) {
		return nil, apierr.New(apierr.KindConflict, "jobs.apply", "already applied")
	}
	s := newTestSet(&fakePostService{}, jobs)

	_, err := s.Applications.Get(ctx)
	require.NoError(t, err)

	_, err = s.ApplyToJob(ctx, "j1")
	assert.True(t, apierr.IsConflict(err))

	_, err = s.Applications.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, jobs.applicationCalls)
}

func TestAddCommentInvalidatesCommentsAndFeed(t *testing.T) {
	ctx := context.Background()
	posts := &fakePostService{}
	posts.addComment = func(ctx context.Context, postID, text string) (*model.Comment, error) {
		return &model.Comment{ID: "c2", PostID: postID, Text: text}, nil
	}
	s := newTestSet(posts, &fakeJobService{})

	require.NoError(t, s.Posts.Load(ctx))
	_, err := s.Comments("p2").Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, posts.listCalls)
	require.Equal(t, 1, posts.commentCalls)

	_, err = s.AddComment(ctx, "p2", "nice")
	require.NoError(t, err)

	_, err = s.Comments("p2").Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, posts.commentCalls, "comment list must refetch")

	require.NoError(t, s.Posts.Load(ctx))
	assert.Equal(t, 2, posts.listCalls, "feed must refetch for the denormalized comment count")
}

func TestJobHandleMemoized(t *testing.T) {
	s := newTestSet(&fakePostService{}, &fakeJobService{})
	assert.Same(t, s.Job("j1"), s.Job("j1"))
	assert.NotSame(t, s.Job("j1"), s.Job("j2"))
}
