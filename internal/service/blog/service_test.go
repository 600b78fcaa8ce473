package blog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/repository"
	apperrors "github.com/healsmart/healsmart-api/pkg/errors"
)

type likeKey struct {
	blogID uuid.UUID
	userID uuid.UUID
}

type fakeBlogRepo struct {
	blogs    map[uuid.UUID]*model.Blog
	likes    map[likeKey]bool
	comments map[uuid.UUID][]model.BlogComment
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{
		blogs:    make(map[uuid.UUID]*model.Blog),
		likes:    make(map[likeKey]bool),
		comments: make(map[uuid.UUID][]model.BlogComment),
	}
}

func (r *fakeBlogRepo) Create(_ context.Context, b *model.Blog) error {
	b.ID = uuid.New()
	r.blogs[b.ID] = b
	return nil
}

func (r *fakeBlogRepo) Get(_ context.Context, id uuid.UUID) (*model.Blog, error) {
	b, ok := r.blogs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	cp.LikeCount = 0
	for k := range r.likes {
		if k.blogID == id {
			cp.LikeCount++
		}
	}
	return &cp, nil
}

func (r *fakeBlogRepo) List(_ context.Context) ([]*model.Blog, error) {
	var out []*model.Blog
	for id := range r.blogs {
		b, _ := r.Get(context.Background(), id)
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBlogRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.blogs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.blogs, id)
	return nil
}

func (r *fakeBlogRepo) HasLike(_ context.Context, blogID, userID uuid.UUID) (bool, error) {
	return r.likes[likeKey{blogID, userID}], nil
}

func (r *fakeBlogRepo) AddLike(_ context.Context, blogID, userID uuid.UUID) error {
	r.likes[likeKey{blogID, userID}] = true
	return nil
}

func (r *fakeBlogRepo) RemoveLike(_ context.Context, blogID, userID uuid.UUID) error {
	delete(r.likes, likeKey{blogID, userID})
	return nil
}

func (r *fakeBlogRepo) AddComment(_ context.Context, c *model.BlogComment) error {
	c.ID = uuid.New()
	r.comments[c.BlogID] = append(r.comments[c.BlogID], *c)
	return nil
}

func (r *fakeBlogRepo) ListComments(_ context.Context, blogID uuid.UUID) ([]model.BlogComment, error) {
	return r.comments[blogID], nil
}

func createBlog(t *testing.T, svc *Service, authorID uuid.UUID) *model.Blog {
	t.Helper()
	b, err := svc.Create(context.Background(), authorID, &model.CreateBlogRequest{
		Title:   "Managing seasonal allergies",
		Content: "Some practical advice.",
	})
	require.NoError(t, err)
	return b
}

func TestToggleLike(t *testing.T) {
	svc := NewService(newFakeBlogRepo())
	authorID := uuid.New()
	reader := uuid.New()

	b := createBlog(t, svc, authorID)

	liked, err := svc.ToggleLike(context.Background(), b.ID, reader)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikeCount)

	// Second toggle removes the like rather than stacking another.
	unliked, err := svc.ToggleLike(context.Background(), b.ID, reader)
	require.NoError(t, err)
	assert.Equal(t, 0, unliked.LikeCount)
}

func TestToggleLike_UnknownBlog(t *testing.T) {
	svc := NewService(newFakeBlogRepo())

	_, err := svc.ToggleLike(context.Background(), uuid.New(), uuid.New())
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode())
}

func TestComment(t *testing.T) {
	svc := NewService(newFakeBlogRepo())
	b := createBlog(t, svc, uuid.New())

	commenter := uuid.New()
	withComment, err := svc.Comment(context.Background(), b.ID, commenter, "Very helpful, thanks.")
	require.NoError(t, err)
	require.Len(t, withComment.Comments, 1)
	assert.Equal(t, commenter, withComment.Comments[0].CommenterID)
}

func TestDelete_AuthorOnly(t *testing.T) {
	svc := NewService(newFakeBlogRepo())
	authorID := uuid.New()
	b := createBlog(t, svc, authorID)

	err := svc.Delete(context.Background(), b.ID, uuid.New())
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.StatusCode())

	require.NoError(t, svc.Delete(context.Background(), b.ID, authorID))

	_, err = svc.Get(context.Background(), b.ID)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode())
}

func TestList_EmptyIsNotNil(t *testing.T) {
	svc := NewService(newFakeBlogRepo())

	blogs, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, blogs)
	assert.Empty(t, blogs)
}
