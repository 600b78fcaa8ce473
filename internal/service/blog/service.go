package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/repository"
	apperrors "github.com/healsmart/healsmart-api/pkg/errors"
)

// Service implements awareness blogs: create, list, like/unlike toggle,
// comment, and author-only deletion.
type Service struct {
	repo repository.BlogRepository
}

func NewService(repo repository.BlogRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, authorID uuid.UUID, req *model.CreateBlogRequest) (*model.Blog, error) {
	blog := &model.Blog{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to create blog: %w", err))
	}
	return blog, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Blog, error) {
	blogs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list blogs: %w", err))
	}
	if blogs == nil {
		blogs = []*model.Blog{}
	}
	return blogs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	blog, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.ListComments(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list comments: %w", err))
	}
	blog.Comments = comments
	return blog, nil
}

// ToggleLike likes the blog, or removes the caller's existing like.
func (s *Service) ToggleLike(ctx context.Context, blogID, userID uuid.UUID) (*model.Blog, error) {
	if _, err := s.get(ctx, blogID); err != nil {
		return nil, err
	}

	liked, err := s.repo.HasLike(ctx, blogID, userID)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to check like: %w", err))
	}

	if liked {
		err = s.repo.RemoveLike(ctx, blogID, userID)
	} else {
		err = s.repo.AddLike(ctx, blogID, userID)
	}
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to toggle like: %w", err))
	}

	return s.get(ctx, blogID)
}

func (s *Service) Comment(ctx context.Context, blogID, userID uuid.UUID, text string) (*model.Blog, error) {
	if _, err := s.get(ctx, blogID); err != nil {
		return nil, err
	}

	comment := &model.BlogComment{
		BlogID:      blogID,
		CommenterID: userID,
		Text:        text,
	}
	if err := s.repo.AddComment(ctx, comment); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to add comment: %w", err))
	}

	return s.Get(ctx, blogID)
}

// Delete removes a blog; only its author may delete it.
func (s *Service) Delete(ctx context.Context, blogID, userID uuid.UUID) error {
	blog, err := s.get(ctx, blogID)
	if err != nil {
		return err
	}

	if blog.AuthorID != userID {
		return apperrors.Forbidden("only the author can delete this blog", nil)
	}

	if err := s.repo.Delete(ctx, blogID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("blog", err)
		}
		return apperrors.Internal(fmt.Errorf("failed to delete blog: %w", err))
	}
	return nil
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	blog, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("blog", err)
		}
		return nil, apperrors.Internal(fmt.Errorf("failed to get blog: %w", err))
	}
	return blog, nil
}
