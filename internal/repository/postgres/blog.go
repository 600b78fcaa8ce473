package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/repository"
)

type blogRepository struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *model.Blog) error {
	query := `
		INSERT INTO blogs (id, title, content, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	blog.ID = uuid.New()
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		blog.ID,
		blog.Title,
		blog.Content,
		blog.AuthorID,
		blog.CreatedAt,
		blog.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

func (r *blogRepository) Get(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	query := `
		SELECT b.id, b.title, b.content, b.author_id, u.name AS author_name,
			   (SELECT COUNT(*) FROM blog_likes l WHERE l.blog_id = b.id) AS like_count,
			   b.created_at, b.updated_at
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		WHERE b.id = $1
	`
	var blog model.Blog
	err := r.db.GetContext(ctx, &blog, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &blog, nil
}

func (r *blogRepository) List(ctx context.Context) ([]*model.Blog, error) {
	query := `
		SELECT b.id, b.title, b.content, b.author_id, u.name AS author_name,
			   (SELECT COUNT(*) FROM blog_likes l WHERE l.blog_id = b.id) AS like_count,
			   b.created_at, b.updated_at
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		ORDER BY b.created_at DESC
	`
	var blogs []*model.Blog
	err := r.db.SelectContext(ctx, &blogs, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *blogRepository) HasLike(ctx context.Context, blogID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM blog_likes WHERE blog_id = $1 AND user_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, blogID, userID); err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}

func (r *blogRepository) AddLike(ctx context.Context, blogID, userID uuid.UUID) error {
	query := `
		INSERT INTO blog_likes (blog_id, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, blogID, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}
	return nil
}

func (r *blogRepository) RemoveLike(ctx context.Context, blogID, userID uuid.UUID) error {
	query := `DELETE FROM blog_likes WHERE blog_id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, blogID, userID); err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

func (r *blogRepository) AddComment(ctx context.Context, comment *model.BlogComment) error {
	query := `
		INSERT INTO blog_comments (id, blog_id, commenter_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	comment.ID = uuid.New()
	comment.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		comment.ID,
		comment.BlogID,
		comment.CommenterID,
		comment.Text,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

func (r *blogRepository) ListComments(ctx context.Context, blogID uuid.UUID) ([]model.BlogComment, error) {
	query := `
		SELECT id, blog_id, commenter_id, text, created_at
		FROM blog_comments
		WHERE blog_id = $1
		ORDER BY created_at ASC
	`
	var comments []model.BlogComment
	err := r.db.SelectContext(ctx, &comments, query, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
