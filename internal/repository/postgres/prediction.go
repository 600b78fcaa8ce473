package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/repository"
)

type predictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) repository.PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) Create(ctx context.Context, prediction *model.Prediction) error {
	query := `
		INSERT INTO predictions (id, user_id, symptoms, result, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	prediction.ID = uuid.New()
	prediction.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		prediction.ID,
		prediction.UserID,
		prediction.Symptoms,
		prediction.Result,
		prediction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save prediction: %w", err)
	}
	return nil
}

func (r *predictionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Prediction, error) {
	query := `
		SELECT id, user_id, symptoms, result, created_at
		FROM predictions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	var predictions []*model.Prediction
	err := r.db.SelectContext(ctx, &predictions, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	return predictions, nil
}
