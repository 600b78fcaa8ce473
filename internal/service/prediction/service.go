package prediction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/healsmart/healsmart-api/internal/client"
	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/repository"
	apperrors "github.com/healsmart/healsmart-api/pkg/errors"
)

// Predictor is the disease-prediction microservice. The prediction
// algorithm itself is an external black box.
type Predictor interface {
	Predict(ctx context.Context, symptoms []string) (*model.PredictionResult, error)
}

// Service proxies symptom lists to the predictor and keeps a per-user
// history of saved results.
type Service struct {
	predictor Predictor
	repo      repository.PredictionRepository
}

func NewService(predictor Predictor, repo repository.PredictionRepository) *Service {
	return &Service{
		predictor: predictor,
		repo:      repo,
	}
}

// Predict relays symptoms upstream. Validation errors from the predictor
// (unknown symptoms plus suggestions) are passed through to the caller;
// connectivity failures surface as an upstream error with a generic
// message.
func (s *Service) Predict(ctx context.Context, symptoms []string) (*model.PredictionResult, error) {
	result, err := s.predictor.Predict(ctx, symptoms)
	if err != nil {
		var predErr *client.PredictorError
		if errors.As(err, &predErr) {
			return &model.PredictionResult{
				InvalidSymptoms: predErr.InvalidSymptoms,
				Suggestions:     predErr.Suggestions,
			}, apperrors.BadRequest(predErr.Message, err)
		}
		return nil, apperrors.Upstream("prediction", err)
	}
	return result, nil
}

// Save stores a prediction result in the caller's history.
func (s *Service) Save(ctx context.Context, userID uuid.UUID, req *model.SavePredictionRequest) (*model.Prediction, error) {
	p := &model.Prediction{
		UserID:   userID,
		Symptoms: req.Symptoms,
		Result:   req.Result,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to save prediction: %w", err))
	}
	return p, nil
}

// History lists the caller's saved predictions, newest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]*model.Prediction, error) {
	predictions, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to list predictions: %w", err))
	}
	if predictions == nil {
		predictions = []*model.Prediction{}
	}
	return predictions, nil
}
