package prediction

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healsmart/healsmart-api/internal/client"
	"github.com/healsmart/healsmart-api/internal/model"
	apperrors "github.com/healsmart/healsmart-api/pkg/errors"
)

type fakePredictor struct {
	result *model.PredictionResult
	err    error
}

func (f *fakePredictor) Predict(context.Context, []string) (*model.PredictionResult, error) {
	return f.result, f.err
}

type fakePredictionRepo struct {
	stored []*model.Prediction
}

func (r *fakePredictionRepo) Create(_ context.Context, p *model.Prediction) error {
	p.ID = uuid.New()
	r.stored = append(r.stored, p)
	return nil
}

func (r *fakePredictionRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*model.Prediction, error) {
	var out []*model.Prediction
	for _, p := range r.stored {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestPredict_Success(t *testing.T) {
	svc := NewService(&fakePredictor{
		result: &model.PredictionResult{
			Prediction:       "Migraine",
			SymptomsReceived: []string{"headache", "nausea"},
		},
	}, &fakePredictionRepo{})

	result, err := svc.Predict(context.Background(), []string{"headache", "nausea"})
	require.NoError(t, err)
	assert.Equal(t, "Migraine", result.Prediction)
}

// Unknown symptoms are a client error; the predictor's suggestions ride
// along so the caller can correct its input.
func TestPredict_InvalidSymptoms(t *testing.T) {
	svc := NewService(&fakePredictor{
		err: &client.PredictorError{
			Status:          400,
			Message:         "invalid symptoms provided",
			InvalidSymptoms: []string{"hedache"},
			Suggestions:     map[string]string{"hedache": "headache"},
		},
	}, &fakePredictionRepo{})

	result, err := svc.Predict(context.Background(), []string{"hedache"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode())
	require.NotNil(t, result)
	assert.Equal(t, []string{"hedache"}, result.InvalidSymptoms)
	assert.Equal(t, "headache", result.Suggestions["hedache"])
}

func TestPredict_UpstreamDown(t *testing.T) {
	svc := NewService(&fakePredictor{err: errors.New("connection refused")}, &fakePredictionRepo{})

	result, err := svc.Predict(context.Background(), []string{"headache"})
	assert.Nil(t, result)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 502, appErr.StatusCode())
	// The raw connection error must not leak into the client message.
	assert.NotContains(t, appErr.Message, "connection refused")
}

func TestSaveAndHistory(t *testing.T) {
	repo := &fakePredictionRepo{}
	svc := NewService(&fakePredictor{}, repo)

	userID := uuid.New()
	saved, err := svc.Save(context.Background(), userID, &model.SavePredictionRequest{
		Symptoms: []string{"headache", "nausea"},
		Result:   "Migraine",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, saved.UserID)

	history, err := svc.History(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Migraine", history[0].Result)

	other, err := svc.History(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
	assert.NotNil(t, other)
}
