package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Prediction is a saved symptom-analysis result for a registered user.
type Prediction struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	UserID    uuid.UUID      `json:"user_id" db:"user_id"`
	Symptoms  pq.StringArray `json:"symptoms" db:"symptoms"`
	Result    string         `json:"result" db:"result"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

type PredictRequest struct {
	Symptoms []string `json:"symptoms" binding:"required,min=1,dive,required"`
}

// PredictionResult is the predictor's answer, relayed to the caller.
type PredictionResult struct {
	Prediction       string            `json:"prediction"`
	SymptomsReceived []string          `json:"symptoms_received,omitempty"`
	InvalidSymptoms  []string          `json:"invalid_symptoms,omitempty"`
	Suggestions      map[string]string `json:"suggestions,omitempty"`
}

type SavePredictionRequest struct {
	Symptoms []string `json:"symptoms" binding:"required,min=1,dive,required"`
	Result   string   `json:"result" binding:"required"`
}
