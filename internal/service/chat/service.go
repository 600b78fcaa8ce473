package chat

import (
	"context"

	apperrors "github.com/healsmart/healsmart-api/pkg/errors"
)

// systemPrompt pins the assistant to supportive, non-diagnostic answers.
const systemPrompt = `You are Mind-Bot, a supportive mental wellness assistant for the HealSmart platform. You must follow these rules:
1. Offer empathetic, general wellness guidance only.
2. You are not a doctor; never provide a diagnosis or prescribe medication.
3. If the user describes a medical emergency or self-harm, urge them to contact local emergency services immediately.
4. For persistent or serious symptoms, recommend booking a consultation with a doctor through the platform.`

// Completer relays one message to a chat-completion API.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, message string) (string, error)
}

// Service is a stateless relay: no conversation history is kept.
type Service struct {
	completer Completer
}

func NewService(completer Completer) *Service {
	return &Service{completer: completer}
}

func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	reply, err := s.completer.Complete(ctx, systemPrompt, message)
	if err != nil {
		return "", apperrors.Upstream("chat", err)
	}
	return reply, nil
}
