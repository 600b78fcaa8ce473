package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/healsmart/healsmart-api/pkg/errors"
)

type fakeCompleter struct {
	reply      string
	lastSystem string
	err        error
}

func (f *fakeCompleter) Complete(_ context.Context, systemPrompt, _ string) (string, error) {
	f.lastSystem = systemPrompt
	return f.reply, f.err
}

func TestChat_RelaysWithSystemPrompt(t *testing.T) {
	completer := &fakeCompleter{reply: "Take a short walk and breathe slowly."}
	svc := NewService(completer)

	reply, err := svc.Chat(context.Background(), "I feel anxious today")
	require.NoError(t, err)
	assert.Equal(t, "Take a short walk and breathe slowly.", reply)
	assert.Contains(t, completer.lastSystem, "Mind-Bot")
}

func TestChat_UpstreamDown(t *testing.T) {
	svc := NewService(&fakeCompleter{err: errors.New("quota exceeded")})

	_, err := svc.Chat(context.Background(), "hello")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 502, appErr.StatusCode())
	assert.NotContains(t, appErr.Message, "quota")
}
