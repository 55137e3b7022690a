package assistant

import (
	"context"
	"errors"

	"gynoconnect/models"
)

var (
	// ErrSessionNotFound means the transcript expired or never existed.
	ErrSessionNotFound = errors.New("assistant: session not found")
	// ErrEmptyMessage means the input was blank and was ignored: no
	// transcript entry is appended.
	ErrEmptyMessage = errors.New("assistant: empty message")
	// ErrUnknownQuestion means the preset question is not in the FAQ table.
	ErrUnknownQuestion = errors.New("assistant: unknown question")
)

// AssistantService is the scripted FAQ responder. Transcripts are
// append-only for the lifetime of one session.
type AssistantService interface {
	StartSession(ctx context.Context) (*models.ChatTranscript, error)
	EndSession(ctx context.Context, sessionID string) error
	Transcript(ctx context.Context, sessionID string) (*models.ChatTranscript, error)
	SendMessage(ctx context.Context, sessionID, text string) ([]models.ChatMessage, error)
	AskPreset(ctx context.Context, sessionID, question string) ([]models.ChatMessage, error)
	PresetQuestions() []string
}

// TranscriptStore persists one transcript per session.
type TranscriptStore interface {
	Get(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	Save(ctx context.Context, sessionID string, messages []models.ChatMessage) error
	Clear(ctx context.Context, sessionID string) error
}
