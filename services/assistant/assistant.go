// File: services/assistant/assistant.go
package assistant

import (
	"context"
	"strings"

	"gynoconnect/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAssistantService is the production implementation of the scripted
// assistant. It holds no conversation memory beyond substring matching on
// the current message.
type DefaultAssistantService struct {
	Store  TranscriptStore
	Logger *zap.Logger
}

// NewDefaultAssistantService creates an assistant backed by the given store.
func NewDefaultAssistantService(store TranscriptStore, logger *zap.Logger) *DefaultAssistantService {
	return &DefaultAssistantService{Store: store, Logger: logger}
}

// PresetQuestions returns the fixed question list in display order.
func (s *DefaultAssistantService) PresetQuestions() []string {
	questions := make([]string, len(presetQuestions))
	copy(questions, presetQuestions)
	return questions
}

// StartSession opens a new transcript seeded with the greeting.
func (s *DefaultAssistantService) StartSession(ctx context.Context) (*models.ChatTranscript, error) {
	sessionID := uuid.New().String()
	messages := []models.ChatMessage{
		{Role: models.ChatRoleBot, Text: greetingMessage},
	}
	if err := s.Store.Save(ctx, sessionID, messages); err != nil {
		return nil, err
	}
	s.Logger.Debug("Assistant session started", zap.String("sessionID", sessionID))
	return &models.ChatTranscript{SessionID: sessionID, Messages: messages}, nil
}

// EndSession discards a transcript immediately instead of waiting for its
// TTL. Ending an unknown session is a no-op.
func (s *DefaultAssistantService) EndSession(ctx context.Context, sessionID string) error {
	if err := s.Store.Clear(ctx, sessionID); err != nil {
		return err
	}
	s.Logger.Debug("Assistant session ended", zap.String("sessionID", sessionID))
	return nil
}

// Transcript returns the full message history for a session.
func (s *DefaultAssistantService) Transcript(ctx context.Context, sessionID string) (*models.ChatTranscript, error) {
	messages, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &models.ChatTranscript{SessionID: sessionID, Messages: messages}, nil
}

// SendMessage appends the user's free text and the matched canned answer.
// Blank input is ignored entirely: no transcript entry, ErrEmptyMessage.
func (s *DefaultAssistantService) SendMessage(ctx context.Context, sessionID, text string) ([]models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	return s.append(ctx, sessionID,
		models.ChatMessage{Role: models.ChatRoleUser, Text: text},
		models.ChatMessage{Role: models.ChatRoleBot, Text: answerFor(text)},
	)
}

// AskPreset appends a preset question and its exact table answer.
func (s *DefaultAssistantService) AskPreset(ctx context.Context, sessionID, question string) ([]models.ChatMessage, error) {
	answer, ok := faqTable[question]
	if !ok {
		return nil, ErrUnknownQuestion
	}
	return s.append(ctx, sessionID,
		models.ChatMessage{Role: models.ChatRoleUser, Text: question},
		models.ChatMessage{Role: models.ChatRoleBot, Text: answer},
	)
}

func (s *DefaultAssistantService) append(ctx context.Context, sessionID string, entries ...models.ChatMessage) ([]models.ChatMessage, error) {
	messages, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	messages = append(messages, entries...)
	if err := s.Store.Save(ctx, sessionID, messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// answerFor lowercases the input and checks the keyword groups in order;
// the first matching group's answer wins, else the generic deflection.
func answerFor(text string) string {
	lower := strings.ToLower(text)
	for _, g := range keywordGroups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return faqTable[g.question]
			}
		}
	}
	return deflectionMessage
}
