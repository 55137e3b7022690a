package assistant

import (
	"context"
	"testing"
	"time"

	"gynoconnect/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAssistant(t *testing.T) *DefaultAssistantService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := NewRedisTranscriptStore(client, 30*time.Minute)
	return NewDefaultAssistantService(store, zap.NewNop())
}

func TestStartSession_SeedsGreeting(t *testing.T) {
	svc := newTestAssistant(t)

	tr, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, tr.SessionID)
	require.Len(t, tr.Messages, 1)

	greeting := tr.Messages[0]
	assert.Equal(t, models.ChatRoleBot, greeting.Role)
	assert.Equal(t, "Hi! I'm here to help you with common questions. How can I assist you today?", greeting.Text)

	// The transcript is readable back under the same session.
	got, err := svc.Transcript(context.Background(), tr.SessionID)
	require.NoError(t, err)
	assert.Equal(t, tr.Messages, got.Messages)
}

func TestEndSession_DiscardsTranscript(t *testing.T) {
	svc := newTestAssistant(t)

	tr, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.EndSession(context.Background(), tr.SessionID))

	_, err = svc.Transcript(context.Background(), tr.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestEndSession_UnknownSessionIsNoOp(t *testing.T) {
	svc := newTestAssistant(t)
	assert.NoError(t, svc.EndSession(context.Background(), "never-existed"))
}

func TestTranscript_UnknownSession(t *testing.T) {
	svc := newTestAssistant(t)

	_, err := svc.Transcript(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendMessage_KeywordRouting(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantAnswer string
	}{
		{
			name:       "fee keyword",
			text:       "what are your fees?",
			wantAnswer: faqTable["What are your consultation fees?"],
		},
		{
			name:       "cost keyword mid-sentence",
			text:       "What will it cost?",
			wantAnswer: faqTable["What are your consultation fees?"],
		},
		{
			name:       "price keyword uppercase",
			text:       "PRICE please",
			wantAnswer: faqTable["What are your consultation fees?"],
		},
		{
			name:       "booking keyword",
			text:       "how do I book?",
			wantAnswer: faqTable["How do I book an appointment?"],
		},
		{
			name:       "report keyword",
			text:       "can I upload a report",
			wantAnswer: faqTable["Can I upload my medical reports?"],
		},
		{
			name:       "no keyword deflects",
			text:       "I have a headache",
			wantAnswer: deflectionMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAssistant(t)
			tr, err := svc.StartSession(context.Background())
			require.NoError(t, err)

			messages, err := svc.SendMessage(context.Background(), tr.SessionID, tt.text)
			require.NoError(t, err)
			require.Len(t, messages, 3)

			assert.Equal(t, models.ChatRoleUser, messages[1].Role)
			assert.Equal(t, tt.text, messages[1].Text)
			assert.Equal(t, models.ChatRoleBot, messages[2].Role)
			assert.Equal(t, tt.wantAnswer, messages[2].Text)
		})
	}
}

func TestSendMessage_FeeGroupWinsOverBooking(t *testing.T) {
	svc := newTestAssistant(t)
	tr, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	// Both groups match; the first group in routing order answers.
	messages, err := svc.SendMessage(context.Background(), tr.SessionID, "what is the cost to book an appointment?")
	require.NoError(t, err)
	assert.Equal(t, faqTable["What are your consultation fees?"], messages[2].Text)
}

func TestSendMessage_BlankInputIgnored(t *testing.T) {
	svc := newTestAssistant(t)
	tr, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), tr.SessionID, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	// Nothing was appended.
	got, err := svc.Transcript(context.Background(), tr.SessionID)
	require.NoError(t, err)
	assert.Len(t, got.Messages, 1)
}

func TestAskPreset(t *testing.T) {
	svc := newTestAssistant(t)
	tr, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	question := "Are consultations confidential?"
	messages, err := svc.AskPreset(context.Background(), tr.SessionID, question)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, question, messages[1].Text)
	assert.Equal(t, "Absolutely! All consultations are completely confidential and follow strict medical privacy guidelines.", messages[2].Text)
}

func TestAskPreset_UnknownQuestion(t *testing.T) {
	svc := newTestAssistant(t)
	tr, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	_, err = svc.AskPreset(context.Background(), tr.SessionID, "Is the moon made of cheese?")
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestPresetQuestions_OrderAndCoverage(t *testing.T) {
	svc := newTestAssistant(t)

	questions := svc.PresetQuestions()
	require.Len(t, questions, 6)
	assert.Equal(t, "What are your consultation fees?", questions[0])
	assert.Equal(t, "Do you provide prescriptions online?", questions[5])

	// Every preset question has a canned answer.
	for _, q := range questions {
		_, ok := faqTable[q]
		assert.True(t, ok, "missing answer for %q", q)
	}
}

func TestTranscript_SurvivesMultipleTurns(t *testing.T) {
	svc := newTestAssistant(t)
	tr, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), tr.SessionID, "how much does it cost?")
	require.NoError(t, err)
	_, err = svc.AskPreset(context.Background(), tr.SessionID, "What if I need to reschedule?")
	require.NoError(t, err)

	got, err := svc.Transcript(context.Background(), tr.SessionID)
	require.NoError(t, err)
	assert.Len(t, got.Messages, 5)
}
