package models

// Chat speaker roles.
const (
	ChatRoleUser = "user"
	ChatRoleBot  = "bot"
)

// ChatMessage is one entry in an assistant transcript.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatTranscript is the append-only message history for one assistant
// session. It is reset only by session expiry.
type ChatTranscript struct {
	SessionID string        `json:"sessionId"`
	Messages  []ChatMessage `json:"messages"`
}
