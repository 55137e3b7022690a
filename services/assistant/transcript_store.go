// File: services/assistant/transcript_store.go
package assistant

import (
	"context"
	"encoding/json"
	"time"

	"gynoconnect/models"

	"github.com/go-redis/redis/v8"
)

const transcriptPrefix = "chat:transcript:"

// RedisTranscriptStore keeps one JSON transcript blob per session with a
// TTL; session expiry is the server analog of remounting the chat widget.
type RedisTranscriptStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTranscriptStore(client *redis.Client, ttl time.Duration) *RedisTranscriptStore {
	return &RedisTranscriptStore{client: client, ttl: ttl}
}

func (s *RedisTranscriptStore) Get(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	key := transcriptPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var messages []models.ChatMessage
	if err := json.Unmarshal([]byte(data), &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *RedisTranscriptStore) Save(ctx context.Context, sessionID string, messages []models.ChatMessage) error {
	key := transcriptPrefix + sessionID
	b, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisTranscriptStore) Clear(ctx context.Context, sessionID string) error {
	key := transcriptPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
