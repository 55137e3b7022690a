// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"gynoconnect/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (directory lookup results).
	CacheClient *redis.Client
	// TranscriptCacheClient is the dedicated client for assistant transcripts.
	TranscriptCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitTranscriptCache initializes the Redis client for assistant transcripts
// (using DB from AppConfig for transcript storage).
func InitTranscriptCache() {
	TranscriptCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTranscriptDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := TranscriptCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Transcript Cache): %v", err)
	}
}

// GetTranscriptCacheClient returns the Redis client for assistant transcripts.
func GetTranscriptCacheClient() *redis.Client {
	if TranscriptCacheClient == nil {
		InitTranscriptCache()
	}
	return TranscriptCacheClient
}

// InitRedis initializes all Redis clients used by the server.
func InitRedis() {
	InitCache()
	InitTranscriptCache()
}
