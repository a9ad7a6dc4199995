package store

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/homebench-ai/sdk/eval"
)

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	// URL is the Redis connection string (e.g., "redis://localhost:6379").
	URL string

	// TLS configuration for secure connections.
	TLS *tls.Config

	// ConnectTimeout is the maximum time to wait for connection establishment.
	ConnectTimeout time.Duration

	// ReadTimeout is the maximum time to wait for read operations.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait for write operations.
	WriteTimeout time.Duration
}

// RedisStore implements Store using go-redis/v9. Each session's profile
// snapshot lives under one key and its history under one list, so sessions
// never share state.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed session store with the given options
// and verifies connectivity with a ping.
func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	redisOpts.TLSConfig = opts.TLS
	redisOpts.DialTimeout = opts.ConnectTimeout
	redisOpts.ReadTimeout = opts.ReadTimeout
	redisOpts.WriteTimeout = opts.WriteTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// SaveProfile writes the profile snapshot under the session's profile key.
func (s *RedisStore) SaveProfile(ctx context.Context, sessionID string, profile *eval.Profile) error {
	if sessionID == "" {
		return ErrInvalidSession
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := s.client.Set(ctx, profileKey(sessionID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile for session %s: %w", sessionID, err)
	}

	return nil
}

// LoadProfile reads the last saved profile snapshot for the session.
func (s *RedisStore) LoadProfile(ctx context.Context, sessionID string) (*eval.Profile, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	data, err := s.client.Get(ctx, profileKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load profile for session %s: %w", sessionID, err)
	}

	var profile eval.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// AppendHistory pushes one scored turn onto the end of the session's history
// list (RPUSH), preserving call order.
func (s *RedisStore) AppendHistory(ctx context.Context, sessionID string, entry eval.HistoryEntry) error {
	if sessionID == "" {
		return ErrInvalidSession
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	if err := s.client.RPush(ctx, historyKey(sessionID), data).Err(); err != nil {
		return fmt.Errorf("failed to append history for session %s: %w", sessionID, err)
	}

	return nil
}

// History reads the session's full history list in stored order.
func (s *RedisStore) History(ctx context.Context, sessionID string) ([]eval.HistoryEntry, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	raw, err := s.client.LRange(ctx, historyKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history for session %s: %w", sessionID, err)
	}

	entries := make([]eval.HistoryEntry, 0, len(raw))
	for i, item := range raw {
		var entry eval.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func profileKey(sessionID string) string {
	return "homebench:session:" + sessionID + ":profile"
}

func historyKey(sessionID string) string {
	return "homebench:session:" + sessionID + ":history"
}
