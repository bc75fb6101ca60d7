package assistant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"homeshow/models"
)

const sessionPrefix = "call:session:"

// SessionStore persists conversation history between turns of a call.
type SessionStore interface {
	Get(ctx context.Context, callID string) (*models.CallSession, error)
	Set(ctx context.Context, callID string, session *models.CallSession) error
	Clear(ctx context.Context, callID string) error
}

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, callID string) (*models.CallSession, error) {
	key := sessionPrefix + callID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.CallSession{CallID: callID}, nil
	}
	if err != nil {
		return nil, err
	}
	var session models.CallSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, callID string, session *models.CallSession) error {
	key := sessionPrefix + callID
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, callID string) error {
	key := sessionPrefix + callID
	return s.client.Del(ctx, key).Err()
}
