package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zemmendes/Lumera-App/internal/pkg"
	"github.com/zemmendes/Lumera-App/internal/repository"
)

const sessionKeyPrefix = "session:sid"

// SessionStore 登录态放 Redis，过期交给原生 TTL
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func key(sid string) string {
	return fmt.Sprintf("%s:%s", sessionKeyPrefix, sid)
}

func (s *SessionStore) Create(ctx context.Context, userID uint64) (string, error) {
	sid, err := pkg.NewSessionID()
	if err != nil {
		return "", err
	}
	value := strconv.FormatUint(userID, 10)
	if err := s.client.Set(ctx, key(sid), value, s.ttl).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

func (s *SessionStore) Get(ctx context.Context, sid string) (uint64, error) {
	value, err := s.client.Get(ctx, key(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, repository.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(value, 10, 64)
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, key(sid)).Err()
}

func (s *SessionStore) Close() error {
	return s.client.Close()
}
