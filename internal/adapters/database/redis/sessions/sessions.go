package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/internal/domain/entity"
	"github.com/redis/go-redis/v9"
)

type Storage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStorage(client *redis.Client, ttl time.Duration) *Storage {
	return &Storage{
		redis: client,
		ttl:   ttl,
	}
}

func key(userID int64) string {
	return fmt.Sprintf("session:%d", userID)
}

// Get returns the current session or errorz.ErrNoSession.
func (s *Storage) Get(ctx context.Context, userID int64) (entity.Session, error) {
	var session entity.Session
	data, err := s.redis.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session, errorz.ErrNoSession
		}
		return session, err
	}
	if err = json.Unmarshal(data, &session); err != nil {
		return session, fmt.Errorf("%w: %v", errorz.ErrInvalidState, err)
	}
	return session, nil
}

func (s *Storage) Set(ctx context.Context, userID int64, session entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, key(userID), data, s.ttl).Err()
}

func (s *Storage) Clear(ctx context.Context, userID int64) error {
	return s.redis.Del(ctx, key(userID)).Err()
}
