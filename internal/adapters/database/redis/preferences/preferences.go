package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Badsnus/qrage/internal/domain/entity"
	"github.com/redis/go-redis/v9"
)

type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

func key(userID int64) string {
	return fmt.Sprintf("prefs:%d", userID)
}

// Get returns the stored preferences, or found=false when the user has none.
func (s *Storage) Get(ctx context.Context, userID int64) (prefs entity.Preferences, found bool, err error) {
	data, err := s.redis.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return prefs, false, nil
		}
		return prefs, false, err
	}
	if err = json.Unmarshal(data, &prefs); err != nil {
		return prefs, false, fmt.Errorf("decode preferences: %w", err)
	}
	return prefs, true, nil
}

func (s *Storage) Set(ctx context.Context, userID int64, prefs entity.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, key(userID), data, 0).Err()
}

func (s *Storage) Clear(ctx context.Context, userID int64) error {
	return s.redis.Del(ctx, key(userID)).Err()
}
