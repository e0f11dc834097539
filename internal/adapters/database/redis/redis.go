package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/Badsnus/qrage/internal/adapters/database/redis/preferences"
	"github.com/Badsnus/qrage/internal/adapters/database/redis/sessions"
	"github.com/redis/go-redis/v9"
)

type Client struct {
	Preferences *preferences.Storage
	Sessions    *sessions.Storage
}

type Options struct {
	Host       string
	Port       string
	Password   string
	SessionTTL time.Duration
}

func New(opts Options) (*Client, error) {
	preferencesStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := preferencesStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping preferences storage: %w", err)
	}

	sessionStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       1,
	})
	if err := sessionStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping session storage: %w", err)
	}

	return &Client{
		Preferences: preferences.NewStorage(preferencesStorage),
		Sessions:    sessions.NewStorage(sessionStorage, opts.SessionTTL),
	}, nil
}
