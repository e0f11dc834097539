package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/internal/domain/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HistoryStorage interface {
	Append(ctx context.Context, entry *entity.HistoryEntry) error
	Get(ctx context.Context, userID int64, id string) (*entity.HistoryEntry, error)
	List(ctx context.Context, userID int64, limit int) ([]entity.HistoryEntry, error)
	Remove(ctx context.Context, userID int64, id string) (bool, error)
	Clear(ctx context.Context, userID int64) (int64, error)
	AddExport(ctx context.Context, userID int64, id, format string) error
}

type HistoryService struct {
	storage HistoryStorage
	limit   int
	now     func() time.Time
}

func NewHistoryService(storage HistoryStorage, limit int) *HistoryService {
	if limit <= 0 {
		limit = 20
	}
	return &HistoryService{storage: storage, limit: limit, now: time.Now}
}

// Record appends a new entry for a freshly generated payload.
func (s *HistoryService) Record(ctx context.Context, userID int64, typ entity.ContentType, payload, platform string) (*entity.HistoryEntry, error) {
	entry := &entity.HistoryEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      typ,
		Payload:   payload,
		Platform:  platform,
		Timestamp: s.now(),
	}
	if err := s.storage.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the newest entries first, at most the configured limit.
func (s *HistoryService) List(ctx context.Context, userID int64) ([]entity.HistoryEntry, error) {
	return s.storage.List(ctx, userID, s.limit)
}

func (s *HistoryService) Get(ctx context.Context, userID int64, id string) (*entity.HistoryEntry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: bad entry id", errorz.ErrInvalidInput)
	}
	entry, err := s.storage.Get(ctx, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrNotFound
	}
	return entry, err
}

func (s *HistoryService) Remove(ctx context.Context, userID int64, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: bad entry id", errorz.ErrInvalidInput)
	}
	removed, err := s.storage.Remove(ctx, userID, id)
	if err != nil {
		return err
	}
	if !removed {
		return errorz.ErrNotFound
	}
	return nil
}

func (s *HistoryService) Clear(ctx context.Context, userID int64) (int64, error) {
	return s.storage.Clear(ctx, userID)
}

// MarkExported records that the entry was exported in format.
func (s *HistoryService) MarkExported(ctx context.Context, userID int64, id string, format Format) error {
	if id == "" {
		return nil
	}
	return s.storage.AddExport(ctx, userID, id, string(format))
}

type pruner interface {
	Prune(ctx context.Context, before time.Time) (int64, error)
}

// Prune drops entries older than retention. Storages without pruning
// support keep everything.
func (s *HistoryService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	p, ok := s.storage.(pruner)
	if !ok || retention <= 0 {
		return 0, nil
	}
	return p.Prune(ctx, s.now().Add(-retention))
}
