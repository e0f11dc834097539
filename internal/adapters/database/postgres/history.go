package postgres

import (
	"context"
	"time"

	"github.com/Badsnus/qrage/internal/domain/entity"
	"gorm.io/gorm"
)

type HistoryStorage struct {
	db *gorm.DB
}

func NewHistoryStorage(db *gorm.DB) *HistoryStorage {
	return &HistoryStorage{
		db: db,
	}
}

// Append stores a new history entry.
func (s *HistoryStorage) Append(ctx context.Context, entry *entity.HistoryEntry) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

// Get returns a user's entry by id.
func (s *HistoryStorage) Get(ctx context.Context, userID int64, id string) (*entity.HistoryEntry, error) {
	var entry entity.HistoryEntry
	err := s.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&entry).Error
	return &entry, err
}

// List returns a user's entries, newest first.
func (s *HistoryStorage) List(ctx context.Context, userID int64, limit int) ([]entity.HistoryEntry, error) {
	var entries []entity.HistoryEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// Remove deletes one entry and reports whether it existed.
func (s *HistoryStorage) Remove(ctx context.Context, userID int64, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&entity.HistoryEntry{})
	return res.RowsAffected > 0, res.Error
}

// Clear deletes every entry of a user.
func (s *HistoryStorage) Clear(ctx context.Context, userID int64) (int64, error) {
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.HistoryEntry{})
	return res.RowsAffected, res.Error
}

// AddExport appends format to the entry's export log.
func (s *HistoryStorage) AddExport(ctx context.Context, userID int64, id, format string) error {
	return s.db.WithContext(ctx).
		Model(&entity.HistoryEntry{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("exports", gorm.Expr("array_append(exports, ?)", format)).Error
}

// Prune deletes entries older than before.
func (s *HistoryStorage) Prune(ctx context.Context, before time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Where("timestamp < ?", before).Delete(&entity.HistoryEntry{})
	return res.RowsAffected, res.Error
}
