package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryHistory struct {
	entries []entity.HistoryEntry
}

func (m *memoryHistory) Append(_ context.Context, entry *entity.HistoryEntry) error {
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memoryHistory) Get(_ context.Context, userID int64, id string) (*entity.HistoryEntry, error) {
	for i := range m.entries {
		if m.entries[i].UserID == userID && m.entries[i].ID == id {
			return &m.entries[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryHistory) List(_ context.Context, userID int64, limit int) ([]entity.HistoryEntry, error) {
	var out []entity.HistoryEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryHistory) Remove(_ context.Context, userID int64, id string) (bool, error) {
	for i, e := range m.entries {
		if e.UserID == userID && e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryHistory) Clear(_ context.Context, userID int64) (int64, error) {
	var kept []entity.HistoryEntry
	for _, e := range m.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	n := int64(len(m.entries) - len(kept))
	m.entries = kept
	return n, nil
}

func (m *memoryHistory) AddExport(_ context.Context, userID int64, id, format string) error {
	for i := range m.entries {
		if m.entries[i].UserID == userID && m.entries[i].ID == id {
			m.entries[i].Exports = append(m.entries[i].Exports, format)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func newTestHistory(limit int) (*HistoryService, *memoryHistory) {
	store := &memoryHistory{}
	s := NewHistoryService(store, limit)
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return s, store
}

func TestHistoryRecordAndList(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestHistory(2)

	first, err := s.Record(ctx, 1, entity.ContentURL, "https://a.example", "")
	require.NoError(t, err)
	_, err = uuid.Parse(first.ID)
	require.NoError(t, err)

	_, err = s.Record(ctx, 1, entity.ContentSocial, "https://github.com/gopher", "github")
	require.NoError(t, err)
	third, err := s.Record(ctx, 1, entity.ContentWiFi, "WIFI:T:nopass;S:Cafe;;", "")
	require.NoError(t, err)
	_, err = s.Record(ctx, 2, entity.ContentURL, "https://other.example", "")
	require.NoError(t, err)

	list, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, third.ID, list[0].ID)
}

func TestHistoryRemove(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestHistory(10)

	entry, err := s.Record(ctx, 1, entity.ContentURL, "https://a.example", "")
	require.NoError(t, err)

	assert.ErrorIs(t, s.Remove(ctx, 2, entry.ID), errorz.ErrNotFound)
	assert.ErrorIs(t, s.Remove(ctx, 1, "nope"), errorz.ErrInvalidInput)
	require.NoError(t, s.Remove(ctx, 1, entry.ID))

	_, err = s.Get(ctx, 1, entry.ID)
	assert.ErrorIs(t, err, errorz.ErrNotFound)
}

func TestHistoryClearAndExports(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestHistory(10)

	entry, err := s.Record(ctx, 1, entity.ContentURL, "https://a.example", "")
	require.NoError(t, err)
	require.NoError(t, s.MarkExported(ctx, 1, entry.ID, FormatSVG))
	require.NoError(t, s.MarkExported(ctx, 1, entry.ID, FormatPDF))
	require.NoError(t, s.MarkExported(ctx, 1, "", FormatPNG))

	got, err := s.Get(ctx, 1, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"svg", "pdf"}, []string(got.Exports))

	n, err := s.Clear(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func (m *memoryHistory) Prune(_ context.Context, before time.Time) (int64, error) {
	var kept []entity.HistoryEntry
	for _, e := range m.entries {
		if !e.Timestamp.Before(before) {
			kept = append(kept, e)
		}
	}
	n := int64(len(m.entries) - len(kept))
	m.entries = kept
	return n, nil
}

func TestHistoryPrune(t *testing.T) {
	ctx := context.Background()
	s, store := newTestHistory(10)

	for i := 0; i < 3; i++ {
		_, err := s.Record(ctx, 1, entity.ContentURL, "https://a.example", "")
		require.NoError(t, err)
	}

	// Entries land at +1m, +2m and +3m; Prune reads +4m.
	n, err := s.Prune(ctx, 90*time.Second)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.Len(t, store.entries, 1)

	n, err = s.Prune(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, n)
}
