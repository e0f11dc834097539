package service

import (
	"context"
	"image/color"
	"testing"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/internal/domain/entity"
	qr "github.com/Badsnus/qrage/pkg/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryPreferences struct {
	data map[int64]entity.Preferences
}

func newMemoryPreferences() *memoryPreferences {
	return &memoryPreferences{data: map[int64]entity.Preferences{}}
}

func (m *memoryPreferences) Get(_ context.Context, userID int64) (entity.Preferences, bool, error) {
	p, ok := m.data[userID]
	return p, ok, nil
}

func (m *memoryPreferences) Set(_ context.Context, userID int64, prefs entity.Preferences) error {
	m.data[userID] = prefs
	return nil
}

func (m *memoryPreferences) Clear(_ context.Context, userID int64) error {
	delete(m.data, userID)
	return nil
}

func TestNormalize(t *testing.T) {
	yellow := color.RGBA{R: 255, G: 230, B: 0, A: 255}
	navy := color.RGBA{R: 10, G: 20, B: 90, A: 255}

	tests := []struct {
		name     string
		fg, bg   color.RGBA
		wantFg   color.RGBA
		wantBg   color.RGBA
		adjusted bool
	}{
		{"scannable pair untouched", navy, qr.White, navy, qr.White, false},
		{"identical colors reset", yellow, yellow, qr.Black, qr.White, true},
		{"light on white flips background", yellow, qr.White, yellow, qr.Black, true},
		{"dark on black flips background", navy, qr.Black, navy, qr.White, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, adjusted := Normalize(qr.Style{Foreground: tt.fg, Background: tt.bg})
			assert.Equal(t, tt.adjusted, adjusted)
			assert.Equal(t, tt.wantFg, st.Foreground)
			assert.Equal(t, tt.wantBg, st.Background)
			assert.True(t, qr.ContrastOK(st.Foreground, st.Background))
		})
	}
}

func TestSetBackgroundFlipsForeground(t *testing.T) {
	st, adjusted := SetBackground(qr.Default, color.RGBA{R: 15, G: 15, B: 15, A: 255})
	assert.True(t, adjusted)
	assert.Equal(t, qr.White, st.Foreground)

	st, adjusted = SetBackground(qr.Default, color.RGBA{R: 250, G: 250, B: 200, A: 255})
	assert.False(t, adjusted)
	assert.Equal(t, qr.Black, st.Foreground)
}

func TestStyleServiceDefaults(t *testing.T) {
	s := NewStyleService(newMemoryPreferences())

	prefs, err := s.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "#000000", prefs.Foreground)
	assert.Equal(t, "#FFFFFF", prefs.Background)
	assert.Equal(t, "M", prefs.ErrorCorrection)
}

func TestStyleServiceUpdates(t *testing.T) {
	ctx := context.Background()
	store := newMemoryPreferences()
	s := NewStyleService(store)

	prefs, adjusted, err := s.SetForeground(ctx, 7, "#ffff00")
	require.NoError(t, err)
	assert.True(t, adjusted)
	assert.Equal(t, "#FFFF00", prefs.Foreground)
	assert.Equal(t, "#000000", prefs.Background)

	prefs, err = s.SetTitle(ctx, 7, "  Menu  ")
	require.NoError(t, err)
	assert.Equal(t, "Menu", prefs.Title)
	assert.Equal(t, "#FFFF00", prefs.Foreground)

	prefs, err = s.SetErrorCorrection(ctx, 7, "q")
	require.NoError(t, err)
	assert.Equal(t, "Q", prefs.ErrorCorrection)

	prefs, err = s.SetBackgroundImage(ctx, 7, "file-1")
	require.NoError(t, err)
	assert.Equal(t, "file-1", prefs.BackgroundFileID)

	prefs, err = s.ApplyPreset(ctx, 7, "Night")
	require.NoError(t, err)
	assert.Equal(t, "Menu", prefs.Title)
	assert.Equal(t, "file-1", prefs.BackgroundFileID)
	assert.Equal(t, qr.Hex(qr.Night.Foreground), prefs.Foreground)

	require.NoError(t, s.Reset(ctx, 7))
	assert.Empty(t, store.data)
}

func TestStyleServiceRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	s := NewStyleService(newMemoryPreferences())

	_, _, err := s.SetForeground(ctx, 1, "not-a-color")
	assert.ErrorIs(t, err, errorz.ErrInvalidInput)

	_, err = s.SetErrorCorrection(ctx, 1, "Z")
	assert.ErrorIs(t, err, errorz.ErrInvalidInput)

	_, err = s.SetTitle(ctx, 1, string(make([]rune, 51)))
	assert.ErrorIs(t, err, errorz.ErrInvalidInput)

	_, err = s.ApplyPreset(ctx, 1, "neon")
	assert.ErrorIs(t, err, errorz.ErrInvalidInput)
}

func TestStyleFromPreferencesBrokenState(t *testing.T) {
	_, err := StyleFromPreferences(entity.Preferences{Foreground: "#zzz"})
	assert.ErrorIs(t, err, errorz.ErrInvalidState)
}
