package service

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/internal/domain/entity"
	"github.com/Badsnus/qrage/internal/domain/utils/validator"
	qr "github.com/Badsnus/qrage/pkg/qrcode"
)

type preferencesStorage interface {
	Get(ctx context.Context, userID int64) (entity.Preferences, bool, error)
	Set(ctx context.Context, userID int64, prefs entity.Preferences) error
	Clear(ctx context.Context, userID int64) error
}

// StyleService keeps per-user styles and applies the contrast auto-adjust
// when colors change.
type StyleService struct {
	storage preferencesStorage
}

func NewStyleService(storage preferencesStorage) *StyleService {
	return &StyleService{storage: storage}
}

// Normalize returns a scannable color pair. Identical colors become black
// on white; otherwise the background is flipped to the opposite of the
// foreground.
func Normalize(st qr.Style) (qr.Style, bool) {
	if qr.ContrastOK(st.Foreground, st.Background) {
		return st, false
	}
	if st.Foreground == st.Background {
		st.Foreground, st.Background = qr.Black, qr.White
		return st, true
	}
	st.Background = qr.Opposite(st.Foreground)
	if !qr.ContrastOK(st.Foreground, st.Background) {
		st.Foreground, st.Background = qr.Black, qr.White
	}
	return st, true
}

// SetForeground applies fg, flipping the background if the pair stops scanning.
func SetForeground(st qr.Style, fg color.RGBA) (qr.Style, bool) {
	st.Foreground = fg
	return Normalize(st)
}

// SetBackground applies bg, flipping the foreground if the pair stops scanning.
func SetBackground(st qr.Style, bg color.RGBA) (qr.Style, bool) {
	st.Background = bg
	if qr.ContrastOK(st.Foreground, st.Background) {
		return st, false
	}
	if st.Foreground == st.Background {
		st.Foreground, st.Background = qr.Black, qr.White
		return st, true
	}
	st.Foreground = qr.Opposite(bg)
	if !qr.ContrastOK(st.Foreground, st.Background) {
		st.Foreground, st.Background = qr.Black, qr.White
	}
	return st, true
}

// StyleFromPreferences converts stored preferences. The background image
// is not part of the result; it is fetched by file id at the edge.
func StyleFromPreferences(p entity.Preferences) (qr.Style, error) {
	st := qr.Default
	st.Title = p.Title

	var err error
	if p.Foreground != "" {
		if st.Foreground, err = qr.ParseHexColor(p.Foreground); err != nil {
			return qr.Style{}, fmt.Errorf("%w: %v", errorz.ErrInvalidState, err)
		}
	}
	if p.Background != "" {
		if st.Background, err = qr.ParseHexColor(p.Background); err != nil {
			return qr.Style{}, fmt.Errorf("%w: %v", errorz.ErrInvalidState, err)
		}
	}
	if p.ErrorCorrection != "" {
		if st.ErrorCorrection, err = qr.ParseLevel(p.ErrorCorrection); err != nil {
			return qr.Style{}, fmt.Errorf("%w: %v", errorz.ErrInvalidState, err)
		}
	}
	return st, nil
}

func preferencesFromStyle(st qr.Style, backgroundFileID string) entity.Preferences {
	return entity.Preferences{
		Title:            st.Title,
		Foreground:       qr.Hex(st.Foreground),
		Background:       qr.Hex(st.Background),
		ErrorCorrection:  st.ErrorCorrection.String(),
		BackgroundFileID: backgroundFileID,
	}
}

// Get returns the user's preferences, defaults when nothing is stored.
func (s *StyleService) Get(ctx context.Context, userID int64) (entity.Preferences, error) {
	prefs, found, err := s.storage.Get(ctx, userID)
	if err != nil {
		return entity.Preferences{}, err
	}
	if !found {
		return preferencesFromStyle(qr.Default, ""), nil
	}
	return prefs, nil
}

func (s *StyleService) update(ctx context.Context, userID int64, fn func(st qr.Style, fileID string) (qr.Style, string, bool, error)) (entity.Preferences, bool, error) {
	prefs, err := s.Get(ctx, userID)
	if err != nil {
		return prefs, false, err
	}
	st, err := StyleFromPreferences(prefs)
	if err != nil {
		return prefs, false, err
	}

	st, fileID, adjusted, err := fn(st, prefs.BackgroundFileID)
	if err != nil {
		return prefs, false, err
	}

	prefs = preferencesFromStyle(st, fileID)
	if err = s.storage.Set(ctx, userID, prefs); err != nil {
		return prefs, false, err
	}
	return prefs, adjusted, nil
}

// SetForeground stores a new foreground color. adjusted reports whether the
// background was changed to keep the code scannable.
func (s *StyleService) SetForeground(ctx context.Context, userID int64, hex string) (prefs entity.Preferences, adjusted bool, err error) {
	c, err := qr.ParseHexColor(hex)
	if err != nil {
		return prefs, false, fmt.Errorf("%w: %v", errorz.ErrInvalidInput, err)
	}
	return s.update(ctx, userID, func(st qr.Style, fileID string) (qr.Style, string, bool, error) {
		st, adjusted := SetForeground(st, c)
		return st, fileID, adjusted, nil
	})
}

// SetBackground stores a new background color. adjusted reports whether the
// foreground was changed to keep the code scannable.
func (s *StyleService) SetBackground(ctx context.Context, userID int64, hex string) (prefs entity.Preferences, adjusted bool, err error) {
	c, err := qr.ParseHexColor(hex)
	if err != nil {
		return prefs, false, fmt.Errorf("%w: %v", errorz.ErrInvalidInput, err)
	}
	return s.update(ctx, userID, func(st qr.Style, fileID string) (qr.Style, string, bool, error) {
		st, adjusted := SetBackground(st, c)
		return st, fileID, adjusted, nil
	})
}

func (s *StyleService) SetTitle(ctx context.Context, userID int64, title string) (entity.Preferences, error) {
	title = strings.TrimSpace(title)
	if !validator.Title(title, nil) {
		return entity.Preferences{}, fmt.Errorf("%w: title is longer than %d characters", errorz.ErrInvalidInput, validator.MaxTitleLength)
	}
	prefs, _, err := s.update(ctx, userID, func(st qr.Style, fileID string) (qr.Style, string, bool, error) {
		st.Title = title
		return st, fileID, false, nil
	})
	return prefs, err
}

func (s *StyleService) SetErrorCorrection(ctx context.Context, userID int64, level string) (entity.Preferences, error) {
	l, err := qr.ParseLevel(level)
	if err != nil {
		return entity.Preferences{}, fmt.Errorf("%w: %v", errorz.ErrInvalidInput, err)
	}
	prefs, _, err := s.update(ctx, userID, func(st qr.Style, fileID string) (qr.Style, string, bool, error) {
		st.ErrorCorrection = l
		return st, fileID, false, nil
	})
	return prefs, err
}

// SetBackgroundImage remembers the file id of the background photo; an
// empty id removes it.
func (s *StyleService) SetBackgroundImage(ctx context.Context, userID int64, fileID string) (entity.Preferences, error) {
	prefs, _, err := s.update(ctx, userID, func(st qr.Style, _ string) (qr.Style, string, bool, error) {
		return st, fileID, false, nil
	})
	return prefs, err
}

// ApplyPreset replaces colors and level with a named preset, keeping the
// title and background image.
func (s *StyleService) ApplyPreset(ctx context.Context, userID int64, name string) (entity.Preferences, error) {
	preset, ok := qr.Presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return entity.Preferences{}, fmt.Errorf("%w: unknown preset %q", errorz.ErrInvalidInput, name)
	}
	prefs, _, err := s.update(ctx, userID, func(st qr.Style, fileID string) (qr.Style, string, bool, error) {
		preset.Title = st.Title
		return preset, fileID, false, nil
	})
	return prefs, err
}

func (s *StyleService) Reset(ctx context.Context, userID int64) error {
	return s.storage.Clear(ctx, userID)
}
