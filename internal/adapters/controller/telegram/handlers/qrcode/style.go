package qrcode

import (
	"context"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/internal/domain/entity"
)

func (h Handler) style(c tele.Context) error {
	prefs, err := h.styleService.Get(context.Background(), c.Sender().ID)
	if err != nil {
		return h.fail(c, "getting style", err)
	}
	return c.Send(h.layout.Text(c, "style", prefs), h.layout.Markup(c, "preset"))
}

// afterStyle confirms a style change and refreshes the preview when a code
// is already in progress.
func (h Handler) afterStyle(c tele.Context, prefs entity.Preferences, wasAdjusted bool) error {
	text := h.layout.Text(c, "style", prefs)
	if wasAdjusted {
		text += "\n\n" + h.layout.Text(c, "colors_adjusted")
	}
	if err := c.Send(text); err != nil {
		return err
	}
	if _, err := h.sessions.Get(context.Background(), c.Sender().ID); err != nil {
		return nil
	}
	return h.sendPreview(c)
}

func (h Handler) title(c tele.Context) error {
	title := strings.TrimSpace(c.Message().Payload)
	if title == "" {
		var ok bool
		if title, ok = h.ask(c, h.layout.Text(c, "ask_title"), func(string) error { return nil }); !ok {
			return nil
		}
	}
	if title == "-" {
		title = ""
	}

	prefs, err := h.styleService.SetTitle(context.Background(), c.Sender().ID, title)
	if err != nil {
		return h.fail(c, "setting title", err)
	}
	return h.afterStyle(c, prefs, false)
}

func (h Handler) foreground(c tele.Context) error {
	prefs, wasAdjusted, err := h.styleService.SetForeground(context.Background(), c.Sender().ID, c.Message().Payload)
	if err != nil {
		return h.fail(c, "setting foreground", err)
	}
	return h.afterStyle(c, prefs, wasAdjusted)
}

func (h Handler) background(c tele.Context) error {
	prefs, wasAdjusted, err := h.styleService.SetBackground(context.Background(), c.Sender().ID, c.Message().Payload)
	if err != nil {
		return h.fail(c, "setting background", err)
	}
	return h.afterStyle(c, prefs, wasAdjusted)
}

func (h Handler) errorCorrection(c tele.Context) error {
	prefs, err := h.styleService.SetErrorCorrection(context.Background(), c.Sender().ID, c.Message().Payload)
	if err != nil {
		return h.fail(c, "setting error correction", err)
	}
	return h.afterStyle(c, prefs, false)
}

func (h Handler) preset(c tele.Context) error {
	name := c.Message().Payload
	if name == "" {
		return c.Send(h.layout.Text(c, "ask_preset"), h.layout.Markup(c, "preset"))
	}
	return h.applyPreset(c, name)
}

func (h Handler) presetPicked(c tele.Context) error {
	return h.applyPreset(c, c.Data())
}

func (h Handler) applyPreset(c tele.Context, name string) error {
	prefs, err := h.styleService.ApplyPreset(context.Background(), c.Sender().ID, name)
	if err != nil {
		return h.fail(c, "applying preset", err)
	}
	h.logger.Infof("(user: %d) preset %s applied", c.Sender().ID, name)
	return h.afterStyle(c, prefs, false)
}

// backgroundImage keeps the largest size of the sent photo as the background.
func (h Handler) backgroundImage(c tele.Context) error {
	photo := c.Message().Photo
	if photo == nil {
		return h.fail(c, "setting background image", fmt.Errorf("%w: send the image as a photo", errorz.ErrInvalidInput))
	}

	prefs, err := h.styleService.SetBackgroundImage(context.Background(), c.Sender().ID, photo.FileID)
	if err != nil {
		return h.fail(c, "setting background image", err)
	}
	h.logger.Infof("(user: %d) background image set", c.Sender().ID)
	if err = c.Send(h.layout.Text(c, "bg_set")); err != nil {
		return err
	}
	return h.afterStyle(c, prefs, false)
}

func (h Handler) removeBackgroundImage(c tele.Context) error {
	prefs, err := h.styleService.SetBackgroundImage(context.Background(), c.Sender().ID, "")
	if err != nil {
		return h.fail(c, "removing background image", err)
	}
	if err = c.Send(h.layout.Text(c, "bg_removed")); err != nil {
		return err
	}
	return h.afterStyle(c, prefs, false)
}

func (h Handler) reset(c tele.Context) error {
	if err := h.styleService.Reset(context.Background(), c.Sender().ID); err != nil {
		return h.fail(c, "resetting style", err)
	}
	return c.Send(h.layout.Text(c, "style_reset"))
}
