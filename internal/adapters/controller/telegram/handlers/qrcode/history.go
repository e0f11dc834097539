package qrcode

import (
	"context"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/Badsnus/qrage/internal/domain/entity"
)

func (h Handler) history(c tele.Context) error {
	entries, err := h.historyService.List(context.Background(), c.Sender().ID)
	if err != nil {
		return h.fail(c, "listing history", err)
	}
	if len(entries) == 0 {
		return c.Send(h.layout.Text(c, "history_empty"))
	}
	lines := historyLines(entries)
	return c.Send(h.layout.Text(c, "history", lines), historyMarkup(h.layout, c, lines))
}

// historyOpen makes a past entry the current code again.
func (h Handler) historyOpen(c tele.Context) error {
	ctx := context.Background()
	userID := c.Sender().ID

	entry, err := h.historyService.Get(ctx, userID, c.Data())
	if err != nil {
		return h.fail(c, "opening history entry", err)
	}
	err = h.sessions.Set(ctx, userID, entity.Session{
		EntryID:  entry.ID,
		Type:     entry.Type,
		Payload:  entry.Payload,
		Platform: entry.Platform,
	})
	if err != nil {
		return h.fail(c, "saving session", err)
	}
	return h.sendPreview(c)
}

func (h Handler) historyForget(c tele.Context) error {
	if err := h.remove(c, c.Data()); err != nil {
		return h.fail(c, "removing history entry", err)
	}
	return c.Send(h.layout.Text(c, "history_forgotten"))
}

func (h Handler) forget(c tele.Context) error {
	if err := h.remove(c, strings.TrimSpace(c.Message().Payload)); err != nil {
		return h.fail(c, "removing history entry", err)
	}
	return c.Send(h.layout.Text(c, "history_forgotten"))
}

// remove deletes an entry and drops the session if it pointed at it.
func (h Handler) remove(c tele.Context, id string) error {
	ctx := context.Background()
	userID := c.Sender().ID

	if err := h.historyService.Remove(ctx, userID, id); err != nil {
		return err
	}
	if session, err := h.sessions.Get(ctx, userID); err == nil && session.EntryID == id {
		return h.sessions.Clear(ctx, userID)
	}
	return nil
}

func (h Handler) clear(c tele.Context) error {
	ctx := context.Background()
	userID := c.Sender().ID

	n, err := h.historyService.Clear(ctx, userID)
	if err != nil {
		return h.fail(c, "clearing history", err)
	}
	if err = h.sessions.Clear(ctx, userID); err != nil {
		return h.fail(c, "clearing session", err)
	}
	h.logger.Infof("(user: %d) history cleared (%d entries)", userID, n)
	return c.Send(h.layout.Text(c, "history_cleared", n))
}
