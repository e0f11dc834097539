package qrcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	tele "gopkg.in/telebot.v3"
	"gorm.io/gorm"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/internal/domain/service"
	"github.com/Badsnus/qrage/internal/domain/utils/validator"
	qr "github.com/Badsnus/qrage/pkg/qrcode"
)

func (h Handler) export(c tele.Context) error {
	format, err := service.ParseFormat(c.Message().Payload)
	if err != nil {
		return h.fail(c, "parsing format", err)
	}
	return h.sendExport(c, format)
}

func (h Handler) exportPicked(c tele.Context) error {
	format, err := service.ParseFormat(c.Data())
	if err != nil {
		return h.fail(c, "parsing format", err)
	}
	return h.sendExport(c, format)
}

// render exports the current code and records the format in history.
func (h Handler) render(c tele.Context, format service.Format) (*qr.Artifact, error) {
	ctx := context.Background()
	userID := c.Sender().ID

	req, notices, err := h.request(ctx, c)
	if err != nil {
		return nil, err
	}
	a, err := h.exportService.Export(ctx, format, req)
	if err != nil {
		return nil, err
	}
	a.Notices = append(notices, a.Notices...)

	session, err := h.sessions.Get(ctx, userID)
	if err == nil {
		if err = h.historyService.MarkExported(ctx, userID, session.EntryID, format); err != nil {
			h.logger.Warnf("(user: %d) failed to record %s export: %v", userID, format, err)
		}
	}
	h.logger.Infof("(user: %d) %s export sent (%d bytes)", userID, format, len(a.Data))
	return a, nil
}

func (h Handler) sendExport(c tele.Context, format service.Format) error {
	a, err := h.render(c, format)
	if err != nil {
		return h.fail(c, fmt.Sprintf("exporting %s", format), err)
	}

	return c.Send(&tele.Document{
		File:     tele.FromReader(bytes.NewReader(a.Data)),
		FileName: a.Filename,
		MIME:     a.MIME,
		Caption:  h.layout.Text(c, "export_caption", a.Notices),
	})
}

// email sends an export (PDF unless a format follows the address) to the
// given or stored address.
func (h Handler) email(c tele.Context) error {
	if h.mailer == nil {
		return c.Send(h.layout.Text(c, "mail_disabled"))
	}
	ctx := context.Background()
	userID := c.Sender().ID

	var address string
	format := service.FormatPDF
	args := c.Args()
	if len(args) > 0 {
		address = args[0]
	}
	if len(args) > 1 {
		var err error
		if format, err = service.ParseFormat(args[1]); err != nil {
			return h.fail(c, "parsing format", err)
		}
	}
	if address == "" {
		user, err := h.userService.Get(ctx, userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return h.fail(c, "getting user", err)
		}
		if user != nil {
			address = user.Email
		}
	}
	if address == "" {
		var ok bool
		if address, ok = h.ask(c, h.layout.Text(c, "ask_email"), func(s string) error {
			if !validator.Email(s, nil) {
				return fmt.Errorf("%w: invalid e-mail address", errorz.ErrInvalidInput)
			}
			return nil
		}); !ok {
			return nil
		}
	}

	if _, err := h.userService.SetEmail(ctx, userID, address); err != nil {
		return h.fail(c, "saving email", err)
	}

	a, err := h.render(c, format)
	if err != nil {
		return h.fail(c, fmt.Sprintf("exporting %s", format), err)
	}
	if err = h.mailer.SendArtifact(address, a); err != nil {
		return h.fail(c, "sending email", err)
	}
	h.logger.Infof("(user: %d) export mailed", userID)
	return c.Send(h.layout.Text(c, "mail_sent", struct {
		Filename string
		Address  string
	}{
		Filename: a.Filename,
		Address:  address,
	}))
}
