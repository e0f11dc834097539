package qrcode

import (
	"context"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/internal/domain/entity"
	"github.com/Badsnus/qrage/internal/domain/utils/formatter"
	"github.com/Badsnus/qrage/internal/domain/utils/validator"
	"github.com/Badsnus/qrage/pkg/platform"
)

func (h Handler) url(c tele.Context) error {
	h.logger.Infof("(user: %d) generate url code", c.Sender().ID)

	raw := strings.TrimSpace(c.Message().Payload)
	if raw == "" {
		var ok bool
		raw, ok = h.ask(c, h.layout.Text(c, "ask_url"), func(s string) error {
			_, err := formatter.URL(s)
			return err
		})
		if !ok {
			return nil
		}
	}

	payload, err := formatter.URL(raw)
	if err != nil {
		return h.fail(c, "formatting url", err)
	}
	return h.generate(c, entity.ContentURL, payload, "")
}

func (h Handler) wifi(c tele.Context) error {
	h.logger.Infof("(user: %d) generate wifi code", c.Sender().ID)

	ssid, ok := h.ask(c, h.layout.Text(c, "ask_ssid"), func(s string) error {
		if !validator.SSID(s, nil) {
			return fmt.Errorf("%w: the network name must be 1 to %d bytes", errorz.ErrInvalidInput, validator.MaxSSIDLength)
		}
		return nil
	})
	if !ok {
		return nil
	}

	var security formatter.Security
	if _, ok = h.ask(c, h.layout.Text(c, "ask_security"), func(s string) error {
		var err error
		security, err = formatter.ParseSecurity(s)
		return err
	}); !ok {
		return nil
	}

	var password string
	if security != formatter.NoPass {
		if password, ok = h.ask(c, h.layout.Text(c, "ask_password"), func(s string) error {
			if s == "" {
				return fmt.Errorf("%w: password is required for %s", errorz.ErrInvalidInput, security)
			}
			return nil
		}); !ok {
			return nil
		}
	}

	var hidden bool
	if _, ok = h.ask(c, h.layout.Text(c, "ask_hidden"), func(s string) error {
		switch strings.ToLower(s) {
		case "yes", "y":
			hidden = true
		case "no", "n":
			hidden = false
		default:
			return fmt.Errorf("%w: answer yes or no", errorz.ErrInvalidInput)
		}
		return nil
	}); !ok {
		return nil
	}

	payload, err := formatter.WiFiPayload(formatter.WiFi{
		SSID:     ssid,
		Password: password,
		Security: security,
		Hidden:   hidden,
	})
	if err != nil {
		return h.fail(c, "formatting wifi", err)
	}
	return h.generate(c, entity.ContentWiFi, payload, "")
}

func (h Handler) social(c tele.Context) error {
	h.logger.Infof("(user: %d) generate social code", c.Sender().ID)

	args := c.Args()
	switch len(args) {
	case 0:
		return c.Send(h.layout.Text(c, "ask_platform"), platformMarkup(h.layout, c))
	case 1:
		d, ok := platform.Lookup(args[0])
		if !ok {
			return c.Send(platformsText(h.layout, c))
		}
		return h.askHandle(c, d)
	}
	return h.socialFor(c, args[0], strings.Join(args[1:], " "))
}

func (h Handler) socialPicked(c tele.Context) error {
	d, ok := platform.Lookup(c.Data())
	if !ok {
		return c.Send(platformsText(h.layout, c))
	}
	_ = c.Delete()
	return h.askHandle(c, d)
}

func (h Handler) askHandle(c tele.Context, d *platform.Descriptor) error {
	prompt := h.layout.Text(c, "ask_handle", d)
	if d.Key == platform.Custom {
		prompt = h.layout.Text(c, "ask_url")
	}
	handle, ok := h.ask(c, prompt, func(s string) error {
		if d.Key != platform.Custom && !validator.Handle(s, nil) {
			return fmt.Errorf("%w: send the handle without spaces", errorz.ErrInvalidInput)
		}
		_, _, err := formatter.Social(string(d.Key), s)
		return err
	})
	if !ok {
		return nil
	}
	return h.socialFor(c, string(d.Key), handle)
}

func (h Handler) socialFor(c tele.Context, key, handle string) error {
	payload, d, err := formatter.Social(key, handle)
	if err != nil {
		return h.fail(c, "formatting social link", err)
	}
	return h.generate(c, entity.ContentSocial, payload, string(d.Key))
}

func (h Handler) platforms(c tele.Context) error {
	return c.Send(platformsText(h.layout, c))
}

// generate records a new payload, makes it the current code and previews it.
func (h Handler) generate(c tele.Context, typ entity.ContentType, payload, platformKey string) error {
	ctx := context.Background()
	userID := c.Sender().ID

	entry, err := h.historyService.Record(ctx, userID, typ, payload, platformKey)
	if err != nil {
		return h.fail(c, "recording history", err)
	}
	err = h.sessions.Set(ctx, userID, entity.Session{
		EntryID:  entry.ID,
		Type:     typ,
		Payload:  payload,
		Platform: platformKey,
	})
	if err != nil {
		return h.fail(c, "saving session", err)
	}
	h.logger.Infof("(user: %d) %s code generated (entry: %s)", userID, typ, entry.ID)

	return h.sendPreview(c)
}

func (h Handler) preview(c tele.Context) error {
	return h.sendPreview(c)
}
