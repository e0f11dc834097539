package start

import (
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"

	"github.com/Badsnus/qrage/cmd/bot"
	"github.com/Badsnus/qrage/internal/domain/utils"
	"github.com/Badsnus/qrage/pkg/logger/types"
)

type Handler struct {
	layout *layout.Layout
	logger *types.Logger
}

func New(b *bot.Bot) *Handler {
	return &Handler{
		layout: b.Layout,
		logger: b.Logger,
	}
}

func (h *Handler) Start(c tele.Context) error {
	h.logger.Infof("(user: %d) press start button", c.Sender().ID)

	name := c.Sender().FirstName
	if name == "" {
		name = c.Sender().Username
	}
	return c.Send(h.layout.Text(c, "help", struct {
		Name  string
		Admin bool
	}{
		Name:  name,
		Admin: utils.IsAdmin(c.Sender().ID),
	}))
}
