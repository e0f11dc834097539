package admin

import (
	"context"

	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"

	"github.com/Badsnus/qrage/cmd/bot"
	"github.com/Badsnus/qrage/internal/adapters/database/postgres"
	"github.com/Badsnus/qrage/internal/domain/service"
	"github.com/Badsnus/qrage/pkg/logger/types"
)

type adminUserService interface {
	Count(ctx context.Context) (int64, error)
}

type Handler struct {
	layout *layout.Layout
	logger *types.Logger

	adminUserService adminUserService
}

func New(b *bot.Bot) *Handler {
	return &Handler{
		layout:           b.Layout,
		logger:           b.Logger,
		adminUserService: service.NewUserService(postgres.NewUserStorage(b.DB)),
	}
}

func (h Handler) stats(c tele.Context) error {
	h.logger.Infof("(user: %d) stats request", c.Sender().ID)

	users, err := h.adminUserService.Count(context.Background())
	if err != nil {
		h.logger.Errorf("(user: %d) error while counting users: %v", c.Sender().ID, err)
		return c.Send(h.layout.Text(c, "stats_failed"))
	}
	return c.Send(h.layout.Text(c, "stats", users))
}

func (h Handler) AdminSetup(group *tele.Group) {
	group.Handle("/stats", h.stats)
}
