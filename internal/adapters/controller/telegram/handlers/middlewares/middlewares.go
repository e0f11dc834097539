package middlewares

import (
	"context"
	"strings"

	"github.com/nlypage/intele"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"

	"github.com/Badsnus/qrage/cmd/bot"
	"github.com/Badsnus/qrage/internal/adapters/database/postgres"
	"github.com/Badsnus/qrage/internal/domain/entity"
	"github.com/Badsnus/qrage/internal/domain/service"
	"github.com/Badsnus/qrage/pkg/logger/types"
)

type userService interface {
	Track(ctx context.Context, sender *tele.User) (*entity.User, error)
}

type Handler struct {
	layout      *layout.Layout
	logger      *types.Logger
	userService userService
	input       *intele.InputManager
}

func New(b *bot.Bot) *Handler {
	return &Handler{
		layout:      b.Layout,
		logger:      b.Logger,
		userService: service.NewUserService(postgres.NewUserStorage(b.DB)),
		input:       b.Input,
	}
}

// TrackUser registers the sender and stops banned users.
func (h Handler) TrackUser(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if c.Sender() == nil {
			return nil
		}
		user, err := h.userService.Track(context.Background(), c.Sender())
		if err != nil {
			h.logger.Errorf("(user: %d) error while tracking user: %v", c.Sender().ID, err)
			return next(c)
		}
		if user.Banned {
			return c.Send(h.layout.Text(c, "banned"))
		}
		return next(c)
	}
}

// ResetInputOnBack middleware clears the input state when the back button is pressed
// or another command is sent.
func (h Handler) ResetInputOnBack(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if c.Callback() != nil {
			if strings.Contains(c.Callback().Data, "back") || strings.Contains(c.Callback().Unique, "back") {
				h.input.Cancel(c.Sender().ID)
			}
		}
		if c.Message() != nil {
			if strings.HasPrefix(c.Message().Text, "/") {
				h.input.Cancel(c.Sender().ID)
			}
		}

		return next(c)
	}
}
