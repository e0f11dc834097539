package setup

import (
	"context"

	"github.com/spf13/viper"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"

	"github.com/Badsnus/qrage/cmd/bot"
	"github.com/Badsnus/qrage/internal/adapters/controller/telegram/handlers/admin"
	"github.com/Badsnus/qrage/internal/adapters/controller/telegram/handlers/middlewares"
	"github.com/Badsnus/qrage/internal/adapters/controller/telegram/handlers/qrcode"
	"github.com/Badsnus/qrage/internal/adapters/controller/telegram/handlers/start"
	"github.com/Badsnus/qrage/internal/adapters/controller/telegram/scheduler"
)

func Setup(b *bot.Bot) {
	// Pre-setup and global middlewares
	middle := middlewares.New(b)
	startHandler := start.New(b)
	qrHandler := qrcode.New(b)
	adminHandler := admin.New(b)

	if viper.GetBool("settings.debug") {
		b.Use(middleware.Logger())
	}
	b.Use(b.Layout.Middleware(viper.GetString("bot.locale")))
	b.Use(middleware.AutoRespond())
	b.Handle(tele.OnText, b.Input.Handler())
	b.Use(middle.ResetInputOnBack)
	b.Use(middle.TrackUser)

	// Setup handlers
	//User:
	b.Handle("/start", startHandler.Start)
	b.Handle("/help", startHandler.Start)
	qrHandler.QRSetup(b.Group())

	//Admin:
	admins := viper.GetIntSlice("bot.admin-ids")
	adminsInt64 := make([]int64, len(admins))
	for i, v := range admins {
		adminsInt64[i] = int64(v)
	}
	adminGroup := b.Group()
	adminGroup.Use(middleware.Whitelist(adminsInt64...))
	adminHandler.AdminSetup(adminGroup)

	scheduler.NewHistoryScheduler(
		b,
		viper.GetDuration("settings.qr.history-retention"),
		viper.GetDuration("settings.qr.cleanup-interval"),
	).Start(context.Background())
}
