package main

import (
	"log"

	"github.com/Badsnus/qrage/cmd/bot"
	"github.com/Badsnus/qrage/internal/adapters/config"
	setupBot "github.com/Badsnus/qrage/internal/adapters/controller/telegram/setup"

	_ "time/tzdata"
)

func main() {
	cfg := config.Get()
	b, err := bot.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	setupBot.Setup(b)

	b.Start()
}
