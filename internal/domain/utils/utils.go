package utils

import (
	"slices"

	"github.com/spf13/viper"
	tele "gopkg.in/telebot.v3"
)

func IsAdmin(userID int64) bool {
	return slices.Contains(viper.GetIntSlice("bot.admin-ids"), int(userID))
}

// GetMessageText returns the text of a message or the caption of its media.
func GetMessageText(msg *tele.Message) string {
	switch {
	case msg == nil:
		return ""
	case msg.Text != "":
		return msg.Text
	case msg.Caption != "":
		return msg.Caption
	default:
		return ""
	}
}
