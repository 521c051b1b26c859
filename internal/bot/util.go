package bot

import (
	"strings"

	"gopkg.in/telebot.v3"
)

func displayName(u *telebot.User) string {
	if u.Username != "" {
		return u.Username
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
