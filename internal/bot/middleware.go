package bot

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// AccessFilter drops every update whose sender is not in the allow list.
func AccessFilter(allowed []int64, log *logrus.Logger) telebot.MiddlewareFunc {
	ids := make(map[int64]struct{}, len(allowed))
	for _, id := range allowed {
		ids[id] = struct{}{}
	}

	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(ctx telebot.Context) error {
			sender := ctx.Sender()
			if sender == nil {
				return nil
			}
			if _, ok := ids[sender.ID]; !ok {
				log.WithField("userId", sender.ID).Warn("access denied")
				return nil
			}
			return next(ctx)
		}
	}
}
