package bot

import (
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"expense-bot/internal/expense"
	"expense-bot/internal/storage"
)

func RegisterHandlers(b *telebot.Bot, storageInstance *storage.Storage, log *logrus.Logger, loc *time.Location, staticDir string) {
	msgHandler := newMessageHandler(b, storageInstance, log, loc, staticDir)

	b.Handle("/start", func(ctx telebot.Context) error {
		err := msgHandler.handleHelp(ctx.Message())
		if err != nil {
			log.WithField("userId", ctx.Message().Sender.ID).WithError(err).Error("error handling /start")
		}
		return nil
	})

	b.Handle("/help", func(ctx telebot.Context) error {
		err := msgHandler.handleHelp(ctx.Message())
		if err != nil {
			log.WithField("userId", ctx.Message().Sender.ID).WithError(err).Error("error handling /help")
		}
		return nil
	})

	b.Handle("/today", func(ctx telebot.Context) error {
		err := msgHandler.handleStats(ctx.Message(), expense.PeriodDay, false, "today", "Сегодня еще нет расходов")
		if err != nil {
			log.WithField("userId", ctx.Message().Sender.ID).WithError(err).Error("error handling /today")
		}
		return nil
	})

	b.Handle("/month", func(ctx telebot.Context) error {
		err := msgHandler.handleStats(ctx.Message(), expense.PeriodMonth, false, "month", "В этом месяце еще нет расходов")
		if err != nil {
			log.WithField("userId", ctx.Message().Sender.ID).WithError(err).Error("error handling /month")
		}
		return nil
	})

	b.Handle("/prev_month", func(ctx telebot.Context) error {
		err := msgHandler.handleStats(ctx.Message(), expense.PeriodMonth, true, "prev_month", "В прошлом месяце не было расходов")
		if err != nil {
			log.WithField("userId", ctx.Message().Sender.ID).WithError(err).Error("error handling /prev_month")
		}
		return nil
	})

	b.Handle("/year", func(ctx telebot.Context) error {
		err := msgHandler.handleStats(ctx.Message(), expense.PeriodYear, false, "year", "В этом году еще нет расходов")
		if err != nil {
			log.WithField("userId", ctx.Message().Sender.ID).WithError(err).Error("error handling /year")
		}
		return nil
	})

	b.Handle("/limits", func(ctx telebot.Context) error {
		err := msgHandler.handleLimits(ctx.Message())
		if err != nil {
			log.WithField("userId", ctx.Message().Sender.ID).WithError(err).Error("error handling /limits")
		}
		return nil
	})

	b.Handle("/set_limit", func(ctx telebot.Context) error {
		err := msgHandler.handleSetLimit(ctx.Message())
		if err != nil {
			log.WithField("userId", ctx.Message().Sender.ID).WithError(err).Error("error handling /set_limit")
		}
		return nil
	})

	b.Handle("/del", func(ctx telebot.Context) error {
		err := msgHandler.handleDelete(ctx.Message())
		if err != nil {
			log.WithField("userId", ctx.Message().Sender.ID).WithError(err).Error("error handling /del")
		}
		return nil
	})

	b.Handle(telebot.OnText, func(ctx telebot.Context) error {
		err := msgHandler.handleOnText(ctx.Message())
		if err != nil {
			log.WithField("userId", ctx.Message().Sender.ID).WithError(err).Error("error handling text")
		}
		return nil
	})
}
