package bot

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"expense-bot/internal/expense"
	"expense-bot/internal/model"
	"expense-bot/internal/report"
	"expense-bot/internal/session"
	"expense-bot/internal/storage"
)

// sender is the slice of *telebot.Bot the handlers need; tests substitute
// a recorder.
type sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

type messageHandler struct {
	b               sender
	storageInstance *storage.Storage
	engine          *expense.Engine
	sessions        *session.Store
	log             *logrus.Logger
	staticDir       string
}

func newMessageHandler(b sender, storageInstance *storage.Storage, log *logrus.Logger, loc *time.Location, staticDir string) *messageHandler {
	return &messageHandler{
		b:               b,
		storageInstance: storageInstance,
		engine:          expense.NewEngine(storageInstance, loc),
		sessions:        session.NewStore(),
		log:             log,
		staticDir:       staticDir,
	}
}

func (h *messageHandler) handleHelp(m *telebot.Message) error {
	helpMessage := "Команды бота:\n" +
		"/today - статистика за сегодня\n" +
		"/month - статистика за месяц\n" +
		"/prev_month - статистика за прошлый месяц\n" +
		"/year - статистика за год\n" +
		"/limits - лимиты по категориям\n" +
		"/set_limit <категория> <лимит> - установить месячный лимит\n" +
		"/del <ID> - удалить трату\n" +
		"/help - показать эту справку\n" +
		"\n" +
		"Для добавления траты отправьте сообщение в формате:\n" +
		"Сумма Комментарий (опционально)"

	_, err := h.b.Send(m.Sender, helpMessage)
	return err
}

func (h *messageHandler) handleStats(m *telebot.Message, p expense.Period, previous bool, name, emptyText string) error {
	ctx := context.Background()

	var (
		expenses []model.Expense
		err      error
	)
	if previous {
		expenses, err = h.engine.Previous(ctx, p)
	} else {
		expenses, err = h.engine.Current(ctx, p)
	}
	if err != nil {
		_, sendErr := h.b.Send(m.Sender, "Ошибка при получении статистики: "+err.Error())
		if sendErr != nil {
			return fmt.Errorf("%v: %w", err, sendErr)
		}
		return err
	}

	if len(expenses) == 0 {
		_, err := h.b.Send(m.Sender, emptyText)
		return err
	}

	table := report.ExpensesTable(expenses)
	if _, err := h.b.Send(m.Sender, "<pre>"+table+"</pre>", &telebot.SendOptions{ParseMode: telebot.ModeHTML}); err != nil {
		return err
	}

	chartPath, err := report.PieChart(expenses, filepath.Join(h.staticDir, name+".png"))
	if err != nil {
		h.log.WithError(err).Warn("unable to render chart")
	} else {
		photo := &telebot.Photo{File: telebot.FromDisk(chartPath)}
		if _, err := h.b.Send(m.Sender, photo); err != nil {
			return err
		}
	}

	sheetPath, err := report.Spreadsheet(expenses, filepath.Join(h.staticDir, name+".xlsx"))
	if err != nil {
		h.log.WithError(err).Warn("unable to write spreadsheet")
		return nil
	}
	doc := &telebot.Document{File: telebot.FromDisk(sheetPath), FileName: name + ".xlsx"}
	_, err = h.b.Send(m.Sender, doc)
	return err
}

func (h *messageHandler) handleLimits(m *telebot.Message) error {
	categories, err := h.storageInstance.ListCategories(context.Background())
	if err != nil {
		_, sendErr := h.b.Send(m.Sender, "Ошибка при получении категорий: "+err.Error())
		if sendErr != nil {
			return fmt.Errorf("%v: %w", err, sendErr)
		}
		return err
	}

	if len(categories) == 0 {
		_, err := h.b.Send(m.Sender, "Категории отсутствуют.")
		return err
	}

	table := report.LimitsTable(categories)
	_, err = h.b.Send(m.Sender, "<pre>"+table+"</pre>", &telebot.SendOptions{ParseMode: telebot.ModeHTML})
	return err
}

func (h *messageHandler) handleSetLimit(m *telebot.Message) error {
	parts := strings.Fields(m.Payload)
	if len(parts) != 2 {
		_, err := h.b.Send(m.Sender, "Укажите категорию и лимит: /set_limit <категория> <лимит>")
		return err
	}

	limit, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		_, sendErr := h.b.Send(m.Sender, "Лимит должен быть целым числом.")
		return sendErr
	}

	err = h.storageInstance.SetCategoryLimit(context.Background(), parts[0], limit)
	if errors.Is(err, storage.ErrNotFound) {
		_, sendErr := h.b.Send(m.Sender, fmt.Sprintf("Категория %q не найдена.", parts[0]))
		return sendErr
	}
	if err != nil {
		_, sendErr := h.b.Send(m.Sender, "Ошибка при установке лимита: "+err.Error())
		if sendErr != nil {
			return fmt.Errorf("%v: %w", err, sendErr)
		}
		return err
	}

	_, err = h.b.Send(m.Sender, fmt.Sprintf("Лимит %d установлен.", limit))
	return err
}

func (h *messageHandler) handleDelete(m *telebot.Message) error {
	id, err := strconv.ParseInt(strings.TrimSpace(m.Payload), 10, 64)
	if err != nil {
		_, sendErr := h.b.Send(m.Sender, "Укажите ID расхода: /del <ID>")
		return sendErr
	}

	err = h.storageInstance.DeleteExpense(context.Background(), id)
	if errors.Is(err, storage.ErrNotFound) {
		_, sendErr := h.b.Send(m.Sender, fmt.Sprintf("Расход с ID %d не найден.", id))
		return sendErr
	}
	if err != nil {
		_, sendErr := h.b.Send(m.Sender, "Ошибка при удалении: "+err.Error())
		if sendErr != nil {
			return fmt.Errorf("%v: %w", err, sendErr)
		}
		return err
	}

	_, err = h.b.Send(m.Sender, "Удалил")
	return err
}

func (h *messageHandler) handleOnText(m *telebot.Message) error {
	if draft, ok := h.sessions.Take(m.Sender.ID); ok {
		return h.completeCapture(m, draft)
	}
	return h.startCapture(m)
}
