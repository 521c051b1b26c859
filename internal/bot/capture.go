package bot

import (
	"context"
	"fmt"

	"gopkg.in/telebot.v3"

	"expense-bot/internal/expense"
	"expense-bot/internal/model"
)

// startCapture parses the message as "amount comment", stores the draft and
// asks for a category. A parse failure replies with the usage hint and
// leaves no state behind.
func (h *messageHandler) startCapture(m *telebot.Message) error {
	draft, err := expense.Parse(m.Text)
	if err != nil {
		_, sendErr := h.b.Send(m.Sender, err.Error())
		return sendErr
	}

	categories, err := h.storageInstance.ListCategories(context.Background())
	if err != nil {
		_, sendErr := h.b.Send(m.Sender, "Ошибка при получении категорий: "+err.Error())
		if sendErr != nil {
			return fmt.Errorf("%v: %w", err, sendErr)
		}
		return err
	}

	draft.FromUser = displayName(m.Sender)
	h.sessions.Put(m.Sender.ID, draft)

	markup := &telebot.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	var rows []telebot.Row
	var row telebot.Row
	for i, category := range categories {
		row = append(row, markup.Text(category.Name))
		if (i+1)%3 == 0 || i == len(categories)-1 {
			rows = append(rows, row)
			row = telebot.Row{}
		}
	}
	markup.Reply(rows...)

	_, err = h.b.Send(m.Sender, "Укажите категорию", markup)
	return err
}

// completeCapture takes the message verbatim as the chosen category, merges
// it with the pending draft and persists the expense. The draft was already
// removed from the session store by the caller, so whatever happens next
// starts from a clean slate.
func (h *messageHandler) completeCapture(m *telebot.Message, draft model.Draft) error {
	ctx := context.Background()
	category := m.Text

	if err := h.allowCategory(ctx, category); err != nil {
		_, sendErr := h.b.Send(m.Sender, err.Error())
		return sendErr
	}

	id, err := h.storageInstance.AddExpense(ctx, model.Expense{
		Amount:   draft.Amount,
		Category: category,
		Comment:  draft.Comment,
		FromUser: draft.FromUser,
	})
	if err != nil {
		_, sendErr := h.b.Send(m.Sender, "Ошибка при сохранении расхода: "+err.Error())
		if sendErr != nil {
			return fmt.Errorf("%v: %w", err, sendErr)
		}
		return err
	}

	confirmation := fmt.Sprintf("<pre>ID %d\nДобавлено в %s:\n%d %s</pre>", id, category, draft.Amount, draft.Comment)
	_, err = h.b.Send(m.Sender, confirmation, &telebot.SendOptions{
		ParseMode:   telebot.ModeHTML,
		ReplyMarkup: &telebot.ReplyMarkup{RemoveKeyboard: true},
	})
	if err != nil {
		return err
	}

	if warning := h.limitWarning(ctx, category); warning != "" {
		_, err = h.b.Send(m.Sender, warning)
	}
	return err
}

// allowCategory is the catalog-membership gate for the capture dialogue.
// It currently admits any text: the reply keyboard constrains normal input,
// and typed category names pass through unchecked. A strict mode only has
// to change this function.
func (h *messageHandler) allowCategory(ctx context.Context, name string) error {
	return nil
}

// limitWarning reports when the month-to-date spend of a category exceeds
// its configured monthly limit. Unknown categories and categories without a
// limit produce no warning.
func (h *messageHandler) limitWarning(ctx context.Context, category string) string {
	cat, err := h.storageInstance.GetCategory(ctx, category)
	if err != nil || cat.MonthlyLimit <= 0 {
		return ""
	}

	monthExpenses, err := h.engine.Current(ctx, expense.PeriodMonth)
	if err != nil {
		h.log.WithError(err).Warn("unable to check monthly limit")
		return ""
	}

	var spent int64
	for _, e := range monthExpenses {
		if e.Category == cat.Name {
			spent += e.Amount
		}
	}
	if spent > cat.MonthlyLimit {
		return fmt.Sprintf("⚠️ Лимит по категории %s превышен: %d из %d", cat.Name, spent, cat.MonthlyLimit)
	}
	return ""
}
