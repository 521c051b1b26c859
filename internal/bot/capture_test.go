package bot

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"

	"expense-bot/internal/expense"
	"expense-bot/internal/storage"
)

// sendRecorder stands in for the bot and keeps everything the handlers
// tried to send.
type sendRecorder struct {
	sent []interface{}
}

func (r *sendRecorder) Send(_ telebot.Recipient, what interface{}, _ ...interface{}) (*telebot.Message, error) {
	r.sent = append(r.sent, what)
	return &telebot.Message{}, nil
}

func (r *sendRecorder) texts() []string {
	var out []string
	for _, what := range r.sent {
		if s, ok := what.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func newTestHandler(t *testing.T) (*messageHandler, *sendRecorder, *storage.Storage) {
	t.Helper()

	s, err := storage.NewStorage(filepath.Join(t.TempDir(), "test.db"), time.UTC)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.SeedCategories(context.Background(), []string{"Продукты", "Кафе"}))

	log := logrus.New()
	log.SetOutput(io.Discard)

	rec := &sendRecorder{}
	return newMessageHandler(rec, s, log, time.UTC, t.TempDir()), rec, s
}

func message(userID int64, text string) *telebot.Message {
	return &telebot.Message{
		Text:   text,
		Sender: &telebot.User{ID: userID, Username: "al"},
	}
}

func TestCaptureDialoguePersistsExpense(t *testing.T) {
	h, rec, s := newTestHandler(t)

	require.NoError(t, h.handleOnText(message(7, "500 такси")))
	require.NoError(t, h.handleOnText(message(7, "Кафе")))

	now := time.Now().UTC()
	expenses, err := s.ExpensesBetween(context.Background(), now.Add(-time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, expenses, 1)

	e := expenses[0]
	assert.Positive(t, e.ID)
	assert.Equal(t, int64(500), e.Amount)
	assert.Equal(t, "такси", e.Comment)
	assert.Equal(t, "Кафе", e.Category)
	assert.Equal(t, "al", e.FromUser)

	texts := rec.texts()
	require.NotEmpty(t, texts)
	assert.Contains(t, texts[len(texts)-1], fmt.Sprintf("ID %d", e.ID))
}

func TestCaptureDialogueClearsStateAfterCompletion(t *testing.T) {
	h, rec, s := newTestHandler(t)

	require.NoError(t, h.handleOnText(message(7, "500 такси")))
	require.NoError(t, h.handleOnText(message(7, "Кафе")))

	// the next arbitrary message is fresh top-level input, not a second
	// category answer
	require.NoError(t, h.handleOnText(message(7, "привет")))
	assert.Contains(t, rec.texts(), expense.ErrNotCorrectMessage.Error())

	now := time.Now().UTC()
	expenses, err := s.ExpensesBetween(context.Background(), now.Add(-time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	assert.Len(t, expenses, 1, "only the completed capture was persisted")
}

func TestCaptureDialogueIsolatedPerUser(t *testing.T) {
	h, _, s := newTestHandler(t)

	require.NoError(t, h.handleOnText(message(7, "500 такси")))
	// a second user's message must not complete the first user's draft
	require.NoError(t, h.handleOnText(message(8, "300 кофе")))
	require.NoError(t, h.handleOnText(message(7, "Кафе")))

	now := time.Now().UTC()
	expenses, err := s.ExpensesBetween(context.Background(), now.Add(-time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, int64(500), expenses[0].Amount)
	assert.Equal(t, "Кафе", expenses[0].Category)
}

func TestCaptureParseFailureLeavesNoState(t *testing.T) {
	h, rec, s := newTestHandler(t)

	require.NoError(t, h.handleOnText(message(7, "такси")))
	assert.Contains(t, rec.texts(), expense.ErrNotCorrectMessage.Error())

	// the failed attempt left no draft, so this is a new capture, not a
	// category answer
	require.NoError(t, h.handleOnText(message(7, "500 такси")))
	require.NoError(t, h.handleOnText(message(7, "Продукты")))

	now := time.Now().UTC()
	expenses, err := s.ExpensesBetween(context.Background(), now.Add(-time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Продукты", expenses[0].Category)
}
