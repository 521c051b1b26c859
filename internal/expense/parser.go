package expense

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"expense-bot/internal/model"
)

// ErrNotCorrectMessage carries the usage hint shown to the user when an
// expense message cannot be parsed.
var ErrNotCorrectMessage = errors.New(
	"Напишите сообщение в формате:\nСумма Комментарий (опционально)")

// The amount is a run of digits optionally interleaved with spaces
// ("1 000" is 1000), everything after it is the comment.
var messageRe = regexp.MustCompile(`(?s)^([\d ]+) ?(.*)`)

// Parse turns a raw message into a draft with amount and comment. The
// comment is trimmed and lower-cased; it may be empty.
func Parse(text string) (model.Draft, error) {
	m := messageRe.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return model.Draft{}, ErrNotCorrectMessage
	}

	amount, err := strconv.ParseInt(strings.ReplaceAll(m[1], " ", ""), 10, 64)
	if err != nil {
		return model.Draft{}, ErrNotCorrectMessage
	}

	return model.Draft{
		Amount:  amount,
		Comment: strings.ToLower(strings.TrimSpace(m[2])),
	}, nil
}
