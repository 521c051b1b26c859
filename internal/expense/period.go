package expense

import (
	"context"
	"fmt"
	"time"

	"expense-bot/internal/model"
)

// Period is a calendar granularity used to bound aggregation queries.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Range is a half-open time interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

// CurrentRange returns the period containing now: local midnight to the
// next midnight for a day, the 1st to the next 1st for a month, Jan 1 to
// the next Jan 1 for a year.
func CurrentRange(now time.Time, p Period) (Range, error) {
	var start time.Time
	switch p {
	case PeriodDay:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return Range{Start: start, End: start.AddDate(0, 0, 1)}, nil
	case PeriodMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Range{Start: start, End: start.AddDate(0, 1, 0)}, nil
	case PeriodYear:
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return Range{Start: start, End: start.AddDate(1, 0, 0)}, nil
	default:
		return Range{}, fmt.Errorf("unknown period %q", p)
	}
}

// PreviousRange returns the period immediately before the one containing
// now. The step back is taken from the current period's start, which is
// always a first-of-period instant, so month-length anomalies (March 31 and
// the like) cannot shift the window.
func PreviousRange(now time.Time, p Period) (Range, error) {
	current, err := CurrentRange(now, p)
	if err != nil {
		return Range{}, err
	}

	var start time.Time
	switch p {
	case PeriodDay:
		start = current.Start.AddDate(0, 0, -1)
	case PeriodMonth:
		start = current.Start.AddDate(0, -1, 0)
	case PeriodYear:
		start = current.Start.AddDate(-1, 0, 0)
	}
	return Range{Start: start, End: current.Start}, nil
}

// Querier is the slice of the storage layer the engine reads from.
type Querier interface {
	ExpensesBetween(ctx context.Context, start, end time.Time) ([]model.Expense, error)
}

// Engine answers "what was spent this period / last period" questions.
type Engine struct {
	store Querier
	loc   *time.Location
	now   func() time.Time
}

func NewEngine(store Querier, loc *time.Location) *Engine {
	return &Engine{store: store, loc: loc, now: time.Now}
}

// Current returns the expenses of the period containing the present moment.
func (e *Engine) Current(ctx context.Context, p Period) ([]model.Expense, error) {
	r, err := CurrentRange(e.now().In(e.loc), p)
	if err != nil {
		return nil, err
	}
	return e.store.ExpensesBetween(ctx, r.Start, r.End)
}

// Previous returns the expenses of the period before the current one.
func (e *Engine) Previous(ctx context.Context, p Period) ([]model.Expense, error) {
	r, err := PreviousRange(e.now().In(e.loc), p)
	if err != nil {
		return nil, err
	}
	return e.store.ExpensesBetween(ctx, r.Start, r.End)
}
