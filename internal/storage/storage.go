package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode"

	_ "modernc.org/sqlite"

	"expense-bot/internal/model"
)

// CreatedLayout is how expense timestamps are stored. Lexicographic order
// of these strings matches chronological order, which the range queries
// rely on.
const CreatedLayout = "2006-01-02 15:04:05"

// ErrNotFound is returned when a category or expense does not exist.
var ErrNotFound = errors.New("not found")

type Storage struct {
	db  *sql.DB
	loc *time.Location
}

func NewStorage(dbPath string, loc *time.Location) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Storage{db: db, loc: loc}, nil
}

func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SeedCategories inserts the configured category names, skipping ones that
// already exist. The catalog is fixed after this: there is no create or
// delete path anywhere else.
func (s *Storage) SeedCategories(ctx context.Context, names []string) error {
	query := `INSERT OR IGNORE INTO categories (name) VALUES (?)`
	for _, name := range names {
		if _, err := s.db.ExecContext(ctx, query, name); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}
	return nil
}

// GetCategory looks a category up by its exact stored name.
func (s *Storage) GetCategory(ctx context.Context, name string) (model.Category, error) {
	query := `SELECT name, monthly_limit FROM categories WHERE name = ?`
	var (
		c     model.Category
		limit sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx, query, name).Scan(&c.Name, &limit)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, ErrNotFound
	}
	if err != nil {
		return model.Category{}, err
	}
	c.MonthlyLimit = limit.Int64
	return c, nil
}

// ListCategories returns the catalog in insertion order.
func (s *Storage) ListCategories(ctx context.Context) ([]model.Category, error) {
	query := `SELECT name, monthly_limit FROM categories`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var (
			c     model.Category
			limit sql.NullInt64
		)
		if err := rows.Scan(&c.Name, &limit); err != nil {
			return nil, err
		}
		c.MonthlyLimit = limit.Int64
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// SetCategoryLimit writes a new monthly limit for the category matched by
// the capitalized form of name. Unlike GetCategory, which is exact-match,
// this path uppercases the first rune of the input before matching; the two
// paths can disagree for mixed-case input.
func (s *Storage) SetCategoryLimit(ctx context.Context, name string, limit int64) error {
	query := `UPDATE categories SET monthly_limit = ? WHERE name = ?`
	res, err := s.db.ExecContext(ctx, query, limit, capitalizeFirst(name))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddExpense inserts an expense and returns the generated id. An empty
// Created field is stamped with the current time in the configured zone.
func (s *Storage) AddExpense(ctx context.Context, e model.Expense) (int64, error) {
	created := e.Created
	if created == "" {
		created = time.Now().In(s.loc).Format(CreatedLayout)
	}

	query := `INSERT INTO expenses (amount, created, category, comment, from_user) VALUES (?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, query, e.Amount, created, e.Category, e.Comment, e.FromUser)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// DeleteExpense removes a single expense by id.
func (s *Storage) DeleteExpense(ctx context.Context, id int64) error {
	query := `DELETE FROM expenses WHERE id = ?`
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ExpensesBetween returns expenses with created in [start, end), ordered by
// ascending id.
func (s *Storage) ExpensesBetween(ctx context.Context, start, end time.Time) ([]model.Expense, error) {
	query := `SELECT id, amount, created, category, comment, from_user
              FROM expenses
              WHERE created >= ? AND created < ?
              ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query,
		start.In(s.loc).Format(CreatedLayout),
		end.In(s.loc).Format(CreatedLayout),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Created, &e.Category, &e.Comment, &e.FromUser); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

func capitalizeFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
