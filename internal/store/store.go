// Package store persists expenses and subscriptions in a local SQLite
// database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/moneymind/moneymind/internal/model"
)

const dateFormat = "2006-01-02"

// Store wraps the SQLite database holding the user's data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddExpense inserts an expense, assigning an ID and creation time when
// the caller left them empty, and returns the stored record.
func (s *Store) AddExpense(e model.Expense) (model.Expense, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}

	_, err := s.db.Exec(`INSERT INTO expenses (id, amount, category, note, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Amount, string(e.Category), e.Note,
		e.Date.Format(dateFormat), e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return model.Expense{}, fmt.Errorf("inserting expense: %w", err)
	}
	return e, nil
}

// DeleteExpense removes an expense by ID. Unknown IDs are not an error.
func (s *Store) DeleteExpense(id string) error {
	_, err := s.db.Exec("DELETE FROM expenses WHERE id = ?", id)
	return err
}

// ListExpenses returns all expenses, most recent date first.
func (s *Store) ListExpenses() ([]model.Expense, error) {
	return s.queryExpenses(`SELECT id, amount, category, note, date, created_at
		FROM expenses ORDER BY date DESC, created_at DESC`)
}

// ListMonthExpenses returns the expenses dated within the given month,
// most recent first.
func (s *Store) ListMonthExpenses(year int, month time.Month) ([]model.Expense, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	return s.queryExpenses(`SELECT id, amount, category, note, date, created_at
		FROM expenses WHERE date BETWEEN ? AND ? ORDER BY date DESC, created_at DESC`,
		first.Format(dateFormat), last.Format(dateFormat))
}

func (s *Store) queryExpenses(query string, args ...any) ([]model.Expense, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		var category, dateStr, createdStr string
		if err := rows.Scan(&e.ID, &e.Amount, &category, &e.Note, &dateStr, &createdStr); err != nil {
			return nil, err
		}
		e.Category = model.Category(category)
		e.Date, _ = time.ParseInLocation(dateFormat, dateStr, time.Local)
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// ExpenseCount returns the number of stored expenses.
func (s *Store) ExpenseCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&count)
	return count, err
}

// AddSubscription inserts a subscription, assigning an ID and creation
// time when the caller left them empty, and returns the stored record.
func (s *Store) AddSubscription(sub model.Subscription) (model.Subscription, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	active := 0
	if sub.Active {
		active = 1
	}

	_, err := s.db.Exec(`INSERT INTO subscriptions (id, name, amount, due_day, category, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Amount, sub.DueDay, string(sub.Category), active,
		sub.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return model.Subscription{}, fmt.Errorf("inserting subscription: %w", err)
	}
	return sub, nil
}

// ListSubscriptions returns all subscriptions in creation order.
func (s *Store) ListSubscriptions() ([]model.Subscription, error) {
	rows, err := s.db.Query(`SELECT id, name, amount, due_day, category, active, created_at
		FROM subscriptions ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var subs []model.Subscription
	for rows.Next() {
		var sub model.Subscription
		var category, createdStr string
		var active int
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Amount, &sub.DueDay, &category, &active, &createdStr); err != nil {
			return nil, err
		}
		sub.Category = model.Category(category)
		sub.Active = active != 0
		sub.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// SetSubscriptionActive pauses or resumes a subscription.
func (s *Store) SetSubscriptionActive(id string, active bool) error {
	val := 0
	if active {
		val = 1
	}
	res, err := s.db.Exec("UPDATE subscriptions SET active = ? WHERE id = ?", val, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no subscription with id %s", id)
	}
	return nil
}

// DeleteSubscription removes a subscription by ID.
func (s *Store) DeleteSubscription(id string) error {
	_, err := s.db.Exec("DELETE FROM subscriptions WHERE id = ?", id)
	return err
}
