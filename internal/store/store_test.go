package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/moneymind/moneymind/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "moneymind.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAddAndListExpenses(t *testing.T) {
	s := openTestStore(t)

	e1, err := s.AddExpense(model.Expense{
		Amount:   45.99,
		Category: model.CategoryFoodDining,
		Note:     "Lunch",
		Date:     time.Date(2025, time.June, 3, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if e1.ID == "" {
		t.Fatal("AddExpense did not assign an ID")
	}
	if e1.CreatedAt.IsZero() {
		t.Fatal("AddExpense did not assign a creation time")
	}

	_, err = s.AddExpense(model.Expense{
		Amount:   12,
		Category: model.CategoryTransportation,
		Note:     "Uber ride",
		Date:     time.Date(2025, time.June, 7, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	expenses, err := s.ListExpenses()
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("ListExpenses returned %d, want 2", len(expenses))
	}
	// Most recent date first.
	if expenses[0].Note != "Uber ride" {
		t.Errorf("expenses[0].Note = %q, want most recent first", expenses[0].Note)
	}
	if expenses[1].Category != model.CategoryFoodDining || expenses[1].Amount != 45.99 {
		t.Errorf("expenses[1] = %+v, want the lunch expense", expenses[1])
	}
	if expenses[1].Date.Day() != 3 || expenses[1].Date.Month() != time.June {
		t.Errorf("expenses[1].Date = %v, want 2025-06-03", expenses[1].Date)
	}
}

func TestListMonthExpenses(t *testing.T) {
	s := openTestStore(t)

	dates := []time.Time{
		time.Date(2025, time.May, 31, 0, 0, 0, 0, time.Local),
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local),
		time.Date(2025, time.June, 30, 0, 0, 0, 0, time.Local),
		time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local),
	}
	for _, d := range dates {
		if _, err := s.AddExpense(model.Expense{Amount: 10, Category: model.CategoryOther, Date: d}); err != nil {
			t.Fatalf("AddExpense: %v", err)
		}
	}

	june, err := s.ListMonthExpenses(2025, time.June)
	if err != nil {
		t.Fatalf("ListMonthExpenses: %v", err)
	}
	if len(june) != 2 {
		t.Fatalf("June has %d expenses, want 2 (month boundaries excluded)", len(june))
	}
	for _, e := range june {
		if e.Date.Month() != time.June {
			t.Errorf("expense dated %v leaked into June listing", e.Date)
		}
	}
}

func TestDeleteExpense(t *testing.T) {
	s := openTestStore(t)

	e, err := s.AddExpense(model.Expense{Amount: 5, Category: model.CategoryOther})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	if err := s.DeleteExpense(e.ID); err != nil {
		t.Fatalf("DeleteExpense: %v", err)
	}

	count, err := s.ExpenseCount()
	if err != nil {
		t.Fatalf("ExpenseCount: %v", err)
	}
	if count != 0 {
		t.Errorf("ExpenseCount = %d after delete, want 0", count)
	}

	// Deleting an unknown ID is not an error.
	if err := s.DeleteExpense("nope"); err != nil {
		t.Errorf("DeleteExpense(unknown) = %v, want nil", err)
	}
}

func TestSubscriptionLifecycle(t *testing.T) {
	s := openTestStore(t)

	sub, err := s.AddSubscription(model.Subscription{
		Name:     "Netflix",
		Amount:   15.49,
		DueDay:   5,
		Category: model.CategorySubscription,
		Active:   true,
	})
	if err != nil {
		t.Fatalf("AddSubscription: %v", err)
	}
	if sub.ID == "" {
		t.Fatal("AddSubscription did not assign an ID")
	}

	subs, err := s.ListSubscriptions()
	if err != nil {
		t.Fatalf("ListSubscriptions: %v", err)
	}
	if len(subs) != 1 || !subs[0].Active || subs[0].DueDay != 5 {
		t.Fatalf("ListSubscriptions = %+v, want one active sub due day 5", subs)
	}

	if err := s.SetSubscriptionActive(sub.ID, false); err != nil {
		t.Fatalf("SetSubscriptionActive: %v", err)
	}
	subs, _ = s.ListSubscriptions()
	if subs[0].Active {
		t.Error("subscription still active after pause")
	}

	if err := s.SetSubscriptionActive("nope", true); err == nil {
		t.Error("SetSubscriptionActive(unknown) = nil, want error")
	}

	if err := s.DeleteSubscription(sub.ID); err != nil {
		t.Fatalf("DeleteSubscription: %v", err)
	}
	subs, _ = s.ListSubscriptions()
	if len(subs) != 0 {
		t.Errorf("ListSubscriptions = %+v after delete, want empty", subs)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "moneymind.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if _, err := s1.AddExpense(model.Expense{Amount: 1, Category: model.CategoryOther}); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	_ = s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = s2.Close() }()

	count, err := s2.ExpenseCount()
	if err != nil {
		t.Fatalf("ExpenseCount: %v", err)
	}
	if count != 1 {
		t.Errorf("ExpenseCount after reopen = %d, want 1", count)
	}
}
