// Package testutil provides fixture builders shared by the engine's tests.
package testutil

import (
	"fmt"
	"time"

	"github.com/vladimir-e/personal-finance-system/engine/internal/domain"
)

// SequentialIDs returns a deterministic id generator producing
// "<prefix>-1", "<prefix>-2", ...
func SequentialIDs(prefix string) func() string {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// Date builds a UTC calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Account builds a non-archived account of the given type.
func Account(id string, accountType domain.AccountType) *domain.Account {
	return &domain.Account{
		ID:        id,
		Name:      "Account " + id,
		Type:      accountType,
		CreatedAt: Date(2026, time.January, 1),
	}
}

// Category builds a non-archived category.
func Category(id, name, group string, assigned int64, sortOrder int) *domain.Category {
	return &domain.Category{
		ID:        id,
		Name:      name,
		Group:     group,
		Assigned:  assigned,
		SortOrder: sortOrder,
	}
}

// Expense builds an expense transaction. Pass a negative amount.
func Expense(id, accountID, categoryID string, amount int64, date time.Time) *domain.Transaction {
	return &domain.Transaction{
		ID:         id,
		Type:       domain.TransactionTypeExpense,
		AccountID:  accountID,
		CategoryID: categoryID,
		Amount:     amount,
		Date:       date,
		Source:     domain.SourceManual,
		CreatedAt:  date,
	}
}

// Income builds an income transaction. Pass a non-negative amount.
func Income(id, accountID, categoryID string, amount int64, date time.Time) *domain.Transaction {
	return &domain.Transaction{
		ID:         id,
		Type:       domain.TransactionTypeIncome,
		AccountID:  accountID,
		CategoryID: categoryID,
		Amount:     amount,
		Date:       date,
		Source:     domain.SourceManual,
		CreatedAt:  date,
	}
}
