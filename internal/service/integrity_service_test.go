package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimir-e/personal-finance-system/engine/internal/domain"
	"github.com/vladimir-e/personal-finance-system/engine/internal/testutil"
)

func newIntegrityService() *IntegrityService {
	return NewIntegrityService(NewCalculationService())
}

func TestCanDeleteAccount(t *testing.T) {
	svc := newIntegrityService()
	day := testutil.Date(2026, time.January, 2)

	assert.True(t, svc.CanDeleteAccount(nil, "a"))
	assert.True(t, svc.CanDeleteAccount([]*domain.Transaction{}, "a"))

	withTx := []*domain.Transaction{testutil.Expense("t1", "a", "", -100, day)}
	assert.False(t, svc.CanDeleteAccount(withTx, "a"))
	assert.True(t, svc.CanDeleteAccount(withTx, "b"))
}

func TestCanDeleteAccount_ZeroBalanceStillBlocked(t *testing.T) {
	svc := newIntegrityService()
	day := testutil.Date(2026, time.January, 2)

	// Offsetting transactions: balance is zero, but references still block
	// deletion. Deletion safety is a reference count, not a balance check.
	transactions := []*domain.Transaction{
		testutil.Income("t1", "a", "", 100, day),
		testutil.Expense("t2", "a", "", -100, day),
	}

	assert.False(t, svc.CanDeleteAccount(transactions, "a"))
}

func TestCanArchiveAccount(t *testing.T) {
	svc := newIntegrityService()
	day := testutil.Date(2026, time.January, 2)

	transactions := []*domain.Transaction{
		testutil.Income("t1", "a", "", 100, day),
		testutil.Expense("t2", "a", "", -100, day),
		testutil.Income("t3", "b", "", 50, day),
	}

	assert.True(t, svc.CanArchiveAccount(transactions, "a"), "offsetting transactions sum to zero")
	assert.False(t, svc.CanArchiveAccount(transactions, "b"))
	assert.True(t, svc.CanArchiveAccount(transactions, "untouched"), "no transactions means zero balance")
}

func TestOnDeleteCategory(t *testing.T) {
	svc := newIntegrityService()
	day := testutil.Date(2026, time.January, 2)

	matching := testutil.Expense("t1", "a", "groceries", -100, day)
	other := testutil.Expense("t2", "a", "transport", -200, day)
	uncategorized := testutil.Expense("t3", "a", "", -300, day)
	transactions := []*domain.Transaction{matching, other, uncategorized}

	result := svc.OnDeleteCategory(transactions, "groceries")

	require.Len(t, result, 3)
	assert.Empty(t, result[0].CategoryID)
	assert.Equal(t, int64(-100), result[0].Amount)
	assert.Same(t, other, result[1])
	assert.Same(t, uncategorized, result[2])

	// Input not mutated
	assert.Equal(t, "groceries", matching.CategoryID)
}

func TestOnDeleteCategory_NoMatches(t *testing.T) {
	svc := newIntegrityService()
	day := testutil.Date(2026, time.January, 2)

	transactions := []*domain.Transaction{
		testutil.Expense("t1", "a", "transport", -200, day),
	}

	result := svc.OnDeleteCategory(transactions, "groceries")

	require.Len(t, result, 1)
	assert.Equal(t, transactions[0], result[0])
}
