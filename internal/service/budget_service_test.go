package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimir-e/personal-finance-system/engine/internal/domain"
	"github.com/vladimir-e/personal-finance-system/engine/internal/testutil"
)

func newBudgetService() *BudgetService {
	return NewBudgetService(NewCalculationService())
}

func TestMonthlySummary_CategorySpend(t *testing.T) {
	svc := newBudgetService()

	ds := &domain.DataStore{
		Categories: []*domain.Category{
			testutil.Category("5", "Groceries", "Daily Living", 50000, 0),
		},
		Transactions: []*domain.Transaction{
			testutil.Expense("t1", "a", "5", -3000, testutil.Date(2026, time.January, 10)),
			testutil.Expense("t2", "a", "5", -2000, testutil.Date(2026, time.January, 20)),
		},
	}

	summary := svc.MonthlySummary(ds, 2026, time.January)

	require.Len(t, summary.Groups, 1)
	group := summary.Groups[0]
	assert.Equal(t, "Daily Living", group.Name)
	require.Len(t, group.Categories, 1)

	cat := group.Categories[0]
	assert.Equal(t, int64(50000), cat.Assigned)
	assert.Equal(t, int64(-5000), cat.Spent)
	assert.Equal(t, int64(45000), cat.Available)

	assert.Equal(t, int64(50000), group.TotalAssigned)
	assert.Equal(t, int64(-5000), group.TotalSpent)
	assert.Equal(t, int64(45000), group.TotalAvailable)
	assert.Equal(t, int64(50000), summary.TotalAssigned)
	assert.Equal(t, "2026-01", summary.Month)
}

func TestMonthlySummary_MonthFilterIsCalendarBased(t *testing.T) {
	svc := newBudgetService()

	ds := &domain.DataStore{
		Categories: []*domain.Category{
			testutil.Category("5", "Groceries", "Daily Living", 50000, 0),
		},
		Transactions: []*domain.Transaction{
			testutil.Expense("t1", "a", "5", -3000, testutil.Date(2026, time.January, 10)),
			testutil.Expense("t2", "a", "5", -2000, testutil.Date(2026, time.October, 10)),
			testutil.Expense("t3", "a", "5", -7000, testutil.Date(2025, time.January, 10)),
		},
	}

	summary := svc.MonthlySummary(ds, 2026, time.January)

	cat := summary.Groups[0].Categories[0]
	assert.Equal(t, int64(-3000), cat.Spent, "only January 2026 counts; October and last year do not")
}

func TestMonthlySummary_IncomeGroupPinnedToZero(t *testing.T) {
	svc := newBudgetService()

	// Stored assigned value on an Income category is ignored in the output.
	salary := testutil.Category("inc1", "Salary", domain.IncomeGroup, 99999, 0)

	ds := &domain.DataStore{
		Categories: []*domain.Category{
			salary,
			testutil.Category("c1", "Rent", "Housing", 80000, 0),
		},
		Transactions: []*domain.Transaction{
			testutil.Income("t1", "a", "inc1", 250000, testutil.Date(2026, time.March, 1)),
			testutil.Expense("t2", "a", "c1", -80000, testutil.Date(2026, time.March, 2)),
		},
	}

	summary := svc.MonthlySummary(ds, 2026, time.March)

	require.Len(t, summary.Groups, 2)
	incomeGroup := summary.Groups[0]
	require.Equal(t, domain.IncomeGroup, incomeGroup.Name)

	cat := incomeGroup.Categories[0]
	assert.Equal(t, int64(0), cat.Assigned)
	assert.Equal(t, int64(250000), cat.Spent, "income bucket spend total is for display")
	assert.Equal(t, int64(0), cat.Available)

	assert.Equal(t, int64(0), incomeGroup.TotalAssigned)
	assert.Equal(t, int64(250000), incomeGroup.TotalSpent)
	assert.Equal(t, int64(0), incomeGroup.TotalAvailable)

	assert.Equal(t, int64(250000), summary.TotalIncome)
	assert.Equal(t, int64(80000), summary.TotalAssigned, "income categories never contribute to total assigned")
}

func TestMonthlySummary_SortOrderAndArchived(t *testing.T) {
	svc := newBudgetService()

	archived := testutil.Category("c9", "Old", "Daily Living", 11111, 0)
	archived.Archived = true

	ds := &domain.DataStore{
		Categories: []*domain.Category{
			testutil.Category("c2", "Dining Out", "Daily Living", 10000, 2),
			testutil.Category("c1", "Groceries", "Daily Living", 50000, 1),
			archived,
			testutil.Category("c3", "Rent", "Housing", 80000, 0),
		},
	}

	summary := svc.MonthlySummary(ds, 2026, time.May)

	require.Len(t, summary.Groups, 2)
	daily := summary.Groups[0]
	require.Equal(t, "Daily Living", daily.Name)
	require.Len(t, daily.Categories, 2, "archived categories are excluded")
	assert.Equal(t, "Groceries", daily.Categories[0].Name)
	assert.Equal(t, "Dining Out", daily.Categories[1].Name)

	assert.Equal(t, int64(140000), summary.TotalAssigned, "archived assigned amounts never contribute")
}

func TestMonthlySummary_Uncategorized(t *testing.T) {
	svc := newBudgetService()
	transferSvc := NewTransferService(testutil.SequentialIDs("tx"))
	outflow, inflow := transferSvc.CreatePair(CreateTransferInput{
		FromAccountID: "a",
		ToAccountID:   "b",
		Amount:        5000,
		Date:          testutil.Date(2026, time.July, 3),
	})

	ds := &domain.DataStore{
		Transactions: []*domain.Transaction{
			outflow,
			inflow,
			testutil.Expense("t1", "a", "", -1200, testutil.Date(2026, time.July, 4)),
		},
	}

	summary := svc.MonthlySummary(ds, 2026, time.July)

	assert.Equal(t, int64(-1200), summary.Uncategorized.Spent,
		"transfers are structurally uncategorized but are not uncategorized spending")
	assert.Empty(t, summary.Groups)
}

func TestMonthlySummary_EmptyDataStore(t *testing.T) {
	svc := newBudgetService()

	summary := svc.MonthlySummary(&domain.DataStore{}, 2026, time.January)

	assert.Equal(t, "2026-01", summary.Month)
	assert.Equal(t, int64(0), summary.AvailableToBudget)
	assert.Equal(t, int64(0), summary.TotalIncome)
	assert.Equal(t, int64(0), summary.TotalAssigned)
	assert.Equal(t, int64(0), summary.Uncategorized.Spent)
	assert.Empty(t, summary.Groups)
}

func TestAvailableToBudget(t *testing.T) {
	svc := newBudgetService()
	day := testutil.Date(2026, time.January, 10)

	ds := &domain.DataStore{
		Accounts: []*domain.Account{
			testutil.Account("checking", domain.AccountTypeChecking),
		},
		Categories: []*domain.Category{
			testutil.Category("c1", "Groceries", "Daily Living", 50000, 0),
		},
		Transactions: []*domain.Transaction{
			testutil.Income("t1", "checking", "", 200000, day),
			testutil.Expense("t2", "checking", "c1", -20000, day),
		},
	}

	// Spendable 180000, envelope remainder 50000-20000=30000.
	assert.Equal(t, int64(150000), svc.AvailableToBudget(ds, 2026, time.January))
}

func TestAvailableToBudget_OverspentEnvelopeContributesZero(t *testing.T) {
	svc := newBudgetService()
	day := testutil.Date(2026, time.January, 10)

	ds := &domain.DataStore{
		Accounts: []*domain.Account{
			testutil.Account("checking", domain.AccountTypeChecking),
		},
		Categories: []*domain.Category{
			testutil.Category("c1", "Groceries", "Daily Living", 50000, 0),
		},
		Transactions: []*domain.Transaction{
			testutil.Income("t1", "checking", "", 100000, day),
			testutil.Expense("t2", "checking", "c1", -60000, day),
		},
	}

	// remaining = max(0, 50000-60000) = 0; the overspend is already absorbed
	// by the spendable balance (100000-60000).
	assert.Equal(t, int64(40000), svc.AvailableToBudget(ds, 2026, time.January))
}

func TestAvailableToBudget_CanGoNegative(t *testing.T) {
	svc := newBudgetService()

	ds := &domain.DataStore{
		Accounts: []*domain.Account{
			testutil.Account("checking", domain.AccountTypeChecking),
		},
		Categories: []*domain.Category{
			testutil.Category("c1", "Groceries", "Daily Living", 50000, 0),
		},
	}

	// Nothing in the accounts, 50000 assigned.
	assert.Equal(t, int64(-50000), svc.AvailableToBudget(ds, 2026, time.January))
}

func TestAvailableToBudget_RefundsReduceNetSpending(t *testing.T) {
	svc := newBudgetService()
	day := testutil.Date(2026, time.January, 10)

	refund := testutil.Income("t3", "checking", "c1", 5000, day)

	ds := &domain.DataStore{
		Accounts: []*domain.Account{
			testutil.Account("checking", domain.AccountTypeChecking),
		},
		Categories: []*domain.Category{
			testutil.Category("c1", "Groceries", "Daily Living", 50000, 0),
		},
		Transactions: []*domain.Transaction{
			testutil.Income("t1", "checking", "", 100000, day),
			testutil.Expense("t2", "checking", "c1", -30000, day),
			refund,
		},
	}

	// Spendable 75000, envelope remainder 50000-30000+5000=25000.
	assert.Equal(t, int64(50000), svc.AvailableToBudget(ds, 2026, time.January))
}

func TestAvailableToBudget_EmptyDataStore(t *testing.T) {
	svc := newBudgetService()
	assert.Equal(t, int64(0), svc.AvailableToBudget(&domain.DataStore{}, 2026, time.January))
}

func TestMonthlySummary_AvailableToBudgetMatches(t *testing.T) {
	svc := newBudgetService()
	day := testutil.Date(2026, time.January, 10)

	ds := &domain.DataStore{
		Accounts: []*domain.Account{
			testutil.Account("checking", domain.AccountTypeChecking),
		},
		Categories: []*domain.Category{
			testutil.Category("c1", "Groceries", "Daily Living", 50000, 0),
		},
		Transactions: []*domain.Transaction{
			testutil.Income("t1", "checking", "", 200000, day),
			testutil.Expense("t2", "checking", "c1", -20000, day),
		},
	}

	summary := svc.MonthlySummary(ds, 2026, time.January)
	assert.Equal(t, svc.AvailableToBudget(ds, 2026, time.January), summary.AvailableToBudget)
}
