package service

import (
	"sort"
	"time"

	"github.com/vladimir-e/personal-finance-system/engine/internal/domain"
	"github.com/vladimir-e/personal-finance-system/engine/internal/util"
)

// BudgetService computes the monthly envelope summary and the global
// available-to-budget figure from a ledger snapshot.
type BudgetService struct {
	calcService *CalculationService
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(calcService *CalculationService) *BudgetService {
	return &BudgetService{calcService: calcService}
}

// AvailableToBudget returns the spendable balance minus the amount still
// held in envelopes for the month. An envelope's remainder is
// max(0, assigned + spent): overspent envelopes contribute zero rather than
// a negative value, so overspending is absorbed by the spendable balance
// instead of inflating availability. The result may be negative when more
// is assigned than the accounts hold.
func (s *BudgetService) AvailableToBudget(ds *domain.DataStore, year int, month time.Month) int64 {
	spendable := s.calcService.SpendableBalance(ds)
	spent := spentByCategory(ds.Transactions, year, month)

	var held int64
	for _, cat := range ds.Categories {
		if cat.Archived || cat.Group == domain.IncomeGroup {
			continue
		}
		remaining := cat.Assigned + spent[cat.ID]
		if remaining > 0 {
			held += remaining
		}
	}
	return spendable - held
}

// MonthlySummary computes the per-category and per-group budget view for a
// month. Groups appear in order of first appearance in the stored category
// list; categories within a group are ordered by SortOrder ascending.
func (s *BudgetService) MonthlySummary(ds *domain.DataStore, year int, month time.Month) *domain.MonthlySummary {
	summary := &domain.MonthlySummary{
		Month:  util.FormatMonth(year, month),
		Groups: []*domain.GroupSummary{},
	}

	spent := make(map[string]int64)
	for _, tx := range ds.Transactions {
		if !util.SameMonth(tx.Date, year, month) {
			continue
		}
		if tx.Type == domain.TransactionTypeIncome {
			summary.TotalIncome += tx.Amount
		}
		if tx.CategoryID == "" {
			// Transfers are structurally uncategorized but are not
			// uncategorized spending.
			if tx.Type != domain.TransactionTypeTransfer {
				summary.Uncategorized.Spent += tx.Amount
			}
			continue
		}
		spent[tx.CategoryID] += tx.Amount
	}

	groupOrder := []string{}
	grouped := map[string][]*domain.Category{}
	for _, cat := range ds.Categories {
		if cat.Archived {
			continue
		}
		if _, ok := grouped[cat.Group]; !ok {
			groupOrder = append(groupOrder, cat.Group)
		}
		grouped[cat.Group] = append(grouped[cat.Group], cat)
	}

	for _, name := range groupOrder {
		members := grouped[name]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].SortOrder < members[j].SortOrder
		})

		group := &domain.GroupSummary{
			Name:       name,
			Categories: make([]*domain.CategorySummary, 0, len(members)),
		}
		income := name == domain.IncomeGroup

		for _, cat := range members {
			cs := &domain.CategorySummary{
				ID:    cat.ID,
				Name:  cat.Name,
				Spent: spent[cat.ID],
			}
			// Income buckets are informational: their spend total shows, the
			// envelope math stays pinned to zero.
			if !income {
				cs.Assigned = cat.Assigned
				cs.Available = cs.Assigned + cs.Spent
			}
			group.Categories = append(group.Categories, cs)
			group.TotalAssigned += cs.Assigned
			group.TotalSpent += cs.Spent
			group.TotalAvailable += cs.Available
		}

		summary.Groups = append(summary.Groups, group)
		summary.TotalAssigned += group.TotalAssigned
	}

	summary.AvailableToBudget = s.AvailableToBudget(ds, year, month)
	return summary
}

// spentByCategory sums the month's signed transaction amounts per category,
// skipping transactions with no category (transfers included).
func spentByCategory(transactions []*domain.Transaction, year int, month time.Month) map[string]int64 {
	spent := make(map[string]int64)
	for _, tx := range transactions {
		if tx.CategoryID == "" || !util.SameMonth(tx.Date, year, month) {
			continue
		}
		spent[tx.CategoryID] += tx.Amount
	}
	return spent
}
