package service

import (
	"github.com/vladimir-e/personal-finance-system/engine/internal/domain"
)

// CalculationService derives account balances from the transaction ledger.
type CalculationService struct{}

// NewCalculationService creates a new CalculationService
func NewCalculationService() *CalculationService {
	return &CalculationService{}
}

// AccountBalance sums the amounts of every transaction posted to the given
// account. An account with no transactions, or an id absent from the ledger,
// has balance zero. Addition is commutative, so the result is independent of
// transaction order. Amounts are int64 minor units; the int64 range is the
// correctness boundary and is not guarded at runtime.
func (s *CalculationService) AccountBalance(transactions []*domain.Transaction, accountID string) int64 {
	var balance int64
	for _, tx := range transactions {
		if tx.AccountID == accountID {
			balance += tx.Amount
		}
	}
	return balance
}

// BalancesByAccount sums transaction amounts per account in a single pass.
func (s *CalculationService) BalancesByAccount(transactions []*domain.Transaction) map[string]int64 {
	balances := make(map[string]int64)
	for _, tx := range transactions {
		balances[tx.AccountID] += tx.Amount
	}
	return balances
}

// SpendableBalance sums the balances of all non-archived accounts whose type
// counts toward money available to budget.
func (s *CalculationService) SpendableBalance(ds *domain.DataStore) int64 {
	balances := s.BalancesByAccount(ds.Transactions)

	var total int64
	for _, account := range ds.Accounts {
		if account.Archived || !account.Type.Spendable() {
			continue
		}
		total += balances[account.ID]
	}
	return total
}
