package service

import (
	"github.com/vladimir-e/personal-finance-system/engine/internal/domain"
)

// IntegrityService enforces the structural safety rules around account and
// category removal.
type IntegrityService struct {
	calcService *CalculationService
}

// NewIntegrityService creates a new IntegrityService
func NewIntegrityService(calcService *CalculationService) *IntegrityService {
	return &IntegrityService{calcService: calcService}
}

// CanDeleteAccount reports whether an account may be removed outright: true
// only when no transaction references it. This is a reference count, not a
// balance check — a single transaction blocks deletion even if the balance
// nets out to zero.
func (s *IntegrityService) CanDeleteAccount(transactions []*domain.Transaction, accountID string) bool {
	for _, tx := range transactions {
		if tx.AccountID == accountID {
			return false
		}
	}
	return true
}

// CanArchiveAccount reports whether an account may be archived: true iff its
// derived balance is exactly zero, including offsetting transactions that
// sum to zero.
func (s *IntegrityService) CanArchiveAccount(transactions []*domain.Transaction, accountID string) bool {
	return s.calcService.AccountBalance(transactions, accountID) == 0
}

// OnDeleteCategory clears the category reference from every transaction that
// pointed at the deleted category; all other transactions come through with
// equal contents. The input slice and its elements are never mutated.
func (s *IntegrityService) OnDeleteCategory(transactions []*domain.Transaction, categoryID string) []*domain.Transaction {
	result := make([]*domain.Transaction, len(transactions))
	for i, tx := range transactions {
		if tx.CategoryID == categoryID {
			cleared := tx.Clone()
			cleared.CategoryID = ""
			result[i] = cleared
			continue
		}
		result[i] = tx
	}
	return result
}
