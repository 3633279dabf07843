package domain

import "fmt"

// ValidateTransaction enforces the structural invariants a transaction must
// satisfy before it is admitted into the ledger: income amounts are
// non-negative, expense amounts are non-positive, and transfer legs carry no
// category. The pure computations assume already-valid input and do not call
// this; it belongs to the data-entry boundary.
func ValidateTransaction(tx *Transaction) error {
	if tx.AccountID == "" {
		return fmt.Errorf("%w: transaction requires an account id", ErrValidation)
	}
	switch tx.Type {
	case TransactionTypeIncome:
		if tx.Amount < 0 {
			return fmt.Errorf("%w: income amount must not be negative", ErrValidation)
		}
	case TransactionTypeExpense:
		if tx.Amount > 0 {
			return fmt.Errorf("%w: expense amount must not be positive", ErrValidation)
		}
	case TransactionTypeTransfer:
		if tx.CategoryID != "" {
			return fmt.Errorf("%w: transfer legs carry no category", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown transaction type %q", ErrValidation, tx.Type)
	}
	return nil
}

// ValidateCategory enforces the structural invariants of a budget category.
func ValidateCategory(c *Category) error {
	if c.Name == "" {
		return fmt.Errorf("%w: category requires a name", ErrValidation)
	}
	if c.Assigned < 0 {
		return fmt.Errorf("%w: assigned amount must not be negative", ErrValidation)
	}
	return nil
}
