// Package store defines the storage collaborator contract the engine
// computes against, plus an in-memory reference implementation.
package store

import (
	"github.com/vladimir-e/personal-finance-system/engine/internal/domain"
)

// Ledger hands out full, consistent snapshots of the ledger and persists
// records the engine produces. Because a transfer's invariant requires two
// records to change together, the multi-record operations are atomic: no
// reader may ever observe a state where only one leg of a pair exists.
// Implementations surface domain.ErrNotFound for absent ids and
// domain.ErrValidation for records that violate structural invariants.
type Ledger interface {
	// Snapshot returns a deep copy of the full ledger. Callers own the
	// result and may share it across goroutines freely.
	Snapshot() *domain.DataStore

	CreateAccount(account *domain.Account) error
	UpdateAccount(account *domain.Account) error
	DeleteAccount(id string) error

	CreateCategory(category *domain.Category) error
	UpdateCategory(category *domain.Category) error
	DeleteCategory(id string) error

	CreateTransaction(tx *domain.Transaction) error
	// CreateTransferPair persists both legs of a transfer as a single atomic
	// unit.
	CreateTransferPair(outflow, inflow *domain.Transaction) error
	DeleteTransaction(id string) error
	// ReplaceTransactions swaps the whole transaction list atomically. The
	// engine's propagate/cascade/category-deletion rewrites commit through
	// this so paired records always change together.
	ReplaceTransactions(transactions []*domain.Transaction) error
}
