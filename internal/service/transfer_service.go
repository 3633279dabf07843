package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/vladimir-e/personal-finance-system/engine/internal/domain"
)

// IDGenerator produces unique identifiers for new transactions.
type IDGenerator func() string

// TransferService models transfers as two linked transactions: an outflow on
// the source account and an inflow on the destination, each holding the
// other's id in TransferPairID. At any stable point in the ledger the legs
// are additive inverses and share a date; the three operations here preserve
// that invariant.
type TransferService struct {
	newID IDGenerator
}

// NewTransferService creates a new TransferService. A nil id generator
// defaults to random UUIDs; tests inject a deterministic one.
func NewTransferService(newID IDGenerator) *TransferService {
	if newID == nil {
		newID = uuid.NewString
	}
	return &TransferService{newID: newID}
}

// CreateTransferInput holds the input for creating a transfer pair.
type CreateTransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        int64
	Date          time.Time
	Description   string
	Payee         string
	Notes         string
}

// CreatePair builds the two legs of a transfer. The magnitude is normalized
// via absolute value regardless of the input sign: the outflow leg gets
// -|amount|, the inflow leg +|amount|. Both legs share the date and the
// optional fields, carry no category, and reference each other by id.
func (s *TransferService) CreatePair(input CreateTransferInput) (outflow, inflow *domain.Transaction) {
	amount := input.Amount
	if amount < 0 {
		amount = -amount
	}
	createdAt := time.Now().UTC()

	outflow = s.buildLeg(input.FromAccountID, -amount, input, createdAt)
	inflow = s.buildLeg(input.ToAccountID, amount, input, createdAt)
	outflow.TransferPairID = inflow.ID
	inflow.TransferPairID = outflow.ID
	return outflow, inflow
}

// buildLeg constructs one transfer leg with every field accounted for in one
// place.
func (s *TransferService) buildLeg(accountID string, amount int64, input CreateTransferInput, createdAt time.Time) *domain.Transaction {
	return &domain.Transaction{
		ID:          s.newID(),
		Type:        domain.TransactionTypeTransfer,
		AccountID:   accountID,
		Date:        input.Date,
		CategoryID:  "",
		Description: input.Description,
		Payee:       input.Payee,
		Amount:      amount,
		Notes:       input.Notes,
		Source:      domain.SourceManual,
		CreatedAt:   createdAt,
	}
}

// PropagateUpdate mirrors an edited transfer leg onto its sibling: the
// sibling's amount becomes the negation of the edited amount and its date is
// aligned, every other field and every other transaction is left untouched.
// A transaction with no transfer pair passes through unchanged. The input
// slice and its elements are never mutated.
func (s *TransferService) PropagateUpdate(transactions []*domain.Transaction, updated *domain.Transaction) []*domain.Transaction {
	if updated.TransferPairID == "" {
		return transactions
	}

	result := make([]*domain.Transaction, len(transactions))
	for i, tx := range transactions {
		if tx.ID == updated.TransferPairID {
			sibling := tx.Clone()
			sibling.Amount = -updated.Amount
			sibling.Date = updated.Date
			result[i] = sibling
			continue
		}
		result[i] = tx
	}
	return result
}

// CascadeDelete removes the transaction with the given id and, when it is a
// transfer leg, its sibling as well. A missing id is a no-op returning the
// input as-is. The input slice is never mutated.
func (s *TransferService) CascadeDelete(transactions []*domain.Transaction, deletedID string) []*domain.Transaction {
	var target *domain.Transaction
	for _, tx := range transactions {
		if tx.ID == deletedID {
			target = tx
			break
		}
	}
	if target == nil {
		return transactions
	}

	drop := map[string]bool{deletedID: true}
	if target.TransferPairID != "" {
		drop[target.TransferPairID] = true
	}

	result := make([]*domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if !drop[tx.ID] {
			result = append(result, tx)
		}
	}
	return result
}
