package domain

import "time"

type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

type TransactionSource string

const (
	SourceManual  TransactionSource = "manual"
	SourceAIAgent TransactionSource = "ai_agent"
	SourceImport  TransactionSource = "import"
)

// Transaction is a single ledger entry. Amount is in integer minor units,
// signed: income and transfer inflows are positive, expenses and transfer
// outflows are negative. Date is a calendar day (midnight UTC, no time
// component carries meaning).
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	AccountID   string          `json:"accountId"`
	Date        time.Time       `json:"date"`
	CategoryID  string          `json:"categoryId,omitempty"`
	Description string          `json:"description,omitempty"`
	Payee       string          `json:"payee,omitempty"`
	// TransferPairID links the two legs of a transfer: each leg holds the
	// other leg's ID. Empty for non-transfer transactions.
	TransferPairID string            `json:"transferPairId,omitempty"`
	Amount         int64             `json:"amount"`
	Notes          string            `json:"notes,omitempty"`
	Source         TransactionSource `json:"source"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// Clone returns a copy of the transaction.
func (t *Transaction) Clone() *Transaction {
	c := *t
	return &c
}
