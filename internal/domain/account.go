package domain

import "time"

type AccountType string

const (
	AccountTypeCash       AccountType = "cash"
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeAsset      AccountType = "asset"
	AccountTypeCrypto     AccountType = "crypto"
)

// spendableTypes are the account types counted toward money available to
// budget. Loans, assets and crypto are tracked but never budgeted from.
var spendableTypes = map[AccountType]bool{
	AccountTypeCash:       true,
	AccountTypeChecking:   true,
	AccountTypeSavings:    true,
	AccountTypeCreditCard: true,
}

// Spendable reports whether balances of this account type count toward the
// money available to budget.
func (t AccountType) Spendable() bool {
	return spendableTypes[t]
}

type Account struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        AccountType `json:"type"`
	Institution string      `json:"institution,omitempty"`
	// ReportedBalance is the balance the institution last reported, in minor
	// units. Nil when the account has never been reconciled.
	ReportedBalance *int64     `json:"reportedBalance,omitempty"`
	ReconciledAt    *time.Time `json:"reconciledAt,omitempty"`
	Archived        bool       `json:"archived"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	c := *a
	if a.ReportedBalance != nil {
		v := *a.ReportedBalance
		c.ReportedBalance = &v
	}
	if a.ReconciledAt != nil {
		v := *a.ReconciledAt
		c.ReconciledAt = &v
	}
	return &c
}
