package store

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vladimir-e/personal-finance-system/engine/internal/domain"
)

// MemoryStore is an in-memory Ledger for tests and embedded use. A single
// RWMutex makes every write, including the multi-record ones, atomic with
// respect to Snapshot. It is not durable: durability is the embedding
// application's concern, not the engine's.
type MemoryStore struct {
	mu     sync.RWMutex
	logger zerolog.Logger

	accounts     []*domain.Account
	categories   []*domain.Category
	transactions []*domain.Transaction
}

// NewMemoryStore creates an empty MemoryStore. Logging is off by default.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{logger: zerolog.Nop()}
}

// SetLogger enables debug logging of commits.
func (s *MemoryStore) SetLogger(logger zerolog.Logger) {
	s.logger = logger
}

// Snapshot returns a deep copy of the ledger.
func (s *MemoryStore) Snapshot() *domain.DataStore {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds := &domain.DataStore{
		Accounts:     s.accounts,
		Transactions: s.transactions,
		Categories:   s.categories,
	}
	return ds.Clone()
}

// CreateAccount adds a new account.
func (s *MemoryStore) CreateAccount(account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findAccount(account.ID) >= 0 {
		return fmt.Errorf("%w: account %s", domain.ErrAlreadyExists, account.ID)
	}
	s.accounts = append(s.accounts, account.Clone())
	s.logger.Debug().Str("account_id", account.ID).Msg("account created")
	return nil
}

// UpdateAccount replaces an existing account.
func (s *MemoryStore) UpdateAccount(account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findAccount(account.ID)
	if i < 0 {
		return fmt.Errorf("%w: account %s", domain.ErrNotFound, account.ID)
	}
	s.accounts[i] = account.Clone()
	return nil
}

// DeleteAccount removes an account by id.
func (s *MemoryStore) DeleteAccount(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findAccount(id)
	if i < 0 {
		return fmt.Errorf("%w: account %s", domain.ErrNotFound, id)
	}
	s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
	s.logger.Debug().Str("account_id", id).Msg("account deleted")
	return nil
}

// CreateCategory adds a new category after validating it.
func (s *MemoryStore) CreateCategory(category *domain.Category) error {
	if err := domain.ValidateCategory(category); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findCategory(category.ID) >= 0 {
		return fmt.Errorf("%w: category %s", domain.ErrAlreadyExists, category.ID)
	}
	s.categories = append(s.categories, category.Clone())
	return nil
}

// UpdateCategory replaces an existing category after validating it.
func (s *MemoryStore) UpdateCategory(category *domain.Category) error {
	if err := domain.ValidateCategory(category); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findCategory(category.ID)
	if i < 0 {
		return fmt.Errorf("%w: category %s", domain.ErrNotFound, category.ID)
	}
	s.categories[i] = category.Clone()
	return nil
}

// DeleteCategory removes a category by id. Rewriting the transactions that
// referenced it is the caller's job (IntegrityService.OnDeleteCategory
// followed by ReplaceTransactions).
func (s *MemoryStore) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findCategory(id)
	if i < 0 {
		return fmt.Errorf("%w: category %s", domain.ErrNotFound, id)
	}
	s.categories = append(s.categories[:i], s.categories[i+1:]...)
	return nil
}

// CreateTransaction adds a single non-transfer transaction after validating
// it. Transfer legs must go through CreateTransferPair.
func (s *MemoryStore) CreateTransaction(tx *domain.Transaction) error {
	if err := domain.ValidateTransaction(tx); err != nil {
		return err
	}
	if tx.TransferPairID != "" {
		return fmt.Errorf("%w: transfer legs must be committed as a pair", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findTransaction(tx.ID) >= 0 {
		return fmt.Errorf("%w: transaction %s", domain.ErrAlreadyExists, tx.ID)
	}
	s.transactions = append(s.transactions, tx.Clone())
	s.logger.Debug().Str("transaction_id", tx.ID).Msg("transaction created")
	return nil
}

// CreateTransferPair persists both legs of a transfer under one lock, so a
// concurrent Snapshot sees either no leg or both.
func (s *MemoryStore) CreateTransferPair(outflow, inflow *domain.Transaction) error {
	if err := domain.ValidateTransaction(outflow); err != nil {
		return err
	}
	if err := domain.ValidateTransaction(inflow); err != nil {
		return err
	}
	if outflow.TransferPairID != inflow.ID || inflow.TransferPairID != outflow.ID {
		return fmt.Errorf("%w: transfer legs must reference each other", domain.ErrValidation)
	}
	if outflow.Amount != -inflow.Amount {
		return fmt.Errorf("%w: transfer legs must be additive inverses", domain.ErrValidation)
	}
	if !outflow.Date.Equal(inflow.Date) {
		return fmt.Errorf("%w: transfer legs must share a date", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findTransaction(outflow.ID) >= 0 || s.findTransaction(inflow.ID) >= 0 {
		return fmt.Errorf("%w: transfer leg", domain.ErrAlreadyExists)
	}
	s.transactions = append(s.transactions, outflow.Clone(), inflow.Clone())
	s.logger.Debug().
		Str("outflow_id", outflow.ID).
		Str("inflow_id", inflow.ID).
		Msg("transfer pair created")
	return nil
}

// DeleteTransaction removes a single transaction by id. Deleting a transfer
// leg this way would dangle its sibling; those go through
// TransferService.CascadeDelete plus ReplaceTransactions instead.
func (s *MemoryStore) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findTransaction(id)
	if i < 0 {
		return fmt.Errorf("%w: transaction %s", domain.ErrNotFound, id)
	}
	if s.transactions[i].TransferPairID != "" {
		return fmt.Errorf("%w: transfer legs must be removed as a pair", domain.ErrValidation)
	}
	s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
	return nil
}

// ReplaceTransactions swaps the whole transaction list in one step.
func (s *MemoryStore) ReplaceTransactions(transactions []*domain.Transaction) error {
	replacement := make([]*domain.Transaction, len(transactions))
	for i, tx := range transactions {
		replacement[i] = tx.Clone()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = replacement
	s.logger.Debug().Int("count", len(replacement)).Msg("transactions replaced")
	return nil
}

func (s *MemoryStore) findAccount(id string) int {
	for i, a := range s.accounts {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) findCategory(id string) int {
	for i, c := range s.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) findTransaction(id string) int {
	for i, t := range s.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}

var _ Ledger = (*MemoryStore)(nil)
