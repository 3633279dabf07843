package domain

// DataStore is a full, consistent snapshot of the ledger: the unit of input
// to every computation in the engine. Nothing in the engine mutates a
// snapshot; derived values are recomputed from it on demand, so a snapshot
// may be shared across goroutines freely.
type DataStore struct {
	Accounts     []*Account     `json:"accounts"`
	Transactions []*Transaction `json:"transactions"`
	Categories   []*Category    `json:"categories"`
}

// Clone returns a deep copy of the snapshot.
func (ds *DataStore) Clone() *DataStore {
	c := &DataStore{
		Accounts:     make([]*Account, len(ds.Accounts)),
		Transactions: make([]*Transaction, len(ds.Transactions)),
		Categories:   make([]*Category, len(ds.Categories)),
	}
	for i, a := range ds.Accounts {
		c.Accounts[i] = a.Clone()
	}
	for i, t := range ds.Transactions {
		c.Transactions[i] = t.Clone()
	}
	for i, cat := range ds.Categories {
		c.Categories[i] = cat.Clone()
	}
	return c
}
