package domain

// IncomeGroup is the reserved group name for income buckets. Categories in
// it are informational: they collect income for display but never take part
// in envelope math.
const IncomeGroup = "Income"

// Category is a budget envelope. Assigned is the amount allotted for the
// month, in minor units, and is never negative.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Group     string `json:"group"`
	Assigned  int64  `json:"assigned"`
	SortOrder int    `json:"sortOrder"`
	Archived  bool   `json:"archived"`
}

// Clone returns a copy of the category.
func (c *Category) Clone() *Category {
	d := *c
	return &d
}
