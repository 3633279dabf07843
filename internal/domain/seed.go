package domain

import "github.com/google/uuid"

// seedCategories is the static list used to initialize a fresh budget.
var seedCategories = []struct {
	name  string
	group string
}{
	{"Salary", IncomeGroup},
	{"Other Income", IncomeGroup},
	{"Rent / Mortgage", "Housing"},
	{"Utilities", "Housing"},
	{"Internet & Phone", "Housing"},
	{"Groceries", "Daily Living"},
	{"Dining Out", "Daily Living"},
	{"Transport", "Daily Living"},
	{"Entertainment", "Lifestyle"},
	{"Subscriptions", "Lifestyle"},
	{"Shopping", "Lifestyle"},
	{"Emergency Fund", "Savings & Goals"},
	{"Vacation", "Savings & Goals"},
}

// DefaultCategories returns the seed category set for a new budget, with
// fresh ids and sort order following the list order. Assigned amounts start
// at zero.
func DefaultCategories() []*Category {
	categories := make([]*Category, len(seedCategories))
	for i, seed := range seedCategories {
		categories[i] = &Category{
			ID:        uuid.NewString(),
			Name:      seed.name,
			Group:     seed.group,
			SortOrder: i,
		}
	}
	return categories
}
