package domain

// MonthlySummary is the derived per-month budget view. It has no lifecycle
// of its own: it exists only as the return value of a computation and is
// never persisted.
type MonthlySummary struct {
	Month             string               `json:"month"`
	AvailableToBudget int64                `json:"availableToBudget"`
	TotalIncome       int64                `json:"totalIncome"`
	TotalAssigned     int64                `json:"totalAssigned"`
	Groups            []*GroupSummary      `json:"groups"`
	Uncategorized     UncategorizedSummary `json:"uncategorized"`
}

// GroupSummary aggregates the categories sharing a group name. For the
// Income group, TotalAssigned and TotalAvailable are pinned to zero while
// TotalSpent still reflects real activity.
type GroupSummary struct {
	Name           string             `json:"name"`
	Categories     []*CategorySummary `json:"categories"`
	TotalAssigned  int64              `json:"totalAssigned"`
	TotalSpent     int64              `json:"totalSpent"`
	TotalAvailable int64              `json:"totalAvailable"`
}

// CategorySummary is one envelope's month: Spent is the signed sum of the
// month's transactions (typically negative), Available = Assigned + Spent.
type CategorySummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Assigned  int64  `json:"assigned"`
	Spent     int64  `json:"spent"`
	Available int64  `json:"available"`
}

// UncategorizedSummary tracks non-transfer spending with no category.
type UncategorizedSummary struct {
	Spent int64 `json:"spent"`
}
