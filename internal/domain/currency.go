package domain

// Currency describes how amounts in a given currency are denominated.
// Precision is the number of minor-unit digits: 2 for cents, 0 for yen.
type Currency struct {
	Code      string `json:"code"`
	Precision int    `json:"precision"`
}

// Commonly used currencies.
var (
	USD = Currency{Code: "USD", Precision: 2}
	EUR = Currency{Code: "EUR", Precision: 2}
	GBP = Currency{Code: "GBP", Precision: 2}
	JPY = Currency{Code: "JPY", Precision: 0}
	KRW = Currency{Code: "KRW", Precision: 0}
)
