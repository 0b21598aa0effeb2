package entity

// Transaction is a committed ledger entry. Date is stored as the caller
// supplied it (ISO "2006-01-02" after validation); timestamps are RFC 3339.
type Transaction struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Date      string  `json:"date"`
	Note      *string `json:"note"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// CategorySummary is one row of the expenses-by-category aggregation.
type CategorySummary struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// DateSummary is one row of the per-date income/expense aggregation.
type DateSummary struct {
	Date     string  `json:"date"`
	Expenses float64 `json:"expenses"`
	Income   float64 `json:"income"`
}
