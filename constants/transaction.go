package constants

// Transaction types. The inference pipeline only ever suggests expenses.
const (
	TypeExpense = "expense"
	TypeIncome  = "income"
)

// Fixed placeholder values for fields a receipt cannot tell us. The caller
// is expected to let the user edit these before committing the transaction.
const (
	DefaultCategory = "Uncategorized"
	SuggestionNote  = "Parsed from receipt"
)
