// Package suggest assembles inferred receipt fields into a candidate
// transaction for the user to confirm or edit.
package suggest

import (
	"github.com/pfa-labs/finance-tracker/constants"
	"github.com/pfa-labs/finance-tracker/internal/parse"
)

// Suggestion is the not-yet-persisted transaction candidate returned to the
// caller. Type, category and note are fixed placeholders; the pipeline never
// infers income. RawText is echoed for transparency and debugging.
type Suggestion struct {
	Type     string   `json:"type"`
	Amount   *float64 `json:"amount"`
	Category string   `json:"category"`
	Date     *string  `json:"date"`
	Note     string   `json:"note"`
	RawText  string   `json:"rawText"`
}

// Assemble builds a Suggestion from inferred fields. Total: it always
// succeeds, even when both fields are absent.
func Assemble(fields parse.Fields, rawText string) Suggestion {
	s := Suggestion{
		Type:     constants.TypeExpense,
		Category: constants.DefaultCategory,
		Note:     constants.SuggestionNote,
		RawText:  rawText,
	}
	if fields.Amount != nil {
		v := fields.Amount.Value
		s.Amount = &v
	}
	if fields.Date != nil {
		d := fields.Date.Value
		s.Date = &d
	}
	return s
}
