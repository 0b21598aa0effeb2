package transactions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pfa-labs/finance-tracker/internal/common"
)

// Transaction payloads are validated against a JSON Schema before they touch
// the store: type enum, non-negative amount, non-empty category, and a note
// that may be null. Date parseability is checked separately below since the
// schema cannot express it.
const createSchemaJSON = `{
	"type": "object",
	"properties": {
		"type": {"enum": ["income", "expense"]},
		"amount": {"type": "number", "minimum": 0},
		"category": {"type": "string", "minLength": 1},
		"date": {"type": "string"},
		"note": {"type": ["string", "null"]}
	},
	"required": ["type", "amount", "category", "date"],
	"additionalProperties": false
}`

// Partial updates: same field shapes, nothing required, at least one field.
const updateSchemaJSON = `{
	"type": "object",
	"properties": {
		"type": {"enum": ["income", "expense"]},
		"amount": {"type": "number", "minimum": 0},
		"category": {"type": "string", "minLength": 1},
		"date": {"type": "string"},
		"note": {"type": ["string", "null"]}
	},
	"minProperties": 1,
	"additionalProperties": false
}`

var (
	createSchema = mustCompile("transaction-create.json", createSchemaJSON)
	updateSchema = mustCompile("transaction-update.json", updateSchemaJSON)
)

func mustCompile(name, doc string) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, strings.NewReader(doc)); err != nil {
		panic(err)
	}
	return c.MustCompile(name)
}

// Payload is a decoded, validated transaction body. Pointers distinguish
// "absent" from "zero" for partial updates.
type Payload struct {
	Type     *string  `json:"type"`
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Date     *string  `json:"date"`
	Note     *string  `json:"note"`
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006/01/02", "01/02/2006"}

func parseableDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func decodeAndValidate(raw []byte, schema *jsonschema.Schema) (*Payload, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, common.NewAppError("VALIDATION", "invalid JSON body", common.ErrInvalidInput)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, common.NewAppError("VALIDATION", fmt.Sprintf("validation failed: %v", err), common.ErrInvalidInput)
	}

	var p Payload
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&p); err != nil {
		return nil, common.NewAppError("VALIDATION", "invalid JSON body", common.ErrInvalidInput)
	}
	if p.Date != nil && !parseableDate(*p.Date) {
		return nil, common.NewAppError("VALIDATION", "invalid date", common.ErrInvalidInput)
	}
	return &p, nil
}
