package transactions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfa-labs/finance-tracker/internal/common"
)

func TestDecodeAndValidate_Create(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid expense", `{"type":"expense","amount":11.50,"category":"Food","date":"2024-03-14"}`, false},
		{"valid income with note", `{"type":"income","amount":100,"category":"Salary","date":"2024-03-01","note":"march"}`, false},
		{"null note allowed", `{"type":"expense","amount":1,"category":"Misc","date":"2024-03-01","note":null}`, false},
		{"zero amount allowed", `{"type":"expense","amount":0,"category":"Misc","date":"2024-03-01"}`, false},
		{"rfc3339 date", `{"type":"expense","amount":1,"category":"Misc","date":"2024-03-01T10:00:00Z"}`, false},
		{"slash date", `{"type":"expense","amount":1,"category":"Misc","date":"03/14/2024"}`, false},

		{"not json", `{{{`, true},
		{"missing type", `{"amount":1,"category":"Misc","date":"2024-03-01"}`, true},
		{"missing amount", `{"type":"expense","category":"Misc","date":"2024-03-01"}`, true},
		{"missing category", `{"type":"expense","amount":1,"date":"2024-03-01"}`, true},
		{"missing date", `{"type":"expense","amount":1,"category":"Misc"}`, true},
		{"bad type", `{"type":"transfer","amount":1,"category":"Misc","date":"2024-03-01"}`, true},
		{"negative amount", `{"type":"expense","amount":-5,"category":"Misc","date":"2024-03-01"}`, true},
		{"string amount", `{"type":"expense","amount":"5","category":"Misc","date":"2024-03-01"}`, true},
		{"empty category", `{"type":"expense","amount":1,"category":"","date":"2024-03-01"}`, true},
		{"unparseable date", `{"type":"expense","amount":1,"category":"Misc","date":"not-a-date"}`, true},
		{"unknown field", `{"type":"expense","amount":1,"category":"Misc","date":"2024-03-01","extra":true}`, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := decodeAndValidate([]byte(tc.body), createSchema)
			if tc.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, p.Type)
			require.NotNil(t, p.Amount)
		})
	}
}

func TestDecodeAndValidate_Update(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"amount only", `{"amount":12.00}`, false},
		{"category only", `{"category":"Dining"}`, false},
		{"note to null", `{"note":null}`, false},
		{"full body", `{"type":"income","amount":1,"category":"Misc","date":"2024-03-01","note":"x"}`, false},

		{"empty object", `{}`, true},
		{"bad type", `{"type":"transfer"}`, true},
		{"negative amount", `{"amount":-1}`, true},
		{"unknown field", `{"something":1}`, true},
		{"unparseable date", `{"date":"tomorrow"}`, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeAndValidate([]byte(tc.body), updateSchema)
			if tc.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseableDate(t *testing.T) {
	for _, ok := range []string{"2024-03-14", "2024/03/14", "03/14/2024", "2024-03-14T12:00:00Z"} {
		assert.True(t, parseableDate(ok), ok)
	}
	for _, bad := range []string{"", "yesterday", "14.03.2024", "2024-13-40"} {
		assert.False(t, parseableDate(bad), bad)
	}
}
