// Package parse infers a monetary amount and a date from noisy receipt text.
// Both inferences are keyword-anchored first, with a documented fallback; a
// miss on both strategies is a valid absent field, never an error.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// Source records which strategy produced an inferred field. A keyword match
// is high confidence; a fallback guess is best-effort.
type Source string

const (
	SourceKeyword  Source = "keyword"
	SourceFallback Source = "fallback"
)

// Amount is a non-negative value with two decimal places of source precision.
type Amount struct {
	Value  float64
	Source Source
}

// Date is a date-shaped token taken verbatim from the text, unvalidated.
type Date struct {
	Value  string
	Source Source
}

// Fields is the result of one inference pass. Nil means absent.
type Fields struct {
	Amount *Amount
	Date   *Date
}

var (
	// "Total: 1,234.56" -- keyword as its own word, so "Subtotal" lines do
	// not win over the fallback scan
	reAmountKeyword = regexp.MustCompile(`(?i)\btotal[:\s]*([\d,]+\.\d{2})`)
	// any two-decimal number, thousands separators optional
	reAmountAny = regexp.MustCompile(`[\d,]+\.\d{2}`)
	// "Date: 03/14/2024" -- keyword followed by digits and /-. separators
	reDateKeyword = regexp.MustCompile(`(?i)\bdate[:\s]*([\d/.-]+)`)
	// first date-shaped token anywhere: 2-4 digits, sep, 1-2 digits, sep, 1-4 digits
	reDateShape = regexp.MustCompile(`\d{2,4}[/.-]\d{1,2}[/.-]\d{1,4}`)
)

// InferFields extracts a best-guess amount and date from extracted receipt
// text. Pure and deterministic; the two extractions are independent.
func InferFields(text string) Fields {
	return Fields{
		Amount: inferAmount(text),
		Date:   inferDate(text),
	}
}

// inferAmount prefers a number anchored to a "total" keyword, because
// receipts also print subtotal/tax/discount lines. Without a keyword match it
// takes the maximum two-decimal number in the text: on a receipt the largest
// such number is very often the grand total. Keep the max-of-all-matches rule
// exactly; downstream behavior depends on it.
func inferAmount(text string) *Amount {
	if m := reAmountKeyword.FindStringSubmatch(text); m != nil {
		return &Amount{Value: parseDecimal(m[1]), Source: SourceKeyword}
	}
	var max float64
	found := false
	for _, tok := range reAmountAny.FindAllString(text, -1) {
		v := parseDecimal(tok)
		if !found || v > max {
			max = v
			found = true
		}
	}
	if !found {
		return nil
	}
	return &Amount{Value: max, Source: SourceFallback}
}

// inferDate takes the token after a "date" keyword verbatim, else the first
// date-shaped token in left-to-right scan order. No reformatting, and no
// validation that the token is a real calendar date.
func inferDate(text string) *Date {
	if m := reDateKeyword.FindStringSubmatch(text); m != nil {
		return &Date{Value: m[1], Source: SourceKeyword}
	}
	if tok := reDateShape.FindString(text); tok != "" {
		return &Date{Value: tok, Source: SourceFallback}
	}
	return nil
}

// parseDecimal strips thousands separators and parses. Inputs always match
// a digits-and-commas + ".dd" shape, so the parse cannot fail.
func parseDecimal(s string) float64 {
	v, _ := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	return v
}
