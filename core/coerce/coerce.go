// Package coerce provides best-effort numeric coercion for spreadsheet cells.
// Coercion is total: any input yields a finite 2-decimal number, never an error.
package coerce

import (
	"strings"

	"github.com/shopspring/decimal"
)

// placeholders are text values spreadsheets emit for missing cells.
// They coerce to zero and render as empty text.
var placeholders = map[string]bool{
	"nan":  true,
	"none": true,
	"null": true,
	"n/a":  true,
	"-":    true,
}

// Number converts an arbitrary cell value to a decimal rounded to 2 places.
// Empty text, placeholder text and unparseable text all coerce to zero.
func Number(cell string) decimal.Decimal {
	s := strings.TrimSpace(cell)
	if s == "" || placeholders[strings.ToLower(s)] {
		return decimal.Zero
	}
	// Tolerate human-authored thousands separators and currency-ish noise.
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(2)
}

// NumberOr converts a cell like Number but substitutes def when the cell
// is empty or a placeholder. Unparseable non-empty text still yields zero.
func NumberOr(cell string, def decimal.Decimal) decimal.Decimal {
	s := strings.TrimSpace(cell)
	if s == "" || placeholders[strings.ToLower(s)] {
		return def.Round(2)
	}
	return Number(cell)
}

// IsPlaceholder reports whether the text is a missing-value placeholder
func IsPlaceholder(cell string) bool {
	return placeholders[strings.ToLower(strings.TrimSpace(cell))]
}

// CleanText trims a cell and normalizes placeholder text to empty
func CleanText(cell string) string {
	s := strings.TrimSpace(cell)
	if placeholders[strings.ToLower(s)] {
		return ""
	}
	return s
}
