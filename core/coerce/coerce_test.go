// Package coerce - totality tests
package coerce

import (
	"testing"

	"github.com/shopspring/decimal"
)

// TestNumberIsTotal proves coercion yields a finite 2-decimal number for
// any input and never panics
func TestNumberIsTotal(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"   ", "0"},
		{"nan", "0"},
		{"NaN", "0"},
		{"None", "0"},
		{"null", "0"},
		{"n/a", "0"},
		{"-", "0"},
		{"abc", "0"},
		{"12abc", "0"},
		{"0", "0"},
		{"42", "42"},
		{"  42.5  ", "42.5"},
		{"3.14159", "3.14"},
		{"2.675", "2.68"},
		{"-1.005", "-1.01"},
		{"1,250.75", "1250.75"},
		{"1.5e2", "150"},
	}
	for _, tc := range cases {
		got := Number(tc.in)
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("Number(%q): got %s, want %s", tc.in, got, tc.want)
		}
	}
}

// TestNumberOr substitutes the default only for missing values, not for
// garbage text
func TestNumberOr(t *testing.T) {
	def := decimal.NewFromInt(100)
	if got := NumberOr("", def); !got.Equal(def) {
		t.Errorf("empty: got %s, want 100", got)
	}
	if got := NumberOr("nan", def); !got.Equal(def) {
		t.Errorf("nan: got %s, want 100", got)
	}
	if got := NumberOr("55", def); !got.Equal(decimal.NewFromInt(55)) {
		t.Errorf("55: got %s, want 55", got)
	}
	if got := NumberOr("garbage", def); !got.IsZero() {
		t.Errorf("garbage: got %s, want 0", got)
	}
}

// TestCleanText normalizes placeholder text to empty
func TestCleanText(t *testing.T) {
	cases := map[string]string{
		"  flour ": "flour",
		"nan":      "",
		"NaN":      "",
		"None":     "",
		"":         "",
		"Sugar":    "Sugar",
	}
	for in, want := range cases {
		if got := CleanText(in); got != want {
			t.Errorf("CleanText(%q): got %q, want %q", in, got, want)
		}
	}
}
