// Package types - parsing tests
package types

import "testing"

func TestParseUnit(t *testing.T) {
	cases := map[string]Unit{
		"g":       UnitGram,
		" kg ":    UnitKilo,
		"ml":      UnitMilli,
		"ltr":     UnitLitre,
		"pcs":     UnitPiece,
		"bushels": UnitGram,
		"":        UnitGram,
	}
	for in, want := range cases {
		if got := ParseUnit(in); got != want {
			t.Errorf("ParseUnit(%q): got %s, want %s", in, got, want)
		}
	}
}

func TestParsePricingMode(t *testing.T) {
	cases := map[string]PricingMode{
		"simple":           ModeSimple,
		"dine-in-delivery": ModeDineInDelivery,
		" Piece-Rounded ":  ModePieceRounded,
		"":                 ModeSimple,
		"unknown":          ModeSimple,
	}
	for in, want := range cases {
		if got := ParsePricingMode(in); got != want {
			t.Errorf("ParsePricingMode(%q): got %s, want %s", in, got, want)
		}
	}
}
