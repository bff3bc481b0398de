// Package types defines the shared domain types for recipe costing.
package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Unit is a measurement unit for an ingredient quantity
type Unit string

const (
	UnitGram  Unit = "g"
	UnitKilo  Unit = "kg"
	UnitMilli Unit = "ml"
	UnitLitre Unit = "ltr"
	UnitPiece Unit = "pcs"
)

// DefaultUnit is used when a restore file carries no unit for a line
const DefaultUnit = UnitGram

// Units lists the accepted measurement units in display order
var Units = []Unit{UnitGram, UnitKilo, UnitMilli, UnitLitre, UnitPiece}

// ParseUnit maps free text to a known unit, falling back to the default
func ParseUnit(s string) Unit {
	trimmed := Unit(strings.TrimSpace(s))
	for _, u := range Units {
		if trimmed == u {
			return u
		}
	}
	return DefaultUnit
}

// PricingMode selects the post-processing applied after the core pipeline
type PricingMode string

const (
	// ModeSimple applies no post-processing to the final price
	ModeSimple PricingMode = "simple"

	// ModeDineInDelivery adds a delivery price carrying a 20% platform commission
	ModeDineInDelivery PricingMode = "dine-in-delivery"

	// ModePieceRounded rounds consumer-facing prices to the nearest multiple of 5
	ModePieceRounded PricingMode = "piece-rounded"
)

// ParsePricingMode maps free text to a pricing mode, defaulting to simple
func ParsePricingMode(s string) PricingMode {
	switch PricingMode(strings.TrimSpace(strings.ToLower(s))) {
	case ModeDineInDelivery:
		return ModeDineInDelivery
	case ModePieceRounded:
		return ModePieceRounded
	default:
		return ModeSimple
	}
}

// IngredientLine is a single priced row of a recipe
type IngredientLine struct {
	// Name is the ingredient name; blank lines are excluded from costing
	Name string `json:"name"`

	// Quantity is the amount used per batch
	Quantity decimal.Decimal `json:"quantity"`

	// Unit is the measurement unit of Quantity
	Unit Unit `json:"unit"`

	// UnitPrice is the market price per unit
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// IsBlank reports whether the line carries no ingredient name
func (l IngredientLine) IsBlank() bool {
	return strings.TrimSpace(l.Name) == ""
}

// LineTotal is Quantity * UnitPrice rounded to 2 decimals
func (l IngredientLine) LineTotal() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice).Round(2)
}

// ProductInfo carries the business parameters and derived costs of a product
type ProductInfo struct {
	// Name is the unique store key
	Name string `json:"name"`

	// Yield is the number of sellable units one batch produces
	Yield decimal.Decimal `json:"yield"`

	// WastePct is the expected production waste percentage
	WastePct decimal.Decimal `json:"waste_pct"`

	// PackagingCost is the packaging cost per unit
	PackagingCost decimal.Decimal `json:"packaging_cost"`

	// OverheadAllocPct is the share of the average fixed cost charged to this product
	OverheadAllocPct decimal.Decimal `json:"overhead_alloc_pct"`

	// MarginPct is the profit margin percentage
	MarginPct decimal.Decimal `json:"margin_pct"`

	// VATIncluded indicates whether VAT is folded into the retail price
	VATIncluded bool `json:"vat_included"`

	// Mode selects the pricing post-processing for this product
	Mode PricingMode `json:"mode,omitempty"`

	// Derived values, set by the costing pipeline.

	// RawMaterialPerUnit is the waste-adjusted material cost per unit
	RawMaterialPerUnit decimal.Decimal `json:"raw_material_per_unit"`

	// TotalCost is the all-in cost per unit
	TotalCost decimal.Decimal `json:"total_cost"`

	// MRP is the final consumer-facing retail price
	MRP decimal.Decimal `json:"mrp"`

	// FullBatchMRP is the retail price of an entire batch
	FullBatchMRP decimal.Decimal `json:"full_batch_mrp,omitempty"`

	// PerPieceMRP is the piece-rounded per-unit retail price
	PerPieceMRP decimal.Decimal `json:"per_piece_mrp,omitempty"`

	// DeliveryMRP is the retail price on a delivery platform
	DeliveryMRP decimal.Decimal `json:"delivery_mrp,omitempty"`

	// DineInMRP is the retail price for dine-in sales
	DineInMRP decimal.Decimal `json:"dine_in_mrp,omitempty"`
}

// Product is a named recipe plus its costing strategy
type Product struct {
	Info   ProductInfo      `json:"info"`
	Recipe []IngredientLine `json:"recipe"`
}

// Clone returns a deep copy; the store hands out copies so editors
// never mutate store-owned records in place
func (p Product) Clone() Product {
	out := p
	out.Recipe = make([]IngredientLine, len(p.Recipe))
	copy(out.Recipe, p.Recipe)
	return out
}

// CleanRecipe returns the recipe with blank-name lines removed
func (p Product) CleanRecipe() []IngredientLine {
	out := make([]IngredientLine, 0, len(p.Recipe))
	for _, l := range p.Recipe {
		if !l.IsBlank() {
			out = append(out, l)
		}
	}
	return out
}
