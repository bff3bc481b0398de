// Package costing implements the recipe costing pipeline.
//
// The pipeline turns a recipe and a set of business parameters into a
// per-unit cost and a retail price. Every intermediate value is rounded
// to 2 decimals before it feeds the next step; callers depend on that to
// reproduce prices exactly, so none of the rounds here are cosmetic.
package costing

import (
	"recipe-cost/core/types"
	"recipe-cost/internal/errors"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	five    = decimal.NewFromInt(5)

	// DefaultVATRate is the VAT multiplier applied when VAT is included (13%)
	DefaultVATRate = decimal.RequireFromString("1.13")

	// deliveryShare is the revenue share kept after a 20% platform commission
	deliveryShare = decimal.RequireFromString("0.8")
)

// Params are the business inputs of one pipeline run
type Params struct {
	// Yield is the number of sellable units per batch; must be positive
	Yield decimal.Decimal

	// WastePct is the production waste percentage; values >= 100 disable
	// the waste adjustment instead of dividing through zero
	WastePct decimal.Decimal

	// PackagingCost is the packaging cost per unit
	PackagingCost decimal.Decimal

	// OverheadPerUnit is the allocated fixed cost per unit (see Overheads.PerUnit)
	OverheadPerUnit decimal.Decimal

	// MarginPct is the profit margin percentage; values >= 100 disable
	// the margin markup instead of dividing through zero
	MarginPct decimal.Decimal

	// VATIncluded folds VAT into the final price
	VATIncluded bool

	// VATRate overrides DefaultVATRate when non-zero
	VATRate decimal.Decimal

	// Mode selects the post-processing applied after the core pipeline
	Mode types.PricingMode
}

// Breakdown carries every intermediate of the pipeline so callers never
// need to recompute a step
type Breakdown struct {
	// BatchRawCost is the sum of ingredient line totals
	BatchRawCost decimal.Decimal `json:"batch_raw_cost"`

	// BatchWithWaste is the batch cost adjusted for production waste
	BatchWithWaste decimal.Decimal `json:"batch_with_waste"`

	// RawMaterialPerUnit is BatchWithWaste spread over the yield
	RawMaterialPerUnit decimal.Decimal `json:"raw_material_per_unit"`

	// OverheadPerUnit is the allocated fixed cost per unit
	OverheadPerUnit decimal.Decimal `json:"overhead_per_unit"`

	// PackagingCost is the packaging cost per unit
	PackagingCost decimal.Decimal `json:"packaging_cost"`

	// TotalCost is the all-in cost per unit
	TotalCost decimal.Decimal `json:"total_cost"`

	// PriceBeforeVAT is the margin-adjusted price before VAT
	PriceBeforeVAT decimal.Decimal `json:"price_before_vat"`

	// FinalPrice is the consumer-facing price after VAT and post-processing
	FinalPrice decimal.Decimal `json:"final_price"`

	// FullBatchMRP is FinalPrice scaled back to a whole batch
	FullBatchMRP decimal.Decimal `json:"full_batch_mrp"`

	// PerPieceMRP is the piece-rounded price; set for ModePieceRounded
	PerPieceMRP decimal.Decimal `json:"per_piece_mrp,omitempty"`

	// DineInMRP is the dine-in price; set for ModeDineInDelivery
	DineInMRP decimal.Decimal `json:"dine_in_mrp,omitempty"`

	// DeliveryMRP is the delivery-platform price; set for ModeDineInDelivery
	// and ModePieceRounded
	DeliveryMRP decimal.Decimal `json:"delivery_mrp,omitempty"`
}

// Compute runs the costing pipeline over a recipe. Blank-name lines are
// excluded before computation. A non-positive yield is rejected before
// any division; waste and margin percentages at or above 100 fall back
// to the undivided value.
func Compute(recipe []types.IngredientLine, p Params) (*Breakdown, error) {
	if p.Yield.Sign() <= 0 {
		return nil, errors.InvalidParameter("yield must be positive").
			WithContext("yield", p.Yield.String())
	}

	b := &Breakdown{
		OverheadPerUnit: p.OverheadPerUnit.Round(2),
		PackagingCost:   p.PackagingCost.Round(2),
	}

	for _, line := range recipe {
		if line.IsBlank() {
			continue
		}
		b.BatchRawCost = b.BatchRawCost.Add(line.LineTotal())
	}
	b.BatchRawCost = b.BatchRawCost.Round(2)

	b.BatchWithWaste = guardedDiv(b.BatchRawCost, p.WastePct)
	b.RawMaterialPerUnit = b.BatchWithWaste.Div(p.Yield).Round(2)
	b.TotalCost = b.RawMaterialPerUnit.Add(b.OverheadPerUnit).Add(b.PackagingCost).Round(2)
	b.PriceBeforeVAT = guardedDiv(b.TotalCost, p.MarginPct)

	rate := p.VATRate
	if rate.IsZero() {
		rate = DefaultVATRate
	}
	b.FinalPrice = b.PriceBeforeVAT
	if p.VATIncluded {
		b.FinalPrice = b.PriceBeforeVAT.Mul(rate).Round(2)
	}

	applyMode(b, p, rate)
	b.FullBatchMRP = b.FinalPrice.Mul(p.Yield).Round(2)
	return b, nil
}

// Fill writes the derived values of a pipeline run into product info
func (b *Breakdown) Fill(info *types.ProductInfo) {
	info.RawMaterialPerUnit = b.RawMaterialPerUnit
	info.TotalCost = b.TotalCost
	info.MRP = b.FinalPrice
	info.FullBatchMRP = b.FullBatchMRP
	info.PerPieceMRP = b.PerPieceMRP
	info.DeliveryMRP = b.DeliveryMRP
	info.DineInMRP = b.DineInMRP
}

// guardedDiv applies the pct markup as value / (1 - pct/100), falling
// back to value unchanged when pct >= 100 instead of dividing by or
// through zero
func guardedDiv(value, pct decimal.Decimal) decimal.Decimal {
	if pct.GreaterThanOrEqual(hundred) {
		return value
	}
	divisor := decimal.NewFromInt(1).Sub(pct.Div(hundred))
	return value.Div(divisor).Round(2)
}

// applyMode runs the optional output transforms after the core pipeline
func applyMode(b *Breakdown, p Params, rate decimal.Decimal) {
	switch p.Mode {
	case types.ModeDineInDelivery:
		b.DineInMRP = b.FinalPrice
		b.DeliveryMRP = deliveryPrice(b.PriceBeforeVAT, rate)
	case types.ModePieceRounded:
		b.PerPieceMRP = roundToNearest5(b.FinalPrice)
		b.DeliveryMRP = roundToNearest5(deliveryPrice(b.PriceBeforeVAT, rate))
		b.FinalPrice = b.PerPieceMRP
	}
}

// deliveryPrice models a 20% delivery-platform commission on top of the
// pre-VAT price, with VAT applied after
func deliveryPrice(priceBeforeVAT, rate decimal.Decimal) decimal.Decimal {
	return priceBeforeVAT.Div(deliveryShare).Round(2).Mul(rate).Round(2)
}

// roundToNearest5 rounds a price to the nearest multiple of 5
func roundToNearest5(d decimal.Decimal) decimal.Decimal {
	return d.Div(five).Round(0).Mul(five)
}
