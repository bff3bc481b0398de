// Package costing - fixed overhead allocation
package costing

import (
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// Overheads is the monthly fixed-cost profile of the business.
// Asset value is depreciated linearly over DepreciationYears.
type Overheads struct {
	// Rent is the monthly rent
	Rent decimal.Decimal `json:"rent"`

	// Salaries is the monthly payroll
	Salaries decimal.Decimal `json:"salaries"`

	// Utilities is the monthly utilities spend
	Utilities decimal.Decimal `json:"utilities"`

	// Marketing is the monthly marketing spend
	Marketing decimal.Decimal `json:"marketing"`

	// AssetValue is the purchase value of depreciating assets
	AssetValue decimal.Decimal `json:"asset_value"`

	// DepreciationYears spreads AssetValue over this many years
	DepreciationYears int `json:"depreciation_years"`

	// MonthlyUnitVolume is the total units produced per month, across all products
	MonthlyUnitVolume decimal.Decimal `json:"monthly_unit_volume"`
}

// AveragePerUnit returns the average fixed cost carried by one unit,
// rounded to 2 decimals. A non-positive unit volume yields zero rather
// than dividing; a non-positive depreciation horizon skips the asset term.
func (o Overheads) AveragePerUnit() decimal.Decimal {
	if o.MonthlyUnitVolume.Sign() <= 0 {
		return decimal.Zero
	}
	monthly := o.Rent.Add(o.Salaries).Add(o.Utilities).Add(o.Marketing)
	if o.DepreciationYears > 0 {
		months := decimal.NewFromInt(int64(o.DepreciationYears)).Mul(monthsPerYear)
		monthly = monthly.Add(o.AssetValue.Div(months))
	}
	return monthly.Div(o.MonthlyUnitVolume).Round(2)
}

// PerUnit applies an allocation percentage to the average fixed cost.
// 100 means a full share of the average overhead.
func (o Overheads) PerUnit(allocPct decimal.Decimal) decimal.Decimal {
	return o.AveragePerUnit().Mul(allocPct.Div(hundred)).Round(2)
}
