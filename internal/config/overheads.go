// Package config - overheads profile loading
package config

import (
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"recipe-cost/core/costing"
	"recipe-cost/internal/errors"
)

// overheadsFile is the HCL schema of an overheads profile:
//
//	overheads {
//	  rent                = 159000
//	  salaries            = 120000
//	  utilities           = 50000
//	  marketing           = 5000
//	  asset_value         = 1900000
//	  depreciation_years  = 5
//	  monthly_unit_volume = 2000
//	}
type overheadsFile struct {
	Overheads *overheadsBlock `hcl:"overheads,block"`
}

type overheadsBlock struct {
	Rent              float64 `hcl:"rent,optional"`
	Salaries          float64 `hcl:"salaries,optional"`
	Utilities         float64 `hcl:"utilities,optional"`
	Marketing         float64 `hcl:"marketing,optional"`
	AssetValue        float64 `hcl:"asset_value,optional"`
	DepreciationYears int     `hcl:"depreciation_years,optional"`
	MonthlyUnitVolume float64 `hcl:"monthly_unit_volume,optional"`
}

// LoadOverheads reads the monthly fixed-cost profile from an HCL file.
// A missing file is not an error: overhead allocation simply contributes
// nothing until a profile exists.
func LoadOverheads(path string) (costing.Overheads, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return costing.Overheads{}, nil
	}

	var file overheadsFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return costing.Overheads{}, errors.Wrap(errors.TypeConfig, "cannot parse overheads profile", err).
			WithContext("path", path)
	}
	if file.Overheads == nil {
		return costing.Overheads{}, errors.New(errors.TypeConfig, "overheads profile has no overheads block").
			WithContext("path", path)
	}

	b := file.Overheads
	return costing.Overheads{
		Rent:              decimal.NewFromFloat(b.Rent),
		Salaries:          decimal.NewFromFloat(b.Salaries),
		Utilities:         decimal.NewFromFloat(b.Utilities),
		Marketing:         decimal.NewFromFloat(b.Marketing),
		AssetValue:        decimal.NewFromFloat(b.AssetValue),
		DepreciationYears: b.DepreciationYears,
		MonthlyUnitVolume: decimal.NewFromFloat(b.MonthlyUnitVolume),
	}, nil
}
