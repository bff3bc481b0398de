// Package table - tolerant restore parsing
package table

import (
	"strings"

	"github.com/shopspring/decimal"

	"recipe-cost/core/coerce"
	"recipe-cost/core/types"
	"recipe-cost/internal/errors"
)

// Defaults applied when a restore file lacks a value for a product field
var (
	defaultYield   = decimal.NewFromInt(1)
	defaultOHAlloc = decimal.NewFromInt(100)
)

// Parse reads a flat master-records grid back into products. The first
// row must be the column header and must carry the Item column; beyond
// that the format is tolerant: missing columns read as empty, blank
// separator rows are skipped, and detail rows appearing before any
// product marker are silently dropped.
//
// Parse never touches a store. Callers swap the result in wholesale
// only when it returns without error.
func Parse(grid [][]string) ([]types.Product, error) {
	if len(grid) == 0 {
		return nil, errors.MalformedFile("restore file has no rows", nil)
	}

	cols := headerIndex(grid[0])
	if _, ok := cols[ColItem]; !ok {
		return nil, errors.MalformedFile("restore file has no Item column", nil)
	}

	products := make([]types.Product, 0)
	var current *types.Product

	for _, row := range grid[1:] {
		item := strings.TrimSpace(cell(row, cols, ColItem))

		switch {
		case strings.Contains(item, markerProbe):
			products = append(products, parseInfoRow(item, row, cols))
			current = &products[len(products)-1]

		case current != nil && item != "" && !strings.HasPrefix(item, "---"):
			current.Recipe = append(current.Recipe, parseIngredientRow(item, row, cols))

		default:
			// Blank separator, or an orphan detail row with no product
			// to attach to. Both are expected in hand-edited files.
		}
	}
	return products, nil
}

func parseInfoRow(item string, row []string, cols map[string]int) types.Product {
	name := strings.ReplaceAll(item, markerProbe, "")
	name = strings.ReplaceAll(name, "---", "")
	return types.Product{
		Info: types.ProductInfo{
			Name:               strings.TrimSpace(name),
			Yield:              coerce.NumberOr(cell(row, cols, ColYield), defaultYield),
			WastePct:           coerce.Number(cell(row, cols, ColWastePct)),
			OverheadAllocPct:   coerce.NumberOr(cell(row, cols, ColOHAllocPct), defaultOHAlloc),
			MarginPct:          coerce.Number(cell(row, cols, ColMarginPct)),
			TotalCost:          coerce.Number(cell(row, cols, ColTotalCost)),
			RawMaterialPerUnit: coerce.Number(cell(row, cols, ColRawMatPerUnit)),
			MRP:                coerce.Number(cell(row, cols, ColMRP)),
			FullBatchMRP:       coerce.Number(cell(row, cols, ColFullBatchMRP)),
			PerPieceMRP:        coerce.Number(cell(row, cols, ColPerPieceMRP)),
			DeliveryMRP:        coerce.Number(cell(row, cols, ColDeliveryMRP)),
			DineInMRP:          coerce.Number(cell(row, cols, ColDineInMRP)),
		},
		Recipe: []types.IngredientLine{},
	}
}

func parseIngredientRow(item string, row []string, cols map[string]int) types.IngredientLine {
	unit := coerce.CleanText(cell(row, cols, ColUnit))
	if unit == "" {
		unit = string(types.DefaultUnit)
	}
	return types.IngredientLine{
		Name:      item,
		Quantity:  coerce.Number(cell(row, cols, ColQty)),
		Unit:      types.ParseUnit(unit),
		UnitPrice: coerce.Number(cell(row, cols, ColPricePerUnit)),
	}
}

// headerIndex maps column names to indices, first occurrence wins
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}
	return cols
}

// cell reads a named column from a row, empty when the column is
// missing or the row is short
func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
