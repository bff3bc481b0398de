// Package table - store flattening for export
package table

import (
	"github.com/shopspring/decimal"

	"recipe-cost/core/coerce"
	"recipe-cost/core/types"
)

// SerializeOptions control the export layout
type SerializeOptions struct {
	// Separators inserts a fully blank row after each product block
	Separators bool
}

// Serialize flattens products into export rows. The first row is the
// column header; after it, each product emits one decorated header row
// carrying its info fields and one row per ingredient line with a
// recomputed line total.
func Serialize(products []types.Product, opts SerializeOptions) [][]string {
	rows := [][]string{append([]string(nil), Columns...)}
	for _, p := range products {
		rows = append(rows, infoRow(p.Info))
		for _, line := range p.Recipe {
			rows = append(rows, ingredientRow(line))
		}
		if opts.Separators {
			rows = append(rows, blankRow())
		}
	}
	return rows
}

// Preview renders rows for on-screen display: every missing-value
// placeholder that slipped into a cell is normalized to empty text.
func Preview(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = coerce.CleanText(cell)
		}
	}
	return out
}

func infoRow(info types.ProductInfo) []string {
	row := blankRow()
	set(row, ColItem, MarkerPrefix+info.Name+MarkerSuffix)
	set(row, ColTotalCost, money(info.TotalCost))
	set(row, ColRawMatPerUnit, money(info.RawMaterialPerUnit))
	set(row, ColYield, money(info.Yield))
	set(row, ColWastePct, money(info.WastePct))
	set(row, ColMRP, money(info.MRP))
	set(row, ColMarginPct, money(info.MarginPct))
	set(row, ColOHAllocPct, money(info.OverheadAllocPct))
	// Mode-dependent prices stay blank unless the mode produced them.
	set(row, ColFullBatchMRP, moneyOrBlank(info.FullBatchMRP))
	set(row, ColPerPieceMRP, moneyOrBlank(info.PerPieceMRP))
	set(row, ColDeliveryMRP, moneyOrBlank(info.DeliveryMRP))
	set(row, ColDineInMRP, moneyOrBlank(info.DineInMRP))
	return row
}

func ingredientRow(line types.IngredientLine) []string {
	row := blankRow()
	set(row, ColItem, line.Name)
	set(row, ColQty, money(line.Quantity))
	set(row, ColUnit, string(line.Unit))
	set(row, ColPricePerUnit, money(line.UnitPrice))
	set(row, ColTotalCost, money(line.LineTotal()))
	return row
}

func blankRow() []string {
	return make([]string, len(Columns))
}

var columnIndex = func() map[string]int {
	m := make(map[string]int, len(Columns))
	for i, c := range Columns {
		m[c] = i
	}
	return m
}()

func set(row []string, col, value string) {
	row[columnIndex[col]] = value
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func moneyOrBlank(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(2)
}
