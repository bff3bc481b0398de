// Package directory builds a market price lookup table from an uploaded
// price list. Price lists are human-authored, so the header row is found
// by keyword sniffing rather than assumed to be the first row.
package directory

import (
	"strings"

	"github.com/shopspring/decimal"

	"recipe-cost/core/coerce"
	"recipe-cost/internal/errors"
)

// Keyword sets recognized in header cells. Matching walks the keyword
// list in order and takes the leftmost column containing the keyword.
var (
	nameKeywords  = []string{"ingredient", "item", "name"}
	priceKeywords = []string{"price", "rate", "cost"}
	qtyKeywords   = []string{"qty", "quantity", "amount"}
	unitKeywords  = []string{"unit", "uom"}
)

// Options control the header scan
type Options struct {
	// ScanLimit bounds the header search to the first N rows; 0 scans all
	ScanLimit int
}

// Layout describes where a sniffed table keeps its columns. Optional
// columns (quantity, unit) are -1 when the header does not carry them.
type Layout struct {
	HeaderRow int
	NameCol   int
	PriceCol  int
	QtyCol    int
	UnitCol   int
}

// Cell reads a column from a row, empty when the column is missing or
// the row is short
func (l Layout) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// Locate scans rows top to bottom for the first one whose concatenated
// lowercase text contains both a name keyword and a price keyword, then
// resolves column indices against that row's cells. No such row means
// the file is not a usable price table.
func Locate(grid [][]string, opts Options) (Layout, error) {
	for i, cells := range grid {
		if opts.ScanLimit > 0 && i >= opts.ScanLimit {
			break
		}
		joined := strings.ToLower(strings.Join(cells, " "))
		if !containsAny(joined, nameKeywords) || !containsAny(joined, priceKeywords) {
			continue
		}
		nameCol, nameOK := matchColumn(cells, nameKeywords)
		priceCol, priceOK := matchColumn(cells, priceKeywords)
		if !nameOK || !priceOK || nameCol == priceCol {
			continue
		}
		qtyCol, ok := matchColumn(cells, qtyKeywords)
		if !ok {
			qtyCol = -1
		}
		unitCol, ok := matchColumn(cells, unitKeywords)
		if !ok {
			unitCol = -1
		}
		return Layout{
			HeaderRow: i,
			NameCol:   nameCol,
			PriceCol:  priceCol,
			QtyCol:    qtyCol,
			UnitCol:   unitCol,
		}, nil
	}
	return Layout{}, errors.HeaderNotFound("no header row with ingredient and price columns")
}

// Directory maps a lowercase-trimmed ingredient name to its unit price.
// It is rebuilt wholesale on every sync and only ever read afterwards.
type Directory struct {
	prices map[string]decimal.Decimal
}

// Build scans the grid for a header row and extracts the name-to-price
// mapping from the rows below it. When no usable header exists it
// returns a HeaderNotFound error and no directory; callers keep their
// previous directory in that case.
func Build(grid [][]string, opts Options) (*Directory, error) {
	layout, err := Locate(grid, opts)
	if err != nil {
		return nil, err
	}

	d := &Directory{prices: make(map[string]decimal.Decimal)}
	for _, row := range grid[layout.HeaderRow+1:] {
		name := strings.ToLower(coerce.CleanText(layout.Cell(row, layout.NameCol)))
		if name == "" {
			continue
		}
		// Last write wins on duplicate names.
		d.prices[name] = coerce.Number(layout.Cell(row, layout.PriceCol))
	}
	return d, nil
}

// Lookup returns the unit price for an ingredient name. Lookups are
// case- and whitespace-insensitive to match how the directory is keyed.
func (d *Directory) Lookup(name string) (decimal.Decimal, bool) {
	if d == nil {
		return decimal.Zero, false
	}
	price, ok := d.prices[strings.ToLower(strings.TrimSpace(name))]
	return price, ok
}

// Len returns the number of priced ingredients
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.prices)
}

// Names returns the directory keys in no particular order
func (d *Directory) Names() []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.prices))
	for name := range d.prices {
		out = append(out, name)
	}
	return out
}

// matchColumn returns the first matching column, keyword-list order
// first, leftmost column second
func matchColumn(cells []string, keywords []string) (int, bool) {
	for _, kw := range keywords {
		for col, cell := range cells {
			if strings.Contains(strings.ToLower(cell), kw) {
				return col, true
			}
		}
	}
	return 0, false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
