// Package cmd - estimate command
package cmd

import (
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recipe-cost/adapters/spreadsheet"
	"recipe-cost/core/coerce"
	"recipe-cost/core/costing"
	"recipe-cost/core/directory"
	"recipe-cost/core/session"
	"recipe-cost/core/table"
	"recipe-cost/core/types"
	"recipe-cost/core/ui"
	"recipe-cost/internal/config"
	"recipe-cost/internal/logging"
)

var (
	estYield     float64
	estWaste     float64
	estPackaging float64
	estOHAlloc   float64
	estMargin    float64
	estVAT       bool
	estMode      string
	estPrices    string
	estSave      string
	estMaster    string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate [recipe-file]",
	Short: "Cost a recipe and price the product",
	Long: `Read a recipe spreadsheet (one row per ingredient: item, quantity,
unit, price per unit) and run the costing pipeline over it.

Market prices can be filled in from a synced price list for rows that
carry no unit price. With --save the result is upserted into a master
records file so it survives between runs.

Examples:
  recipe-cost estimate croissant.csv --yield 10 --waste 5 --margin 50 --vat
  recipe-cost estimate croissant.xlsx --prices market_prices.xlsx
  recipe-cost estimate croissant.csv --save "Croissant" --master bagels_master_records.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().Float64Var(&estYield, "yield", 1, "sellable units per batch")
	estimateCmd.Flags().Float64Var(&estWaste, "waste", 0, "production waste percent")
	estimateCmd.Flags().Float64Var(&estPackaging, "packaging", 0, "packaging cost per unit")
	estimateCmd.Flags().Float64Var(&estOHAlloc, "oh-alloc", 100, "overhead allocation percent")
	estimateCmd.Flags().Float64Var(&estMargin, "margin", 0, "profit margin percent")
	estimateCmd.Flags().BoolVar(&estVAT, "vat", false, "include VAT in the final price")
	estimateCmd.Flags().StringVar(&estMode, "mode", "", "pricing mode (simple, dine-in-delivery, piece-rounded)")
	estimateCmd.Flags().StringVar(&estPrices, "prices", "", "price list to fill missing unit prices from")
	estimateCmd.Flags().StringVar(&estSave, "save", "", "save the product under this name")
	estimateCmd.Flags().StringVar(&estMaster, "master", "", "master records file to load and save into")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	w := newWriter()
	s, err := newSession()
	if err != nil {
		return err
	}

	grid, err := spreadsheet.ReadGrid(args[0])
	if err != nil {
		return err
	}
	recipe, err := readRecipe(grid)
	if err != nil {
		return err
	}

	if estPrices != "" {
		priceGrid, err := spreadsheet.ReadGrid(estPrices)
		if err != nil {
			return err
		}
		opts := directory.Options{ScanLimit: config.Get().Pricing.PriceScanLimit}
		if _, err := s.SyncPrices(priceGrid, opts); err != nil {
			// Non-fatal: the recipe's own prices still apply.
			w.Warning("price sync: %v", err)
		} else {
			fillPrices(w, s, recipe)
		}
	}

	ohAlloc := decimal.NewFromFloat(estOHAlloc)
	params := costing.Params{
		Yield:           decimal.NewFromFloat(estYield),
		WastePct:        decimal.NewFromFloat(estWaste),
		PackagingCost:   decimal.NewFromFloat(estPackaging),
		OverheadPerUnit: s.Overheads.PerUnit(ohAlloc),
		MarginPct:       decimal.NewFromFloat(estMargin),
		VATIncluded:     estVAT,
		VATRate:         configuredVATRate(),
		Mode:            pricingMode(estMode),
	}

	breakdown, err := costing.Compute(recipe, params)
	if err != nil {
		return err
	}
	renderBreakdown(w, params, breakdown)

	if estSave != "" {
		return saveProduct(w, s, recipe, params, ohAlloc, breakdown)
	}
	return nil
}

// readRecipe parses an ingredient grid. The header row is located the
// same way price lists are sniffed, so hand-authored layouts with
// leading notes still parse.
func readRecipe(grid [][]string) ([]types.IngredientLine, error) {
	layout, err := directory.Locate(grid, directory.Options{})
	if err != nil {
		return nil, err
	}
	recipe := make([]types.IngredientLine, 0, len(grid))
	for _, row := range grid[layout.HeaderRow+1:] {
		name := coerce.CleanText(layout.Cell(row, layout.NameCol))
		if name == "" {
			continue
		}
		recipe = append(recipe, types.IngredientLine{
			Name:      name,
			Quantity:  coerce.Number(layout.Cell(row, layout.QtyCol)),
			Unit:      types.ParseUnit(layout.Cell(row, layout.UnitCol)),
			UnitPrice: coerce.Number(layout.Cell(row, layout.PriceCol)),
		})
	}
	return recipe, nil
}

// fillPrices overwrites zero unit prices with directory lookups
func fillPrices(w *ui.Writer, s *session.Session, recipe []types.IngredientLine) {
	for i, line := range recipe {
		if !line.UnitPrice.IsZero() {
			continue
		}
		price, ok := s.LookupPrice(line.Name)
		if !ok {
			w.Warning("no market price for %q", line.Name)
			continue
		}
		recipe[i].UnitPrice = price
	}
}

func saveProduct(w *ui.Writer, s *session.Session, recipe []types.IngredientLine, params costing.Params, ohAlloc decimal.Decimal, breakdown *costing.Breakdown) error {
	master := estMaster
	if master == "" {
		master = config.Get().Output.ExportFilename
	}
	if _, err := os.Stat(master); err == nil {
		grid, err := spreadsheet.ReadGrid(master)
		if err != nil {
			return err
		}
		if _, err := s.Restore(grid); err != nil {
			return err
		}
	}

	info := types.ProductInfo{
		Name:             strings.TrimSpace(estSave),
		Yield:            params.Yield,
		WastePct:         params.WastePct,
		PackagingCost:    params.PackagingCost,
		OverheadAllocPct: ohAlloc,
		MarginPct:        params.MarginPct,
		VATIncluded:      params.VATIncluded,
		Mode:             params.Mode,
	}
	breakdown.Fill(&info)
	s.Save(types.Product{Info: info, Recipe: recipe})

	rows := s.Export(table.SerializeOptions{Separators: config.Get().Output.Separators})
	if err := spreadsheet.WriteGrid(master, rows); err != nil {
		return err
	}
	logging.Info("master records written", zap.String("path", master))
	w.Success("saved %q to %s", info.Name, master)
	return nil
}

// renderBreakdown prints the pipeline intermediates
func renderBreakdown(w *ui.Writer, params costing.Params, b *costing.Breakdown) {
	w.Header("Recipe Costing")
	w.Metric("Batch raw cost", b.BatchRawCost.StringFixed(2))
	w.Metric("Batch with waste", b.BatchWithWaste.StringFixed(2))
	w.Metric("Raw material / unit", b.RawMaterialPerUnit.StringFixed(2))
	w.Metric("Overhead / unit", b.OverheadPerUnit.StringFixed(2))
	w.Metric("Packaging / unit", b.PackagingCost.StringFixed(2))
	w.Metric("Total cost / unit", b.TotalCost.StringFixed(2))
	w.Metric("Price before VAT", b.PriceBeforeVAT.StringFixed(2))
	w.Metric("Final MRP", b.FinalPrice.StringFixed(2))
	w.Metric("Full batch MRP", b.FullBatchMRP.StringFixed(2))
	switch params.Mode {
	case types.ModeDineInDelivery:
		w.Metric("Dine-in MRP", b.DineInMRP.StringFixed(2))
		w.Metric("Delivery MRP", b.DeliveryMRP.StringFixed(2))
	case types.ModePieceRounded:
		w.Metric("Per piece MRP", b.PerPieceMRP.StringFixed(2))
		w.Metric("Delivery MRP", b.DeliveryMRP.StringFixed(2))
	}
}

// configuredVATRate parses the VAT multiplier from config, falling back
// to the pipeline default on bad input
func configuredVATRate() decimal.Decimal {
	rate, err := decimal.NewFromString(config.Get().Pricing.VATRate)
	if err != nil || rate.Sign() <= 0 {
		return costing.DefaultVATRate
	}
	return rate
}

// pricingMode resolves the mode flag against the configured default
func pricingMode(flag string) types.PricingMode {
	if strings.TrimSpace(flag) == "" {
		flag = config.Get().Pricing.DefaultMode
	}
	return types.ParsePricingMode(flag)
}
