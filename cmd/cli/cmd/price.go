// Package cmd - price directory commands
package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"recipe-cost/adapters/spreadsheet"
	"recipe-cost/core/directory"
	"recipe-cost/internal/config"
	"recipe-cost/internal/errors"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Market price directory operations",
}

var priceSyncCmd = &cobra.Command{
	Use:   "sync [price-list-file]",
	Short: "Build the price directory from a market price list",
	Long: `Scan an uploaded price list for its header row and build the
ingredient-to-price directory from the rows below it.

The header is located by keyword sniffing (ingredient/item/name and
price/rate/cost), so leading notes and titles above the real table are
tolerated. A file with no recognizable header leaves the directory
unchanged and reports a notice rather than failing.`,
	Args: cobra.ExactArgs(1),
	RunE: runPriceSync,
}

func init() {
	priceCmd.AddCommand(priceSyncCmd)
}

func runPriceSync(cmd *cobra.Command, args []string) error {
	w := newWriter()
	s, err := newSession()
	if err != nil {
		return err
	}

	grid, err := spreadsheet.ReadGrid(args[0])
	if err != nil {
		return err
	}

	opts := directory.Options{ScanLimit: config.Get().Pricing.PriceScanLimit}
	n, err := s.SyncPrices(grid, opts)
	if err != nil {
		if errors.IsType(err, errors.TypeHeaderNotFound) {
			// Soft failure: surfaced as a notice, nothing synced.
			w.Warning("%v", err)
			return nil
		}
		return err
	}
	w.Success("%d prices synced", n)

	names := s.Directory.Names()
	sort.Strings(names)
	t := w.NewTable("Ingredient", "Price/Unit")
	for _, name := range names {
		price, _ := s.Directory.Lookup(name)
		t.AddRow(name, price.StringFixed(2))
	}
	t.Render()
	return nil
}
