// Package cmd provides the CLI commands for recipe-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"recipe-cost/core/session"
	"recipe-cost/core/ui"
	"recipe-cost/internal/config"
	"recipe-cost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "recipe-cost",
	Short: "Cost recipes and price products for a small food business",
	Long: `recipe-cost is a single-user recipe costing calculator.

It turns ingredient lists into per-unit production costs, applies
overhead allocation, margin and VAT rules, and produces a retail price.
Product records live in memory for the session and survive restarts
through spreadsheet export and restore.

Examples:
  recipe-cost estimate croissant.csv --yield 10 --waste 5 --margin 50 --vat
  recipe-cost price sync market_prices.xlsx
  recipe-cost list bagels_master_records.xlsx`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.recipe-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat(config.DefaultPath()); err == nil {
			path = config.DefaultPath()
		}
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newWriter creates the terminal writer from the active config
func newWriter() *ui.Writer {
	return ui.NewWriter(os.Stdout, config.Get().Output.NoColor)
}

// newSession creates a session with the configured overheads profile
func newSession() (*session.Session, error) {
	s := session.New()
	overheads, err := config.LoadOverheads(config.Get().Pricing.OverheadsFile)
	if err != nil {
		return nil, err
	}
	s.Overheads = overheads
	return s, nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("recipe-cost version 0.1.0")
	},
}
