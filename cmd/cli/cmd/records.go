// Package cmd - master records commands
package cmd

import (
	"github.com/spf13/cobra"

	"recipe-cost/adapters/spreadsheet"
	"recipe-cost/core/session"
	"recipe-cost/core/table"
	"recipe-cost/internal/config"
	"recipe-cost/internal/errors"
)

var (
	restoreOut   string
	exportOut    string
	deleteMaster string
)

var listCmd = &cobra.Command{
	Use:   "list [master-file]",
	Short: "Show the master records as a flat table",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

var restoreCmd = &cobra.Command{
	Use:   "restore [master-file]",
	Short: "Validate a master records file",
	Long: `Parse a master records export back into products and report what it
contains. Restore is all-or-nothing: a file that fails to parse changes
nothing. With --out the restored records are re-exported, which also
converts between .xlsx and .csv.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

var exportCmd = &cobra.Command{
	Use:   "export [master-file]",
	Short: "Re-export master records to a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [product-name]",
	Short: "Delete a product from a master records file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	restoreCmd.Flags().StringVar(&restoreOut, "out", "", "re-export the restored records to this file")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default is the configured export filename)")
	deleteCmd.Flags().StringVar(&deleteMaster, "master", "", "master records file (default is the configured export filename)")
}

// loadMaster restores a session from a master records file
func loadMaster(path string) (*session.Session, error) {
	s, err := newSession()
	if err != nil {
		return nil, err
	}
	grid, err := spreadsheet.ReadGrid(path)
	if err != nil {
		return nil, err
	}
	if _, err := s.Restore(grid); err != nil {
		return nil, err
	}
	return s, nil
}

func runList(cmd *cobra.Command, args []string) error {
	w := newWriter()
	path := config.Get().Output.ExportFilename
	if len(args) > 0 {
		path = args[0]
	}
	s, err := loadMaster(path)
	if err != nil {
		return err
	}

	w.Header("Master Records")
	rows := s.Export(table.SerializeOptions{})
	w.Grid(table.Preview(rows))
	w.Println("")
	w.Success("%d products", s.Store.Len())
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	w := newWriter()
	s, err := loadMaster(args[0])
	if err != nil {
		if errors.IsType(err, errors.TypeMalformedFile) {
			// Non-fatal notice; the previous store (and file) are untouched.
			w.Warning("%v", err)
			return nil
		}
		return err
	}

	lines := 0
	for _, p := range s.Store.Products() {
		lines += len(p.Recipe)
	}
	w.Success("restored %d products, %d ingredient lines", s.Store.Len(), lines)

	if restoreOut != "" {
		rows := s.Export(table.SerializeOptions{Separators: config.Get().Output.Separators})
		if err := spreadsheet.WriteGrid(restoreOut, rows); err != nil {
			return err
		}
		w.Success("written to %s", restoreOut)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	w := newWriter()
	s, err := loadMaster(args[0])
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = config.Get().Output.ExportFilename
	}
	rows := s.Export(table.SerializeOptions{Separators: config.Get().Output.Separators})
	if err := spreadsheet.WriteGrid(out, rows); err != nil {
		return err
	}
	w.Success("%d products exported to %s", s.Store.Len(), out)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	w := newWriter()
	master := deleteMaster
	if master == "" {
		master = config.Get().Output.ExportFilename
	}
	s, err := loadMaster(master)
	if err != nil {
		return err
	}

	name := args[0]
	if !s.Delete(name) {
		w.Warning("no product named %q", name)
		return nil
	}
	rows := s.Export(table.SerializeOptions{Separators: config.Get().Output.Separators})
	if err := spreadsheet.WriteGrid(master, rows); err != nil {
		return err
	}
	w.Success("deleted %q from %s", name, master)
	return nil
}
