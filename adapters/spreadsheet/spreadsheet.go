// Package spreadsheet reads and writes the tabular files the calculator
// exchanges with the outside world. Both accepted upload kinds (price
// lists and master-records exports) and the produced download go through
// the same two formats: .xlsx workbooks and .csv files, selected by
// file extension. The adapter only moves grids of text cells; all
// structural interpretation lives in core/table and core/directory.
package spreadsheet

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"recipe-cost/internal/errors"
)

// SheetName is the sheet the export is written to
const SheetName = "Costing_Summary"

// ReadGrid loads a spreadsheet file into a grid of text cells. Rows may
// have ragged lengths; missing cells read as empty text downstream.
func ReadGrid(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path)
	case ".csv":
		return readCSV(path)
	default:
		return nil, errors.MalformedFile("unsupported file type: "+filepath.Ext(path), nil)
	}
}

// WriteGrid saves a grid to a spreadsheet file, format by extension
func WriteGrid(path string, rows [][]string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return writeXLSX(path, rows)
	case ".csv":
		return writeCSV(path, rows)
	default:
		return errors.MalformedFile("unsupported file type: "+filepath.Ext(path), nil)
	}
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.MalformedFile("cannot open workbook", err).WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.MalformedFile("workbook has no sheets", nil).WithContext("path", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.MalformedFile("cannot read sheet", err).WithContext("sheet", sheets[0])
	}
	return rows, nil
}

func writeXLSX(path string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.Internal("cannot name sheet", err)
	}
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Internal("cannot address row", err)
		}
		if err := f.SetSheetRow(SheetName, ref, &cells); err != nil {
			return errors.Internal("cannot write row", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return errors.Internal("cannot save workbook", err)
	}
	return nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.MalformedFile("cannot open file", err).WithContext("path", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // human-authored files have ragged rows
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.MalformedFile("cannot parse csv", err).WithContext("path", path)
	}
	return rows, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Internal("cannot create file", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return errors.Internal("cannot write csv", err)
	}
	return nil
}
