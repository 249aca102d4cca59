// Package parser provides workbook access: the index sheet, the
// classification columns of variable worksheets, and their bordered
// category rows.
package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Cell is a single index-sheet cell: its trimmed value plus the
// hyperlink target, when the cell carries one.
type Cell struct {
	Value     string
	Hyperlink string
}

// IndexRow is one index-sheet record: cells keyed by header name, with
// the header order retained.
type IndexRow struct {
	Columns []string
	Cells   map[string]Cell
}

// Cell returns the cell beneath the named header column.
func (r IndexRow) Cell(name string) Cell {
	return r.Cells[name]
}

// Values returns the row's non-empty cell values in column order.
func (r IndexRow) Values() []string {
	var vals []string
	for _, c := range r.Columns {
		if v := r.Cells[c].Value; v != "" {
			vals = append(vals, v)
		}
	}
	return vals
}

// ValueMap returns the row's cell values keyed by column header.
func (r IndexRow) ValueMap() map[string]string {
	m := make(map[string]string, len(r.Columns))
	for _, c := range r.Columns {
		m[c] = r.Cells[c].Value
	}
	return m
}

// ReadIndex reads the named index worksheet into ordered row records.
// The first row is the header; column names come verbatim from it.
// Rows with no values at all are dropped.
func ReadIndex(f *excelize.File, sheet string) ([]IndexRow, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var columns []string
	for _, name := range rows[0] {
		if name != "" {
			columns = append(columns, name)
		}
	}

	var result []IndexRow
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cells := make(map[string]Cell, len(columns))
		hasData := false

		for colIdx, name := range rows[0] {
			if name == "" {
				continue
			}
			var value string
			if colIdx < len(row) {
				value = strings.TrimSpace(row[colIdx])
			}
			if value != "" {
				hasData = true
			}

			cell := Cell{Value: value}
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if hasLink, target, err := f.GetCellHyperLink(sheet, cellName); err == nil && hasLink {
				cell.Hyperlink = target
			}
			cells[name] = cell
		}

		if hasData {
			result = append(result, IndexRow{Columns: columns, Cells: cells})
		}
	}
	return result, nil
}

// SheetFromHyperlink returns the worksheet component of an in-workbook
// hyperlink target ("'My Sheet'!A1" -> "My Sheet").
func SheetFromHyperlink(target string) string {
	name, _, _ := strings.Cut(target, "!")
	return strings.ReplaceAll(name, "'", "")
}
