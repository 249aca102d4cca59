package parser

import (
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ClassificationColumn locates one classification on a variable
// worksheet: the header code, the column holding category codes, and
// the column immediately to its right holding category names. Column
// numbers are 1-based.
type ClassificationColumn struct {
	Code    string
	CodeCol int
	NameCol int
}

// Category is one bordered data row beneath a classification header.
type Category struct {
	// Codes is the normalized numeric/range code string.
	Codes string
	// Name is the category's display name.
	Name string
}

// HeaderClassifications scans a variable worksheet's header row and
// returns every cell that looks like a classification code, in
// left-to-right column order. Values matching the notData placeholder
// set are skipped, and a candidate's name column (the column to its
// right) is consumed so it is never itself taken for a classification.
func HeaderClassifications(f *excelize.File, sheet string, notData []string) ([]ClassificationColumn, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var result []ClassificationColumn
	skip := -1
	for colIdx, value := range rows[0] {
		if colIdx == skip || value == "" || matchesAny(value, notData) {
			continue
		}
		result = append(result, ClassificationColumn{
			Code:    strings.TrimSpace(value),
			CodeCol: colIdx + 1,
			NameCol: colIdx + 2,
		})
		skip = colIdx + 1
	}
	return result, nil
}

// FilterKeep applies an index row's keep directive: the literal "all"
// keeps every candidate, otherwise only codes ending in one of the
// comma-separated suffixes survive. Column order is preserved.
func FilterKeep(cols []ClassificationColumn, directive string) []ClassificationColumn {
	if strings.TrimSpace(directive) == "all" {
		return cols
	}

	var suffixes []string
	for _, s := range strings.Split(directive, ",") {
		if s = strings.TrimSpace(s); s != "" {
			suffixes = append(suffixes, s)
		}
	}

	var kept []ClassificationColumn
	for _, col := range cols {
		for _, suffix := range suffixes {
			if strings.HasSuffix(col.Code, suffix) {
				kept = append(kept, col)
				break
			}
		}
	}
	return kept
}

// Categories extracts the bordered category rows beneath one
// classification's code/name column pair, scanning from the second row
// down. The code column and name column must agree on which rows are
// bordered; a divergence returns a *CategoryAlignmentError. Rows whose
// name matches the notData placeholder set are skipped.
func Categories(f *excelize.File, sheet string, col ClassificationColumn, notData []string) ([]Category, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	codeRows, codeVals, err := borderedColumn(f, sheet, col.CodeCol, len(rows))
	if err != nil {
		return nil, err
	}
	nameRows, nameVals, err := borderedColumn(f, sheet, col.NameCol, len(rows))
	if err != nil {
		return nil, err
	}
	if !slices.Equal(codeRows, nameRows) {
		return nil, &CategoryAlignmentError{
			Sheet:          sheet,
			Classification: col.Code,
			CodeRows:       codeRows,
			NameRows:       nameRows,
		}
	}

	var categories []Category
	for i, name := range nameVals {
		name = strings.TrimSpace(name)
		if matchesAny(name, notData) {
			continue
		}
		categories = append(categories, Category{
			Codes: NormalizeCodes(codeVals[i]),
			Name:  name,
		})
	}
	return categories, nil
}

// borderedColumn collects the bordered cells of one column from row 2 to
// maxRow, returning the 1-based row numbers and the cell values.
func borderedColumn(f *excelize.File, sheet string, col, maxRow int) (rowNums []int, values []string, err error) {
	for row := 2; row <= maxRow; row++ {
		cellName, _ := excelize.CoordinatesToCellName(col, row)
		bordered, err := isBordered(f, sheet, cellName)
		if err != nil {
			return nil, nil, err
		}
		if !bordered {
			continue
		}
		value, err := f.GetCellValue(sheet, cellName)
		if err != nil {
			return nil, nil, err
		}
		rowNums = append(rowNums, row)
		values = append(values, value)
	}
	return rowNums, values, nil
}

// isBordered reports whether a cell carries a left or right border
// style, the workbook's convention for marking genuine category rows.
func isBordered(f *excelize.File, sheet, cellName string) (bool, error) {
	styleID, err := f.GetCellStyle(sheet, cellName)
	if err != nil {
		return false, err
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	for _, b := range style.Border {
		if (b.Type == "left" || b.Type == "right") && b.Style != 0 {
			return true, nil
		}
	}
	return false, nil
}

// NormalizeCodes canonicalizes a category's numeric/range code string:
// whitespace removed, en dashes (including the mojibake "â€“" form the
// workbook sometimes carries) and ">" folded to "-", and a redundant
// leading zero dropped ("04" becomes "4"; "0-4" is left alone).
func NormalizeCodes(s string) string {
	s = strings.Join(strings.Fields(s), "")
	for _, dash := range []string{"â€“", "–", ">"} {
		s = strings.ReplaceAll(s, dash, "-")
	}
	if len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9' {
		s = s[1:]
	}
	return s
}

// matchesAny reports whether s equals any of the values after trimming
// and case folding.
func matchesAny(s string, values []string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(v)) {
			return true
		}
	}
	return false
}
