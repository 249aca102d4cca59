package atlas

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/censusatlas/atlasgen/pkg/atlas/models"
	"github.com/censusatlas/atlasgen/pkg/atlas/parser"
)

// maxDefaultCategories is the largest classification that still renders
// legibly as a default map legend.
const maxDefaultCategories = 12

// BuildVariables extracts, for every variable named in the selection,
// its kept classifications and their category rows with numeric codes
// expanded. No lookup tables are involved; the output is the raw
// extract consumed by downstream summarizers. A selection whose
// suffixes do not all resolve on the variable's worksheet is a fatal
// error.
func (b *Builder) BuildVariables(f *excelize.File, selection map[string][]string) ([]models.VariableExtract, error) {
	rows, err := parser.ReadIndex(f, b.opts.IndexSheet)
	if err != nil {
		return nil, fmt.Errorf("index sheet %q: %w", b.opts.IndexSheet, err)
	}

	var extracts []models.VariableExtract
	for _, row := range rows {
		cell := row.Cell(b.opts.VariableColumn)
		if cell.Hyperlink == "" {
			continue
		}
		suffixes, ok := selection[strings.ToUpper(strings.TrimSpace(cell.Value))]
		if !ok {
			continue
		}
		sheet := parser.SheetFromHyperlink(cell.Hyperlink)

		cols, err := parser.HeaderClassifications(f, sheet, b.opts.NotData)
		if err != nil {
			return nil, fmt.Errorf("variable sheet %q: %w", sheet, err)
		}
		all := len(suffixes) > 0 && suffixes[0] == "all"
		if !all {
			cols = parser.FilterKeep(cols, strings.Join(suffixes, ","))
			if len(cols) != len(suffixes) {
				return nil, fmt.Errorf("variable %s: selection names %d classifications but sheet %s matched %d",
					cell.Value, len(suffixes), sheet, len(cols))
			}
		}

		extract := models.VariableExtract{
			Metadata:        row.ValueMap(),
			Classifications: make([]models.RawClassification, 0, len(cols)),
		}
		haveDefault := false
		for _, col := range cols {
			cats, err := parser.Categories(f, sheet, col, b.opts.NotData)
			if err != nil {
				return nil, err
			}
			rc := models.RawClassification{Code: col.Code}
			for _, c := range cats {
				codes, err := parser.ExpandCodes(c.Codes)
				if err != nil {
					return nil, fmt.Errorf("variable sheet %q, classification %s: %w", sheet, col.Code, err)
				}
				rc.Categories = append(rc.Categories, models.RawCategory{Codes: codes, Name: c.Name})
			}
			if !haveDefault && len(rc.Categories) < maxDefaultCategories {
				haveDefault = true
				rc.Default = true
			}
			extract.Classifications = append(extract.Classifications, rc)
		}
		extracts = append(extracts, extract)
	}
	return extracts, nil
}
