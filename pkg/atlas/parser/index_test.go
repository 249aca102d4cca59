package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func saveAndReopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestReadIndex(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "INDEX"
	f.NewSheet(sheet)
	f.SetCellValue(sheet, "A1", "Topic Area(s)")
	f.SetCellValue(sheet, "B1", "2021 Mnemonic (variable)")
	f.SetCellValue(sheet, "C1", "Classifications to keep")

	f.SetCellValue(sheet, "A2", "Age")
	f.SetCellValue(sheet, "B2", "Age")
	f.SetCellValue(sheet, "C2", "all")
	if err := f.SetCellHyperLink(sheet, "B2", "AGE_5YR!A1", "Location"); err != nil {
		t.Fatalf("Failed to set hyperlink: %v", err)
	}

	// Row 3 is entirely empty and must be dropped; row 4 is partial.
	f.SetCellValue(sheet, "A4", "Housing")

	f2 := saveAndReopen(t, f)

	rows, err := ReadIndex(f2, sheet)
	if err != nil {
		t.Fatalf("ReadIndex failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if got := first.Cell("Topic Area(s)").Value; got != "Age" {
		t.Errorf("Topic cell = %q, expected %q", got, "Age")
	}
	if got := first.Cell("2021 Mnemonic (variable)").Hyperlink; got != "AGE_5YR!A1" {
		t.Errorf("Hyperlink = %q, expected %q", got, "AGE_5YR!A1")
	}
	if got := first.Cell("Classifications to keep").Value; got != "all" {
		t.Errorf("Keep cell = %q, expected %q", got, "all")
	}

	second := rows[1]
	if got := second.Cell("Topic Area(s)").Value; got != "Housing" {
		t.Errorf("Topic cell = %q, expected %q", got, "Housing")
	}
	if got := second.Cell("2021 Mnemonic (variable)").Hyperlink; got != "" {
		t.Errorf("Expected no hyperlink, got %q", got)
	}
}

func TestReadIndexMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ReadIndex(f, "NOPE"); err == nil {
		t.Fatal("Expected error for missing sheet, got nil")
	}
}

func TestIndexRowValues(t *testing.T) {
	row := IndexRow{
		Columns: []string{"A", "B", "C"},
		Cells: map[string]Cell{
			"A": {Value: "one"},
			"B": {},
			"C": {Value: "three"},
		},
	}

	values := row.Values()
	if len(values) != 2 || values[0] != "one" || values[1] != "three" {
		t.Errorf("Values() = %v, expected [one three]", values)
	}

	m := row.ValueMap()
	if len(m) != 3 || m["B"] != "" || m["C"] != "three" {
		t.Errorf("ValueMap() = %v", m)
	}
}

func TestSheetFromHyperlink(t *testing.T) {
	tests := []struct {
		target   string
		expected string
	}{
		{"AGE_5YR!A1", "AGE_5YR"},
		{"'My Sheet'!B2", "My Sheet"},
		{"PLAIN", "PLAIN"},
		{"", ""},
	}

	for _, tt := range tests {
		result := SheetFromHyperlink(tt.target)
		if result != tt.expected {
			t.Errorf("SheetFromHyperlink(%q) = %q, expected %q", tt.target, result, tt.expected)
		}
	}
}
