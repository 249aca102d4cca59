// Package atlas builds the census atlas content document from the
// category mapping workbook and its lookup tables.
package atlas

import (
	"log"
	"os"
)

// Options configures where the pipeline finds its inputs within the
// workbook and the lookup tables on disk.
type Options struct {
	// IndexSheet is the worksheet listing the variables to process.
	IndexSheet string
	// MetadataDir is the directory holding the lookup CSV files.
	MetadataDir string
	// TopicColumn names the index column giving each variable's topic.
	TopicColumn string
	// VariableColumn names the index column whose hyperlink points at
	// the variable's worksheet. Cells without a hyperlink refer to
	// variables not defined in the workbook and are skipped.
	VariableColumn string
	// KeepColumn names the index column listing the classifications to
	// keep: a comma-separated suffix list, or "all".
	KeepColumn string
	// DefaultClassColumn names the index column giving the default
	// (choropleth) classification suffix.
	DefaultClassColumn string
	// DotDensityColumn names the index column giving the dot-density
	// classification suffix ("no" means none).
	DotDensityColumn string
	// ComparisonColumn names the index column flagging 2011
	// comparability.
	ComparisonColumn string
	// NotData lists values that appear where data does but are not data.
	NotData []string
	// Log receives soft-failure diagnostics. Defaults to stdout.
	Log *log.Logger
}

// DefaultOptions returns the sheet, column and placeholder names used by
// the 2021 category mapping workbook.
func DefaultOptions() Options {
	return Options{
		IndexSheet:         "INDEX-filtered",
		MetadataDir:        ".",
		TopicColumn:        "Topic Area(s)",
		VariableColumn:     "2021 Mnemonic (variable)",
		KeepColumn:         "Classifications to keep",
		DefaultClassColumn: "Default classification",
		DotDensityColumn:   "Dot density classification",
		ComparisonColumn:   "2011 comparability?",
		NotData:            []string{"return to index", "does not apply"},
		Log:                log.New(os.Stdout, "", 0),
	}
}
