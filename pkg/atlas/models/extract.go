package models

// RawCategory pairs a category name with its expanded numeric codes.
type RawCategory struct {
	// Codes holds the category's codes with ranges expanded ("3-5"
	// becomes 3, 4, 5).
	Codes []int `json:"codes"`
	// Name is the category's display name.
	Name string `json:"name"`
}

// RawClassification is one classification extracted by the selection
// pipeline, before any lookup-table enrichment.
type RawClassification struct {
	// Code is the classification header text.
	Code string `json:"classification_code"`
	// Default marks the first classification small enough to render as a
	// sensible map default.
	Default bool `json:"default"`
	// Categories lists the classification's categories in worksheet row
	// order.
	Categories []RawCategory `json:"categories"`
}

// VariableExtract couples an index row's raw cell values with the
// classifications extracted from the variable's worksheet.
type VariableExtract struct {
	// Metadata holds the index row's cell values keyed by column header.
	Metadata map[string]string `json:"metadata"`
	// Classifications lists the kept classifications in worksheet column
	// order.
	Classifications []RawClassification `json:"classifications"`
}
