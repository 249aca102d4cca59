package parser

import "fmt"

// CategoryAlignmentError reports that a classification's code column and
// name column disagree on which rows are bordered category rows. This is
// a data-integrity fault in the workbook and aborts the run.
type CategoryAlignmentError struct {
	Sheet          string
	Classification string
	CodeRows       []int
	NameRows       []int
}

func (e *CategoryAlignmentError) Error() string {
	return fmt.Sprintf("sheet %q classification %s: bordered rows differ between code column (rows %v) and name column (rows %v)",
		e.Sheet, e.Classification, e.CodeRows, e.NameRows)
}
