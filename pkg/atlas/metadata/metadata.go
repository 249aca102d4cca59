// Package metadata loads the census lookup tables and answers mnemonic
// lookups against them.
package metadata

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Table names within a Set.
const (
	TableTopics          = "topics"
	TableVariables       = "variables"
	TableClassifications = "classifications"
	TableCategories      = "categories"
)

// DefaultFiles maps each table name to the CSV file it is exported to.
func DefaultFiles() map[string]string {
	return map[string]string{
		TableTopics:          "Topic.csv",
		TableVariables:       "Variable.csv",
		TableClassifications: "Classification.csv",
		TableCategories:      "Category.csv",
	}
}

// Record is one CSV row keyed by column header.
type Record map[string]string

// Set holds the loaded lookup tables keyed by table name.
type Set map[string][]Record

// Load reads every configured lookup CSV under dir into a Set. The
// exports are UTF-8 with an optional byte-order mark. A missing or
// malformed file is fatal.
func Load(dir string, files map[string]string) (Set, error) {
	set := make(Set, len(files))
	for name, file := range files {
		records, err := loadCSV(filepath.Join(dir, file))
		if err != nil {
			return nil, fmt.Errorf("lookup table %s: %w", name, err)
		}
		set[name] = records
	}
	return set, nil
}

func loadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// UTF8BOM's decoder strips a leading byte-order mark so the first
	// header name never carries one.
	r := csv.NewReader(transform.NewReader(f, unicode.UTF8BOM.NewDecoder()))
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// TopicMeta is the resolved name and description of a topic.
type TopicMeta struct {
	Name string
	Desc string
}

// Topic resolves a topic identifier, which the index sheet gives
// variously as a mnemonic, a title or a description. The match is case-
// and whitespace-insensitive against all three columns; the first
// matching row wins. This is best-effort resolution, not a unique-key
// lookup.
func (s Set) Topic(q string) (TopicMeta, bool) {
	for _, m := range s[TableTopics] {
		if equalFold(q, m["Topic_Mnemonic"]) || equalFold(q, m["Topic_Description"]) || equalFold(q, m["Topic_Title"]) {
			return TopicMeta{
				Name: strings.TrimSpace(m["Topic_Title"]),
				Desc: strings.TrimSpace(m["Topic_Description"]),
			}, true
		}
	}
	return TopicMeta{}, false
}

// VariableMeta is the descriptive metadata of a variable.
type VariableMeta struct {
	Name  string
	Desc  string
	Units string
}

// Variable looks a variable up by its 2021 mnemonic.
func (s Set) Variable(mnemonic string) (VariableMeta, bool) {
	for _, m := range s[TableVariables] {
		if equalFold(mnemonic, m["Variable_Mnemonic"]) {
			return VariableMeta{
				Name:  strings.TrimSpace(m["Variable_Title"]),
				Desc:  strings.TrimSpace(m["Variable_Description"]),
				Units: strings.TrimSpace(m["Statistical_Unit"]),
			}, true
		}
	}
	return VariableMeta{}, false
}

// ClassificationMeta is the descriptive metadata of a classification.
type ClassificationMeta struct {
	Desc string
}

// Classification looks a classification up by mnemonic. Internal spaces
// in the query are stripped first: worksheet headers sometimes pad the
// mnemonic.
func (s Set) Classification(mnemonic string) (ClassificationMeta, bool) {
	mnemonic = strings.ReplaceAll(mnemonic, " ", "")
	for _, m := range s[TableClassifications] {
		if equalFold(mnemonic, m["Classification_Mnemonic"]) {
			return ClassificationMeta{
				Desc: strings.TrimSpace(m["External_Classification_Label_English"]),
			}, true
		}
	}
	return ClassificationMeta{}, false
}

// equalFold reports whether two strings are equal after trimming
// surrounding whitespace and case folding.
func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
