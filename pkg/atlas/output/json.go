// Package output serializes atlas content to JSON.
package output

import (
	"encoding/json"

	"github.com/censusatlas/atlasgen/pkg/atlas/models"
)

// ToJSON serializes the topic content tree. Pretty output uses
// four-space indentation.
func ToJSON(topics []models.Topic, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(topics, "", "    ")
	}
	return json.Marshal(topics)
}

// VariablesToJSON serializes the raw variable extracts produced by the
// selection pipeline.
func VariablesToJSON(extracts []models.VariableExtract, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(extracts, "", "    ")
	}
	return json.Marshal(extracts)
}
