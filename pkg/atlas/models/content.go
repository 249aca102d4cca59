// Package models defines the atlas content types serialized to JSON.
package models

// Category is one category row within a classification.
type Category struct {
	// Name is the category's display name.
	Name string `json:"name"`
	// Slug is the URL slug derived from the name.
	Slug string `json:"slug"`
	// Code combines the slug with the normalized category codes
	// ("0-to-4=0-4").
	Code string `json:"code"`
}

// Classification is one classification column kept from a variable's
// worksheet.
type Classification struct {
	// Code is the classification mnemonic (header text, spaces stripped).
	Code string `json:"code"`
	// Slug is the URL slug derived from the code.
	Slug string `json:"slug"`
	// Desc is the human-readable classification label.
	Desc string `json:"desc"`
	// ChoroplethDefault marks the classification a choropleth map should
	// use by default.
	ChoroplethDefault bool `json:"choropleth_default,omitempty"`
	// DotDensityDefault marks the classification a dot-density map should
	// use by default.
	DotDensityDefault bool `json:"dot_density_default,omitempty"`
	// Categories lists the classification's categories in worksheet row
	// order.
	Categories []Category `json:"categories"`
}

// Variable is one census variable together with its kept classifications.
type Variable struct {
	// Name is the variable's display name.
	Name string `json:"name"`
	// Code is the variable mnemonic, which is also its worksheet name.
	Code string `json:"code"`
	// Slug is the URL slug derived from the name.
	Slug string `json:"slug"`
	// Desc is the variable description.
	Desc string `json:"desc"`
	// Units is the variable's statistical unit.
	Units string `json:"units"`
	// Comparison2011 flags that comparison data from the 2011 census
	// exists for this variable.
	Comparison2011 bool `json:"comparison_2011,omitempty"`
	// Classifications lists the kept classifications in worksheet column
	// order.
	Classifications []Classification `json:"classifications"`
}

// Topic groups the variables belonging to one topic area.
type Topic struct {
	// Name is the resolved topic title.
	Name string `json:"name"`
	// Slug is the URL slug derived from the name.
	Slug string `json:"slug"`
	// Desc is the topic description.
	Desc string `json:"desc"`
	// Variables lists the topic's variables in index row order. Never
	// empty: a topic is only created alongside its first variable.
	Variables []Variable `json:"variables"`
}
