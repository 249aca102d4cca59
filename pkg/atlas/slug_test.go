package atlas

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Age", "age"},
		{"0 to 4", "0-to-4"},
		{"Hello, World!", "hello-world"},
		{"Café au lait", "cafe-au-lait"},
		{"Age (5 categories)", "age-5-categories"},
		{"  --Multiple   spaces--  ", "multiple-spaces"},
		{"under_score", "under_score"},
		{"Does not apply", "does-not-apply"},
		{"", ""},
	}

	for _, tt := range tests {
		result := Slugify(tt.input)
		if result != tt.expected {
			t.Errorf("Slugify(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
