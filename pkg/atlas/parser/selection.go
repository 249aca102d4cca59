package parser

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadSelection reads a two-column selection CSV (classifications to
// keep, variable mnemonic) into a map from upper-cased mnemonic to its
// suffix list. The first row is a header and is skipped.
func ReadSelection(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	selected := make(map[string][]string)
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("selection row %d: want 2 columns, got %d", i+1, len(rec))
		}
		var suffixes []string
		for _, s := range strings.Split(rec[0], ",") {
			suffixes = append(suffixes, strings.TrimSpace(s))
		}
		selected[strings.ToUpper(strings.TrimSpace(rec[1]))] = suffixes
	}
	return selected, nil
}

// ExpandCodes expands a comma-separated category code string into its
// numeric values: "3-5" (also ">" or en-dash separated) becomes 3, 4, 5
// and bare integers pass through. A lone negative number is kept; a
// range that begins with a negative number is rejected, as is any
// non-numeric token.
func ExpandCodes(s string) ([]int, error) {
	s = strings.Join(strings.Fields(s), "")

	var result []int
	for _, code := range strings.Split(s, ",") {
		switch {
		case code == "":

		case strings.HasPrefix(code, "-"):
			if strings.ContainsAny(code[1:], "-–>") {
				return nil, fmt.Errorf("unexpected range beginning with a negative number: %q", code)
			}
			n, err := strconv.Atoi(code)
			if err != nil {
				return nil, fmt.Errorf("unexpected code: %q", code)
			}
			result = append(result, n)

		case strings.ContainsAny(code, "-–>"):
			lo, hi, err := parseRange(code)
			if err != nil {
				return nil, err
			}
			for n := lo; n <= hi; n++ {
				result = append(result, n)
			}

		default:
			n, err := strconv.Atoi(code)
			if err != nil {
				return nil, fmt.Errorf("unexpected code: %q", code)
			}
			result = append(result, n)
		}
	}
	return result, nil
}

func parseRange(code string) (lo, hi int, err error) {
	parts := strings.FieldsFunc(code, func(r rune) bool {
		return r == '-' || r == '–' || r == '>'
	})
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected range: %q", code)
	}
	if lo, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("unexpected range: %q", code)
	}
	if hi, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("unexpected range: %q", code)
	}
	return lo, hi, nil
}
