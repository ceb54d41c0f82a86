package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Quantity is an ingredient quantity as sourced from the CMS. Recipe
// records have carried quantities both as JSON numbers and as
// numeric-like strings, so unmarshalling accepts either. A value that
// does not parse as a number decodes to zero.
type Quantity float64

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*q = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*q = 0
			return nil
		}
		*q = Quantity(parseQuantity(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*q = 0
		return nil
	}
	*q = Quantity(f)
	return nil
}

// parseQuantity mirrors parseFloat semantics: a leading numeric prefix
// parses, anything else is zero.
func parseQuantity(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Fall back to the longest numeric prefix ("2 cups" -> 2).
	end := 0
	seenDot := false
	for i, r := range s {
		if r >= '0' && r <= '9' {
			end = i + 1
			continue
		}
		if r == '.' && !seenDot {
			seenDot = true
			end = i + 1
			continue
		}
		if (r == '-' || r == '+') && i == 0 {
			end = i + 1
			continue
		}
		break
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return f
}

// IngredientEntry is a single ingredient line as sourced from a recipe
// record.
type IngredientEntry struct {
	Name     string   `json:"name"`
	Quantity Quantity `json:"quantity"`
	Unit     string   `json:"unit,omitempty"`
}

// AggregatedIngredient is one merged shopping list row. Name and Unit
// keep the casing of the first entry seen for the group; Quantity is the
// running sum and Count the number of entries merged.
type AggregatedIngredient struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
	Count    int     `json:"count"`
}
