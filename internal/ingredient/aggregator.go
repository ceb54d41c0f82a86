// Package ingredient merges, sorts, and formats shopping list
// ingredient entries.
package ingredient

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"recipebook/internal/domain"
)

// Aggregate merges a flat list of ingredient entries into deduplicated,
// summed rows. Entries group together iff both the lowercased trimmed
// name and the lowercased trimmed unit match; the same ingredient in
// different units stays in separate rows. Entries with an empty name,
// or whose quantity is zero, negative, or unparseable, are skipped.
// Output rows keep the casing of the first entry seen for their group
// and appear in first-seen order; no sorting happens here.
func Aggregate(entries []domain.IngredientEntry) []domain.AggregatedIngredient {
	if len(entries) == 0 {
		return []domain.AggregatedIngredient{}
	}

	index := make(map[string]int)
	out := make([]domain.AggregatedIngredient, 0, len(entries))

	for _, entry := range entries {
		// A whitespace-only name is not empty and passes through verbatim.
		if entry.Name == "" {
			continue
		}

		quantity := float64(entry.Quantity)
		if quantity <= 0 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(entry.Name)) + "::" +
			strings.ToLower(strings.TrimSpace(entry.Unit))

		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, domain.AggregatedIngredient{
				Name: entry.Name,
				Unit: entry.Unit,
			})
		}
		out[i].Quantity += quantity
		out[i].Count++
	}

	return out
}

// Sort returns the ingredients ordered by name, ascending, using a
// case-insensitive locale-aware comparison. The sort is stable, missing
// names sort last, and the input slice is not mutated.
func Sort(ingredients []domain.AggregatedIngredient) []domain.AggregatedIngredient {
	if len(ingredients) == 0 {
		return []domain.AggregatedIngredient{}
	}

	sorted := make([]domain.AggregatedIngredient, len(ingredients))
	copy(sorted, ingredients)

	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Name, sorted[j].Name
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return c.CompareString(a, b) < 0
	})

	return sorted
}

// Format renders one shopping list line as "quantity unit name". The
// unit segment is omitted entirely when empty and the result is
// trimmed. A zero-value ingredient formats to the empty string.
func Format(ing domain.AggregatedIngredient) string {
	if ing.Name == "" && ing.Unit == "" && ing.Quantity == 0 {
		return ""
	}

	quantity := strconv.FormatFloat(ing.Quantity, 'f', -1, 64)
	if ing.Unit == "" {
		return strings.TrimSpace(fmt.Sprintf("%s %s", quantity, ing.Name))
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", quantity, ing.Unit, ing.Name))
}
