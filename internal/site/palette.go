package site

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/caps-tum/pubpage/internal/classify"
)

// Colors maps each category to its accent color. The palette keeps visually
// adjacent categories apart (Quantum vs. Applications in particular).
var Colors = map[classify.Category]string{
	classify.HPC:              "#0EA5E9", // sky blue
	classify.Quantum:          "#7C3AED", // deep violet
	classify.Architecture:     "#F59E0B", // amber
	classify.ProgrammingModel: "#22C55E", // bright green
	classify.EdgeIoT:          "#14B8A6", // teal
	classify.AI:               "#EF4444", // bright red
	classify.Applications:     "#DB2777", // strong magenta
}

// Tints maps each category to the light background used on its cards.
var Tints = map[classify.Category]string{
	classify.HPC:              "#E0F2FE",
	classify.Quantum:          "#F3E8FF",
	classify.Architecture:     "#FEF3C7",
	classify.ProgrammingModel: "#DCFCE7",
	classify.EdgeIoT:          "#CCFBF1",
	classify.AI:               "#FEE2E2",
	classify.Applications:     "#FCE7F3",
}

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]`)

// Slug lowers a label and replaces every non-alphanumeric character with a
// dash, for use in CSS class names and element IDs.
func Slug(label string) string {
	return nonSlugRe.ReplaceAllString(strings.ToLower(label), "-")
}

// mergePalette overlays per-category overrides (keyed by label) on a base
// palette. Unknown labels in the overrides are ignored.
func mergePalette(base map[classify.Category]string, overrides map[string]string) map[classify.Category]string {
	merged := make(map[classify.Category]string, len(base))
	for cat, v := range base {
		merged[cat] = v
	}
	for label, v := range overrides {
		if _, ok := merged[classify.Category(label)]; ok {
			merged[classify.Category(label)] = v
		}
	}
	return merged
}

// topicCSS emits the per-category styling for filter buttons and entry
// cards: colored chip borders when idle, filled when checked, and a colored
// left border plus tint on each card.
func topicCSS(colors, tints map[classify.Category]string) string {
	var b strings.Builder
	for _, cat := range classify.Categories {
		color := colors[cat]
		tint := tints[cat]
		slug := Slug(string(cat))
		fmt.Fprintf(&b, ".filter label[data-cat=%q]{border-color:%s; color:%s; background:#fff;}\n", string(cat), color, color)
		fmt.Fprintf(&b, ".filter input:checked + label[data-cat=%q]{background:%s; border-color:%s; color:#fff;}\n", string(cat), color, color)
		fmt.Fprintf(&b, ".cat-%s .chip.cat{border-color:%s; color:%s;}\n", slug, color, color)
		fmt.Fprintf(&b, ".cat-%s .card{border-left:6px solid %s; background:%s;}\n", slug, color, tint)
	}
	return b.String()
}
