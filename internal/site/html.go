package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/caps-tum/pubpage/internal/classify"
)

// Layout names.
const (
	LayoutSticky      = "sticky"      // sticky filters + searchable year sidebar
	LayoutCollapsible = "collapsible" // plain sidebar, collapsible year sections
)

// ValidLayouts lists the supported page layout names.
var ValidLayouts = []string{LayoutSticky, LayoutCollapsible}

// layoutTemplates is parsed at init time to fail fast on template errors.
var layoutTemplates map[string]*template.Template

func init() {
	layoutTemplates = map[string]*template.Template{
		LayoutSticky:      template.Must(template.New(LayoutSticky).Parse(stickyTemplate)),
		LayoutCollapsible: template.Must(template.New(LayoutCollapsible).Parse(collapsibleTemplate)),
	}
}

// Options configures HTML generation.
type Options struct {
	Layout string            // "sticky" or "collapsible"
	Colors map[string]string // per-category accent overrides, keyed by label
	Tints  map[string]string // per-category tint overrides, keyed by label
}

// DefaultOptions returns default HTML generation options.
func DefaultOptions() Options {
	return Options{Layout: LayoutSticky}
}

// categoryChip is one topic filter button.
type categoryChip struct {
	Label string
	Slug  string
}

// templateData holds data for the page templates.
type templateData struct {
	Title      string
	TopicCSS   template.CSS
	Categories []categoryChip
	FilterJS   template.JS
	Sections   []Section
}

// Render generates the self-contained publications page for the given
// layout. The entire document is produced in one pass; nothing is written
// until the caller decides where the string goes.
func Render(page *Page, opts Options) (string, error) {
	if page == nil {
		return "", fmt.Errorf("page cannot be nil")
	}
	if err := validateLayout(opts.Layout); err != nil {
		return "", err
	}

	layout := opts.Layout
	if layout == "" {
		layout = LayoutSticky
	}

	colors := mergePalette(Colors, opts.Colors)
	tints := mergePalette(Tints, opts.Tints)

	data := templateData{
		Title:      page.Title,
		TopicCSS:   template.CSS(topicCSS(colors, tints)),
		Categories: categoryChips(),
		FilterJS:   template.JS(filterScript),
		Sections:   page.Sections,
	}

	var buf bytes.Buffer
	if err := layoutTemplates[layout].Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// validateLayout checks if the layout option is valid.
func validateLayout(layout string) error {
	switch layout {
	case "", LayoutSticky, LayoutCollapsible:
		return nil
	default:
		return fmt.Errorf("invalid layout %q: must be sticky or collapsible", layout)
	}
}

// categoryChips builds the filter buttons in display order.
func categoryChips() []categoryChip {
	chips := make([]categoryChip, 0, len(classify.Categories))
	for _, cat := range classify.Categories {
		chips = append(chips, categoryChip{Label: string(cat), Slug: Slug(string(cat))})
	}
	return chips
}
