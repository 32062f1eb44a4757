// Package site turns parsed bibliography entries into a browsable HTML
// publications page: preprints are dropped, the rest are classified,
// grouped by year, and rendered with topic filters.
package site

import (
	"fmt"
	"html/template"
	"regexp"
	"sort"
	"strings"

	"github.com/caps-tum/pubpage/internal/bibtex"
	"github.com/caps-tum/pubpage/internal/classify"
	"github.com/caps-tum/pubpage/internal/config"
)

// Page is the fully prepared model handed to the templates.
type Page struct {
	Title    string
	Sections []Section // newest year first, "Unknown" last
	Total    int       // retained entries across all sections
}

// Section groups the entries of one publication year.
type Section struct {
	Year    string
	Entries []RenderedEntry
}

// RenderedEntry carries one retained entry plus everything the templates
// need to draw its card.
type RenderedEntry struct {
	Title    string
	Authors  template.HTML // escaped author line with highlight names bolded
	Meta     string        // venue, Vol., No., pp. parts joined with bullets
	Category classify.Category
	CatClass string // CSS class slug for the category
	Year     string
	Type     string
	Key      string
	Raw      string
	BibID    string // element ID for the per-entry BibTeX toggle
}

// Build filters preprints out, classifies the remaining entries, groups
// them by year, and sorts everything for rendering. Years run newest first
// with "Unknown" last; entries within a year sort by lower-cased title.
func Build(entries []bibtex.Entry, cfg *config.Config) (*Page, error) {
	highlight, err := compileHighlight(cfg.Highlight)
	if err != nil {
		return nil, err
	}

	type classified struct {
		entry    bibtex.Entry
		category classify.Category
	}

	byYear := make(map[string][]classified)
	total := 0
	for _, e := range entries {
		if classify.IsPreprint(e) {
			continue
		}
		byYear[e.Year] = append(byYear[e.Year], classified{e, classify.Assign(e)})
		total++
	}

	years := make([]string, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Slice(years, func(i, j int) bool {
		if years[i] == bibtex.UnknownYear {
			return false
		}
		if years[j] == bibtex.UnknownYear {
			return true
		}
		return years[i] > years[j]
	})

	page := &Page{Title: cfg.Title, Total: total}
	counter := 0
	for _, y := range years {
		group := byYear[y]
		sort.SliceStable(group, func(i, j int) bool {
			return strings.ToLower(group[i].entry.Field("title")) < strings.ToLower(group[j].entry.Field("title"))
		})

		sec := Section{Year: y}
		for _, c := range group {
			counter++
			sec.Entries = append(sec.Entries, renderEntry(c.entry, c.category, counter, highlight))
		}
		page.Sections = append(page.Sections, sec)
	}
	return page, nil
}

// renderEntry prepares one entry card. n is a page-wide counter used for
// unique toggle IDs and as a key fallback for malformed entries.
func renderEntry(e bibtex.Entry, cat classify.Category, n int, highlight *regexp.Regexp) RenderedEntry {
	title := e.Field("title")
	if title == "" {
		title = "Untitled"
	}

	var meta []string
	if v := venue(e); v != "" {
		meta = append(meta, v)
	}
	if v := e.Field("volume"); v != "" {
		meta = append(meta, "Vol. "+v)
	}
	if v := e.Field("number"); v != "" {
		meta = append(meta, "No. "+v)
	}
	if v := e.Field("pages"); v != "" {
		meta = append(meta, "pp. "+v)
	}

	key := e.Key
	if key == "" {
		key = fmt.Sprintf("k%d", n)
	}

	return RenderedEntry{
		Title:    title,
		Authors:  boldAuthors(e.Field("author"), highlight),
		Meta:     strings.Join(meta, " • "),
		Category: cat,
		CatClass: Slug(string(cat)),
		Year:     e.Year,
		Type:     e.Type,
		Key:      key,
		Raw:      e.Raw,
		BibID:    fmt.Sprintf("bib-%s-%d", e.Year, n),
	}
}

// venue picks the first available venue-like field for the meta line.
func venue(e bibtex.Entry) string {
	for _, name := range []string{"journal", "booktitle", "institution", "publisher", "organization"} {
		if v := e.Field(name); v != "" {
			return v
		}
	}
	return ""
}

// boldAuthors escapes the author line and wraps configured name patterns in
// <b> tags so the page owner stands out in author lists.
func boldAuthors(authors string, highlight *regexp.Regexp) template.HTML {
	escaped := template.HTMLEscapeString(authors)
	if authors == "" || highlight == nil {
		return template.HTML(escaped)
	}
	return template.HTML(highlight.ReplaceAllString(escaped, "<b>$0</b>"))
}

// compileHighlight joins the configured patterns into one alternation.
// No patterns means no highlighting.
func compileHighlight(patterns []string) (*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	re, err := regexp.Compile(strings.Join(patterns, "|"))
	if err != nil {
		return nil, fmt.Errorf("compiling highlight patterns: %w", err)
	}
	return re, nil
}
