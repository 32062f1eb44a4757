package site

import (
	"strings"
	"testing"

	"github.com/caps-tum/pubpage/internal/bibtex"
	"github.com/caps-tum/pubpage/internal/classify"
	"github.com/caps-tum/pubpage/internal/config"
)

// makeEntry builds a parsed entry directly, as the parser would.
func makeEntry(key, year string, fields map[string]string) bibtex.Entry {
	return bibtex.Entry{
		Type:   "article",
		Key:    key,
		Raw:    "@article{" + key + ", ...}",
		Fields: fields,
		Year:   year,
	}
}

func TestBuild_ExcludesPreprints(t *testing.T) {
	entries := []bibtex.Entry{
		makeEntry("Keep2023", "2023", map[string]string{"title": "A Kept Paper", "journal": "Some Journal"}),
		makeEntry("Drop2023", "2023", map[string]string{"title": "A Dropped Paper", "booktitle": "arXiv preprint"}),
	}

	page, err := Build(entries, config.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if page.Total != 1 {
		t.Errorf("Total = %d, want 1", page.Total)
	}
	for _, sec := range page.Sections {
		for _, e := range sec.Entries {
			if e.Key == "Drop2023" {
				t.Error("preprint entry should not appear in any section")
			}
		}
	}
}

func TestBuild_YearOrdering(t *testing.T) {
	entries := []bibtex.Entry{
		makeEntry("Old2019", "2019", map[string]string{"title": "Older"}),
		makeEntry("NoYear", bibtex.UnknownYear, map[string]string{"title": "Undated"}),
		makeEntry("New2024", "2024", map[string]string{"title": "Newer"}),
	}

	page, err := Build(entries, config.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var years []string
	for _, sec := range page.Sections {
		years = append(years, sec.Year)
	}
	want := []string{"2024", "2019", bibtex.UnknownYear}
	if len(years) != len(want) {
		t.Fatalf("got %d sections, want %d", len(years), len(want))
	}
	for i := range want {
		if years[i] != want[i] {
			t.Errorf("section %d year = %q, want %q", i, years[i], want[i])
		}
	}
}

func TestBuild_TitleSortWithinYear(t *testing.T) {
	entries := []bibtex.Entry{
		makeEntry("B2023", "2023", map[string]string{"title": "zebra studies"}),
		makeEntry("A2023", "2023", map[string]string{"title": "Aardvark studies"}),
		makeEntry("M2023", "2023", map[string]string{"title": "meerkat studies"}),
	}

	page, err := Build(entries, config.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	got := []string{}
	for _, e := range page.Sections[0].Entries {
		got = append(got, e.Title)
	}
	want := []string{"Aardvark studies", "meerkat studies", "zebra studies"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d title = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuild_EveryEntryGetsACategory(t *testing.T) {
	entries := []bibtex.Entry{
		makeEntry("Q2023", "2023", map[string]string{"title": "Quantum error correction"}),
		makeEntry("X2023", "2023", map[string]string{"title": "Completely unremarkable"}),
	}

	page, err := Build(entries, config.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	valid := make(map[classify.Category]bool)
	for _, c := range classify.Categories {
		valid[c] = true
	}
	for _, sec := range page.Sections {
		for _, e := range sec.Entries {
			if !valid[e.Category] {
				t.Errorf("entry %s category = %q, not in the fixed set", e.Key, e.Category)
			}
			if e.CatClass == "" {
				t.Errorf("entry %s has empty category class", e.Key)
			}
		}
	}
}

func TestBuild_MetaLine(t *testing.T) {
	entries := []bibtex.Entry{
		makeEntry("Full2022", "2022", map[string]string{
			"title":   "A Full Entry",
			"journal": "Journal of Things",
			"volume":  "5",
			"number":  "2",
			"pages":   "10--20",
		}),
	}

	page, err := Build(entries, config.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	meta := page.Sections[0].Entries[0].Meta
	want := "Journal of Things • Vol. 5 • No. 2 • pp. 10--20"
	if meta != want {
		t.Errorf("Meta = %q, want %q", meta, want)
	}
}

func TestBuild_VenuePreferenceChain(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{"journal first", map[string]string{"journal": "J", "booktitle": "B"}, "J"},
		{"booktitle next", map[string]string{"booktitle": "B", "institution": "I"}, "B"},
		{"institution next", map[string]string{"institution": "I", "publisher": "P"}, "I"},
		{"organization last", map[string]string{"organization": "O"}, "O"},
		{"no venue", map[string]string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := venue(makeEntry("K", "2022", tt.fields)); got != tt.want {
				t.Errorf("venue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuild_AuthorHighlight(t *testing.T) {
	cfg := config.Default()
	cfg.Highlight = []string{`Doe,\s*Jane`}

	entries := []bibtex.Entry{
		makeEntry("H2023", "2023", map[string]string{
			"title":  "Highlighted",
			"author": "Doe, Jane and Smith, Alan",
		}),
	}

	page, err := Build(entries, cfg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	authors := string(page.Sections[0].Entries[0].Authors)
	if !strings.Contains(authors, "<b>Doe, Jane</b>") {
		t.Errorf("Authors = %q, want bolded name", authors)
	}
	if !strings.Contains(authors, "Smith, Alan") {
		t.Errorf("Authors = %q, should keep the rest of the line", authors)
	}
}

func TestBuild_AuthorLineEscaped(t *testing.T) {
	entries := []bibtex.Entry{
		makeEntry("E2023", "2023", map[string]string{
			"title":  "Escaped",
			"author": "Props <script> & Co",
		}),
	}

	page, err := Build(entries, config.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	authors := string(page.Sections[0].Entries[0].Authors)
	if strings.Contains(authors, "<script>") {
		t.Errorf("Authors = %q, markup should be escaped", authors)
	}
	if !strings.Contains(authors, "&amp;") {
		t.Errorf("Authors = %q, ampersand should be escaped", authors)
	}
}

func TestBuild_Fallbacks(t *testing.T) {
	entries := []bibtex.Entry{
		{Type: "misc", Key: "", Raw: "@misc{,}", Fields: map[string]string{}, Year: bibtex.UnknownYear},
	}

	page, err := Build(entries, config.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	e := page.Sections[0].Entries[0]
	if e.Title != "Untitled" {
		t.Errorf("Title = %q, want Untitled", e.Title)
	}
	if e.Key != "k1" {
		t.Errorf("Key = %q, want generated fallback k1", e.Key)
	}
	if e.BibID == "" {
		t.Error("BibID should never be empty")
	}
}

func TestBuild_InvalidHighlightPattern(t *testing.T) {
	cfg := config.Default()
	cfg.Highlight = []string{"("}

	if _, err := Build(nil, cfg); err == nil {
		t.Error("Build() should fail on an invalid highlight pattern")
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	page, err := Build(nil, config.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if page.Total != 0 || len(page.Sections) != 0 {
		t.Errorf("empty input produced %d entries in %d sections", page.Total, len(page.Sections))
	}
}
