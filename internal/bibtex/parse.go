package bibtex

import (
	"regexp"
	"strings"
)

// FieldNames lists the fields the parser extracts from each entry.
var FieldNames = []string{
	"title", "author", "year", "journal", "booktitle", "institution",
	"publisher", "organization", "volume", "number", "pages",
	"keywords", "doi", "url",
}

// UnknownYear is the sentinel year for entries without a parsable year.
const UnknownYear = "Unknown"

var (
	// Match entry start: @type{
	entryStartRe = regexp.MustCompile(`@[A-Za-z]+\s*\{`)
	// Match the start of the following entry, which ends the current block
	nextEntryRe = regexp.MustCompile(`\n\s*@[A-Za-z]+\s*\{`)
	entryTypeRe = regexp.MustCompile(`^@([A-Za-z]+)\s*\{`)
	yearTokenRe = regexp.MustCompile(`(19\d{2}|20\d{2})`)

	fieldRes = compileFieldPatterns()
)

// compileFieldPatterns builds one value pattern per recognized field.
// A value runs up to the end of its line, with or without a trailing comma.
func compileFieldPatterns() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(FieldNames))
	for _, name := range FieldNames {
		res[name] = regexp.MustCompile(`(?is)\b` + name + `\s*=\s*(.+?)(?:,\s*\n|\n)`)
	}
	return res
}

// Parse scans source text for BibTeX records and returns them in source
// order. Scanning is a cursor walk over the text: find the next @type{
// marker, slice to the following marker (or end of text), repeat. When no
// further marker exists the scan simply stops; malformed trailing text is
// never an error. An empty source yields no entries.
func Parse(text string) []Entry {
	var entries []Entry
	pos := 0
	for {
		loc := entryStartRe.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]

		end := len(text)
		if next := nextEntryRe.FindStringIndex(text[start+1:]); next != nil {
			end = start + 1 + next[0]
		}

		entries = append(entries, parseBlock(strings.TrimSpace(text[start:end])))
		pos = end
	}
	return entries
}

// parseBlock extracts type, key, and recognized fields from one raw block.
func parseBlock(block string) Entry {
	e := Entry{Type: "misc", Raw: block, Fields: make(map[string]string)}

	if m := entryTypeRe.FindStringSubmatch(block); m != nil {
		e.Type = strings.ToLower(m[1])
	}

	// Key sits between the opening brace and the first comma.
	braceIdx := strings.Index(block, "{")
	if braceIdx != -1 {
		if comma := strings.Index(block[braceIdx+1:], ","); comma != -1 {
			e.Key = strings.TrimSpace(block[braceIdx+1 : braceIdx+1+comma])
		}
	}

	for name, re := range fieldRes {
		if m := re.FindStringSubmatch(block); m != nil {
			e.Fields[name] = cleanValue(m[1])
		}
	}

	e.Year = normalizeYear(e.Fields["year"])
	return e
}

// normalizeYear reduces a raw year value to its first 4-digit token in
// 1900-2099, or UnknownYear when there is none.
func normalizeYear(raw string) string {
	if m := yearTokenRe.FindString(raw); m != "" {
		return m
	}
	return UnknownYear
}
