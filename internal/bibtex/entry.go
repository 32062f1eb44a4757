// Package bibtex provides a tolerant parser for BibTeX source files.
//
// The parser is deliberately not a full grammar: it slices the source into
// blocks between successive @type{ markers and pulls a fixed set of fields
// out of each block with per-field patterns. Irregular spacing and line
// wrapping are tolerated; blocks that drop fields simply yield entries
// without them.
package bibtex

// Entry represents one parsed bibliographic record.
type Entry struct {
	Type   string            // record kind, lower-cased ("article", "inproceedings", ...)
	Key    string            // citation key; empty if the record is malformed
	Raw    string            // verbatim source block, preserved for display
	Fields map[string]string // recognized fields only; an absent field means unknown, not blank
	Year   string            // 4-digit year or UnknownYear, always set
}

// Field returns the named field value, or "" if the field is absent.
func (e Entry) Field(name string) string {
	return e.Fields[name]
}
