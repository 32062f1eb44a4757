// Package classify assigns topic categories to bibliography entries.
//
// Free-text bibliographic metadata has no reliable structured topic field,
// so classification uses ordered keyword rules with an explicit priority
// table and a venue fallback. Every retained entry gets exactly one
// category; entries with no signal fall through to the Applications
// catch-all so they still render under a visible filter.
package classify

import (
	"regexp"
	"strings"

	"github.com/caps-tum/pubpage/internal/bibtex"
)

// Category is one topic label from the fixed seven-value set.
type Category string

const (
	HPC              Category = "HPC"
	Quantum          Category = "Quantum"
	Architecture     Category = "Architecture"
	ProgrammingModel Category = "Programming Model"
	EdgeIoT          Category = "Edge/IoT"
	AI               Category = "AI"
	Applications     Category = "Applications"
)

// Categories lists all topic labels in display order.
var Categories = []Category{
	HPC, Quantum, Architecture, ProgrammingModel, EdgeIoT, AI, Applications,
}

// rule pairs a category with the pattern that detects it. Rules are checked
// in declaration order; ties between hits are broken by the priority table,
// not by this order.
type rule struct {
	category Category
	pattern  *regexp.Regexp
}

var topicRules = []rule{
	{Quantum, regexp.MustCompile(`(?i)quantum|qubit|neutral\s+atom|hpcqc|mqss|qpi|qdmi|pulse\s+level|fidelity|superconducting`)},
	{ProgrammingModel, regexp.MustCompile(`(?i)\bmpi\b|message\s+passing|collective|mpit|mpi_t|pmix|sessions|openmp|ompd|ompt|malleability|runtime\s+system`)},
	{EdgeIoT, regexp.MustCompile(`(?i)edge|dds|middleware|real-time|sensor|stream|kubernetes|iot`)},
	{AI, regexp.MustCompile(`(?i)machine\s+learning|neural|inference|benchmark.*ml|dataset\s+distillation|classification|deep\s+learning|artificial\s+intelligence`)},
	{Architecture, regexp.MustCompile(`(?i)architecture|gpu|fpga|memory|cache|numa|vector\s+extension|cxl|network\s+topolog|hardware|hotplug|gate\s+drive|coherent\s+mesh`)},
	{Applications, regexp.MustCompile(`(?i)synthetic\s+aperture\s+radar|sar|earth\s+observation|ocean|fusion|reactor|fluid|cfd|medical|imaging|lung|dielectric|workflows|visualization'96|graphics|vrml|crashworthiness|automotive`)},
	{HPC, regexp.MustCompile(`(?i)high\s+performance\s+computing|supercomput|hpc\b|sc\d{2}|ipdps|euro-?mpi|cluster\b|parallel\s+comput|exascale|performance\s+analysis|power\s+management|overprovision|dvfs|resilien|fault\s+tolerance`)},
}

// priority ranks categories for tie-breaking when several rules hit.
// Lower wins. Kept separate from topicRules so precedence never depends on
// rule declaration order.
var priority = map[Category]int{
	Quantum:          0,
	ProgrammingModel: 1,
	EdgeIoT:          2,
	AI:               3,
	Architecture:     4,
	Applications:     5,
	HPC:              6,
}

// venueFallbackRe recognizes common HPC venue abbreviations in lower-cased
// venue text.
var venueFallbackRe = regexp.MustCompile(`sc\d{2}|ipdps|euro-?mpi|cluster|hpcs|hpdc|ics|isc`)

// IsPreprint reports whether the entry is an unrefereed archive submission.
// Preprints are dropped from the generated page entirely.
func IsPreprint(e bibtex.Entry) bool {
	s := strings.ToLower(strings.Join([]string{
		e.Field("journal"),
		e.Field("booktitle"),
		e.Field("publisher"),
		e.Field("organization"),
	}, " "))
	return strings.Contains(s, "arxiv") || strings.Contains(s, "preprint")
}

// Assign returns exactly one category for the entry. It is a pure function
// of the entry's fields and never fails: absent fields contribute empty
// strings, and an entry with no keyword hit and no recognizable venue gets
// Applications.
func Assign(e bibtex.Entry) Category {
	text := strings.Join([]string{
		e.Field("title"),
		e.Field("journal"),
		e.Field("booktitle"),
		e.Field("institution"),
		e.Field("publisher"),
		e.Field("organization"),
		e.Field("keywords"),
	}, " ")

	var best Category
	for _, r := range topicRules {
		if !r.pattern.MatchString(text) {
			continue
		}
		if best == "" || priority[r.category] < priority[best] {
			best = r.category
		}
	}
	if best != "" {
		return best
	}

	venue := strings.ToLower(e.Field("booktitle") + " " + e.Field("journal"))
	if venueFallbackRe.MatchString(venue) {
		return HPC
	}
	return Applications
}
