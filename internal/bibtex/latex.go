package bibtex

import (
	"regexp"
	"strings"
)

// latexReplacer decodes the supported escaped accent sequences and escaped
// punctuation characters. The table is fixed; unknown escapes pass through
// untouched.
var latexReplacer = strings.NewReplacer(
	`\"a`, "ä", `\"o`, "ö", `\"u`, "ü",
	`\"A`, "Ä", `\"O`, "Ö", `\"U`, "Ü",
	`\'a`, "á", `\'e`, "é", `\'i`, "í", `\'o`, "ó", `\'u`, "ú",
	"\\`a", "à", "\\`e", "è", "\\`i", "ì", "\\`o", "ò", "\\`u", "ù",
	`\~n`, "ñ",
	`\^a`, "â", `\^e`, "ê", `\^i`, "î", `\^o`, "ô", `\^u`, "û",
	`\ss`, "ß",
	`\&`, "&", `\_`, "_", `\%`, "%", `\$`, "$",
)

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// Delatex decodes LaTeX escapes and collapses internal whitespace runs to
// single spaces, trimming the ends.
func Delatex(s string) string {
	out := latexReplacer.Replace(s)
	out = whitespaceRunRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// cleanValue prepares a raw field value: strip one matching pair of
// surrounding braces, then quotes, then decode LaTeX escapes.
func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && strings.HasPrefix(v, "{") && strings.HasSuffix(v, "}") {
		v = v[1 : len(v)-1]
	}
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		v = v[1 : len(v)-1]
	}
	return Delatex(v)
}
