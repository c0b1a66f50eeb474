// Package slug derives URL-safe matching keys from category display names.
//
// Two independent algorithms are kept on purpose: the search backend and the
// storefront CMS slugify names differently (accent folding vs. dropping,
// symbol handling), so category URLs in the tree may match either form.
// Callers that need robust matching should try both via Candidates.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any run of characters outside [a-z0-9-].
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses runs of hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// SearchStyle normalizes a raw name the way the search backend builds its
// category URLs: accents are folded to ASCII, everything that is not a letter
// or digit becomes a hyphen.
//
// "Health & Beauty" -> "health-beauty", "Décor" -> "decor".
func SearchStyle(raw string) string {
	// NFD decomposition, strip combining marks, recompose. Transformers
	// are stateful, so the chain is built per call.
	foldAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(foldAccents, raw)
	if err != nil {
		s = raw
	}
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return '-'
	}, s)
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenericStyle normalizes a raw name the way the storefront CMS does: no
// accent folding, accented letters and other symbols are simply dropped after
// spaces and underscores become hyphens.
//
// "Health & Beauty" -> "health-beauty", "Décor" -> "dcor".
func GenericStyle(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	s = nonAlphanumeric.ReplaceAllString(s, "")
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Style is a single normalization strategy.
type Style func(raw string) string

// Styles is the ordered list of strategies tried when matching a name
// against category URLs. SearchStyle comes first because the tree is served
// by the search backend.
var Styles = []Style{SearchStyle, GenericStyle}

// Candidates returns the distinct normalized forms of raw, in Styles order.
// When both styles agree only one candidate is returned.
func Candidates(raw string) []string {
	out := make([]string, 0, len(Styles))
	for _, style := range Styles {
		s := style(raw)
		if s == "" {
			continue
		}
		dup := false
		for _, prev := range out {
			if prev == s {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}
	return out
}
