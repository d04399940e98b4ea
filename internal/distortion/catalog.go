package distortion

import (
	"fmt"
	"regexp"
	"strings"
)

// catalog is the package-level distortion table in definition order.
var catalog []Definition

// index maps lowercased type and name to a catalog position.
var index map[string]int

func init() {
	catalog = make([]Definition, len(seedDistortions))
	index = make(map[string]int, 2*len(seedDistortions))
	for i, d := range seedDistortions {
		d.matchers = compilePatterns(d.Type, d.Patterns)
		catalog[i] = d
		index[strings.ToLower(d.Type)] = i
		index[strings.ToLower(d.Name)] = i
	}
}

// compilePatterns compiles every pattern case-insensitively. A bad pattern
// in the seed table is a programming error.
func compilePatterns(typ string, patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			panic(fmt.Sprintf("distortion %s: bad pattern %q: %v", typ, p, err))
		}
		out = append(out, re)
	}
	return out
}

// Lookup finds a distortion by type or display name, ignoring case.
// Returns (nil, false) when nothing matches.
func Lookup(nameOrType string) (*Definition, bool) {
	i, ok := index[strings.ToLower(strings.TrimSpace(nameOrType))]
	if !ok {
		return nil, false
	}
	d := clone(catalog[i])
	return &d, true
}

// All returns every distortion in catalog order.
func All() []Definition {
	out := make([]Definition, len(catalog))
	for i := range catalog {
		out[i] = clone(catalog[i])
	}
	return out
}

// Types returns every distortion type in catalog order.
func Types() []string {
	out := make([]string, len(catalog))
	for i, d := range catalog {
		out[i] = d.Type
	}
	return out
}

// clone copies the slice fields so callers can't reach the catalog's
// backing arrays. Compiled matchers are immutable and shared.
func clone(d Definition) Definition {
	d.Patterns = append([]string(nil), d.Patterns...)
	d.ReframeQuestions = append([]string(nil), d.ReframeQuestions...)
	d.Examples = append([]string(nil), d.Examples...)
	return d
}

// Matches reports whether any of d's patterns occurs in text.
// text is expected to be normalized already.
func (d Definition) Matches(text string) bool {
	for _, re := range d.matchers {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
