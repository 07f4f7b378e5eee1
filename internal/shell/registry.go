package shell

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type phrase struct {
	canonical string
	alias     string
}

// registry resolves typed words to canonical names: exact name or alias
// first, then a unique prefix of two or more letters, then the nearest name
// by edit distance.
type registry struct {
	names   []string
	phrases []phrase
}

func newRegistry() *registry {
	return &registry{}
}

func (r *registry) register(canonical string, aliases ...string) {
	r.names = append(r.names, canonical)
	r.phrases = append(r.phrases, phrase{canonical: canonical, alias: canonical})
	for _, a := range aliases {
		r.phrases = append(r.phrases, phrase{canonical: canonical, alias: a})
	}
}

type matchKind int

const (
	matchNone matchKind = iota
	matchExact
	matchPrefix
	matchFuzzy
	matchAmbiguous
)

// resolve returns the canonical name for word. For matchAmbiguous the
// returned slice holds the competing names.
func (r *registry) resolve(word string) (string, matchKind, []string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return "", matchNone, nil
	}

	for _, p := range r.phrases {
		if p.alias == word {
			return p.canonical, matchExact, nil
		}
	}

	if len(word) >= 2 {
		hits := make(map[string]bool)
		for _, p := range r.phrases {
			if strings.HasPrefix(p.alias, word) {
				hits[p.canonical] = true
			}
		}
		switch len(hits) {
		case 0:
		case 1:
			for name := range hits {
				return name, matchPrefix, nil
			}
		default:
			names := make([]string, 0, len(hits))
			for name := range hits {
				names = append(names, name)
			}
			sort.Strings(names)
			return "", matchAmbiguous, names
		}
	}

	best, bestDist := "", -1
	for _, p := range r.phrases {
		if len(word) < 3 {
			break
		}
		dist := levenshtein.ComputeDistance(word, p.alias)
		if dist > levenshteinLimit(len(p.alias)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = p.canonical, dist
		}
	}
	if best != "" {
		return best, matchFuzzy, nil
	}

	return "", matchNone, nil
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
