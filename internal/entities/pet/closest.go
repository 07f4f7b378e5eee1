package pet

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// normalize folds typed names for lookup. Labels typed on some systems
// arrive as decomposed jamo and only match after NFC composition.
func normalize(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// closest returns the candidate nearest to s, or "" when nothing is near enough
func closest(s string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(s, cand)
		if dist > suggestLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
