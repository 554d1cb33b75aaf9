package services

import (
	"strings"
	"unicode"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// suggestions below this similarity are noise, not typos
const suggestionThreshold = 0.6

// NormalizeInput folds a city query to lowercase ascii
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// RemoveDiacritics strips combining marks after NFD decomposition
func RemoveDiacritics(s string) string {
	t := norm.NFD.String(s)
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity scores two strings in [0, 1] from edit distance
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// SuggestCity proposes the known city closest to query. Returns the
// original-cased city name, or "" when nothing is close enough or the
// query already matches a known city exactly.
func SuggestCity(query string, cities []string) string {
	normalized := NormalizeInput(query)
	if normalized == "" || len(cities) == 0 {
		return ""
	}

	byNormalized := make(map[string]string, len(cities))
	keywords := make([]string, 0, len(cities))
	for _, city := range cities {
		n := NormalizeInput(RemoveDiacritics(city))
		if n == "" {
			continue
		}
		if _, seen := byNormalized[n]; !seen {
			byNormalized[n] = city
			keywords = append(keywords, n)
		}
	}

	if _, exact := byNormalized[normalized]; exact {
		return ""
	}

	cm := createMatcher(keywords)
	best := cm.Closest(normalized)
	if best == "" {
		return ""
	}
	if calculateSimilarity(normalized, best) < suggestionThreshold {
		return ""
	}
	return byNormalized[best]
}
