package services

import "testing"

func TestSuggestCityFixesTypo(t *testing.T) {
	cities := []string{"Gurugram", "Pune", "Bengaluru"}

	if got := SuggestCity("Gurugrm", cities); got != "Gurugram" {
		t.Fatalf("SuggestCity = %q, want Gurugram", got)
	}
}

func TestSuggestCityExactMatchReturnsNothing(t *testing.T) {
	cities := []string{"Gurugram", "Pune"}

	if got := SuggestCity("gurugram", cities); got != "" {
		t.Fatalf("SuggestCity = %q, want empty for an exact match", got)
	}
}

func TestSuggestCityIgnoresDistantQueries(t *testing.T) {
	cities := []string{"Gurugram", "Pune"}

	if got := SuggestCity("xyzzyq", cities); got != "" {
		t.Fatalf("SuggestCity = %q, want empty for noise", got)
	}
}

func TestSuggestCityEmptyInputs(t *testing.T) {
	if got := SuggestCity("", []string{"Pune"}); got != "" {
		t.Fatalf("SuggestCity = %q, want empty for empty query", got)
	}
	if got := SuggestCity("Pune", nil); got != "" {
		t.Fatalf("SuggestCity = %q, want empty for no cities", got)
	}
}

func TestNormalizeInput(t *testing.T) {
	if got := NormalizeInput("  Gurugram  "); got != "gurugram" {
		t.Fatalf("NormalizeInput = %q", got)
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("abc", "abc"); got != 1.0 {
		t.Fatalf("identical strings = %v, want 1", got)
	}
	if got := calculateSimilarity("", ""); got != 1.0 {
		t.Fatalf("empty strings = %v, want 1", got)
	}
	if got := calculateSimilarity("abcd", "abce"); got != 0.75 {
		t.Fatalf("one edit in four = %v, want 0.75", got)
	}
}
