package eval

import "strings"

// similarityThreshold is the cutoff above which two diagnoses are treated
// as the same condition.
const similarityThreshold = 0.8

// normalizeDiagnosis lowercases and collapses whitespace.
func normalizeDiagnosis(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// diagnosisSimilarity scores how alike two diagnosis strings are.
// Substring containment in either direction counts as 1.0; otherwise the
// Jaccard index over whitespace-tokenized word sets.
func diagnosisSimilarity(a, b string) float64 {
	na, nb := normalizeDiagnosis(a), normalizeDiagnosis(b)
	if na == "" || nb == "" {
		return 0
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 1.0
	}

	setA := wordSet(na)
	setB := wordSet(nb)

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// diagnosesMatch applies the aggregator's second, independent fallback:
// equality or substring containment after normalization.
func diagnosesMatch(a, b string) bool {
	na, nb := normalizeDiagnosis(a), normalizeDiagnosis(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb || strings.Contains(na, nb) || strings.Contains(nb, na)
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}
