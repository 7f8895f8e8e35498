package match

import "sort"

// Candidate is a declared type name that might have been meant by an unknown reference.
type Candidate struct {
	Name string

	// NameScore is the normalized Levenshtein similarity (0-1) of the short names.
	NameScore float64

	// Metadata for debugging/explanation
	NormalizedName      string
	NormalizedReference string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates ranks names by similarity to reference. Returns candidates
// sorted by score (descending).
func RankCandidates(reference string, names []string) CandidateList {
	refNorm := NormalizeTypeRef(reference)

	candidates := make(CandidateList, 0, len(names))
	for _, name := range names {
		norm := NormalizeTypeRef(name)

		candidates = append(candidates, Candidate{
			Name:                name,
			NameScore:           LevenshteinNormalized(norm, refNorm),
			NormalizedName:      norm,
			NormalizedReference: refNorm,
		})
	}

	// Sort by score (descending), then by name for determinism
	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].NameScore != c[j].NameScore {
		return c[i].NameScore > c[j].NameScore
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].NameScore-c[1].NameScore < threshold
}

// AboveThreshold returns candidates with a score of at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.NameScore >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Names returns the candidate names in rank order.
func (c CandidateList) Names() []string {
	names := make([]string, 0, len(c))
	for _, cand := range c {
		names = append(names, cand.Name)
	}

	return names
}

// Suggestion thresholds.
const (
	// DefaultMinScore is the minimum score for a name to be suggested.
	DefaultMinScore = 0.6
	// DefaultMaxSuggestions bounds the number of suggestions per reference.
	DefaultMaxSuggestions = 3
)

// Suggest returns up to DefaultMaxSuggestions names similar to reference.
func Suggest(reference string, names []string) []string {
	return RankCandidates(reference, names).AboveThreshold(DefaultMinScore).Top(DefaultMaxSuggestions).Names()
}
