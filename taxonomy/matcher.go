package taxonomy

import (
	"fmt"

	"github.com/standardbeagle/taxmap/similarity"
	"github.com/standardbeagle/taxmap/termset"
)

// DefaultNodeThreshold is the edit-similarity cutoff two terms must reach
// when neither contains the other.
const DefaultNodeThreshold = 0.8

// Matcher decides whether an extended split term set semantically subsumes a
// target category label. Safe for concurrent use.
type Matcher struct {
	threshold float64
	splitter  *termset.Splitter
}

// NewMatcher creates a matcher with the given node threshold in [0, 1].
func NewMatcher(threshold float64) (*Matcher, error) {
	if threshold < 0.0 || threshold > 1.0 {
		return nil, fmt.Errorf("node threshold must be between 0.0 and 1.0, got %f", threshold)
	}
	return &Matcher{
		threshold: threshold,
		splitter:  termset.NewSplitter(),
	}, nil
}

// Threshold returns the matcher's node threshold.
func (m *Matcher) Threshold() float64 { return m.threshold }

// Match reports whether every term in the extended split term set is covered
// by some split term of the target label, either by containing it outright or
// by reaching the node threshold on edit similarity. An empty term set
// matches nothing.
//
// Containment is direction-sensitive: the source term must contain the target
// term, so {"grapefruit"} covers "Grape" but {"grape"} does not cover
// "Grapefruit".
func (m *Matcher) Match(terms termset.Set, targetLabel string) bool {
	if terms.Len() == 0 {
		return false
	}
	targetTerms := m.splitter.Split(targetLabel).Terms()

	for _, e := range terms.Terms() {
		if !m.termCovered(e, targetTerms) {
			return false
		}
	}
	return true
}

func (m *Matcher) termCovered(e string, targetTerms []string) bool {
	for _, t := range targetTerms {
		if similarity.Contains(e, t) {
			return true
		}
		if similarity.EditSimilarity(e, t) >= m.threshold {
			return true
		}
	}
	return false
}
