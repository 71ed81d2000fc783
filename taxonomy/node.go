// Package taxonomy models the two sides of a mapping: source category nodes
// carrying extended split term sets, candidate nodes carrying raw target
// labels, and the paths both form. The Matcher decides whether a source node
// semantically subsumes a candidate label.
package taxonomy

import (
	"errors"

	"github.com/standardbeagle/taxmap/termset"
)

var (
	// ErrEmptyPath reports a path constructed with no nodes.
	ErrEmptyPath = errors.New("path has no nodes")
	// ErrEmptyLabel reports a candidate node with a blank label.
	ErrEmptyLabel = errors.New("empty node label")
)

// TermExpander builds the extended split term set for a source category in
// its path context.
type TermExpander interface {
	Expand(category, parent string, children []string) (termset.Set, error)
}

// SourceNode is one category on a source taxonomy path. The node's identity
// for matching and keying is its extended split term set, not its label: two
// differently labeled nodes with the same terms are the same node.
type SourceNode struct {
	label       string
	terms       termset.Set
	fingerprint uint64
}

// NewSourceNode expands the category label in its context and wraps the
// result. Expansion happens eagerly; the node is immutable afterwards.
func NewSourceNode(label, parent string, children []string, exp TermExpander) (SourceNode, error) {
	if exp == nil {
		return SourceNode{}, errors.New("nil term expander")
	}
	terms, err := exp.Expand(label, parent, children)
	if err != nil {
		return SourceNode{}, err
	}
	return SourceNode{
		label:       label,
		terms:       terms,
		fingerprint: terms.Fingerprint(),
	}, nil
}

// Label returns the original category label.
func (n SourceNode) Label() string { return n.label }

// Terms returns the node's extended split term set. Callers must not mutate it.
func (n SourceNode) Terms() termset.Set { return n.terms }

// Equal reports whether both nodes carry the same extended split term set.
// The fingerprint screens out mismatches cheaply; equal fingerprints are
// confirmed against the sets themselves.
func (n SourceNode) Equal(other SourceNode) bool {
	if n.fingerprint != other.fingerprint {
		return false
	}
	return n.terms.Equal(other.terms)
}

// MatchesCandidate reports whether the node's term set semantically subsumes
// the candidate's label under the given matcher.
func (n SourceNode) MatchesCandidate(c CandidateNode, m *Matcher) bool {
	return m.Match(n.terms, c.label)
}

// CandidateNode is one category on a candidate target path. Candidates keep
// their raw label; splitting happens at match time.
type CandidateNode struct {
	label string
}

// NewCandidateNode validates and wraps a target category label.
func NewCandidateNode(label string) (CandidateNode, error) {
	if label == "" {
		return CandidateNode{}, ErrEmptyLabel
	}
	return CandidateNode{label: label}, nil
}

// Label returns the target category label.
func (n CandidateNode) Label() string { return n.label }
