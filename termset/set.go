// Package termset implements split term sets: the unordered sets of lower-cased
// atomic terms that category labels decompose into. Sets are the currency of the
// matching pipeline; every comparison between category nodes happens through them.
package termset

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Set is a set of atomic terms. Terms are lower-cased, never empty.
// Construction is cheap and mutation is only expected before a set is handed to
// the matching pipeline; after that callers treat it as immutable.
type Set map[string]struct{}

// New builds a set from the given terms. Empty strings are ignored.
func New(terms ...string) Set {
	s := make(Set, len(terms))
	for _, t := range terms {
		s.Add(t)
	}
	return s
}

// Add inserts a term, lower-casing it. Empty terms are ignored.
func (s Set) Add(term string) {
	if term == "" {
		return
	}
	s[strings.ToLower(term)] = struct{}{}
}

// Has reports whether the set contains the term (exact, already-lowered form).
func (s Set) Has(term string) bool {
	_, ok := s[term]
	return ok
}

// Len returns the number of terms in the set.
func (s Set) Len() int {
	return len(s)
}

// Equal reports whether both sets contain exactly the same terms.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for t := range s {
		if _, ok := other[t]; !ok {
			return false
		}
	}
	return true
}

// Union returns a new set with the members of both sets.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for t := range s {
		out[t] = struct{}{}
	}
	for t := range other {
		out[t] = struct{}{}
	}
	return out
}

// Terms returns the members in sorted order. All iteration that affects match
// or keying outcomes goes through Terms so results are reproducible across runs.
func (s Set) Terms() []string {
	terms := make([]string, 0, len(s))
	for t := range s {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// Fingerprint returns a 64-bit hash of the set contents. Equal sets always have
// equal fingerprints; unequal sets collide only with ordinary hash probability,
// so a fingerprint match is a precheck and Equal remains the oracle.
func (s Set) Fingerprint() uint64 {
	return xxhash.Sum64String(strings.Join(s.Terms(), "\x00"))
}

// String renders the set sorted, for traces and test failures.
func (s Set) String() string {
	return "{" + strings.Join(s.Terms(), ", ") + "}"
}
