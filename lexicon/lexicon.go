// Package lexicon defines the read-only knowledge-base interface the sense
// disambiguator consumes, together with an in-memory implementation and a
// caching decorator. The interface is WordNet-shaped: terms resolve to senses,
// senses carry glosses and lemma names, and senses link to other senses
// through a small fixed set of relations.
package lexicon

import (
	"errors"
	"fmt"
)

// Relation identifies one of the sense-to-sense links the disambiguator
// follows when pooling related glosses.
type Relation int

const (
	// Hypernym links a sense to a more general sense ("cheese" -> "food").
	Hypernym Relation = iota
	// Hyponym links a sense to a more specific sense ("cheese" -> "cheddar").
	Hyponym
	// PartMeronym links a sense to one of its parts ("car" -> "wheel").
	PartMeronym
	// PartHolonym links a sense to a whole it is part of ("wheel" -> "car").
	PartHolonym
)

// Relations returns the four relations in their fixed evaluation order.
func Relations() []Relation {
	return []Relation{Hypernym, Hyponym, PartMeronym, PartHolonym}
}

func (r Relation) String() string {
	switch r {
	case Hypernym:
		return "hypernym"
	case Hyponym:
		return "hyponym"
	case PartMeronym:
		return "part_meronym"
	case PartHolonym:
		return "part_holonym"
	default:
		return fmt.Sprintf("relation(%d)", int(r))
	}
}

// ParseRelation maps a relation name back to its Relation value.
func ParseRelation(name string) (Relation, error) {
	for _, r := range Relations() {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown relation %q", name)
}

func (r Relation) valid() bool {
	return r >= Hypernym && r <= PartHolonym
}

// Sense is one meaning of a term: an identifier, a prose gloss, and the lemma
// names that share this meaning. Value type; callers must not mutate Lemmas.
type Sense struct {
	ID     string
	Gloss  string
	Lemmas []string
}

// KnowledgeBase is the read-only lexical interface the disambiguator runs
// against. Implementations must be safe for concurrent use and must return
// senses in a stable order: the order decides which sense wins a scoring tie.
//
// An unknown term is not an error: Senses returns an empty slice. Errors are
// reserved for lookup failures (I/O, unknown sense IDs) and are always
// propagated by callers, never treated as "no senses".
type KnowledgeBase interface {
	// Senses returns every sense of the term, most common first.
	Senses(term string) ([]Sense, error)

	// Related returns the senses linked to the given sense through rel.
	Related(senseID string, rel Relation) ([]Sense, error)
}

// Sentinel causes carried inside LookupError.
var (
	ErrUnknownSense    = errors.New("unknown sense id")
	ErrInvalidRelation = errors.New("invalid relation")
)

// LookupError reports a failed knowledge-base lookup.
type LookupError struct {
	Op   string // "senses" or "related"
	Term string // the term or sense ID looked up
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lexicon: %s %q: %v", e.Op, e.Term, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
