package lexicon

import (
	"fmt"
	"strings"
	"sync"

	"github.com/surgebase/porter2"
)

// Static is an in-memory KnowledgeBase built by registering senses and
// relations up front. Senses come back in registration order, which makes it
// fully deterministic and therefore the implementation of choice for tests
// and for small domain lexicons shipped with an application.
//
// Term lookup folds case and falls back to the Porter2 stem on an exact miss,
// so inflected forms ("cheeses", "alternatives") resolve to their registered
// base lemma without the caller having to normalize.
//
// Safe for concurrent use; registration and lookup may interleave.
type Static struct {
	mu      sync.RWMutex
	byLemma map[string][]Sense
	byStem  map[string][]Sense
	byID    map[string]Sense
	edges   map[string]map[Relation][]string
}

// NewStatic returns an empty Static knowledge base.
func NewStatic() *Static {
	return &Static{
		byLemma: make(map[string][]Sense),
		byStem:  make(map[string][]Sense),
		byID:    make(map[string]Sense),
		edges:   make(map[string]map[Relation][]string),
	}
}

// AddSense registers a sense under each of its lemmas. Sense IDs must be
// unique; registering the same ID twice is an error.
func (s *Static) AddSense(sense Sense) error {
	if sense.ID == "" {
		return fmt.Errorf("lexicon: sense with empty ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[sense.ID]; exists {
		return fmt.Errorf("lexicon: duplicate sense ID %q", sense.ID)
	}
	s.byID[sense.ID] = sense

	for _, lemma := range sense.Lemmas {
		lower := strings.ToLower(lemma)
		if lower == "" {
			continue
		}
		s.byLemma[lower] = append(s.byLemma[lower], sense)

		stem := porter2.Stem(lower)
		if !containsID(s.byStem[stem], sense.ID) {
			s.byStem[stem] = append(s.byStem[stem], sense)
		}
	}
	return nil
}

// Relate links senseID to targetID through rel. Both senses must already be
// registered. Relations are directed; register the inverse explicitly if the
// lexicon should expose it.
func (s *Static) Relate(senseID string, rel Relation, targetID string) error {
	if !rel.valid() {
		return &LookupError{Op: "relate", Term: senseID, Err: ErrInvalidRelation}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[senseID]; !ok {
		return &LookupError{Op: "relate", Term: senseID, Err: ErrUnknownSense}
	}
	if _, ok := s.byID[targetID]; !ok {
		return &LookupError{Op: "relate", Term: targetID, Err: ErrUnknownSense}
	}

	if s.edges[senseID] == nil {
		s.edges[senseID] = make(map[Relation][]string)
	}
	s.edges[senseID][rel] = append(s.edges[senseID][rel], targetID)
	return nil
}

// Senses implements KnowledgeBase. An unknown term returns an empty slice and
// no error.
func (s *Static) Senses(term string) ([]Sense, error) {
	lower := strings.ToLower(term)

	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.byLemma[lower]
	if !ok {
		list = s.byStem[porter2.Stem(lower)]
	}
	return append([]Sense(nil), list...), nil
}

// Related implements KnowledgeBase.
func (s *Static) Related(senseID string, rel Relation) ([]Sense, error) {
	if !rel.valid() {
		return nil, &LookupError{Op: "related", Term: senseID, Err: ErrInvalidRelation}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.byID[senseID]; !ok {
		return nil, &LookupError{Op: "related", Term: senseID, Err: ErrUnknownSense}
	}

	ids := s.edges[senseID][rel]
	if len(ids) == 0 {
		return nil, nil
	}
	related := make([]Sense, 0, len(ids))
	for _, id := range ids {
		related = append(related, s.byID[id])
	}
	return related, nil
}

func containsID(senses []Sense, id string) bool {
	for _, s := range senses {
		if s.ID == id {
			return true
		}
	}
	return false
}
