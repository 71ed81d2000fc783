// Package sense resolves which meaning of a category term is intended and
// builds the extended split term sets the matcher runs on. A term alone is
// ambiguous ("cheese" the food or the slang); the surrounding category
// labels, the node's parent and children, supply the context that picks the
// sense whose related glosses overlap that context most.
package sense

import (
	"errors"

	"github.com/standardbeagle/taxmap/internal/debug"
	"github.com/standardbeagle/taxmap/lexicon"
	"github.com/standardbeagle/taxmap/similarity"
	"github.com/standardbeagle/taxmap/termset"
)

// Disambiguator scores a term's senses against context terms drawn from
// neighboring category labels.
type Disambiguator struct {
	kb lexicon.KnowledgeBase
}

// NewDisambiguator builds a Disambiguator over the given knowledge base.
func NewDisambiguator(kb lexicon.KnowledgeBase) (*Disambiguator, error) {
	if kb == nil {
		return nil, errors.New("sense: nil knowledge base")
	}
	return &Disambiguator{kb: kb}, nil
}

// Disambiguate picks the sense of term that fits the context best.
//
// Each sense is scored by summing, over its related-sense pool and every
// context term, the longest-common-substring score between related gloss and
// context term. The pool is the sense itself plus its hypernyms, hyponyms,
// part meronyms and part holonyms, one hop, deduplicated. A strictly higher
// score wins; on a tie the earlier sense keeps the lead, so knowledge-base
// sense order decides.
//
// ok is false when the term has no senses or when no sense scores above zero;
// neither case is an error. Knowledge-base failures propagate.
func (d *Disambiguator) Disambiguate(term string, context termset.Set) (lexicon.Sense, bool, error) {
	senses, err := d.kb.Senses(term)
	if err != nil {
		return lexicon.Sense{}, false, err
	}
	if len(senses) == 0 {
		debug.Disambig("%q: no senses", term)
		return lexicon.Sense{}, false, nil
	}

	contextTerms := context.Terms()

	var best lexicon.Sense
	bestScore := 0.0
	found := false
	for _, s := range senses {
		pool, err := d.relatedPool(s)
		if err != nil {
			return lexicon.Sense{}, false, err
		}

		score := 0.0
		for _, related := range pool {
			for _, c := range contextTerms {
				score += similarity.LCSScore(related.Gloss, c)
			}
		}
		debug.Disambig("%q: sense %s scored %.4f", term, s.ID, score)

		if score > bestScore {
			bestScore = score
			best = s
			found = true
		}
	}

	if !found {
		debug.Disambig("%q: no sense scored above zero", term)
		return lexicon.Sense{}, false, nil
	}
	debug.Disambig("%q: chose %s (%.4f)", term, best.ID, bestScore)
	return best, true, nil
}

// relatedPool returns the sense itself followed by its one-hop relations in
// fixed relation order, deduplicated by sense ID.
func (d *Disambiguator) relatedPool(s lexicon.Sense) ([]lexicon.Sense, error) {
	pool := []lexicon.Sense{s}
	seen := map[string]struct{}{s.ID: {}}

	for _, rel := range lexicon.Relations() {
		related, err := d.kb.Related(s.ID, rel)
		if err != nil {
			return nil, err
		}
		for _, r := range related {
			if _, ok := seen[r.ID]; ok {
				continue
			}
			seen[r.ID] = struct{}{}
			pool = append(pool, r)
		}
	}
	return pool, nil
}
