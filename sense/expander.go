package sense

import (
	"fmt"

	"github.com/standardbeagle/taxmap/lexicon"
	"github.com/standardbeagle/taxmap/termset"
)

// Expander turns a source category label into its extended split term set:
// the label's own atomic terms plus, for every term whose sense could be
// pinned down, the lemma names of that sense.
type Expander struct {
	disambiguator *Disambiguator
	splitter      *termset.Splitter
}

// NewExpander builds an Expander over the given knowledge base.
func NewExpander(kb lexicon.KnowledgeBase) (*Expander, error) {
	d, err := NewDisambiguator(kb)
	if err != nil {
		return nil, err
	}
	return &Expander{disambiguator: d, splitter: termset.NewSplitter()}, nil
}

// Expand builds the extended split term set for a category label. The parent
// label (empty when the node is a root) and the child labels contribute
// context terms only; they never end up in the result themselves.
//
// Every atomic term of the category is kept, disambiguated or not: a term the
// knowledge base cannot place still has to be covered when the set is matched
// against a target. A successfully disambiguated term additionally pulls in
// its sense's lemma names.
func (e *Expander) Expand(category, parent string, children []string) (termset.Set, error) {
	terms, err := e.splitter.SplitStrict(category)
	if err != nil {
		return nil, fmt.Errorf("sense: category %q: %w", category, err)
	}

	context := e.splitter.Split(parent)
	for _, child := range children {
		for t := range e.splitter.Split(child) {
			context.Add(t)
		}
	}

	extended := termset.New()
	for _, term := range terms.Terms() {
		chosen, ok, err := e.disambiguator.Disambiguate(term, context)
		if err != nil {
			return nil, fmt.Errorf("sense: expand %q: %w", category, err)
		}
		extended.Add(term)
		if !ok {
			continue
		}
		for _, lemma := range chosen.Lemmas {
			extended.Add(lemma)
		}
	}
	return extended, nil
}
