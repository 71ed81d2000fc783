package lexicon

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

type senseDoc struct {
	ID      string              `toml:"id"`
	Gloss   string              `toml:"gloss"`
	Lemmas  []string            `toml:"lemmas"`
	Related map[string][]string `toml:"related"`
}

type lexiconDoc struct {
	Senses []senseDoc `toml:"sense"`
}

// LoadTOML builds a Static knowledge base from a TOML document of the form:
//
//	[[sense]]
//	id     = "cheese.n.01"
//	gloss  = "a solid food prepared from the pressed curd of milk"
//	lemmas = ["cheese"]
//
//	[sense.related]
//	hypernym = ["food.n.01"]
//	hyponym  = ["cottage_cheese.n.01"]
//
// Senses keep document order. Related entries may reference senses defined
// later in the document; every referenced ID must exist once the document has
// been read in full.
func LoadTOML(r io.Reader) (*Static, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read: %w", err)
	}

	var doc lexiconDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("lexicon: parse: %w", err)
	}

	kb := NewStatic()
	for _, sd := range doc.Senses {
		sense := Sense{ID: sd.ID, Gloss: sd.Gloss, Lemmas: sd.Lemmas}
		if err := kb.AddSense(sense); err != nil {
			return nil, err
		}
	}

	// Second pass so documents can relate senses in either order.
	for _, sd := range doc.Senses {
		for name, targets := range sd.Related {
			rel, err := ParseRelation(name)
			if err != nil {
				return nil, fmt.Errorf("lexicon: sense %q: %w", sd.ID, err)
			}
			for _, target := range targets {
				if err := kb.Relate(sd.ID, rel, target); err != nil {
					return nil, err
				}
			}
		}
	}
	return kb, nil
}
