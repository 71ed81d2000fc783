package keypath

import (
	"fmt"

	"github.com/standardbeagle/taxmap/internal/debug"
	"github.com/standardbeagle/taxmap/taxonomy"
)

// Match pairs a retained candidate path with the key path assigned to it.
type Match struct {
	Path taxonomy.CandidatePath
	Keys KeyPath
}

// Generator canonicalizes one source path into a key path, filters a
// collection of candidate paths down to those sharing at least one matching
// node, and propagates source keys onto the retained candidates.
//
// A Generator is single-use: all keying happens in NewGenerator, the counter
// it allocates fresh keys from is private to the instance, and the accessors
// are read-only afterwards. Run concurrent mappings with one Generator each;
// sharing a counter across runs would let key symbols collide.
type Generator struct {
	source  taxonomy.SourcePath
	matcher *taxonomy.Matcher

	next       uint64
	sourceKeys KeyPath
	matches    []Match
}

// NewGenerator keys the source path and every retained candidate path. A nil
// matcher selects the default node threshold. Candidate paths are evaluated,
// retained and keyed in input order; fresh keys for candidate-only nodes
// continue the source counter in that same order.
func NewGenerator(source taxonomy.SourcePath, candidates []taxonomy.CandidatePath, matcher *taxonomy.Matcher) (*Generator, error) {
	if source.Len() == 0 {
		return nil, fmt.Errorf("keypath: source path: %w", taxonomy.ErrEmptyPath)
	}
	for i, c := range candidates {
		if c.Len() == 0 {
			return nil, fmt.Errorf("keypath: candidate path %d: %w", i, taxonomy.ErrEmptyPath)
		}
	}
	if matcher == nil {
		var err error
		matcher, err = taxonomy.NewMatcher(taxonomy.DefaultNodeThreshold)
		if err != nil {
			return nil, err
		}
	}

	g := &Generator{source: source, matcher: matcher}
	g.keySource()
	g.keyCandidates(candidates)
	return g, nil
}

// SourceKeyPath returns the key sequence of the source path.
func (g *Generator) SourceKeyPath() KeyPath {
	return g.sourceKeys.clone()
}

// Matches returns the retained candidate paths with their key paths, in
// candidate input order.
func (g *Generator) Matches() []Match {
	matches := make([]Match, len(g.matches))
	for i, m := range g.matches {
		matches[i] = Match{Path: m.Path, Keys: m.Keys.clone()}
	}
	return matches
}

func (g *Generator) allocate() Key {
	k := Key(g.next)
	g.next++
	return k
}

// keySource walks the source path left to right. An unkeyed node is given a
// fresh key when visited; the node's key then propagates forward to the first
// equal node that has none yet. Equal term sets always end up sharing a key:
// each class member hands the key on to the next.
func (g *Generator) keySource() {
	n := g.source.Len()
	keys := make(KeyPath, n)
	keyed := make([]bool, n)

	for i := 0; i < n; i++ {
		if !keyed[i] {
			keys[i] = g.allocate()
			keyed[i] = true
			debug.Keying("source node %d (%q) -> %s", i, g.source.At(i).Label(), keys[i])
		}
		for j := i + 1; j < n; j++ {
			if g.source.At(i).Equal(g.source.At(j)) {
				if !keyed[j] {
					keys[j] = keys[i]
					keyed[j] = true
					debug.Keying("source node %d (%q) reuses %s from node %d", j, g.source.At(j).Label(), keys[j], i)
				}
				break
			}
		}
	}
	g.sourceKeys = keys
}

func (g *Generator) keyCandidates(candidates []taxonomy.CandidatePath) {
	for i, c := range candidates {
		if !g.anyNodeMatches(c) {
			debug.Keying("candidate %d %v: no matching node pair, dropped", i, c.Labels())
			continue
		}
		g.matches = append(g.matches, Match{Path: c, Keys: g.keyCandidate(c)})
	}
}

// anyNodeMatches is the retention gate: some (source node, candidate node)
// pair must match, position-independent.
func (g *Generator) anyNodeMatches(c taxonomy.CandidatePath) bool {
	for i := 0; i < g.source.Len(); i++ {
		for j := 0; j < c.Len(); j++ {
			if g.source.At(i).MatchesCandidate(c.At(j), g.matcher) {
				return true
			}
		}
	}
	return false
}

// keyCandidate assigns one key per candidate node: the source scan runs left
// to right in full and the last matching source node's key wins; a node no
// source node matches gets a fresh key. Each key is written exactly once,
// after its node's scan completes.
func (g *Generator) keyCandidate(c taxonomy.CandidatePath) KeyPath {
	keys := make(KeyPath, c.Len())
	for j := 0; j < c.Len(); j++ {
		var key Key
		matched := false
		for i := 0; i < g.source.Len(); i++ {
			if g.source.At(i).MatchesCandidate(c.At(j), g.matcher) {
				key = g.sourceKeys[i]
				matched = true
			}
		}
		if !matched {
			key = g.allocate()
			debug.Keying("candidate node %q -> fresh %s", c.At(j).Label(), key)
		} else {
			debug.Keying("candidate node %q -> %s", c.At(j).Label(), key)
		}
		keys[j] = key
	}
	return keys
}
