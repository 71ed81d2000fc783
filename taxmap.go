// Package taxmap maps category paths from one product taxonomy onto another.
// Given a source category path and a collection of candidate paths in a
// target taxonomy, it decides which candidates plausibly mean the same thing
// and ranks them by structural similarity.
//
// The pipeline per source path: every source category is expanded into its
// extended split term set using knowledge-base sense disambiguation, the
// semantic matcher filters candidate paths to those sharing at least one
// matching node, source and retained candidate paths are canonicalized into
// symbolic key paths, and the key paths are ranked against the source.
//
// The knowledge base is consumed through the read-only lexicon.KnowledgeBase
// interface; lexicon.Static (optionally behind lexicon.Cached) ships as a
// usable in-memory implementation.
package taxmap

import (
	"github.com/standardbeagle/taxmap/keypath"
)

// SourceCategory describes one node of a source path together with the
// context labels its terms are disambiguated against.
type SourceCategory struct {
	// Label is the category's own composite label.
	Label string
	// Parent is the parent category label; empty for a root category.
	Parent string
	// Children holds child or sibling labels. Context only: they never
	// contribute terms to the node itself.
	Children []string
}

// RankedMatch is one retained candidate path with its assigned key path and
// rank score.
type RankedMatch struct {
	Labels []string
	Keys   keypath.KeyPath
	Score  float64
}

// Result is the outcome of mapping one source path against a candidate
// collection.
type Result struct {
	// SourceKeys is the canonical key path of the source path.
	SourceKeys keypath.KeyPath
	// Matches holds the retained candidates sorted by score descending;
	// equal scores keep candidate input order.
	Matches []RankedMatch
}
