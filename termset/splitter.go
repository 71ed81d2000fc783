package termset

import (
	"errors"
	"strings"
	"sync"
)

// ErrEmptyLabel reports a label with no atomic terms (empty or separators only).
var ErrEmptyLabel = errors.New("label has no atomic terms")

// DefaultCacheSize bounds the shared splitter's label cache.
const DefaultCacheSize = 1000

// Splitter decomposes composite category labels into split term sets.
//
// The split is a literal separator scan, not tokenization: ", ", " & " and
// " and " (lower case, space-delimited) each cut the label, and so does every
// remaining single space, so multi-word phrases are never preserved. Pieces are
// lower-cased and empty pieces are dropped, which also absorbs runs of more
// than one space.
//
// Thread-safe. Labels repeat heavily across candidate paths, so split results
// are cached with insertion-order eviction.
type Splitter struct {
	cache sync.Map // label -> []string of split pieces

	mu        sync.Mutex
	cacheKeys []string
	maxSize   int
}

// NewSplitter creates a splitter with the default cache size.
func NewSplitter() *Splitter {
	return NewSplitterWithSize(DefaultCacheSize)
}

// NewSplitterWithSize creates a splitter with a custom cache bound.
func NewSplitterWithSize(cacheSize int) *Splitter {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Splitter{
		cacheKeys: make([]string, 0, cacheSize),
		maxSize:   cacheSize,
	}
}

// Split returns the split term set of a composite label. An empty label (or one
// consisting only of separators) yields the empty set; use SplitStrict where
// that should be rejected instead.
func (sp *Splitter) Split(label string) Set {
	pieces := sp.pieces(label)
	s := make(Set, len(pieces))
	for _, p := range pieces {
		s[p] = struct{}{}
	}
	return s
}

// SplitStrict is Split but fails on labels with no atomic terms.
func (sp *Splitter) SplitStrict(label string) (Set, error) {
	s := sp.Split(label)
	if len(s) == 0 {
		return nil, ErrEmptyLabel
	}
	return s, nil
}

func (sp *Splitter) pieces(label string) []string {
	if cached, ok := sp.cache.Load(label); ok {
		return cached.([]string)
	}
	pieces := splitComposite(label)
	sp.cacheInsert(label, pieces)
	return pieces
}

// cacheInsert stores a split result, evicting the oldest entry at capacity.
func (sp *Splitter) cacheInsert(label string, pieces []string) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if len(sp.cacheKeys) >= sp.maxSize {
		oldest := sp.cacheKeys[0]
		sp.cache.Delete(oldest)
		sp.cacheKeys = sp.cacheKeys[1:]
	}
	sp.cache.Store(label, pieces)
	sp.cacheKeys = append(sp.cacheKeys, label)
}

// splitComposite performs the literal separator scan. Separator precedence at
// each position mirrors the alternation order ", " | " & " | " and " | " ", so
// "TV & Video" cuts at the ampersand as a unit rather than at its spaces.
func splitComposite(label string) []string {
	var pieces []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			pieces = append(pieces, strings.ToLower(b.String()))
			b.Reset()
		}
	}

	for i := 0; i < len(label); {
		if n := separatorAt(label, i); n > 0 {
			flush()
			i += n
			continue
		}
		b.WriteByte(label[i])
		i++
	}
	flush()
	return pieces
}

// separatorAt returns the byte length of the separator starting at i, or 0.
func separatorAt(s string, i int) int {
	rest := s[i:]
	switch {
	case strings.HasPrefix(rest, ", "):
		return 2
	case strings.HasPrefix(rest, " & "):
		return 3
	case strings.HasPrefix(rest, " and "):
		return 5
	case rest[0] == ' ':
		return 1
	}
	return 0
}

var defaultSplitter = NewSplitter()

// Split splits a label using a shared package-level splitter.
func Split(label string) Set {
	return defaultSplitter.Split(label)
}

// SplitStrict splits a label using the shared splitter, rejecting labels with
// no atomic terms.
func SplitStrict(label string) (Set, error) {
	return defaultSplitter.SplitStrict(label)
}
