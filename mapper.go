package taxmap

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/taxmap/keypath"
	"github.com/standardbeagle/taxmap/lexicon"
	"github.com/standardbeagle/taxmap/sense"
	"github.com/standardbeagle/taxmap/taxonomy"
)

// Mapper runs the full mapping pipeline. Safe for concurrent use: all state
// is read-only after construction and every Map call keys through its own
// generator.
type Mapper struct {
	expander    *sense.Expander
	matcher     *taxonomy.Matcher
	parallelism int
}

// New builds a Mapper over the given knowledge base.
func New(kb lexicon.KnowledgeBase, opts ...Option) (*Mapper, error) {
	if kb == nil {
		return nil, errors.New("taxmap: nil knowledge base")
	}
	expander, err := sense.NewExpander(kb)
	if err != nil {
		return nil, err
	}
	matcher, err := taxonomy.NewMatcher(taxonomy.DefaultNodeThreshold)
	if err != nil {
		return nil, err
	}

	m := &Mapper{
		expander:    expander,
		matcher:     matcher,
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Map maps one source path, given root to leaf, against the candidate paths
// (each a root-to-leaf label sequence). Expansion errors and degenerate
// inputs fail fast; an empty candidate collection is valid and yields no
// matches.
func (m *Mapper) Map(ctx context.Context, source []SourceCategory, candidates [][]string) (*Result, error) {
	if len(source) == 0 {
		return nil, fmt.Errorf("taxmap: source path: %w", taxonomy.ErrEmptyPath)
	}

	nodes := make([]taxonomy.SourceNode, len(source))
	for i, sc := range source {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := taxonomy.NewSourceNode(sc.Label, sc.Parent, sc.Children, m.expander)
		if err != nil {
			return nil, fmt.Errorf("taxmap: source node %d: %w", i, err)
		}
		nodes[i] = n
	}
	sourcePath, err := taxonomy.NewSourcePath(nodes...)
	if err != nil {
		return nil, err
	}

	candidatePaths := make([]taxonomy.CandidatePath, len(candidates))
	for i, labels := range candidates {
		p, err := taxonomy.NewCandidatePath(labels...)
		if err != nil {
			return nil, fmt.Errorf("taxmap: candidate path %d: %w", i, err)
		}
		candidatePaths[i] = p
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gen, err := keypath.NewGenerator(sourcePath, candidatePaths, m.matcher)
	if err != nil {
		return nil, err
	}

	sourceKeys := gen.SourceKeyPath()
	matches := gen.Matches()
	ranked := make([]RankedMatch, len(matches))
	for i, match := range matches {
		ranked[i] = RankedMatch{
			Labels: match.Path.Labels(),
			Keys:   match.Keys,
			Score:  keypath.Rank(sourceKeys, match.Keys),
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return &Result{SourceKeys: sourceKeys, Matches: ranked}, nil
}

// MapAll maps several source paths against one candidate collection,
// processing up to the configured parallelism concurrently. Each source path
// gets its own generator with a private key counter, so results are
// independent and index like sources. The first failure cancels the rest.
func (m *Mapper) MapAll(ctx context.Context, sources [][]SourceCategory, candidates [][]string) ([]*Result, error) {
	results := make([]*Result, len(sources))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(m.parallelism)
	for i, source := range sources {
		eg.Go(func() error {
			r, err := m.Map(ctx, source, candidates)
			if err != nil {
				return fmt.Errorf("source %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
