package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/taxmap/taxonomy"
	"github.com/standardbeagle/taxmap/termset"
)

// stubExpander hands out canned term sets, falling back to a plain split.
type stubExpander struct {
	sets map[string]termset.Set
}

func (s stubExpander) Expand(category, parent string, children []string) (termset.Set, error) {
	if set, ok := s.sets[category]; ok {
		return set, nil
	}
	return termset.SplitStrict(category)
}

func sourcePath(t *testing.T, exp taxonomy.TermExpander, labels ...string) taxonomy.SourcePath {
	t.Helper()
	nodes := make([]taxonomy.SourceNode, len(labels))
	for i, label := range labels {
		n, err := taxonomy.NewSourceNode(label, "", nil, exp)
		require.NoError(t, err)
		nodes[i] = n
	}
	p, err := taxonomy.NewSourcePath(nodes...)
	require.NoError(t, err)
	return p
}

func candidatePaths(t *testing.T, paths ...[]string) []taxonomy.CandidatePath {
	t.Helper()
	out := make([]taxonomy.CandidatePath, len(paths))
	for i, labels := range paths {
		p, err := taxonomy.NewCandidatePath(labels...)
		require.NoError(t, err)
		out[i] = p
	}
	return out
}

func TestSourceKeyingRepeatedConcept(t *testing.T) {
	// First and third nodes carry the same term set: XYX.
	exp := stubExpander{sets: map[string]termset.Set{
		"Cheese":  termset.New("cheese"),
		"Milk":    termset.New("milk"),
		"Fromage": termset.New("cheese"),
	}}
	src := sourcePath(t, exp, "Cheese", "Milk", "Fromage")

	g, err := NewGenerator(src, nil, nil)
	require.NoError(t, err)

	keys := g.SourceKeyPath()
	require.Len(t, keys, 3)
	assert.Equal(t, keys[0], keys[2], "equal nodes must share a key")
	assert.NotEqual(t, keys[0], keys[1])
	assert.Equal(t, "aba", keys.String())
}

func TestSourceKeyingInvariant(t *testing.T) {
	exp := stubExpander{sets: map[string]termset.Set{
		"A1": termset.New("alpha"),
		"B1": termset.New("beta"),
		"A2": termset.New("alpha"),
		"C1": termset.New("gamma"),
		"B2": termset.New("beta"),
	}}
	src := sourcePath(t, exp, "A1", "B1", "A2", "C1", "B2")

	g, err := NewGenerator(src, nil, nil)
	require.NoError(t, err)

	keys := g.SourceKeyPath()
	assert.Equal(t, "abacb", keys.String())

	// keys[i] == keys[j] exactly when the nodes' term sets are equal.
	for i := 0; i < src.Len(); i++ {
		for j := i + 1; j < src.Len(); j++ {
			equal := src.At(i).Equal(src.At(j))
			assert.Equal(t, equal, keys[i] == keys[j], "nodes %d and %d", i, j)
		}
	}
}

func TestCandidateFiltering(t *testing.T) {
	exp := stubExpander{sets: map[string]termset.Set{
		"Cheese": termset.New("cheese"),
	}}
	src := sourcePath(t, exp, "Cheese")

	candidates := candidatePaths(t,
		[]string{"Cottage Cheese"},
		[]string{"Hardware"},
		[]string{"Tools", "Cheese"},
	)

	g, err := NewGenerator(src, candidates, nil)
	require.NoError(t, err)

	matches := g.Matches()
	require.Len(t, matches, 2, "the all-miss path must be dropped")
	assert.Equal(t, []string{"Cottage Cheese"}, matches[0].Path.Labels())
	assert.Equal(t, []string{"Tools", "Cheese"}, matches[1].Path.Labels())
}

func TestCandidateKeyingLastMatchWins(t *testing.T) {
	// Both source nodes match the candidate node "Cottage Cheese"; the later
	// one in scan order supplies the key.
	exp := stubExpander{sets: map[string]termset.Set{
		"Cottage": termset.New("cottage"),
		"Cheese":  termset.New("cheese"),
	}}
	src := sourcePath(t, exp, "Cottage", "Cheese")

	g, err := NewGenerator(src, candidatePaths(t, []string{"Cottage Cheese"}), nil)
	require.NoError(t, err)

	require.Equal(t, "ab", g.SourceKeyPath().String())
	matches := g.Matches()
	require.Len(t, matches, 1)
	assert.True(t, matches[0].Keys.Equal(KeyPath{1}), "got %s", matches[0].Keys)
}

func TestCandidateFreshKeysContinueCounter(t *testing.T) {
	exp := stubExpander{sets: map[string]termset.Set{
		"Cheese": termset.New("cheese"),
	}}
	src := sourcePath(t, exp, "Cheese")

	candidates := candidatePaths(t,
		[]string{"Cheese", "Hardware"},
		[]string{"Cheese", "Tools"},
	)

	g, err := NewGenerator(src, candidates, nil)
	require.NoError(t, err)

	matches := g.Matches()
	require.Len(t, matches, 2)
	// Source took "a"; the two unmatched candidate nodes take "b" and "c" in
	// candidate input order, never colliding with source keys.
	assert.Equal(t, "ab", matches[0].Keys.String())
	assert.Equal(t, "ac", matches[1].Keys.String())
}

func TestGeneratorNoCandidates(t *testing.T) {
	exp := stubExpander{sets: map[string]termset.Set{
		"Cheese": termset.New("cheese"),
	}}
	src := sourcePath(t, exp, "Cheese")

	g, err := NewGenerator(src, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, g.Matches())
	assert.Equal(t, "a", g.SourceKeyPath().String())
}

func TestGeneratorValidation(t *testing.T) {
	_, err := NewGenerator(taxonomy.SourcePath{}, nil, nil)
	assert.ErrorIs(t, err, taxonomy.ErrEmptyPath)

	exp := stubExpander{sets: map[string]termset.Set{
		"Cheese": termset.New("cheese"),
	}}
	src := sourcePath(t, exp, "Cheese")
	_, err = NewGenerator(src, []taxonomy.CandidatePath{{}}, nil)
	assert.ErrorIs(t, err, taxonomy.ErrEmptyPath)
}

func TestGeneratorAccessorsReturnCopies(t *testing.T) {
	exp := stubExpander{sets: map[string]termset.Set{
		"Cheese": termset.New("cheese"),
	}}
	src := sourcePath(t, exp, "Cheese")

	g, err := NewGenerator(src, candidatePaths(t, []string{"Cottage Cheese"}), nil)
	require.NoError(t, err)

	keys := g.SourceKeyPath()
	keys[0] = 99
	assert.Equal(t, "a", g.SourceKeyPath().String())

	matches := g.Matches()
	matches[0].Keys[0] = 99
	assert.Equal(t, "a", g.Matches()[0].Keys.String())
}

func BenchmarkNewGenerator(b *testing.B) {
	exp := stubExpander{sets: map[string]termset.Set{
		"Dairy":  termset.New("dairy"),
		"Cheese": termset.New("cheese"),
	}}
	nodes := make([]taxonomy.SourceNode, 0, 2)
	for _, label := range []string{"Dairy", "Cheese"} {
		n, err := taxonomy.NewSourceNode(label, "", nil, exp)
		if err != nil {
			b.Fatalf("NewSourceNode: %v", err)
		}
		nodes = append(nodes, n)
	}
	src, err := taxonomy.NewSourcePath(nodes...)
	if err != nil {
		b.Fatalf("NewSourcePath: %v", err)
	}
	c1, err := taxonomy.NewCandidatePath("Food", "Cottage Cheese")
	if err != nil {
		b.Fatalf("NewCandidatePath: %v", err)
	}
	c2, err := taxonomy.NewCandidatePath("Hardware", "Tools")
	if err != nil {
		b.Fatalf("NewCandidatePath: %v", err)
	}
	candidates := []taxonomy.CandidatePath{c1, c2}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := NewGenerator(src, candidates, nil); err != nil {
			b.Fatal(err)
		}
	}
}
