package lexicon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingKB counts calls through to the wrapped base.
type countingKB struct {
	inner   KnowledgeBase
	senses  int
	related int
}

func (c *countingKB) Senses(term string) ([]Sense, error) {
	c.senses++
	return c.inner.Senses(term)
}

func (c *countingKB) Related(senseID string, rel Relation) ([]Sense, error) {
	c.related++
	return c.inner.Related(senseID, rel)
}

func TestCachedSenses(t *testing.T) {
	counting := &countingKB{inner: buildCheeseKB(t)}
	cached, err := NewCached(counting, 16)
	require.NoError(t, err)

	first, err := cached.Senses("cheese")
	require.NoError(t, err)
	second, err := cached.Senses("cheese")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, counting.senses, "second lookup must come from the cache")

	// Case variants share one cache entry.
	_, err = cached.Senses("CHEESE")
	require.NoError(t, err)
	assert.Equal(t, 1, counting.senses)
}

func TestCachedCachesEmptyAnswers(t *testing.T) {
	counting := &countingKB{inner: buildCheeseKB(t)}
	cached, err := NewCached(counting, 16)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		senses, err := cached.Senses("bicycle")
		require.NoError(t, err)
		assert.Empty(t, senses)
	}
	assert.Equal(t, 1, counting.senses)
}

func TestCachedRelated(t *testing.T) {
	counting := &countingKB{inner: buildCheeseKB(t)}
	cached, err := NewCached(counting, 16)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		related, err := cached.Related("cheese.n.01", Hypernym)
		require.NoError(t, err)
		require.Len(t, related, 1)
	}
	assert.Equal(t, 1, counting.related)

	// A different relation on the same sense is a distinct entry.
	_, err = cached.Related("cheese.n.01", Hyponym)
	require.NoError(t, err)
	assert.Equal(t, 2, counting.related)
}

func TestCachedEviction(t *testing.T) {
	counting := &countingKB{inner: buildCheeseKB(t)}
	cached, err := NewCached(counting, 1)
	require.NoError(t, err)

	_, _ = cached.Senses("cheese")
	_, _ = cached.Senses("food") // evicts cheese
	assert.Equal(t, 1, cached.cache.len())

	_, _ = cached.Senses("cheese")
	assert.Equal(t, 3, counting.senses)
}

func TestCachedCallersCannotPoisonEntries(t *testing.T) {
	cached, err := NewCached(buildCheeseKB(t), 16)
	require.NoError(t, err)

	senses, err := cached.Senses("cheese")
	require.NoError(t, err)
	require.NotEmpty(t, senses)
	senses[0] = Sense{ID: "mutated"}

	again, err := cached.Senses("cheese")
	require.NoError(t, err)
	assert.Equal(t, "cheese.n.01", again[0].ID)
}

// failingKB errors on the first lookup and succeeds afterwards.
type failingKB struct {
	calls int
}

func (f *failingKB) Senses(term string) ([]Sense, error) {
	f.calls++
	if f.calls == 1 {
		return nil, errors.New("transient lookup failure")
	}
	return []Sense{{ID: "x.n.01", Lemmas: []string{"x"}}}, nil
}

func (f *failingKB) Related(senseID string, rel Relation) ([]Sense, error) {
	return nil, nil
}

func TestCachedDoesNotCacheErrors(t *testing.T) {
	failing := &failingKB{}
	cached, err := NewCached(failing, 16)
	require.NoError(t, err)

	_, err = cached.Senses("x")
	require.Error(t, err)

	senses, err := cached.Senses("x")
	require.NoError(t, err)
	assert.Len(t, senses, 1)
	assert.Equal(t, 2, failing.calls)
}

func TestNewCachedValidation(t *testing.T) {
	_, err := NewCached(nil, 16)
	assert.Error(t, err)

	cached, err := NewCached(NewStatic(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultCacheCapacity, cached.cache.capacity)
}
