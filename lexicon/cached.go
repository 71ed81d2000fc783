package lexicon

import (
	"container/list"
	"errors"
	"strings"
	"sync"
)

// DefaultCacheCapacity bounds a Cached decorator built with a non-positive
// capacity.
const DefaultCacheCapacity = 4096

// Cached wraps a KnowledgeBase with a least-recently-used result cache.
// Lookups against a fixed lexicon always return the same answer, so both
// sense and relation lookups are cached, empty "no senses" answers included.
// Errors are never cached. Safe for concurrent use when the wrapped base is.
type Cached struct {
	kb    KnowledgeBase
	cache *lruCache
}

// NewCached wraps kb in a cache holding up to capacity lookup results.
// Non-positive capacities fall back to DefaultCacheCapacity.
func NewCached(kb KnowledgeBase, capacity int) (*Cached, error) {
	if kb == nil {
		return nil, errors.New("lexicon: nil knowledge base")
	}
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cached{kb: kb, cache: newLRUCache(capacity)}, nil
}

// Senses implements KnowledgeBase.
func (c *Cached) Senses(term string) ([]Sense, error) {
	key := "s\x00" + strings.ToLower(term)
	if senses, ok := c.cache.get(key); ok {
		return append([]Sense(nil), senses...), nil
	}

	senses, err := c.kb.Senses(term)
	if err != nil {
		return nil, err
	}
	c.cache.put(key, senses)
	return append([]Sense(nil), senses...), nil
}

// Related implements KnowledgeBase.
func (c *Cached) Related(senseID string, rel Relation) ([]Sense, error) {
	key := "r\x00" + senseID + "\x00" + rel.String()
	if senses, ok := c.cache.get(key); ok {
		return append([]Sense(nil), senses...), nil
	}

	senses, err := c.kb.Related(senseID, rel)
	if err != nil {
		return nil, err
	}
	c.cache.put(key, senses)
	return append([]Sense(nil), senses...), nil
}

// lruCache is a mutex-guarded LRU over lookup results.
type lruCache struct {
	capacity int
	mu       sync.Mutex
	items    map[string]*list.Element
	order    *list.List
}

type lruEntry struct {
	key    string
	senses []Sense
}

func newLRUCache(capacity int) *lruCache {
	return &lruCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *lruCache) get(key string) ([]Sense, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*lruEntry).senses, true
}

func (c *lruCache) put(key string, senses []Sense) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*lruEntry).senses = senses
		return
	}

	c.items[key] = c.order.PushFront(&lruEntry{key: key, senses: senses})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*lruEntry).key)
		}
	}
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
