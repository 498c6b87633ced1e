package validator

import (
	"container/list"
	"regexp"
	"sync"
)

// patternCache keeps compiled format patterns. When full, the least
// recently used pattern is evicted.
type patternCache struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

type patternEntry struct {
	pattern string
	re      *regexp.Regexp
}

func newPatternCache(capacity int) *patternCache {
	if capacity <= 0 {
		panic("pattern cache capacity must be positive")
	}
	return &patternCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

// compile returns the cached expression for pattern, compiling it on a miss.
func (c *patternCache) compile(pattern string) (*regexp.Regexp, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[pattern]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*patternEntry).re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	c.items[pattern] = c.eviction.PushFront(&patternEntry{pattern: pattern, re: re})
	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*patternEntry).pattern)
	}
	return re, nil
}

func (c *patternCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

var patterns = newPatternCache(256)
