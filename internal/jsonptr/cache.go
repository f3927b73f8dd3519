package jsonptr

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of parsed pointers kept by NewCache(0).
const DefaultCacheSize = 1024

// Cache memoizes ParseReference. Pointers are immutable, so cached values are shared
// between callers. Parse errors are not cached.
type Cache struct {
	parsed *lru.Cache[string, Pointer]
}

func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	parsed, err := lru.New[string, Pointer](size)
	if err != nil {
		return nil, fmt.Errorf("create pointer cache: %w", err)
	}

	return &Cache{parsed: parsed}, nil
}

func (c *Cache) Parse(input string) (Pointer, error) {
	if p, ok := c.parsed.Get(input); ok {
		return p, nil
	}

	p, err := ParseReference(input)
	if err != nil {
		return Pointer{}, err
	}

	c.parsed.Add(input, p)
	return p, nil
}

func (c *Cache) Len() int {
	return c.parsed.Len()
}
