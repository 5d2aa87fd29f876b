package calc

import "container/list"

// DefaultCacheSize is the number of compiled expressions an Engine keeps for
// Evaluate unless CacheSize says otherwise.
const DefaultCacheSize = 64

type cacheEntry struct {
	key string
	x   *Expr
}

// exprCache is an LRU of compiled expressions keyed by source text. A nil
// *exprCache is a cache that holds nothing.
type exprCache struct {
	size  int
	ll    *list.List
	items map[string]*list.Element
}

func newExprCache(size int) *exprCache {
	if size <= 0 {
		return nil
	}
	return &exprCache{
		size:  size,
		ll:    list.New(),
		items: make(map[string]*list.Element, size),
	}
}

func (c *exprCache) get(key string) (*Expr, bool) {
	if c == nil {
		return nil, false
	}
	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*cacheEntry).x, true
}

func (c *exprCache) set(key string, x *Expr) {
	if c == nil {
		return
	}
	if el, ok := c.items[key]; ok {
		el.Value.(*cacheEntry).x = x
		c.ll.MoveToFront(el)
		return
	}
	if c.ll.Len() >= c.size {
		el := c.ll.Back()
		c.ll.Remove(el)
		delete(c.items, el.Value.(*cacheEntry).key)
	}
	c.items[key] = c.ll.PushFront(&cacheEntry{key: key, x: x})
}

func (c *exprCache) clear() {
	if c == nil {
		return
	}
	c.ll.Init()
	c.items = make(map[string]*list.Element, c.size)
}

func (c *exprCache) len() int {
	if c == nil {
		return 0
	}
	return c.ll.Len()
}
