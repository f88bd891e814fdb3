package discord

import (
	"sort"
	"sync"
)

// Collection is a name-keyed registry of descriptors.
type Collection[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewCollection creates an empty Collection.
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		items: make(map[string]T),
	}
}

// Set adds or replaces an entry
func (c *Collection[T]) Set(name string, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[name] = item
}

// Get retrieves an entry by name
func (c *Collection[T]) Get(name string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[name]
	return item, ok
}

// Delete removes an entry
func (c *Collection[T]) Delete(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, name)
}

// Clear removes every entry
func (c *Collection[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]T)
}

// Size returns the number of entries
func (c *Collection[T]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// All returns a copy of every entry
func (c *Collection[T]) All() map[string]T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[string]T, len(c.items))
	for k, v := range c.items {
		result[k] = v
	}
	return result
}

// Names returns the sorted entry names
func (c *Collection[T]) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.items))
	for k := range c.items {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Find returns the first entry, in name order, matching fn.
func (c *Collection[T]) Find(fn func(T) bool) (T, bool) {
	for _, name := range c.Names() {
		if item, ok := c.Get(name); ok && fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
