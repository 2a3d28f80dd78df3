package store

// collection is an insertion-ordered list of records keyed by id. It is not
// safe for concurrent use; the Store lock guards every collection.
type collection[T any] struct {
	name   string
	prefix string
	items  []T
	id     func(T) string
	clone  func(T) T
}

func newCollection[T any](name, prefix string, id func(T) string, clone func(T) T) collection[T] {
	return collection[T]{name: name, prefix: prefix, id: id, clone: clone}
}

func (c *collection[T]) index(id string) int {
	for i := range c.items {
		if c.id(c.items[i]) == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) get(id string) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.clone(c.items[i]), true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) append(item T) {
	c.items = append(c.items, item)
}

// remove drops every record with the given id and reports whether any existed.
func (c *collection[T]) remove(id string) bool {
	kept := c.items[:0]
	removed := false
	for _, item := range c.items {
		if c.id(item) == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	var zero T
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = kept
	return removed
}

func (c *collection[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range c.items {
		if keep(item) {
			out = append(out, c.clone(item))
		}
	}
	return out
}

func (c *collection[T]) all() []T {
	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.clone(item)
	}
	return out
}

func (c *collection[T]) replaceAll(items []T) {
	c.items = make([]T, len(items))
	for i, item := range items {
		c.items[i] = c.clone(item)
	}
}

