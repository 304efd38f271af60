package catalog

import (
	"fmt"

	"pizzeria/internal/models"
)

// collection is a name-keyed set of catalog entries that remembers insertion
// order. Inserting a duplicate name replaces the existing entry in place:
// last insertion wins, the original position is kept.
type collection[T any] struct {
	kind  string
	keyOf func(T) string
	order []string
	items map[string]T
}

func newCollection[T any](kind string, keyOf func(T) string) collection[T] {
	return collection[T]{
		kind:  kind,
		keyOf: keyOf,
		items: make(map[string]T),
	}
}

func (c *collection[T]) add(item T) {
	name := c.keyOf(item)
	if _, ok := c.items[name]; !ok {
		c.order = append(c.order, name)
	}
	c.items[name] = item
}

// lookup resolves each requested name in request order. Matching is exact and
// case-sensitive; the first miss fails the whole lookup.
func (c *collection[T]) lookup(names ...string) ([]T, error) {
	found := make([]T, 0, len(names))
	for _, name := range names {
		item, ok := c.items[name]
		if !ok {
			return nil, fmt.Errorf("%s %q: %w", c.kind, name, models.ErrNotFound)
		}
		found = append(found, item)
	}
	return found, nil
}

func (c *collection[T]) get(name string) (T, error) {
	item, ok := c.items[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", c.kind, name, models.ErrNotFound)
	}
	return item, nil
}

// all returns every entry in insertion order.
func (c *collection[T]) all() []T {
	items := make([]T, 0, len(c.order))
	for _, name := range c.order {
		items = append(items, c.items[name])
	}
	return items
}

func (c *collection[T]) remove(name string) error {
	if _, ok := c.items[name]; !ok {
		return fmt.Errorf("%s %q: %w", c.kind, name, models.ErrNotFound)
	}
	delete(c.items, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// update applies mutate to a copy of the entry and stores the result. If the
// mutator renames the entry it is re-keyed under the new name; renaming onto
// an existing name replaces that entry, and the renamed entry keeps its own
// position, so order and items stay in bijection.
func (c *collection[T]) update(name string, mutate func(*T)) error {
	item, ok := c.items[name]
	if !ok {
		return fmt.Errorf("%s %q: %w", c.kind, name, models.ErrNotFound)
	}
	mutate(&item)

	newName := c.keyOf(item)
	if newName != name {
		if _, collides := c.items[newName]; collides {
			for i, n := range c.order {
				if n == newName {
					c.order = append(c.order[:i], c.order[i+1:]...)
					break
				}
			}
		}
		delete(c.items, name)
		for i, n := range c.order {
			if n == name {
				c.order[i] = newName
				break
			}
		}
	}
	c.items[newName] = item
	return nil
}
