package items

import (
	"sort"
	"strings"
)

// ItemCatalog is the read-only view of the item database consumed by the
// loot generator. Implementations must return items in a stable order.
type ItemCatalog interface {
	All() []*Item
}

// Catalog is an immutable, ID-ordered snapshot of item definitions.
// It is safe for concurrent readers.
type Catalog struct {
	items []*Item
	byID  map[string]*Item
}

// NewCatalog builds a catalog from the given items. Nil entries are skipped,
// and when two items share an ID the later one wins.
func NewCatalog(list ...*Item) *Catalog {
	byID := make(map[string]*Item, len(list))
	for _, item := range list {
		if item == nil {
			continue
		}
		byID[item.ID] = item
	}

	sorted := make([]*Item, 0, len(byID))
	for _, item := range byID {
		sorted = append(sorted, item)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	return &Catalog{items: sorted, byID: byID}
}

// All returns every item ordered by ID. The slice is a copy; the items are shared.
func (c *Catalog) All() []*Item {
	if c == nil {
		return nil
	}
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns an item by its ID
func (c *Catalog) Get(id string) (*Item, bool) {
	if c == nil {
		return nil, false
	}
	item, ok := c.byID[id]
	return item, ok
}

// Len returns the number of items in the catalog
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// FindItem searches for an item using partial matching on the name (case-insensitive).
// Exact matches win over partial ones; ties go to the lowest ID.
func (c *Catalog) FindItem(partial string) (*Item, bool) {
	if c == nil {
		return nil, false
	}
	partial = strings.ToLower(partial)

	for _, item := range c.items {
		if strings.EqualFold(item.Name, partial) || item.ID == partial {
			return item, true
		}
	}

	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), partial) {
			return item, true
		}
	}

	return nil, false
}
