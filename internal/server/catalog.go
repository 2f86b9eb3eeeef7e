package server

import (
	"strings"

	"github.com/michoacana/antojo/internal/recommend"
)

// Entry is one catalog product and the category it belongs to.
type Entry struct {
	ID       string
	Category string
	Product  recommend.Product
}

// Catalog is an ordered, read-only product list.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

// NewCatalog indexes entries by ID. Later duplicates replace earlier ones
// in place.
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(entries))}
	for _, e := range entries {
		if i, ok := c.byID[e.ID]; ok {
			c.entries[i] = e
			continue
		}
		c.byID[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c
}

// DefaultCatalog returns the built-in product catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultEntries)
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns the products in catalog order.
func (c *Catalog) Entries() []Entry { return c.entries }

// Lookup returns the product with the given ID.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// InCategory returns the IDs whose category contains kind, case-insensitively.
func (c *Catalog) InCategory(kind string) []string {
	kind = strings.ToLower(kind)
	var ids []string
	for _, e := range c.entries {
		if strings.Contains(strings.ToLower(e.Category), kind) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// Coherent reports whether the product id belongs to the chosen type.
func (c *Catalog) Coherent(id, chosen string) bool {
	e, ok := c.Lookup(id)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(e.Category), strings.ToLower(chosen))
}
