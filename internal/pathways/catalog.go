package pathways

import "errors"

// ErrNotFound is returned by the strict accessor when a pathway ID is not in
// the catalog.
var ErrNotFound = errors.New("pathway not found")

// Catalog is a read-only table of pathway definitions keyed by ID.
type Catalog struct {
	byID  map[string]Definition
	order []string
}

// NewCatalog builds a catalog from the given definitions. Later duplicates of
// an ID are ignored.
func NewCatalog(defs []Definition) *Catalog {
	c := &Catalog{byID: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		if _, ok := c.byID[def.ID]; ok {
			continue
		}
		c.byID[def.ID] = def
		c.order = append(c.order, def.ID)
	}
	return c
}

var defaultCatalog = NewCatalog(defaultDefinitions)

// Default returns the catalog of curated pathway definitions shipped with the
// service.
func Default() *Catalog {
	return defaultCatalog
}

// Lookup is the lenient accessor: unknown IDs report ok=false and callers are
// expected to skip them silently. Catalog content may lag behind rule
// authoring, so a miss is not an error.
func (c *Catalog) Lookup(id string) (Definition, bool) {
	def, ok := c.byID[id]
	return def, ok
}

// Get is the strict accessor, reserved for tooling and tests that want to
// assert catalog completeness.
func (c *Catalog) Get(id string) (Definition, error) {
	def, ok := c.byID[id]
	if !ok {
		return Definition{}, ErrNotFound
	}
	return def, nil
}

// List returns all definitions in load order.
func (c *Catalog) List() []Definition {
	out := make([]Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len reports the number of definitions in the catalog.
func (c *Catalog) Len() int {
	return len(c.byID)
}
