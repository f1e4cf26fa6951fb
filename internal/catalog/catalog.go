package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/modules.json
var modulesJSON []byte

// Catalog is the ordered, read-only set of training modules.
type Catalog struct {
	modules []Module
	byID    map[int]*Module
}

// New builds a Catalog from an explicit module list. It validates the
// same structural invariants as Load: unique ids and at least two
// options per question.
func New(modules []Module) (*Catalog, error) {
	byID := make(map[int]*Module, len(modules))
	for i := range modules {
		m := &modules[i]
		if _, dup := byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate module id %d", m.ID)
		}
		for qi, q := range m.Questions {
			if len(q.Options) < 2 {
				return nil, fmt.Errorf("module %d question %d: need at least 2 options, got %d", m.ID, qi, len(q.Options))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				return nil, fmt.Errorf("module %d question %d: correct index %d out of range", m.ID, qi, q.CorrectIndex)
			}
		}
		byID[m.ID] = m
	}
	return &Catalog{modules: modules, byID: byID}, nil
}

// Load parses the embedded module catalog, validating it against the
// catalog JSON schema first.
func Load() (*Catalog, error) {
	if err := validateCatalog(modulesJSON); err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}

	var modules []Module
	if err := json.Unmarshal(modulesJSON, &modules); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return New(modules)
}

// Len returns the number of modules in the catalog.
func (c *Catalog) Len() int {
	return len(c.modules)
}

// Modules returns the modules in catalog order.
func (c *Catalog) Modules() []Module {
	return c.modules
}

// IDs returns all module ids in catalog order.
func (c *Catalog) IDs() []int {
	ids := make([]int, len(c.modules))
	for i := range c.modules {
		ids[i] = c.modules[i].ID
	}
	return ids
}

// ByID looks up a module by id.
func (c *Catalog) ByID(id int) (*Module, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// At returns the module at catalog position i, or nil out of range.
func (c *Catalog) At(i int) *Module {
	if i < 0 || i >= len(c.modules) {
		return nil
	}
	return &c.modules[i]
}

// IndexOf returns the catalog position of the module with the given id,
// or -1 when absent.
func (c *Catalog) IndexOf(id int) int {
	for i := range c.modules {
		if c.modules[i].ID == id {
			return i
		}
	}
	return -1
}

// Next returns the module after id in catalog order (by position, not
// id value), or nil when id is last or unknown.
func (c *Catalog) Next(id int) *Module {
	i := c.IndexOf(id)
	if i < 0 {
		return nil
	}
	return c.At(i + 1)
}

// Prev returns the module before id in catalog order, or nil when id is
// first or unknown.
func (c *Catalog) Prev(id int) *Module {
	i := c.IndexOf(id)
	if i < 0 {
		return nil
	}
	return c.At(i - 1)
}
