package style

import "fmt"

// Category binds a semantic name to a style and the label shown in the legend.
type Category struct {
	Name  string
	Label string
	Style Style
}

// LegendEntry is a (category, label, style) triple shown in the diagram key.
type LegendEntry struct {
	Category string
	Label    string
	Style    Style
}

// Registry is an immutable category -> style table. It is safe to share
// between concurrent renders.
type Registry struct {
	order  []string
	byName map[string]Category
}

// NewRegistry builds a registry. Category names must be unique and non-empty.
func NewRegistry(categories ...Category) (*Registry, error) {
	r := &Registry{
		order:  make([]string, 0, len(categories)),
		byName: make(map[string]Category, len(categories)),
	}
	for _, c := range categories {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrUnknownCategory)
		}
		if _, ok := r.byName[c.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, c.Name)
		}
		if c.Label == "" {
			c.Label = c.Name
		}
		r.order = append(r.order, c.Name)
		r.byName[c.Name] = c
	}
	return r, nil
}

// Lookup returns the style registered for name.
func (r *Registry) Lookup(name string) (Style, bool) {
	if r == nil {
		return Style{}, false
	}
	c, ok := r.byName[name]
	return c.Style, ok
}

// MustLookup is like Lookup but panics when name is not registered. It is
// meant for diagram definitions that use their own registry.
func (r *Registry) MustLookup(name string) Style {
	st, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownCategory, name))
	}
	return st
}

// Category returns the full category registered for name.
func (r *Registry) Category(name string) (Category, bool) {
	if r == nil {
		return Category{}, false
	}
	c, ok := r.byName[name]
	return c, ok
}

// Names returns category names in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// LegendEntriesFor returns legend entries for names, in the order given.
// Legend order is meaningful to the reader so it is never sorted.
func (r *Registry) LegendEntriesFor(names ...string) ([]LegendEntry, error) {
	entries := make([]LegendEntry, 0, len(names))
	for _, name := range names {
		c, ok := r.Category(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
		}
		entries = append(entries, LegendEntry{Category: c.Name, Label: c.Label, Style: c.Style})
	}
	return entries, nil
}
