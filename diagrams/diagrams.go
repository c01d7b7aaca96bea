// Package diagrams holds the project's diagram definitions. Each definition
// owns its style registry and describes its content through a scene.Builder;
// none of them draws anything itself.
package diagrams

import (
	"errors"
	"fmt"
	"strings"

	"flowpaint/scene"
	"flowpaint/style"
)

var ErrUnknownDiagram = errors.New("unknown diagram")

// Definition is one diagram that can be built and rendered.
type Definition struct {
	// Name is the identifier used on the command line.
	Name string
	// Description is shown in listings.
	Description string
	// Output is the default file name of the exported image.
	Output string
	// Styles resolves the categories used by the scene. It must be passed
	// to the renderer.
	Styles *style.Registry
	Build  func() (*scene.Scene, error)
}

// Catalog returns every definition in a fixed order.
func Catalog() []Definition {
	return []Definition{
		DataFlow(),
		Features(),
		Flowchart(),
		UseCase(),
	}
}

// Names returns the catalog names in catalog order.
func Names() []string {
	defs := Catalog()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	return names
}

// Lookup finds a definition by name, ignoring case.
func Lookup(name string) (Definition, error) {
	for _, d := range Catalog() {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownDiagram, name, strings.Join(Names(), ", "))
}

// mustRegistry builds a registry from literal categories.
func mustRegistry(categories ...style.Category) *style.Registry {
	r, err := style.NewRegistry(categories...)
	if err != nil {
		panic(err)
	}
	return r
}

var (
	black = style.MustHex("#000000")
	ink   = style.MustHex("#333333")
	gray  = style.MustHex("#808080")
)
