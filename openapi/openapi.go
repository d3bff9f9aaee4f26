// Package openapi imports the components.schemas section of an OpenAPI 3
// document (YAML or JSON) into dynamic schemas over map[string]any.
//
// Only the keywords CAMARA specifications use are compiled; anything else is
// reported as a warning and ignored. Local $refs are resolved lazily, so
// recursive components work.
package openapi

import (
	"errors"
	"fmt"
	"sort"

	camara "github.com/camara-go/camara"
)

const componentPrefix = "#/components/schemas/"

// Catalog holds the schemas compiled from one document.
type Catalog struct {
	reg   *camara.Registry
	names []string
}

// Schema returns the component named name.
func (c *Catalog) Schema(name string) (camara.Schema[any], bool) {
	s, err := camara.LookupSchema[any](c.reg, name)
	if err != nil {
		return nil, false
	}
	return s, true
}

// Names lists the component names in ascending order.
func (c *Catalog) Names() []string { return append([]string(nil), c.names...) }

// Import compiles every entry of components.schemas in data.
func Import(data []byte, opts Options) (*Catalog, Diag, error) {
	d := &simpleDiag{}
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, d, err
	}
	comps, _ := doc["components"].(map[string]any)
	raw, _ := comps["schemas"].(map[string]any)
	if len(raw) == 0 {
		return nil, d, errors.New("openapi: document has no components.schemas")
	}

	names := make([]string, 0, len(raw))
	for k := range raw {
		names = append(names, k)
	}
	sort.Strings(names)

	c := &compiler{components: raw, opts: opts, d: d, reg: camara.NewRegistry()}
	var errs []error
	for _, name := range names {
		node, ok := raw[name].(map[string]any)
		if !ok {
			d.warnf("%s: component is not a schema object", name)
			continue
		}
		ad, err := c.compile(name, node)
		if err != nil {
			errs = append(errs, fmt.Errorf("openapi: %s: %w", name, err))
			continue
		}
		s := camara.Schema[any](ad)
		camara.RegisterSchema(c.reg, name, func() camara.Schema[any] { return s })
	}
	if len(errs) > 0 {
		return nil, d, errors.Join(errs...)
	}
	return &Catalog{reg: c.reg, names: c.reg.Names()}, d, nil
}
