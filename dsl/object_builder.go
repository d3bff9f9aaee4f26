package dsl

import (
	"context"
	"fmt"

	camara "github.com/camara-go/camara"
)

// ObjectBuilder assembles a dynamic object schema over map[string]any. It is
// used for shapes only known at runtime, such as OpenAPI imports. Typed
// records use Model instead.
type ObjectBuilder struct {
	title         string
	order         []string
	fields        map[string]AnyAdapter
	required      map[string]struct{}
	unknownPolicy camara.UnknownPolicy
	refines       []objRefine
}

type fieldStep struct {
	b    *ObjectBuilder
	name string
}

// Object creates a new object builder. Unknown keys are kept in place by
// default (UnknownPassthrough).
func Object() *ObjectBuilder {
	return &ObjectBuilder{
		fields:        map[string]AnyAdapter{},
		required:      map[string]struct{}{},
		unknownPolicy: camara.UnknownPassthrough,
	}
}

// Title names the object in JSON Schema output and union attempts.
func (b *ObjectBuilder) Title(name string) *ObjectBuilder {
	b.title = name
	return b
}

// Field registers a field with its adapter. Declaring a key twice replaces
// the adapter but keeps the original position.
func (b *ObjectBuilder) Field(name string, ad AnyAdapter) *fieldStep {
	if _, ok := b.fields[name]; !ok {
		b.order = append(b.order, name)
	}
	b.fields[name] = ad
	return &fieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *ObjectBuilder {
	f.b.required[f.name] = struct{}{}
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *ObjectBuilder {
	delete(f.b.required, f.name)
	return f.b
}

// Nullable lets the field carry JSON null.
func (f *fieldStep) Nullable() *fieldStep {
	f.b.fields[f.name] = f.b.fields[f.name].Nullable()
	return f
}

func (f *fieldStep) UnknownStrict() *ObjectBuilder      { return f.b.UnknownStrict() }
func (f *fieldStep) UnknownStrip() *ObjectBuilder       { return f.b.UnknownStrip() }
func (f *fieldStep) UnknownPassthrough() *ObjectBuilder { return f.b.UnknownPassthrough() }
func (f *fieldStep) Refine(name string, fn func(context.Context, map[string]any) error) *ObjectBuilder {
	return f.b.Refine(name, fn)
}
func (f *fieldStep) Field(name string, ad AnyAdapter) *fieldStep     { return f.b.Field(name, ad) }
func (f *fieldStep) Build() (camara.Schema[map[string]any], error) { return f.b.Build() }
func (f *fieldStep) MustBuild() camara.Schema[map[string]any]      { return f.b.MustBuild() }

// Require marks one or more fields as required.
func (b *ObjectBuilder) Require(names ...string) *ObjectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// UnknownStrict sets unknown policy to Strict.
func (b *ObjectBuilder) UnknownStrict() *ObjectBuilder {
	b.unknownPolicy = camara.UnknownStrict
	return b
}

// UnknownStrip sets unknown policy to Strip.
func (b *ObjectBuilder) UnknownStrip() *ObjectBuilder {
	b.unknownPolicy = camara.UnknownStrip
	return b
}

// UnknownPassthrough keeps unknown keys in the coerced map.
func (b *ObjectBuilder) UnknownPassthrough() *ObjectBuilder {
	b.unknownPolicy = camara.UnknownPassthrough
	return b
}

// Unknown sets the policy from a value, for callers driven by options.
func (b *ObjectBuilder) Unknown(p camara.UnknownPolicy) *ObjectBuilder {
	b.unknownPolicy = p
	return b
}

// Refine adds an object-level refine function, run after all fields coerced.
func (b *ObjectBuilder) Refine(name string, fn func(context.Context, map[string]any) error) *ObjectBuilder {
	if fn == nil {
		return b
	}
	b.refines = append(b.refines, objRefine{name: name, fn: fn})
	return b
}

// Build validates the builder and returns a Schema.
func (b *ObjectBuilder) Build() (camara.Schema[map[string]any], error) {
	for k := range b.required {
		if _, ok := b.fields[k]; !ok {
			return nil, fmt.Errorf("dsl: required field %q is not declared", k)
		}
	}
	fields := make(map[string]AnyAdapter, len(b.fields))
	for k, ad := range b.fields {
		fields[k] = ad
	}
	required := make(map[string]struct{}, len(b.required))
	for k := range b.required {
		required[k] = struct{}{}
	}
	return &objectSchema{
		title:         b.title,
		order:         append([]string(nil), b.order...),
		fields:        fields,
		required:      required,
		unknownPolicy: b.unknownPolicy,
		refines:       append([]objRefine(nil), b.refines...),
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *ObjectBuilder) MustBuild() camara.Schema[map[string]any] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
