package dsl

import (
	"context"
	"errors"
	"fmt"
	"sort"

	camara "github.com/camara-go/camara"
	js "github.com/camara-go/camara/jsonschema"
)

// Variant is one arm of a union over U, built with Case.
type Variant[U any] struct {
	tag        string
	coerce     func(context.Context, any) (U, error)
	match      func(U) bool
	dump       func(context.Context, U) (any, error)
	jsonSchema func() (*js.Schema, error)
}

// Case declares the variant V of union U. tag is the discriminator value
// when the union has a discriminator, otherwise a label used in attempts.
// V values must be assignable to U.
func Case[U, V any](tag string, s camara.Schema[V]) Variant[U] {
	return Variant[U]{
		tag: tag,
		coerce: func(ctx context.Context, v any) (U, error) {
			var zero U
			vv, err := s.Coerce(ctx, v)
			if err != nil {
				return zero, err
			}
			u, ok := any(vv).(U)
			if !ok {
				return zero, camara.Fail(camara.CodeInvalidType, map[string]any{"expected": fmt.Sprintf("%T", zero), "got": fmt.Sprintf("%T", vv)})
			}
			return u, nil
		},
		match: func(u U) bool {
			_, ok := any(u).(V)
			return ok
		},
		dump: func(ctx context.Context, u U) (any, error) {
			return s.Dump(ctx, any(u).(V))
		},
		jsonSchema: s.JSONSchema,
	}
}

// UnionBuilder declares a union over U.
type UnionBuilder[U any] struct {
	name          string
	discriminator string
	variants      []Variant[U]
}

// Union starts a union schema named name.
func Union[U any](name string) *UnionBuilder[U] { return &UnionBuilder[U]{name: name} }

// Discriminator selects variants by the string value of key instead of by
// structural matching.
func (b *UnionBuilder[U]) Discriminator(key string) *UnionBuilder[U] {
	b.discriminator = key
	return b
}

// Variant appends variants in declaration order. Without a discriminator the
// order is the match priority.
func (b *UnionBuilder[U]) Variant(vs ...Variant[U]) *UnionBuilder[U] {
	b.variants = append(b.variants, vs...)
	return b
}

// Build validates the declaration and returns the union schema.
func (b *UnionBuilder[U]) Build() (camara.Schema[U], error) {
	var errs []error
	if len(b.variants) == 0 {
		errs = append(errs, fmt.Errorf("dsl: union %s: no variants", b.name))
	}
	seen := map[string]struct{}{}
	for i, v := range b.variants {
		if v.coerce == nil {
			errs = append(errs, fmt.Errorf("dsl: union %s: variant %d is empty", b.name, i))
			continue
		}
		if b.discriminator != "" && v.tag == "" {
			errs = append(errs, fmt.Errorf("dsl: union %s: variant %d has no discriminator value", b.name, i))
		}
		if _, dup := seen[v.tag]; dup && v.tag != "" {
			errs = append(errs, fmt.Errorf("dsl: union %s: tag %q declared twice", b.name, v.tag))
		}
		seen[v.tag] = struct{}{}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &unionSchema[U]{name: b.name, discriminator: b.discriminator, variants: append([]Variant[U](nil), b.variants...)}, nil
}

// MustBuild is like Build but panics on error.
func (b *UnionBuilder[U]) MustBuild() camara.Schema[U] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

type unionSchema[U any] struct {
	name          string
	discriminator string
	variants      []Variant[U]
}

// Name returns the union name.
func (u *unionSchema[U]) Name() string { return u.name }

func (u *unionSchema[U]) tags() []string {
	out := make([]string, len(u.variants))
	for i, v := range u.variants {
		out[i] = v.tag
	}
	return out
}

func (u *unionSchema[U]) Coerce(ctx context.Context, v any) (U, error) {
	var zero U
	if u.discriminator != "" {
		return u.coerceTagged(ctx, v)
	}
	attempts := make([]camara.Attempt, 0, len(u.variants))
	for _, vr := range u.variants {
		out, err := vr.coerce(ctx, v)
		if err == nil {
			return out, nil
		}
		iss, ok := camara.AsIssues(err)
		if !ok {
			iss = camara.Issues{{Path: "/", Code: camara.CodeParseError, Message: err.Error(), Cause: err}}
		}
		attempts = append(attempts, camara.Attempt{Variant: vr.tag, Issues: iss})
	}
	it := camara.NewIssue(camara.CodeUnknownVariant, map[string]any{"tried": u.tags()})
	it.Attempts = attempts
	it.Hint = "no variant of " + u.name + " matched"
	return zero, camara.Issues{it}
}

func (u *unionSchema[U]) coerceTagged(ctx context.Context, v any) (U, error) {
	var zero U
	m, ok := v.(map[string]any)
	if !ok {
		return zero, camara.TypeMismatch("object", v)
	}
	raw, present := m[u.discriminator]
	if !present || raw == nil {
		return zero, camara.RebaseIssues(u.discriminator, camara.Fail(camara.CodeDiscriminatorMissing, map[string]any{"discriminator": u.discriminator}))
	}
	tag, ok := raw.(string)
	if !ok {
		return zero, camara.RebaseIssues(u.discriminator, camara.TypeMismatch("string", raw))
	}
	for _, vr := range u.variants {
		if vr.tag == tag {
			return vr.coerce(ctx, v)
		}
	}
	it := camara.NewIssue(camara.CodeUnknownVariant, map[string]any{"value": tag, "tried": u.tags()})
	it.Hint = "unknown variant: '" + tag + "'"
	return zero, camara.RebaseIssues(u.discriminator, camara.Issues{it})
}

func (u *unionSchema[U]) Dump(ctx context.Context, v U) (any, error) {
	var candidates []Variant[U]
	for _, vr := range u.variants {
		if vr.match(v) {
			candidates = append(candidates, vr)
		}
	}
	switch len(candidates) {
	case 0:
		return nil, camara.Fail(camara.CodeInvalidType, map[string]any{"expected": u.name, "got": fmt.Sprintf("%T", v)})
	case 1:
		return candidates[0].dump(ctx, v)
	}
	// Several variants share the Go type (dynamic unions over maps): pick by
	// tag, then by the first variant that accepts the value.
	if m, ok := any(v).(map[string]any); ok && u.discriminator != "" {
		if tag, _ := m[u.discriminator].(string); tag != "" {
			for _, vr := range candidates {
				if vr.tag == tag {
					return vr.dump(ctx, v)
				}
			}
		}
	}
	for _, vr := range candidates {
		if _, err := vr.coerce(ctx, any(v)); err == nil {
			return vr.dump(ctx, v)
		}
	}
	return candidates[0].dump(ctx, v)
}

func (u *unionSchema[U]) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Title: u.name, OneOf: make([]*js.Schema, 0, len(u.variants))}
	var mapping map[string]string
	for _, vr := range u.variants {
		vs, err := vr.jsonSchema()
		if err != nil {
			return nil, err
		}
		out.OneOf = append(out.OneOf, vs)
		if u.discriminator != "" && vs != nil && vs.Title != "" {
			if mapping == nil {
				mapping = map[string]string{}
			}
			mapping[vr.tag] = "#/components/schemas/" + vs.Title
		}
	}
	if u.discriminator != "" {
		out.Discriminator = &js.Discriminator{PropertyName: u.discriminator, Mapping: mapping}
	}
	return out, nil
}

// Tags lists the variant tags of a union built by this package, sorted.
// It returns nil for other schemas.
func Tags(s any) []string {
	type tagged interface{ tags() []string }
	t, ok := s.(tagged)
	if !ok {
		return nil
	}
	out := t.tags()
	sort.Strings(out)
	return out
}
