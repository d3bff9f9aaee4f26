package dsl

import (
	"context"
	"fmt"

	camara "github.com/camara-go/camara"
	js "github.com/camara-go/camara/jsonschema"
)

// AnyAdapter adapts Schema[T] to an any-typed DSL wrapper. Dynamic objects
// and schemas imported at runtime are assembled from adapters. AnyAdapter
// itself implements camara.Schema[any].
type AnyAdapter struct {
	coerce     func(context.Context, any) (any, error)
	dump       func(context.Context, any) (any, error)
	jsonSchema func() (*js.Schema, error)
	nullable   bool
	orig       any
}

var _ camara.Schema[any] = AnyAdapter{}

// Adapt wraps a strongly typed Schema[T] as an AnyAdapter. Dump accepts
// only values of type T.
func Adapt[T any](s camara.Schema[T]) AnyAdapter {
	if ad, ok := any(s).(AnyAdapter); ok {
		return ad
	}
	return AnyAdapter{
		coerce: func(ctx context.Context, v any) (any, error) { return s.Coerce(ctx, v) },
		dump: func(ctx context.Context, v any) (any, error) {
			tv, ok := v.(T)
			if !ok {
				var zero T
				return nil, camara.Fail(camara.CodeInvalidType, map[string]any{"expected": fmt.Sprintf("%T", zero), "got": fmt.Sprintf("%T", v)})
			}
			return s.Dump(ctx, tv)
		},
		jsonSchema: s.JSONSchema,
		orig:       s,
	}
}

// Orig returns the original underlying Schema[T] used to create this adapter.
// It is intended for advanced integrations and may change.
func (ad AnyAdapter) Orig() any { return ad.orig }

// IsNullable reports whether JSON null is accepted.
func (ad AnyAdapter) IsNullable() bool { return ad.nullable }

// Nullable returns a copy that accepts JSON null, coercing and dumping it as nil.
func (ad AnyAdapter) Nullable() AnyAdapter {
	out := ad
	out.nullable = true
	return out
}

func (ad AnyAdapter) Coerce(ctx context.Context, v any) (any, error) {
	if v == nil && ad.nullable {
		return nil, nil
	}
	if ad.coerce == nil {
		return v, nil
	}
	return ad.coerce(ctx, v)
}

func (ad AnyAdapter) Dump(ctx context.Context, v any) (any, error) {
	if v == nil && ad.nullable {
		return nil, nil
	}
	if ad.dump == nil {
		return v, nil
	}
	return ad.dump(ctx, v)
}

func (ad AnyAdapter) JSONSchema() (*js.Schema, error) {
	var s *js.Schema
	if ad.jsonSchema != nil {
		var err error
		if s, err = ad.jsonSchema(); err != nil {
			return nil, err
		}
	}
	if s == nil {
		s = &js.Schema{}
	}
	if ad.nullable {
		c := *s
		c.Nullable = true
		s = &c
	}
	return s, nil
}

// ListOf adapts List[any] over an element adapter.
// Example: Field("points", dsl.ListOf(dsl.Adapt(pointSchema)))
func ListOf(elem AnyAdapter) AnyAdapter { return Adapt[[]any](List[any](elem)) }

// MapOf adapts Map[any] over a value adapter.
func MapOf(elem AnyAdapter) AnyAdapter { return Adapt[map[string]any](Map[any](elem)) }
