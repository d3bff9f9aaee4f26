package dsl

import (
	"context"

	camara "github.com/camara-go/camara"
	js "github.com/camara-go/camara/jsonschema"
)

// Nullable wraps s so that JSON null is accepted. Null coerces to
// camara.Null; any other value is coerced by s and wrapped with camara.Some.
// Dump writes null for both the null and the unset state.
func Nullable[T any](s camara.Schema[T]) camara.Schema[camara.Optional[T]] {
	return nullableSchema[T]{inner: s}
}

type nullableSchema[T any] struct{ inner camara.Schema[T] }

func (n nullableSchema[T]) Coerce(ctx context.Context, v any) (camara.Optional[T], error) {
	if o, ok := v.(camara.Optional[T]); ok {
		return o, nil
	}
	if v == nil {
		return camara.Null[T](), nil
	}
	t, err := n.inner.Coerce(ctx, v)
	if err != nil {
		return camara.Optional[T]{}, err
	}
	return camara.Some(t), nil
}

func (n nullableSchema[T]) Dump(ctx context.Context, v camara.Optional[T]) (any, error) {
	t, ok := v.Get()
	if !ok {
		return nil, nil
	}
	return n.inner.Dump(ctx, t)
}

func (n nullableSchema[T]) JSONSchema() (*js.Schema, error) {
	s, err := n.inner.JSONSchema()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = &js.Schema{}
	}
	c := *s
	c.Nullable = true
	return &c, nil
}
