package dsl

import (
	"context"

	camara "github.com/camara-go/camara"
	js "github.com/camara-go/camara/jsonschema"
)

// Codec adapts a Codec[A,B] into a Schema[B] that accepts wire A and produces domain B.
// Coerce: In.Coerce -> Decode. Values that already have type B, or that
// Out accepts directly, pass through.
// Dump: Encode -> In.Dump.
// JSONSchema: delegate to Out().JSONSchema().
func Codec[A, B any](c camara.Codec[A, B]) camara.Schema[B] { return codecSchema[A, B]{c: c} }

type codecSchema[A, B any] struct{ c camara.Codec[A, B] }

func (s codecSchema[A, B]) Coerce(ctx context.Context, v any) (B, error) {
	if b, ok := v.(B); ok {
		return s.c.Out().Coerce(ctx, b)
	}
	var zero B
	a, err := s.c.In().Coerce(ctx, v)
	if err != nil {
		if b, outErr := s.c.Out().Coerce(ctx, v); outErr == nil {
			return b, nil
		}
		return zero, err
	}
	b, err := s.c.Decode(ctx, a)
	if err != nil {
		if iss, ok := camara.AsIssues(err); ok {
			return zero, iss
		}
		return zero, camara.Issues{{Path: "/", Code: camara.CodeParseError, Message: err.Error(), Cause: err}}
	}
	return b, nil
}

func (s codecSchema[A, B]) Dump(ctx context.Context, v B) (any, error) {
	a, err := s.c.Encode(ctx, v)
	if err != nil {
		return nil, err
	}
	return s.c.In().Dump(ctx, a)
}

func (s codecSchema[A, B]) JSONSchema() (*js.Schema, error) { return s.c.Out().JSONSchema() }
