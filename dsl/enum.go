package dsl

import (
	"context"

	camara "github.com/camara-go/camara"
	js "github.com/camara-go/camara/jsonschema"
)

// EnumSchema coerces a JSON string into one member of a closed set.
// Membership is exact and case-sensitive.
type EnumSchema[T ~string] struct {
	members []T
	set     map[T]struct{}
	lenient bool
}

var _ camara.Schema[string] = (*EnumSchema[string])(nil)

// Enum returns a strict enum schema over members, in declaration order.
func Enum[T ~string](members ...T) *EnumSchema[T] {
	set := make(map[T]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return &EnumSchema[T]{members: append([]T(nil), members...), set: set}
}

// Lenient returns a copy that passes unknown values through as T(raw)
// instead of failing with invalid_enum.
func (e *EnumSchema[T]) Lenient() *EnumSchema[T] {
	c := *e
	c.lenient = true
	return &c
}

// Members returns the declared members.
func (e *EnumSchema[T]) Members() []T { return append([]T(nil), e.members...) }

// Known reports whether v is a declared member.
func (e *EnumSchema[T]) Known(v T) bool {
	_, ok := e.set[v]
	return ok
}

func (e *EnumSchema[T]) Coerce(ctx context.Context, v any) (T, error) {
	var raw string
	switch s := v.(type) {
	case T:
		raw = string(s)
	case string:
		raw = s
	default:
		return "", camara.TypeMismatch("string", v)
	}
	t := T(raw)
	if e.Known(t) {
		return t, nil
	}
	if e.lenient || camara.CoerceOptFrom(ctx).LenientEnums {
		return t, nil
	}
	allowed := make([]string, len(e.members))
	for i, m := range e.members {
		allowed[i] = string(m)
	}
	it := camara.NewIssue(camara.CodeInvalidEnum, map[string]any{"value": raw, "allowed": allowed})
	it.Hint = "allowed: " + joinQuoted(allowed)
	return "", camara.Issues{it}
}

func (e *EnumSchema[T]) Dump(ctx context.Context, v T) (any, error) { return string(v), nil }

func (e *EnumSchema[T]) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "string", Enum: make([]any, len(e.members))}
	for i, m := range e.members {
		out.Enum[i] = string(m)
	}
	return out, nil
}

func joinQuoted(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}
		out += "'" + s + "'"
	}
	return out
}
