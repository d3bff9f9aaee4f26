package dsl

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/codec"
	js "github.com/camara-go/camara/jsonschema"
)

// ---- string ----

// StringSchema coerces JSON strings. It never narrows other kinds into
// strings. Constraint methods return a modified copy.
type StringSchema struct {
	minLen  *int
	maxLen  *int
	pattern *regexp.Regexp
}

var _ camara.Schema[string] = (*StringSchema)(nil)

// String returns an unconstrained string schema.
func String() *StringSchema { return &StringSchema{} }

// MinLen requires at least n characters (runes).
func (s *StringSchema) MinLen(n int) *StringSchema {
	c := *s
	c.minLen = &n
	return &c
}

// MaxLen allows at most n characters (runes).
func (s *StringSchema) MaxLen(n int) *StringSchema {
	c := *s
	c.maxLen = &n
	return &c
}

// Pattern requires the value to match expr. It panics on an invalid
// expression, like regexp.MustCompile.
func (s *StringSchema) Pattern(expr string) *StringSchema {
	c := *s
	c.pattern = regexp.MustCompile(expr)
	return &c
}

func (s *StringSchema) Coerce(ctx context.Context, v any) (string, error) {
	str, ok := v.(string)
	if !ok {
		return "", camara.TypeMismatch("string", v)
	}
	if err := s.check(str); err != nil {
		return "", err
	}
	return str, nil
}

func (s *StringSchema) check(str string) error {
	var iss camara.Issues
	if s.minLen != nil || s.maxLen != nil {
		n := utf8.RuneCountInString(str)
		if s.minLen != nil && n < *s.minLen {
			iss = append(iss, camara.NewIssue(camara.CodeTooShort, map[string]any{"min": *s.minLen}))
		}
		if s.maxLen != nil && n > *s.maxLen {
			iss = append(iss, camara.NewIssue(camara.CodeTooLong, map[string]any{"max": *s.maxLen}))
		}
	}
	if s.pattern != nil && !s.pattern.MatchString(str) {
		it := camara.NewIssue(camara.CodePattern, map[string]any{"pattern": s.pattern.String()})
		it.Hint = s.pattern.String()
		iss = append(iss, it)
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (s *StringSchema) Dump(ctx context.Context, v string) (any, error) { return v, nil }

func (s *StringSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "string", MinLength: s.minLen, MaxLength: s.maxLen}
	if s.pattern != nil {
		out.Pattern = s.pattern.String()
	}
	return out, nil
}

// StringAs projects a string schema onto a named string type. The optional
// base carries constraints; String() is used when omitted.
func StringAs[T ~string](base ...*StringSchema) camara.Schema[T] {
	b := String()
	if len(base) > 0 && base[0] != nil {
		b = base[0]
	}
	return stringAsSchema[T]{base: b}
}

type stringAsSchema[T ~string] struct{ base *StringSchema }

func (s stringAsSchema[T]) Coerce(ctx context.Context, v any) (T, error) {
	if t, ok := v.(T); ok {
		v = string(t)
	}
	str, err := s.base.Coerce(ctx, v)
	return T(str), err
}
func (s stringAsSchema[T]) Dump(ctx context.Context, v T) (any, error) { return string(v), nil }
func (s stringAsSchema[T]) JSONSchema() (*js.Schema, error)          { return s.base.JSONSchema() }

// ---- integer ----

// IntSchema coerces JSON integers into int64.
type IntSchema struct {
	min *int64
	max *int64
}

var _ camara.Schema[int64] = (*IntSchema)(nil)

// Int returns an unconstrained integer schema.
func Int() *IntSchema { return &IntSchema{} }

// Min sets an inclusive lower bound.
func (s *IntSchema) Min(n int64) *IntSchema {
	c := *s
	c.min = &n
	return &c
}

// Max sets an inclusive upper bound.
func (s *IntSchema) Max(n int64) *IntSchema {
	c := *s
	c.max = &n
	return &c
}

func (s *IntSchema) Coerce(ctx context.Context, v any) (int64, error) {
	n, err := toInt64(ctx, v)
	if err != nil {
		return 0, err
	}
	if s.min != nil && n < *s.min {
		return 0, camara.Fail(camara.CodeTooSmall, map[string]any{"min": float64(*s.min)})
	}
	if s.max != nil && n > *s.max {
		return 0, camara.Fail(camara.CodeTooBig, map[string]any{"max": float64(*s.max)})
	}
	return n, nil
}

func (s *IntSchema) Dump(ctx context.Context, v int64) (any, error) { return v, nil }

func (s *IntSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "integer"}
	if s.min != nil {
		out.Minimum = js.Float(float64(*s.min))
	}
	if s.max != nil {
		out.Maximum = js.Float(float64(*s.max))
	}
	return out, nil
}

// IntAs projects an integer schema onto a named integer type.
func IntAs[T ~int64](base ...*IntSchema) camara.Schema[T] {
	b := Int()
	if len(base) > 0 && base[0] != nil {
		b = base[0]
	}
	return intAsSchema[T]{base: b}
}

type intAsSchema[T ~int64] struct{ base *IntSchema }

func (s intAsSchema[T]) Coerce(ctx context.Context, v any) (T, error) {
	if t, ok := v.(T); ok {
		v = int64(t)
	}
	n, err := s.base.Coerce(ctx, v)
	return T(n), err
}
func (s intAsSchema[T]) Dump(ctx context.Context, v T) (any, error) { return int64(v), nil }
func (s intAsSchema[T]) JSONSchema() (*js.Schema, error)          { return s.base.JSONSchema() }

// ---- number ----

// FloatSchema coerces any JSON number into float64.
type FloatSchema struct {
	min *float64
	max *float64
}

var _ camara.Schema[float64] = (*FloatSchema)(nil)

// Float returns an unconstrained number schema.
func Float() *FloatSchema { return &FloatSchema{} }

// Min sets an inclusive lower bound.
func (s *FloatSchema) Min(n float64) *FloatSchema {
	c := *s
	c.min = &n
	return &c
}

// Max sets an inclusive upper bound.
func (s *FloatSchema) Max(n float64) *FloatSchema {
	c := *s
	c.max = &n
	return &c
}

func (s *FloatSchema) Coerce(ctx context.Context, v any) (float64, error) {
	f, err := toFloat64(ctx, v)
	if err != nil {
		return 0, err
	}
	if s.min != nil && f < *s.min {
		return 0, camara.Fail(camara.CodeTooSmall, map[string]any{"min": *s.min})
	}
	if s.max != nil && f > *s.max {
		return 0, camara.Fail(camara.CodeTooBig, map[string]any{"max": *s.max})
	}
	return f, nil
}

func (s *FloatSchema) Dump(ctx context.Context, v float64) (any, error) { return v, nil }

func (s *FloatSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "number", Minimum: s.min, Maximum: s.max}, nil
}

// ---- boolean ----

// Bool returns the boolean schema. With narrowing enabled the strings
// "true" and "false" are accepted.
func Bool() camara.Schema[bool] { return boolSchema{} }

type boolSchema struct{}

func (boolSchema) Coerce(ctx context.Context, v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		if !camara.CoerceOptFrom(ctx).ExactTypes {
			switch b {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
		}
	}
	return false, camara.TypeMismatch("boolean", v)
}

func (boolSchema) Dump(ctx context.Context, v bool) (any, error) { return v, nil }
func (boolSchema) JSONSchema() (*js.Schema, error)              { return &js.Schema{Type: "boolean"}, nil }

// ---- date-time, uuid ----

// DateTime coerces RFC 3339 strings into camara.DateTime and dumps them as
// they were written (offset spelling and fraction width). time.Time values
// are accepted as well.
func DateTime() camara.Schema[camara.DateTime] { return Codec(codec.TimeRFC3339()) }

// UUID coerces the textual form of a UUID into uuid.UUID.
func UUID() camara.Schema[uuid.UUID] { return Codec(codec.UUID()) }

// ---- any ----

// Any accepts every wire value unchanged.
func Any() camara.Schema[any] { return anySchema{} }

type anySchema struct{}

func (anySchema) Coerce(ctx context.Context, v any) (any, error) { return v, nil }
func (anySchema) Dump(ctx context.Context, v any) (any, error)   { return v, nil }
func (anySchema) JSONSchema() (*js.Schema, error)                { return &js.Schema{}, nil }
