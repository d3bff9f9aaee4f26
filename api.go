package camara

import (
	"context"

	js "github.com/camara-go/camara/jsonschema"
)

// Schema is the coercer contract shared by every type description: primitives,
// enums, containers, models and unions.
type Schema[T any] interface {
	// Coerce converts a decoded wire value (maps, slices, strings, numbers,
	// booleans, nil) into T. It returns Issues when the value does not fit.
	Coerce(ctx context.Context, v any) (T, error)

	// Dump converts T back into a JSON-serializable wire value. For values
	// produced by Coerce, Dump(Coerce(x)) reproduces x.
	Dump(ctx context.Context, v T) (any, error)

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// Refiner provides an optional hook at the end of coercion to perform
// cross-field validation. If it is not implemented, the phase is skipped.
type Refiner[T any] interface {
	Refine(ctx context.Context, v T) error
}

// ---- Convenience wrappers ----

// Coerce runs s.Coerce, guarding against a nil schema.
func Coerce[T any](ctx context.Context, s Schema[T], v any) (T, error) {
	if s == nil {
		var zero T
		return zero, ErrNilSchema
	}
	return s.Coerce(ctx, v)
}

// Dump runs s.Dump, guarding against a nil schema.
func Dump[T any](ctx context.Context, s Schema[T], v T) (any, error) {
	if s == nil {
		return nil, ErrNilSchema
	}
	return s.Dump(ctx, v)
}

// Validate reports whether v coerces against s, discarding the typed value.
func Validate[T any](ctx context.Context, s Schema[T], v any) error {
	_, err := Coerce(ctx, s, v)
	return err
}

// SafeCoerce coerces v into T, returning (zero, false) on error.
func SafeCoerce[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := Coerce(ctx, s, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is returns true if v coerces against s.
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	return Validate(ctx, s, v) == nil
}

// ApplyRefine calls Refiner[T] if implemented.
func ApplyRefine[T any](ctx context.Context, v T, s Schema[T]) error {
	if r, ok := any(s).(Refiner[T]); ok {
		return r.Refine(ctx, v)
	}
	return nil
}

// ---- Coerce-time context options ----

type contextKey int

const (
	_ctxKeyCoerceOpt contextKey = iota
	_ctxKeyDepth
)

// WithCoerceOpt returns a child context carrying opt for every coercer below it.
func WithCoerceOpt(ctx context.Context, opt CoerceOpt) context.Context {
	return context.WithValue(ctx, _ctxKeyCoerceOpt, opt)
}

// CoerceOptFrom returns the options attached to ctx (zero value when absent).
func CoerceOptFrom(ctx context.Context) CoerceOpt {
	opt, _ := ctx.Value(_ctxKeyCoerceOpt).(CoerceOpt)
	return opt
}

// WithLenientEnums is a shorthand that enables LenientEnums on top of the
// options already present in ctx.
func WithLenientEnums(ctx context.Context) context.Context {
	opt := CoerceOptFrom(ctx)
	opt.LenientEnums = true
	return WithCoerceOpt(ctx, opt)
}

// WithFailFast toggles FailFast on top of the options already present in ctx.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	opt := CoerceOptFrom(ctx)
	opt.FailFast = enabled
	return WithCoerceOpt(ctx, opt)
}

// IsFailFast reports whether the current coercion should stop on the first issue.
func IsFailFast(ctx context.Context) bool { return CoerceOptFrom(ctx).FailFast }

// Descend records one more level of recursive schema descent. It returns a
// too_deep error once the configured MaxDepth is exceeded.
func Descend(ctx context.Context) (context.Context, error) {
	depth, _ := ctx.Value(_ctxKeyDepth).(int)
	depth++
	max := CoerceOptFrom(ctx).MaxDepth
	if max <= 0 {
		max = DefaultMaxDepth
	}
	if depth > max {
		return ctx, Fail(CodeTooDeep, map[string]any{"max": max})
	}
	return context.WithValue(ctx, _ctxKeyDepth, depth), nil
}
