package dsl

import (
	"context"
	"errors"
	"fmt"
	"sort"

	camara "github.com/camara-go/camara"
	js "github.com/camara-go/camara/jsonschema"
)

// ModelBuilder declares the field table of a record type M. Fields are
// visited in declaration order, so issues are reported in that order too.
type ModelBuilder[M any] struct {
	name    string
	fields  []*FieldSpec[M]
	unknown camara.UnknownPolicy
	extras  func(*M) *camara.Extras
	refines []modelRefine[M]
}

type modelRefine[M any] struct {
	name string
	fn   func(context.Context, M) error
}

// Model starts a record schema named name. Unknown keys default to
// UnknownPassthrough, which requires an Extras slot declared with Unknown.
func Model[M any](name string) *ModelBuilder[M] {
	return &ModelBuilder[M]{name: name, unknown: camara.UnknownPassthrough}
}

// FieldSpec describes one record field: its wire key, local name, flags and
// the accessors into M.
type FieldSpec[M any] struct {
	key      string
	local    string
	required bool
	nullable bool
	plain    bool
	noSchema bool

	coerce     func(ctx context.Context, m *M, v any) error
	setNull    func(m *M)
	dump       func(ctx context.Context, m *M, f *FieldSpec[M]) (w any, present bool, err error)
	jsonSchema func() (*js.Schema, error)
}

// Req declares a required, non-nullable field stored as a plain F.
func Req[M, F any](key string, s camara.Schema[F], ptr func(*M) *F) *FieldSpec[M] {
	f := &FieldSpec[M]{key: key, required: true, plain: true, noSchema: s == nil}
	if s == nil {
		return f
	}
	f.coerce = func(ctx context.Context, m *M, v any) error {
		fv, err := s.Coerce(ctx, v)
		if err != nil {
			return err
		}
		*ptr(m) = fv
		return nil
	}
	f.dump = func(ctx context.Context, m *M, _ *FieldSpec[M]) (any, bool, error) {
		w, err := s.Dump(ctx, *ptr(m))
		return w, true, err
	}
	f.jsonSchema = s.JSONSchema
	return f
}

// Opt declares a field stored in an Optional slot. It is optional and
// non-nullable until Required or Nullable say otherwise.
func Opt[M, F any](key string, s camara.Schema[F], ptr func(*M) *camara.Optional[F]) *FieldSpec[M] {
	f := &FieldSpec[M]{key: key, noSchema: s == nil}
	if s == nil {
		return f
	}
	f.coerce = func(ctx context.Context, m *M, v any) error {
		fv, err := s.Coerce(ctx, v)
		if err != nil {
			return err
		}
		*ptr(m) = camara.Some(fv)
		return nil
	}
	f.setNull = func(m *M) { *ptr(m) = camara.Null[F]() }
	f.dump = func(ctx context.Context, m *M, spec *FieldSpec[M]) (any, bool, error) {
		o := *ptr(m)
		switch {
		case !o.IsSet():
			if spec.required {
				return nil, false, camara.Fail(camara.CodeRequired, map[string]any{"field": spec.Name()})
			}
			return nil, false, nil
		case o.IsNull():
			if !spec.nullable {
				return nil, false, camara.Fail(camara.CodeUnexpectedNull, map[string]any{"field": spec.Name()})
			}
			return nil, true, nil
		}
		val, _ := o.Get()
		w, err := s.Dump(ctx, val)
		return w, true, err
	}
	f.jsonSchema = s.JSONSchema
	return f
}

// Required makes the key mandatory on the wire.
func (f *FieldSpec[M]) Required() *FieldSpec[M] {
	f.required = true
	return f
}

// Nullable lets the wire value be JSON null. Only Opt fields can be nullable.
func (f *FieldSpec[M]) Nullable() *FieldSpec[M] {
	f.nullable = true
	return f
}

// As records the local (Go) name when it differs from the wire key.
func (f *FieldSpec[M]) As(local string) *FieldSpec[M] {
	f.local = local
	return f
}

// Key returns the wire key.
func (f *FieldSpec[M]) Key() string { return f.key }

// Name returns the local name, falling back to the wire key.
func (f *FieldSpec[M]) Name() string {
	if f.local != "" {
		return f.local
	}
	return f.key
}

// Field appends a field declaration.
func (b *ModelBuilder[M]) Field(f *FieldSpec[M]) *ModelBuilder[M] {
	b.fields = append(b.fields, f)
	return b
}

// Unknown keeps unrecognized keys in the Extras slot returned by ptr.
func (b *ModelBuilder[M]) Unknown(ptr func(*M) *camara.Extras) *ModelBuilder[M] {
	b.extras = ptr
	b.unknown = camara.UnknownPassthrough
	return b
}

// UnknownStrip drops unrecognized keys.
func (b *ModelBuilder[M]) UnknownStrip() *ModelBuilder[M] {
	b.unknown = camara.UnknownStrip
	return b
}

// UnknownStrict rejects unrecognized keys with unknown_key.
func (b *ModelBuilder[M]) UnknownStrict() *ModelBuilder[M] {
	b.unknown = camara.UnknownStrict
	return b
}

// Refine adds a record-level check run after every field coerced cleanly.
func (b *ModelBuilder[M]) Refine(name string, fn func(context.Context, M) error) *ModelBuilder[M] {
	if fn != nil {
		b.refines = append(b.refines, modelRefine[M]{name: name, fn: fn})
	}
	return b
}

// Build validates the declaration and returns the record schema.
func (b *ModelBuilder[M]) Build() (camara.Schema[M], error) {
	var errs []error
	seen := make(map[string]struct{}, len(b.fields))
	for _, f := range b.fields {
		if f == nil {
			errs = append(errs, fmt.Errorf("dsl: model %s: nil field", b.name))
			continue
		}
		if _, dup := seen[f.key]; dup {
			errs = append(errs, fmt.Errorf("dsl: model %s: key %q declared twice", b.name, f.key))
		}
		seen[f.key] = struct{}{}
		if f.noSchema {
			errs = append(errs, fmt.Errorf("dsl: model %s: field %q has no schema", b.name, f.key))
		}
		if f.plain && f.nullable {
			errs = append(errs, fmt.Errorf("dsl: model %s: field %q is nullable but not declared with Opt", b.name, f.key))
		}
	}
	if b.unknown == camara.UnknownPassthrough && b.extras == nil {
		errs = append(errs, fmt.Errorf("dsl: model %s: unknown passthrough needs an Extras slot (Unknown)", b.name))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &modelSchema[M]{
		name:    b.name,
		fields:  append([]*FieldSpec[M](nil), b.fields...),
		keys:    seen,
		unknown: b.unknown,
		extras:  b.extras,
		refines: append([]modelRefine[M](nil), b.refines...),
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *ModelBuilder[M]) MustBuild() camara.Schema[M] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

type modelSchema[M any] struct {
	name    string
	fields  []*FieldSpec[M]
	keys    map[string]struct{}
	unknown camara.UnknownPolicy
	extras  func(*M) *camara.Extras
	refines []modelRefine[M]
}

// Name returns the model name.
func (s *modelSchema[M]) Name() string { return s.name }

func (s *modelSchema[M]) Coerce(ctx context.Context, v any) (M, error) {
	var zero M
	if m, ok := v.(M); ok {
		return m, nil
	}
	src, ok := v.(map[string]any)
	if !ok {
		return zero, camara.TypeMismatch("object", v)
	}
	var m M
	var iss camara.Issues
	for _, f := range s.fields {
		raw, present := src[f.key]
		switch {
		case !present:
			if f.required {
				iss = append(iss, camara.RebaseIssues(f.key, camara.Fail(camara.CodeRequired, map[string]any{"field": f.Name()}))...)
			}
		case raw == nil:
			if f.nullable {
				f.setNull(&m)
			} else {
				iss = append(iss, camara.RebaseIssues(f.key, camara.Fail(camara.CodeUnexpectedNull, map[string]any{"field": f.Name()}))...)
			}
		default:
			if err := f.coerce(ctx, &m, raw); err != nil {
				iss = append(iss, camara.RebaseIssues(f.key, err)...)
			}
		}
		if len(iss) > 0 && camara.IsFailFast(ctx) {
			return zero, iss
		}
	}

	var extras camara.Extras
	for _, k := range sortedKeys(src) {
		if _, known := s.keys[k]; known {
			continue
		}
		switch s.unknown {
		case camara.UnknownStrict:
			iss = append(iss, camara.RebaseIssues(k, camara.Fail(camara.CodeUnknownKey, map[string]any{"key": k}))...)
		case camara.UnknownPassthrough:
			if extras == nil {
				extras = camara.Extras{}
			}
			extras[k] = src[k]
		}
	}
	if len(iss) > 0 {
		return zero, iss
	}
	if extras != nil && s.extras != nil {
		*s.extras(&m) = extras
	}
	if err := s.Refine(ctx, m); err != nil {
		return zero, err
	}
	return m, nil
}

// Refine implements camara.Refiner[M].
func (s *modelSchema[M]) Refine(ctx context.Context, m M) error {
	return runRefines(ctx, m, s.refines, func(r modelRefine[M]) (string, func(context.Context, M) error) { return r.name, r.fn })
}

func (s *modelSchema[M]) Dump(ctx context.Context, m M) (any, error) {
	out := make(map[string]any, len(s.fields))
	if s.extras != nil && s.unknown == camara.UnknownPassthrough {
		for k, v := range *s.extras(&m) {
			out[k] = v
		}
	}
	var iss camara.Issues
	for _, f := range s.fields {
		w, present, err := f.dump(ctx, &m, f)
		if err != nil {
			iss = append(iss, camara.RebaseIssues(f.key, err)...)
			continue
		}
		if present {
			out[f.key] = w
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (s *modelSchema[M]) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(s.fields))
	var req []string
	for _, f := range s.fields {
		ps, err := f.jsonSchema()
		if err != nil {
			return nil, err
		}
		if ps == nil {
			ps = &js.Schema{}
		}
		if f.nullable || f.local != "" {
			c := *ps
			c.Nullable = c.Nullable || f.nullable
			if f.local != "" {
				c.Title = f.local
			}
			ps = &c
		}
		props[f.key] = ps
		if f.required {
			req = append(req, f.key)
		}
	}
	sort.Strings(req)
	out := &js.Schema{Title: s.name, Type: "object", Properties: props, Required: req}
	if s.unknown == camara.UnknownStrict {
		out.AdditionalProperties = false
	}
	return out, nil
}
