package dsl

import (
	"context"
	"sort"

	camara "github.com/camara-go/camara"
	js "github.com/camara-go/camara/jsonschema"
)

type objectSchema struct {
	title         string
	order         []string
	fields        map[string]AnyAdapter
	required      map[string]struct{}
	unknownPolicy camara.UnknownPolicy
	refines       []objRefine
}

type objRefine struct {
	name string
	fn   func(context.Context, map[string]any) error
}

var _ camara.Schema[map[string]any] = (*objectSchema)(nil)

// Name returns the title given at build time.
func (o *objectSchema) Name() string { return o.title }

func (o *objectSchema) Coerce(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, camara.TypeMismatch("object", v)
	}
	out := make(map[string]any, len(src))
	var iss camara.Issues
	for _, k := range o.order {
		ad := o.fields[k]
		val, exists := src[k]
		switch {
		case !exists:
			if _, req := o.required[k]; req {
				iss = camara.AppendIssues(iss, camara.RebaseIssues(k, camara.Fail(camara.CodeRequired, map[string]any{"field": k}))...)
			}
		case val == nil && !ad.IsNullable():
			iss = camara.AppendIssues(iss, camara.RebaseIssues(k, camara.Fail(camara.CodeUnexpectedNull, map[string]any{"field": k}))...)
		default:
			parsed, err := ad.Coerce(ctx, val)
			if err != nil {
				iss = camara.AppendIssues(iss, camara.RebaseIssues(k, err)...)
			} else {
				out[k] = parsed
			}
		}
		if len(iss) > 0 && camara.IsFailFast(ctx) {
			return nil, iss
		}
	}
	iss = camara.AppendIssues(iss, o.collectUnknown(src, out)...)
	if len(iss) > 0 {
		return nil, iss
	}
	if err := o.Refine(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// collectUnknown processes unknown keys in sorted order according to unknownPolicy.
func (o *objectSchema) collectUnknown(src map[string]any, out map[string]any) camara.Issues {
	var iss camara.Issues
	uks := make([]string, 0, len(src))
	for k := range src {
		if _, known := o.fields[k]; !known {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	for _, k := range uks {
		switch o.unknownPolicy {
		case camara.UnknownStrict:
			iss = append(iss, camara.RebaseIssues(k, camara.Fail(camara.CodeUnknownKey, map[string]any{"key": k}))...)
		case camara.UnknownStrip:
			// drop
		case camara.UnknownPassthrough:
			out[k] = src[k]
		}
	}
	return iss
}

func (o *objectSchema) Dump(ctx context.Context, v map[string]any) (any, error) {
	out := make(map[string]any, len(v))
	var iss camara.Issues
	for _, k := range o.order {
		val, ok := v[k]
		if !ok {
			if _, req := o.required[k]; req {
				iss = append(iss, camara.RebaseIssues(k, camara.Fail(camara.CodeRequired, map[string]any{"field": k}))...)
			}
			continue
		}
		w, err := o.fields[k].Dump(ctx, val)
		if err != nil {
			iss = append(iss, camara.RebaseIssues(k, err)...)
			continue
		}
		out[k] = w
	}
	if o.unknownPolicy == camara.UnknownPassthrough {
		for k, val := range v {
			if _, known := o.fields[k]; !known {
				out[k] = val
			}
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (o *objectSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.fields))
	for k, ad := range o.fields {
		ps, err := ad.JSONSchema()
		if err != nil {
			return nil, err
		}
		props[k] = ps
	}
	req := make([]string, 0, len(o.required))
	for k := range o.required {
		req = append(req, k)
	}
	sort.Strings(req)
	var additional any
	switch o.unknownPolicy {
	case camara.UnknownStrict:
		additional = false
	case camara.UnknownStrip, camara.UnknownPassthrough:
		// accepted on input either way
		additional = true
	}
	return &js.Schema{Title: o.title, Type: "object", Properties: props, Required: req, AdditionalProperties: additional}, nil
}

// Refine implements camara.Refiner[map[string]any] using builder-registered hooks.
func (o *objectSchema) Refine(ctx context.Context, v map[string]any) error {
	return runRefines(ctx, v, o.refines, func(r objRefine) (string, func(context.Context, map[string]any) error) { return r.name, r.fn })
}

// runRefines executes refine hooks in order, turning plain errors into
// custom issues at the object root.
func runRefines[T any, R any](ctx context.Context, v T, rs []R, unpack func(R) (string, func(context.Context, T) error)) error {
	var iss camara.Issues
	for _, r := range rs {
		name, fn := unpack(r)
		if fn == nil {
			continue
		}
		if err := fn(ctx, v); err != nil {
			if i2, ok := camara.AsIssues(err); ok {
				iss = camara.AppendIssues(iss, i2...)
			} else {
				iss = camara.AppendIssues(iss, camara.Issue{Path: "/", Code: camara.CodeCustom, Message: err.Error(), Hint: name, Cause: err})
			}
			if camara.IsFailFast(ctx) {
				return iss
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}
