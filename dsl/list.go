package dsl

import (
	"context"

	camara "github.com/camara-go/camara"
	js "github.com/camara-go/camara/jsonschema"
)

// ListSchema coerces JSON arrays element by element, preserving order.
type ListSchema[E any] struct {
	elem   camara.Schema[E]
	minLen int
	maxLen int
}

var _ camara.Schema[[]string] = (*ListSchema[string])(nil)

// List returns a list schema with the given element schema.
func List[E any](elem camara.Schema[E]) *ListSchema[E] {
	return &ListSchema[E]{elem: elem, minLen: -1, maxLen: -1}
}

// Min returns a copy that requires at least n items.
func (a *ListSchema[E]) Min(n int) *ListSchema[E] {
	c := *a
	c.minLen = n
	return &c
}

// Max returns a copy that allows at most n items.
func (a *ListSchema[E]) Max(n int) *ListSchema[E] {
	c := *a
	c.maxLen = n
	return &c
}

func (a *ListSchema[E]) Coerce(ctx context.Context, v any) ([]E, error) {
	var items []any
	switch src := v.(type) {
	case []any:
		items = src
	case []E:
		items = make([]any, len(src))
		for i := range src {
			items[i] = src[i]
		}
	default:
		return nil, camara.TypeMismatch("array", v)
	}
	if err := a.checkLen(len(items)); err != nil {
		return nil, err
	}
	res := make([]E, 0, len(items))
	var iss camara.Issues
	for i := range items {
		ev, err := a.elem.Coerce(ctx, items[i])
		if err != nil {
			iss = camara.AppendIssues(iss, camara.RebaseIndex(i, err)...)
			if camara.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		res = append(res, ev)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return res, nil
}

func (a *ListSchema[E]) checkLen(n int) error {
	if a.minLen >= 0 && n < a.minLen {
		it := camara.NewIssue(camara.CodeTooShort, map[string]any{"min": a.minLen})
		it.Hint = "array is shorter than min"
		return camara.Issues{it}
	}
	if a.maxLen >= 0 && n > a.maxLen {
		it := camara.NewIssue(camara.CodeTooLong, map[string]any{"max": a.maxLen})
		it.Hint = "array is longer than max"
		return camara.Issues{it}
	}
	return nil
}

func (a *ListSchema[E]) Dump(ctx context.Context, v []E) (any, error) {
	out := make([]any, 0, len(v))
	var iss camara.Issues
	for i := range v {
		w, err := a.elem.Dump(ctx, v[i])
		if err != nil {
			iss = camara.AppendIssues(iss, camara.RebaseIndex(i, err)...)
			continue
		}
		out = append(out, w)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (a *ListSchema[E]) JSONSchema() (*js.Schema, error) {
	es, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	s := &js.Schema{Type: "array", Items: es}
	if a.minLen >= 0 {
		s.MinItems = js.Int(a.minLen)
	}
	if a.maxLen >= 0 {
		s.MaxItems = js.Int(a.maxLen)
	}
	return s, nil
}
