package dsl

import (
	"context"
	"sort"

	camara "github.com/camara-go/camara"
	js "github.com/camara-go/camara/jsonschema"
)

// Map returns a schema for JSON objects where all properties are coerced by
// elem. Keys are visited in sorted order so issues come out deterministically.
func Map[V any](elem camara.Schema[V]) camara.Schema[map[string]V] { return mapSchema[V]{val: elem} }

type mapSchema[V any] struct{ val camara.Schema[V] }

func (m mapSchema[V]) Coerce(ctx context.Context, v any) (map[string]V, error) {
	var src map[string]any
	switch t := v.(type) {
	case map[string]any:
		src = t
	case map[string]V:
		src = make(map[string]any, len(t))
		for k, vv := range t {
			src[k] = vv
		}
	default:
		return nil, camara.TypeMismatch("object", v)
	}
	out := make(map[string]V, len(src))
	var iss camara.Issues
	for _, k := range sortedKeys(src) {
		cv, err := m.val.Coerce(ctx, src[k])
		if err != nil {
			iss = camara.AppendIssues(iss, camara.RebaseIssues(k, err)...)
			if camara.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out[k] = cv
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (m mapSchema[V]) Dump(ctx context.Context, v map[string]V) (any, error) {
	out := make(map[string]any, len(v))
	var iss camara.Issues
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		w, err := m.val.Dump(ctx, v[k])
		if err != nil {
			iss = camara.AppendIssues(iss, camara.RebaseIssues(k, err)...)
			continue
		}
		out[k] = w
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (m mapSchema[V]) JSONSchema() (*js.Schema, error) {
	vs, err := m.val.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "object", AdditionalProperties: vs}, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
