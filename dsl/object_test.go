package dsl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
)

func TestObject_RequiredNullableUnknown(t *testing.T) {
	ctx := context.Background()
	s := dsl.Object().Title("Sink").
		Field("sink", dsl.Adapt[string](dsl.String())).Required().
		Field("note", dsl.Adapt[string](dsl.String())).Nullable().Optional().
		MustBuild()

	in := map[string]any{"sink": "https://example.com/cb", "note": nil, "later": 1}
	got, err := s.Coerce(ctx, in)
	if err != nil {
		t.Fatalf("coerce: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("passthrough should keep every key:\n%s", diff)
	}
	w, _ := s.Dump(ctx, got)
	if diff := cmp.Diff(any(in), w); diff != "" {
		t.Fatalf("dump mismatch:\n%s", diff)
	}

	_, err = s.Coerce(ctx, map[string]any{"sink": nil})
	if !camara.HasCode(err, camara.CodeUnexpectedNull) {
		t.Fatalf("expected unexpected_null, got %v", err)
	}
	_, err = s.Coerce(ctx, map[string]any{})
	if !camara.HasCode(err, camara.CodeRequired) {
		t.Fatalf("expected required, got %v", err)
	}
}

func TestObject_StrictAndStrip(t *testing.T) {
	ctx := context.Background()
	strict := dsl.Object().Field("a", dsl.Adapt[int64](dsl.Int())).UnknownStrict().MustBuild()
	if _, err := strict.Coerce(ctx, map[string]any{"a": 1, "b": 2}); !camara.HasCode(err, camara.CodeUnknownKey) {
		t.Fatalf("expected unknown_key, got %v", err)
	}
	strip := dsl.Object().Field("a", dsl.Adapt[int64](dsl.Int())).UnknownStrip().MustBuild()
	got, err := strip.Coerce(ctx, map[string]any{"a": 1, "b": 2})
	if err != nil || len(got) != 1 || got["a"] != int64(1) {
		t.Fatalf("strip = %v, %v", got, err)
	}
}

func TestObject_RefineAndBuildErrors(t *testing.T) {
	ctx := context.Background()
	s := dsl.Object().
		Field("from", dsl.Adapt[int64](dsl.Int())).Required().
		Field("to", dsl.Adapt[int64](dsl.Int())).Required().
		Refine("order", func(ctx context.Context, m map[string]any) error {
			if m["from"].(int64) > m["to"].(int64) {
				return errors.New("from > to")
			}
			return nil
		}).
		MustBuild()
	if _, err := s.Coerce(ctx, map[string]any{"from": 2, "to": 1}); !camara.HasCode(err, camara.CodeCustom) {
		t.Fatalf("expected custom, got %v", err)
	}
	if _, err := dsl.Object().Require("ghost").Build(); err == nil {
		t.Fatalf("required undeclared field must fail to build")
	}
}

func TestAdapter_ListAndMap(t *testing.T) {
	ctx := context.Background()
	ad := dsl.ListOf(dsl.MapOf(dsl.Adapt[int64](dsl.Int())))
	got, err := ad.Coerce(ctx, []any{map[string]any{"a": "1"}})
	if err != nil {
		t.Fatalf("coerce: %v", err)
	}
	want := []any{map[string]any{"a": int64(1)}}
	if diff := cmp.Diff(any(want), got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if _, err := ad.Dump(ctx, "nope"); !camara.HasCode(err, camara.CodeInvalidType) {
		t.Fatalf("dump of a foreign type should fail, got %v", err)
	}
}
