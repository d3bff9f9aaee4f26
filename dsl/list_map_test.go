package dsl_test

import (
	"context"
	"testing"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
)

func TestList_OrderAndIndexPaths(t *testing.T) {
	ctx := context.Background()
	s := dsl.List[int64](dsl.Int())

	got, err := s.Coerce(ctx, []any{3, "1", 2.0})
	if err != nil {
		t.Fatalf("coerce: %v", err)
	}
	if len(got) != 3 || got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("unexpected list %v", got)
	}

	_, err = s.Coerce(ctx, []any{1, "x", true})
	iss, _ := camara.AsIssues(err)
	if len(iss) != 2 || iss[0].Path != "/1" || iss[1].Path != "/2" {
		t.Fatalf("expected issues at /1 and /2, got %+v", iss)
	}

	_, err = s.Coerce(camara.WithFailFast(ctx, true), []any{1, "x", true})
	iss, _ = camara.AsIssues(err)
	if len(iss) != 1 {
		t.Fatalf("fail-fast should stop at the first element, got %+v", iss)
	}
}

func TestList_EmptyDumpsAsArray(t *testing.T) {
	ctx := context.Background()
	s := dsl.List[string](dsl.String())
	got, err := s.Coerce(ctx, []any{})
	if err != nil || got == nil {
		t.Fatalf("empty list should coerce to a non-nil slice: %v %v", got, err)
	}
	w, _ := s.Dump(ctx, got)
	if arr, ok := w.([]any); !ok || len(arr) != 0 {
		t.Fatalf("unexpected dump %#v", w)
	}
}

func TestList_Bounds(t *testing.T) {
	ctx := context.Background()
	s := dsl.List[string](dsl.String()).Min(1).Max(2)
	if _, err := s.Coerce(ctx, []any{}); !camara.HasCode(err, camara.CodeTooShort) {
		t.Fatalf("expected too_short, got %v", err)
	}
	if _, err := s.Coerce(ctx, []any{"a", "b", "c"}); !camara.HasCode(err, camara.CodeTooLong) {
		t.Fatalf("expected too_long, got %v", err)
	}
	if _, err := s.Coerce(ctx, "a"); !camara.HasCode(err, camara.CodeInvalidType) {
		t.Fatalf("expected invalid_type, got %v", err)
	}
}

func TestMap_KeysAndPaths(t *testing.T) {
	ctx := context.Background()
	s := dsl.Map[int64](dsl.Int())

	got, err := s.Coerce(ctx, map[string]any{"b": 2, "a": "1"})
	if err != nil || got["a"] != 1 || got["b"] != 2 {
		t.Fatalf("coerce = %v, %v", got, err)
	}

	_, err = s.Coerce(ctx, map[string]any{"z": "x", "a/b": "y"})
	iss, _ := camara.AsIssues(err)
	if len(iss) != 2 || iss[0].Path != "/a~1b" || iss[1].Path != "/z" {
		t.Fatalf("issues should follow sorted keys with escaped pointers, got %+v", iss)
	}
	if iss[0].Dotted() != "a/b" {
		t.Fatalf("dotted path should unescape, got %q", iss[0].Dotted())
	}
}
