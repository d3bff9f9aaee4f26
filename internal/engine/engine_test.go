package engine

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func decode(t *testing.T, in string, lim Limits) (any, error) {
	t.Helper()
	return DecodeAnyFromSource(Enforce(NewBytes([]byte(in)), lim))
}

func TestDecodeAny(t *testing.T) {
	v, err := decode(t, `{"a":[1,"x",true,null],"b":{"c":2.5}}`, Limits{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]any{
		"a": []any{json.Number("1"), "x", true, nil},
		"b": map[string]any{"c": json.Number("2.5")},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeAny_TrailingData(t *testing.T) {
	_, err := decode(t, `{} []`, Limits{})
	if !errors.Is(err, ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData, got %v", err)
	}
}

func TestEnforce_Duplicates(t *testing.T) {
	var seen []Finding
	v, err := decode(t, `{"a":1,"l":[{"k":1,"k":2}],"a":3}`, Limits{
		Duplicates: Report,
		Report:     func(f Finding) { seen = append(seen, f) },
	})
	if err != nil {
		t.Fatalf("warn mode must not fail: %v", err)
	}
	if got := v.(map[string]any)["a"]; got != json.Number("3") {
		t.Fatalf("last value wins, got %v", got)
	}
	var paths []string
	for _, f := range seen {
		paths = append(paths, f.Pointer)
	}
	if diff := cmp.Diff([]string{"/l/0/k", "/a"}, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	_, err = decode(t, `{"a":1,"a":2}`, Limits{Duplicates: Reject})
	var f *Finding
	if !errors.As(err, &f) || f.Code != "duplicate_key" || f.Pointer != "/a" {
		t.Fatalf("expected duplicate_key at /a, got %v", err)
	}
}

func TestEnforce_MaxDepth(t *testing.T) {
	if _, err := decode(t, `{"a":{"b":1}}`, Limits{MaxDepth: 2}); err != nil {
		t.Fatalf("depth 2 allowed: %v", err)
	}
	_, err := decode(t, `{"a":{"b":[1]}}`, Limits{MaxDepth: 2})
	var f *Finding
	if !errors.As(err, &f) || f.Message != "max depth exceeded" || f.Pointer != "/a/b" {
		t.Fatalf("expected depth error, got %v", err)
	}
}

func TestEnforce_FailFastStopsOnReportedDuplicate(t *testing.T) {
	var seen int
	_, err := decode(t, `{"x":[{"a":1,"a":2}]}`, Limits{
		Duplicates: Report,
		FailFast:   true,
		Report:     func(Finding) { seen++ },
	})
	var f *Finding
	if !errors.As(err, &f) || f.Pointer != "/x/0/a" {
		t.Fatalf("expected duplicate at /x/0/a, got %v", err)
	}
	if seen != 1 {
		t.Fatalf("reported %d findings", seen)
	}
}

func TestEnforce_AllowIgnoresDuplicates(t *testing.T) {
	var seen int
	v, err := decode(t, `{"a":1,"a":2}`, Limits{Report: func(Finding) { seen++ }})
	if err != nil || seen != 0 {
		t.Fatalf("allow must stay silent: %v, %d findings", err, seen)
	}
	if got := v.(map[string]any)["a"]; got != json.Number("2") {
		t.Fatalf("last value wins, got %v", got)
	}
}

// fixedSource replays tokens and reports each token's Offset as the location.
type fixedSource struct {
	toks []Token
	at   int64
}

func (s *fixedSource) NextToken() (Token, error) {
	if len(s.toks) == 0 {
		return Token{}, io.EOF
	}
	tok := s.toks[0]
	s.toks = s.toks[1:]
	s.at = tok.Offset
	return tok, nil
}

func (s *fixedSource) Location() int64 { return s.at }

func TestEnforce_MaxBytes(t *testing.T) {
	src := &fixedSource{toks: []Token{
		{Kind: KindBeginObject, Offset: 1},
		{Kind: KindKey, String: "name", Offset: 8},
		{Kind: KindString, String: "aaaaaaaaaaaaaaaa", Offset: 26},
		{Kind: KindEndObject, Offset: 27},
	}}
	_, err := DecodeAnyFromSource(Enforce(src, Limits{MaxBytes: 10}))
	var f *Finding
	if !errors.As(err, &f) || f.Code != "truncated" || f.Pointer != "/name" {
		t.Fatalf("expected truncated at /name, got %v", err)
	}
}

func TestAppendPointer(t *testing.T) {
	if got := appendPointer("/a", "b/c~d"); got != "/a/b~1c~0d" {
		t.Fatalf("got %q", got)
	}
	if got := appendPointer("", "k"); got != "/k" {
		t.Fatalf("got %q", got)
	}
	if got := rootPointer(""); got != "/" {
		t.Fatalf("got %q", got)
	}
}
