package camara_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
)

func TestDecodeJSON_PreservesNumbers(t *testing.T) {
	v, err := camara.DecodeJSON([]byte(`{"big": 9007199254740993, "f": 1.5, "list": [], "n": null}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m := v.(map[string]any)
	if m["big"] != json.Number("9007199254740993") {
		t.Fatalf("integer precision lost: %#v", m["big"])
	}
	if l, ok := m["list"].([]any); !ok || l == nil {
		t.Fatalf("empty arrays decode to []any{}: %#v", m["list"])
	}
	if n, ok := m["n"]; !ok || n != nil {
		t.Fatalf("null must be kept as a present nil")
	}

	s := dsl.Int()
	got, err := s.Coerce(context.Background(), m["big"])
	if err != nil || got != 9007199254740993 {
		t.Fatalf("coerce big = %d, %v", got, err)
	}
}

func TestDecodeJSON_Errors(t *testing.T) {
	cases := map[string]string{
		`{"a":`:         camara.CodeParseError,
		`{"a":1} {}`:    camara.CodeParseError,
		`{"a":1,"a":2}`: camara.CodeDuplicateKey,
	}
	for in, code := range cases {
		_, err := camara.DecodeJSON([]byte(in), camara.JSONOpt{Strictness: camara.Strictness{OnDuplicateKey: camara.Error}})
		if !camara.HasCode(err, code) {
			t.Fatalf("DecodeJSON(%q): expected %s, got %v", in, code, err)
		}
	}
	// duplicates are tolerated by default; last one wins
	v, err := camara.DecodeJSON([]byte(`{"a":1,"a":2}`))
	if err != nil || v.(map[string]any)["a"] != json.Number("2") {
		t.Fatalf("default duplicate handling: %v %v", v, err)
	}
}

func TestDecodeJSON_Limits(t *testing.T) {
	if _, err := camara.DecodeJSON([]byte(`[[[1]]]`), camara.JSONOpt{MaxDepth: 2}); !camara.HasCode(err, camara.CodeParseError) {
		t.Fatalf("expected depth error, got %v", err)
	}
	if _, err := camara.DecodeJSON([]byte(`"0123456789"`), camara.JSONOpt{MaxBytes: 4}); !camara.HasCode(err, camara.CodeTruncated) {
		t.Fatalf("expected truncated, got %v", err)
	}
	if _, err := camara.DecodeJSONReader(strings.NewReader(`"0123456789"`), camara.JSONOpt{MaxBytes: 4}); !camara.HasCode(err, camara.CodeTruncated) {
		t.Fatalf("expected truncated from reader, got %v", err)
	}
}

type pair struct {
	Name  string
	Count camara.Optional[int64]
	Extra camara.Extras
}

var pairSchema = dsl.Model[pair]("Pair").
	Field(dsl.Req("name", dsl.String(), func(m *pair) *string { return &m.Name })).
	Field(dsl.Opt("count", dsl.Int(), func(m *pair) *camara.Optional[int64] { return &m.Count }).Nullable()).
	Unknown(func(m *pair) *camara.Extras { return &m.Extra }).
	MustBuild()

func TestCoerceJSON_DumpJSON_Idempotent(t *testing.T) {
	ctx := context.Background()
	in := []byte(`{"name":"x","count":3,"extra":{"k":[1,2]}}`)

	first, err := camara.CoerceJSON(ctx, pairSchema, in)
	if err != nil {
		t.Fatalf("coerce: %v", err)
	}
	out, err := camara.DumpJSON(ctx, pairSchema, first)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	second, err := camara.CoerceJSON(ctx, pairSchema, out)
	if err != nil {
		t.Fatalf("re-coerce: %v", err)
	}
	// extras hold raw wire values; compare their JSON forms
	if diff := cmp.Diff(first.Name, second.Name); diff != "" {
		t.Fatal(diff)
	}
	if first.Count != second.Count {
		t.Fatalf("count changed: %+v vs %+v", first.Count, second.Count)
	}
	var a, b any
	_ = json.Unmarshal(in, &a)
	_ = json.Unmarshal(out, &b)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("round trip mismatch (-in +out):\n%s", diff)
	}
}

func TestCoerceJSON_OptionsReachCoercers(t *testing.T) {
	ctx := context.Background()
	_, err := camara.CoerceJSON(ctx, pairSchema, []byte(`{"name":"x","count":"3"}`), camara.JSONOpt{Coerce: camara.CoerceOpt{ExactTypes: true}})
	iss, _ := camara.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/count" || iss[0].Code != camara.CodeInvalidType {
		t.Fatalf("unexpected issues %+v", iss)
	}
	if _, err := camara.CoerceJSON(ctx, pairSchema, []byte(`not json`)); !camara.HasCode(err, camara.CodeParseError) {
		t.Fatalf("expected parse_error, got %v", err)
	}
	var nilSchema camara.Schema[pair]
	if _, err := camara.CoerceJSON(ctx, nilSchema, []byte(`{}`)); err != camara.ErrNilSchema {
		t.Fatalf("expected ErrNilSchema, got %v", err)
	}
}

func TestDuplicateKeys(t *testing.T) {
	iss, err := camara.DuplicateKeys([]byte(`{"a":1,"a":2,"o":{"b":true,"b":false}}`))
	if err != nil {
		t.Fatalf("DuplicateKeys: %v", err)
	}
	var paths []string
	for _, it := range iss {
		if it.Code != camara.CodeDuplicateKey {
			t.Fatalf("unexpected code %s", it.Code)
		}
		paths = append(paths, it.Path)
	}
	if diff := cmp.Diff([]string{"/a", "/o/b"}, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	if iss, err := camara.DuplicateKeys([]byte(`{"a":1}`)); err != nil || len(iss) != 0 {
		t.Fatalf("clean document: %v %v", iss, err)
	}
	if _, err := camara.DuplicateKeys([]byte(`{"a":`)); !camara.HasCode(err, camara.CodeParseError) {
		t.Fatalf("expected parse_error, got %v", err)
	}
}
