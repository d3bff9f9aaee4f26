package dsl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
)

// record covers the four required/nullable combinations.
type record struct {
	ReqPlain string                  // required, non-nullable
	ReqNull  camara.Optional[string] // required, nullable
	OptPlain camara.Optional[string] // optional, non-nullable
	OptNull  camara.Optional[string] // optional, nullable
	Extra    camara.Extras
}

var recordSchema = dsl.Model[record]("Record").
	Field(dsl.Req("a", dsl.String(), func(m *record) *string { return &m.ReqPlain })).
	Field(dsl.Opt("b", dsl.String(), func(m *record) *camara.Optional[string] { return &m.ReqNull }).Required().Nullable()).
	Field(dsl.Opt("c", dsl.String(), func(m *record) *camara.Optional[string] { return &m.OptPlain })).
	Field(dsl.Opt("d", dsl.String(), func(m *record) *camara.Optional[string] { return &m.OptNull }).Nullable()).
	Unknown(func(m *record) *camara.Extras { return &m.Extra }).
	MustBuild()

func fullRecordInput() map[string]any {
	return map[string]any{"a": "x", "b": "x", "c": "x", "d": "x"}
}

func TestModel_NullableOptionalGrid(t *testing.T) {
	ctx := context.Background()

	type state int
	const (
		absent state = iota
		null
		value
	)
	cases := []struct {
		key  string
		in   state
		code string // expected issue code, "" for success
	}{
		{"a", absent, camara.CodeRequired},
		{"a", null, camara.CodeUnexpectedNull},
		{"a", value, ""},
		{"b", absent, camara.CodeRequired},
		{"b", null, ""},
		{"b", value, ""},
		{"c", absent, ""},
		{"c", null, camara.CodeUnexpectedNull},
		{"c", value, ""},
		{"d", absent, ""},
		{"d", null, ""},
		{"d", value, ""},
	}
	for _, tc := range cases {
		in := fullRecordInput()
		switch tc.in {
		case absent:
			delete(in, tc.key)
		case null:
			in[tc.key] = nil
		case value:
			in[tc.key] = "v"
		}
		got, err := recordSchema.Coerce(ctx, in)
		if tc.code != "" {
			iss, ok := camara.AsIssues(err)
			if !ok || len(iss) != 1 || iss[0].Code != tc.code || iss[0].Path != "/"+tc.key {
				t.Fatalf("%s/%d: expected %s at /%s, got %v", tc.key, tc.in, tc.code, tc.key, err)
			}
			if iss[0].Params["field"] != tc.key {
				t.Fatalf("%s/%d: issue should name the field, got %+v", tc.key, tc.in, iss[0].Params)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s/%d: unexpected error %v", tc.key, tc.in, err)
		}
		// absent and null stay distinct
		if tc.key == "d" {
			if tc.in == absent && (got.OptNull.IsSet() || got.OptNull.IsNull()) {
				t.Fatalf("absent optional must be unset")
			}
			if tc.in == null && !got.OptNull.IsNull() {
				t.Fatalf("explicit null must be recorded")
			}
		}
		w, err := recordSchema.Dump(ctx, got)
		if err != nil {
			t.Fatalf("%s/%d: dump: %v", tc.key, tc.in, err)
		}
		if diff := cmp.Diff(any(in), w); diff != "" {
			t.Fatalf("%s/%d: round trip mismatch (-in +dump):\n%s", tc.key, tc.in, diff)
		}
	}
}

func TestModel_UnknownKeysPreserved(t *testing.T) {
	ctx := context.Background()
	in := fullRecordInput()
	in["newServerField"] = map[string]any{"nested": []any{"x"}}

	got, err := recordSchema.Coerce(ctx, in)
	if err != nil {
		t.Fatalf("coerce: %v", err)
	}
	if v, ok := got.Extra.Get("newServerField"); !ok || v == nil {
		t.Fatalf("unknown key not retained: %v", got.Extra)
	}
	w, _ := recordSchema.Dump(ctx, got)
	if diff := cmp.Diff(any(in), w); diff != "" {
		t.Fatalf("extras must be re-emitted (-in +dump):\n%s", diff)
	}
}

func TestModel_DeclaredKeysWinOverExtras(t *testing.T) {
	ctx := context.Background()
	r := record{ReqPlain: "declared", ReqNull: camara.Null[string](), Extra: camara.Extras{"a": "extra", "z": 1}}
	w, err := recordSchema.Dump(ctx, r)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	want := map[string]any{"a": "declared", "b": nil, "z": 1}
	if diff := cmp.Diff(any(want), w); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestModel_DumpRejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	// required b unset
	if _, err := recordSchema.Dump(ctx, record{ReqPlain: "x"}); !camara.HasCode(err, camara.CodeRequired) {
		t.Fatalf("expected required, got %v", err)
	}
	// null in a non-nullable optional
	r := record{ReqPlain: "x", ReqNull: camara.Some("x"), OptPlain: camara.Null[string]()}
	if _, err := recordSchema.Dump(ctx, r); !camara.HasCode(err, camara.CodeUnexpectedNull) {
		t.Fatalf("expected unexpected_null, got %v", err)
	}
}

func TestModel_IssueOrderFollowsDeclaration(t *testing.T) {
	_, err := recordSchema.Coerce(context.Background(), map[string]any{"d": 1, "c": nil})
	iss, _ := camara.AsIssues(err)
	want := []string{"/a", "/b", "/c", "/d"}
	if len(iss) != len(want) {
		t.Fatalf("unexpected issues %+v", iss)
	}
	for i, p := range want {
		if iss[i].Path != p {
			t.Fatalf("issue %d at %s, want %s", i, iss[i].Path, p)
		}
	}

	_, err = recordSchema.Coerce(camara.WithFailFast(context.Background(), true), map[string]any{})
	iss, _ = camara.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/a" {
		t.Fatalf("fail-fast should stop at the first field, got %+v", iss)
	}
}

type renamed struct {
	AuthenticationID string
	Extra            camara.Extras
}

func TestModel_WireKeyRename(t *testing.T) {
	ctx := context.Background()
	s := dsl.Model[renamed]("Renamed").
		Field(dsl.Req("authenticationId", dsl.String(), func(m *renamed) *string { return &m.AuthenticationID }).As("AuthenticationID")).
		UnknownStrict().
		MustBuild()

	got, err := s.Coerce(ctx, map[string]any{"authenticationId": "abc"})
	if err != nil || got.AuthenticationID != "abc" {
		t.Fatalf("coerce = %+v, %v", got, err)
	}
	w, _ := s.Dump(ctx, got)
	if diff := cmp.Diff(any(map[string]any{"authenticationId": "abc"}), w); diff != "" {
		t.Fatalf("rename not re-applied:\n%s", diff)
	}

	_, err = s.Coerce(ctx, map[string]any{})
	iss, _ := camara.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/authenticationId" || iss[0].Params["field"] != "AuthenticationID" {
		t.Fatalf("unexpected issue %+v", iss)
	}

	_, err = s.Coerce(ctx, map[string]any{"authenticationId": "abc", "AuthenticationID": "abc"})
	if !camara.HasCode(err, camara.CodeUnknownKey) {
		t.Fatalf("strict model must reject the local name on the wire, got %v", err)
	}

	js, _ := s.JSONSchema()
	if js.Properties["authenticationId"].Title != "AuthenticationID" || js.AdditionalProperties != false {
		t.Fatalf("unexpected json schema %+v", js)
	}
}

type span struct {
	From, To int64
}

func TestModel_StripAndRefine(t *testing.T) {
	ctx := context.Background()
	s := dsl.Model[span]("Span").
		Field(dsl.Req("from", dsl.Int(), func(m *span) *int64 { return &m.From })).
		Field(dsl.Req("to", dsl.Int(), func(m *span) *int64 { return &m.To })).
		UnknownStrip().
		Refine("from<=to", func(ctx context.Context, m span) error {
			if m.From > m.To {
				return errors.New("from must not exceed to")
			}
			return nil
		}).
		MustBuild()

	got, err := s.Coerce(ctx, map[string]any{"from": 1, "to": 2, "junk": true})
	if err != nil || got != (span{From: 1, To: 2}) {
		t.Fatalf("coerce = %+v, %v", got, err)
	}
	w, _ := s.Dump(ctx, got)
	if diff := cmp.Diff(any(map[string]any{"from": int64(1), "to": int64(2)}), w); diff != "" {
		t.Fatalf("stripped keys must not come back:\n%s", diff)
	}

	_, err = s.Coerce(ctx, map[string]any{"from": 3, "to": 2})
	iss, _ := camara.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != camara.CodeCustom || iss[0].Hint != "from<=to" {
		t.Fatalf("unexpected refine issue %+v", iss)
	}
}

func TestModel_BuildErrors(t *testing.T) {
	_, err := dsl.Model[span]("Span").
		Field(dsl.Req("from", dsl.Int(), func(m *span) *int64 { return &m.From })).
		Build()
	if err == nil {
		t.Fatalf("passthrough without an Extras slot must fail to build")
	}

	_, err = dsl.Model[span]("Span").
		Field(dsl.Req("from", dsl.Int(), func(m *span) *int64 { return &m.From }).Nullable()).
		UnknownStrip().
		Build()
	if err == nil {
		t.Fatalf("nullable plain field must fail to build")
	}

	_, err = dsl.Model[span]("Span").
		Field(dsl.Req("from", dsl.Int(), func(m *span) *int64 { return &m.From })).
		Field(dsl.Req("from", dsl.Int(), func(m *span) *int64 { return &m.To })).
		UnknownStrip().
		Build()
	if err == nil {
		t.Fatalf("duplicate keys must fail to build")
	}
}

func TestModel_NotAnObject(t *testing.T) {
	_, err := recordSchema.Coerce(context.Background(), []any{})
	iss, _ := camara.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != camara.CodeInvalidType || iss[0].Path != "/" {
		t.Fatalf("unexpected issues %+v", iss)
	}
}
