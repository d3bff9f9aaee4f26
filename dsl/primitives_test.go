package dsl_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
)

func TestInt_Narrowing(t *testing.T) {
	ctx := context.Background()
	s := dsl.Int()

	for _, in := range []any{int64(42), 42, float64(42), json.Number("42"), "42", json.Number("42.0")} {
		got, err := s.Coerce(ctx, in)
		if err != nil || got != 42 {
			t.Fatalf("Coerce(%#v) = %d, %v", in, got, err)
		}
	}
	for _, in := range []any{4.5, json.Number("4.5"), "4.5", "abc", true, nil, []any{}} {
		if _, err := s.Coerce(ctx, in); !camara.HasCode(err, camara.CodeInvalidType) {
			t.Fatalf("Coerce(%#v) expected invalid_type, got %v", in, err)
		}
	}
}

func TestInt_ExactTypesRejectsStrings(t *testing.T) {
	ctx := camara.WithCoerceOpt(context.Background(), camara.CoerceOpt{ExactTypes: true})
	if _, err := dsl.Int().Coerce(ctx, "42"); !camara.HasCode(err, camara.CodeInvalidType) {
		t.Fatalf("expected invalid_type in exact mode, got %v", err)
	}
	if v, err := dsl.Int().Coerce(ctx, json.Number("42")); err != nil || v != 42 {
		t.Fatalf("json numbers stay accepted in exact mode: %d %v", v, err)
	}
	if _, err := dsl.Bool().Coerce(ctx, "true"); !camara.HasCode(err, camara.CodeInvalidType) {
		t.Fatalf("expected invalid_type for bool string in exact mode, got %v", err)
	}
}

func TestInt_Bounds(t *testing.T) {
	ctx := context.Background()
	s := dsl.Int().Min(0).Max(65535)
	if _, err := s.Coerce(ctx, -1); !camara.HasCode(err, camara.CodeTooSmall) {
		t.Fatalf("expected too_small, got %v", err)
	}
	if _, err := s.Coerce(ctx, 65536); !camara.HasCode(err, camara.CodeTooBig) {
		t.Fatalf("expected too_big, got %v", err)
	}
	js, _ := s.JSONSchema()
	if js.Type != "integer" || js.Minimum == nil || *js.Maximum != 65535 {
		t.Fatalf("unexpected json schema: %+v", js)
	}
}

func TestFloat_AcceptsEveryNumber(t *testing.T) {
	ctx := context.Background()
	for _, in := range []any{1.5, 3, int64(3), json.Number("1e3"), "2.25"} {
		if _, err := dsl.Float().Coerce(ctx, in); err != nil {
			t.Fatalf("Coerce(%#v): %v", in, err)
		}
	}
	if _, err := dsl.Float().Max(90).Coerce(ctx, 90.5); !camara.HasCode(err, camara.CodeTooBig) {
		t.Fatalf("expected too_big, got %v", err)
	}
}

func TestString_NoNarrowingAndConstraints(t *testing.T) {
	ctx := context.Background()
	if _, err := dsl.String().Coerce(ctx, 12); !camara.HasCode(err, camara.CodeInvalidType) {
		t.Fatalf("numbers must not become strings, got %v", err)
	}
	phone := dsl.String().Pattern(`^\+[1-9][0-9]{4,14}$`)
	if _, err := phone.Coerce(ctx, "+123456789"); err != nil {
		t.Fatalf("valid phone rejected: %v", err)
	}
	if _, err := phone.Coerce(ctx, "0123"); !camara.HasCode(err, camara.CodePattern) {
		t.Fatalf("expected pattern, got %v", err)
	}
	s := dsl.String().MinLen(2).MaxLen(3)
	if _, err := s.Coerce(ctx, "a"); !camara.HasCode(err, camara.CodeTooShort) {
		t.Fatalf("expected too_short, got %v", err)
	}
	if _, err := s.Coerce(ctx, "日本語"); err != nil {
		t.Fatalf("length counts runes: %v", err)
	}
	if _, err := s.Coerce(ctx, "abcd"); !camara.HasCode(err, camara.CodeTooLong) {
		t.Fatalf("expected too_long, got %v", err)
	}
}

func TestString_ConstraintsDoNotLeak(t *testing.T) {
	base := dsl.String()
	_ = base.MaxLen(1)
	if _, err := base.Coerce(context.Background(), "long enough"); err != nil {
		t.Fatalf("constraint leaked into base schema: %v", err)
	}
}

type phoneNumber string

func TestStringAs(t *testing.T) {
	ctx := context.Background()
	s := dsl.StringAs[phoneNumber](dsl.String().MinLen(1))
	v, err := s.Coerce(ctx, "+34600000000")
	if err != nil || v != phoneNumber("+34600000000") {
		t.Fatalf("coerce = %q, %v", v, err)
	}
	w, _ := s.Dump(ctx, v)
	if w != "+34600000000" {
		t.Fatalf("dump should be a plain string, got %#v", w)
	}
}

func TestBool(t *testing.T) {
	ctx := context.Background()
	if v, err := dsl.Bool().Coerce(ctx, "false"); err != nil || v {
		t.Fatalf("coerce = %v, %v", v, err)
	}
	if _, err := dsl.Bool().Coerce(ctx, "yes"); !camara.HasCode(err, camara.CodeInvalidType) {
		t.Fatalf("expected invalid_type, got %v", err)
	}
}

func TestDateTime_OffsetPreserved(t *testing.T) {
	ctx := context.Background()
	s := dsl.DateTime()

	in := "2024-03-10T08:15:00+05:30"
	tm, err := s.Coerce(ctx, in)
	if err != nil {
		t.Fatalf("coerce: %v", err)
	}
	if _, off := tm.Zone(); off != 5*3600+30*60 {
		t.Fatalf("unexpected offset %d", off)
	}

	for _, in := range []string{
		"2024-03-10T08:15:00+05:30",
		"2024-01-01T00:00:00+00:00",
		"2024-01-01T00:00:00.000Z",
		"2024-01-01T00:00:00.10-01:00",
		"2024-01-01T00:00:00Z",
	} {
		tm, err := s.Coerce(ctx, in)
		if err != nil {
			t.Fatalf("coerce %q: %v", in, err)
		}
		w, err := s.Dump(ctx, tm)
		if err != nil || w != in {
			t.Fatalf("dump %q = %#v, %v", in, w, err)
		}
	}

	lower, err := s.Coerce(ctx, "2024-01-01t00:00:00z")
	if err != nil {
		t.Fatalf("lower-case designators: %v", err)
	}
	if w, _ := s.Dump(ctx, lower); w != "2024-01-01T00:00:00Z" {
		t.Fatalf("dump = %#v", w)
	}

	if _, err := s.Coerce(ctx, "10/03/2024"); !camara.HasCode(err, camara.CodeInvalidFormat) {
		t.Fatalf("expected invalid_format, got %v", err)
	}
	if _, err := s.Coerce(ctx, 12); !camara.HasCode(err, camara.CodeInvalidType) {
		t.Fatalf("expected invalid_type, got %v", err)
	}
	// typed values pass through
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got, err := s.Coerce(ctx, now); err != nil || !got.Time.Equal(now) {
		t.Fatalf("passthrough = %v, %v", got, err)
	}
	if got, err := s.Coerce(ctx, camara.NewDateTime(now)); err != nil || !got.Time.Equal(now) {
		t.Fatalf("passthrough = %v, %v", got, err)
	}
}

func TestUUID(t *testing.T) {
	ctx := context.Background()
	id, err := dsl.UUID().Coerce(ctx, "123e4567-e89b-12d3-a456-426614174000")
	if err != nil {
		t.Fatalf("coerce: %v", err)
	}
	if id != uuid.MustParse("123e4567-e89b-12d3-a456-426614174000") {
		t.Fatalf("unexpected id %v", id)
	}
	if _, err := dsl.UUID().Coerce(ctx, "123"); !camara.HasCode(err, camara.CodeInvalidFormat) {
		t.Fatalf("expected invalid_format, got %v", err)
	}
	js, _ := dsl.UUID().JSONSchema()
	if js.Format != "uuid" {
		t.Fatalf("unexpected format %q", js.Format)
	}
}

func TestTypeMismatchParams(t *testing.T) {
	_, err := dsl.Int().Coerce(context.Background(), "x")
	iss, _ := camara.AsIssues(err)
	if len(iss) != 1 || iss[0].Params["expected"] != "integer" || iss[0].Params["got"] != "string" {
		t.Fatalf("unexpected issues: %+v", iss)
	}
	if iss[0].Message != "expected integer, got string" {
		t.Fatalf("unexpected message: %q", iss[0].Message)
	}
}
