package codec

import (
	"context"
	"testing"
	"time"

	camara "github.com/camara-go/camara"
)

func TestTimeRFC3339_Codec_Basic(t *testing.T) {
	c := TimeRFC3339()
	ctx := context.Background()

	in := "2025-01-01T00:00:00Z"
	got, err := c.Decode(ctx, in)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !got.Time.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}

	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != in {
		t.Fatalf("roundtrip mismatch: %s != %s", out, in)
	}
}

func TestTimeRFC3339_PreservesOffset(t *testing.T) {
	c := TimeRFC3339()
	ctx := context.Background()

	for _, in := range []string{
		"2024-05-01T12:30:00+09:00",
		"2024-05-01T12:30:00.25-03:30",
		"2024-05-01T12:30:00.123456789Z",
		"2024-01-01T00:00:00+00:00",
		"2024-01-01T00:00:00.000Z",
	} {
		tm, err := c.Decode(ctx, in)
		if err != nil {
			t.Fatalf("decode %q: %v", in, err)
		}
		out, err := c.Encode(ctx, tm)
		if err != nil {
			t.Fatalf("encode %q: %v", in, err)
		}
		if out != in {
			t.Fatalf("offset not preserved: %q -> %q", in, out)
		}
	}
}

func TestTimeRFC3339_LowerCaseDesignators(t *testing.T) {
	c := TimeRFC3339()
	ctx := context.Background()
	tm, err := c.Decode(ctx, "2024-01-01t00:00:00z")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out, _ := c.Encode(ctx, tm); out != "2024-01-01T00:00:00Z" {
		t.Fatalf("unexpected encoding %q", out)
	}
}

func TestTimeRFC3339_InvalidFormat(t *testing.T) {
	_, err := TimeRFC3339().Decode(context.Background(), "yesterday")
	iss, ok := camara.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	if iss[0].Code != camara.CodeInvalidFormat || iss[0].Params["format"] != "date-time" {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
	if iss[0].Cause == nil {
		t.Fatalf("expected the parse error as cause")
	}
}

func TestTimeRFC3339_InOutSchemas(t *testing.T) {
	c := TimeRFC3339()
	ctx := context.Background()
	if _, err := c.In().Coerce(ctx, 42); !camara.HasCode(err, camara.CodeInvalidType) {
		t.Fatalf("In() should reject non-strings, got %v", err)
	}
	s, err := c.Out().JSONSchema()
	if err != nil || s.Format != "date-time" {
		t.Fatalf("unexpected json schema: %+v err=%v", s, err)
	}
}
