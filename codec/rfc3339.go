package codec

import (
	"context"
	"time"

	camara "github.com/camara-go/camara"
	js "github.com/camara-go/camara/jsonschema"
)

// TimeRFC3339 returns a Codec that converts between RFC 3339 strings and
// camara.DateTime. Encoding reproduces the text that was decoded, so a
// timestamp read as "+00:00" or with a ".000" fraction is written back the
// same way.
func TimeRFC3339() camara.Codec[string, camara.DateTime] {
	return &rfc3339Codec{in: stringSchema{}, out: timeSchema{}}
}

type rfc3339Codec struct {
	in  camara.Schema[string]
	out camara.Schema[camara.DateTime]
}

func (c *rfc3339Codec) In() camara.Schema[string]           { return c.in }
func (c *rfc3339Codec) Out() camara.Schema[camara.DateTime] { return c.out }

func (c *rfc3339Codec) Decode(ctx context.Context, a string) (camara.DateTime, error) {
	t, err := camara.ParseDateTime(a)
	if err != nil {
		it := camara.NewIssue(camara.CodeInvalidFormat, map[string]any{"format": "date-time"})
		it.Cause = err
		return camara.DateTime{}, camara.Issues{it}
	}
	return t, nil
}

func (c *rfc3339Codec) Encode(ctx context.Context, b camara.DateTime) (string, error) {
	return b.String(), nil
}

// ---- helpers ----

type stringSchema struct{}

func (stringSchema) Coerce(ctx context.Context, v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", camara.TypeMismatch("string", v)
}
func (stringSchema) Dump(ctx context.Context, v string) (any, error) { return v, nil }
func (stringSchema) JSONSchema() (*js.Schema, error)                 { return &js.Schema{Type: "string"}, nil }

type timeSchema struct{}

func (timeSchema) Coerce(ctx context.Context, v any) (camara.DateTime, error) {
	switch t := v.(type) {
	case camara.DateTime:
		return t, nil
	case time.Time:
		return camara.NewDateTime(t), nil
	}
	return camara.DateTime{}, camara.TypeMismatch("date-time", v)
}
func (timeSchema) Dump(ctx context.Context, v camara.DateTime) (any, error) { return v.String(), nil }
func (timeSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: "date-time"}, nil
}
