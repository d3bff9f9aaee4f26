package codec

import (
	"context"

	"github.com/google/uuid"

	camara "github.com/camara-go/camara"
	js "github.com/camara-go/camara/jsonschema"
)

// UUID returns a Codec between the textual form of a UUID and uuid.UUID.
// Encoding always yields the canonical lower-case hyphenated form.
func UUID() camara.Codec[string, uuid.UUID] {
	return uuidCodec{}
}

type uuidCodec struct{}

func (uuidCodec) In() camara.Schema[string]     { return stringSchema{} }
func (uuidCodec) Out() camara.Schema[uuid.UUID] { return uuidSchema{} }

func (uuidCodec) Decode(ctx context.Context, a string) (uuid.UUID, error) {
	id, err := uuid.Parse(a)
	if err != nil {
		it := camara.NewIssue(camara.CodeInvalidFormat, map[string]any{"format": "uuid"})
		it.Cause = err
		return uuid.Nil, camara.Issues{it}
	}
	return id, nil
}

func (uuidCodec) Encode(ctx context.Context, b uuid.UUID) (string, error) { return b.String(), nil }

type uuidSchema struct{}

func (uuidSchema) Coerce(ctx context.Context, v any) (uuid.UUID, error) {
	if id, ok := v.(uuid.UUID); ok {
		return id, nil
	}
	return uuid.Nil, camara.TypeMismatch("uuid", v)
}
func (uuidSchema) Dump(ctx context.Context, v uuid.UUID) (any, error) { return v.String(), nil }
func (uuidSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: "uuid"}, nil
}
