package codec

import (
	"context"
	"testing"

	"github.com/google/uuid"

	camara "github.com/camara-go/camara"
)

func TestUUID_Codec(t *testing.T) {
	c := UUID()
	ctx := context.Background()

	id, err := c.Decode(ctx, "3FA85F64-5717-4562-B3FC-2C963F66AFA6")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if id != uuid.MustParse("3fa85f64-5717-4562-b3fc-2c963f66afa6") {
		t.Fatalf("unexpected uuid: %v", id)
	}
	s, err := c.Encode(ctx, id)
	if err != nil || s != "3fa85f64-5717-4562-b3fc-2c963f66afa6" {
		t.Fatalf("encode = %q, %v", s, err)
	}
}

func TestUUID_Codec_Invalid(t *testing.T) {
	_, err := UUID().Decode(context.Background(), "not-a-uuid")
	if !camara.HasCode(err, camara.CodeInvalidFormat) {
		t.Fatalf("expected invalid_format, got %v", err)
	}
}
