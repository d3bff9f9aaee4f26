package codec

import (
	"context"

	camara "github.com/camara-go/camara"
)

// Identity returns a Codec[T,T] that performs identity transformations.
// In() and Out() are the provided schema s. Decode re-coerces through s so
// that its constraints still apply to the domain value.
func Identity[T any](s camara.Schema[T]) camara.Codec[T, T] {
	return &identityCodec[T]{s: s}
}

type identityCodec[T any] struct{ s camara.Schema[T] }

func (c *identityCodec[T]) In() camara.Schema[T]  { return c.s }
func (c *identityCodec[T]) Out() camara.Schema[T] { return c.s }

func (c *identityCodec[T]) Decode(ctx context.Context, a T) (T, error) {
	return c.s.Coerce(ctx, a)
}

func (c *identityCodec[T]) Encode(ctx context.Context, b T) (T, error) { return b, nil }
