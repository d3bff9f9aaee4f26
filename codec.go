package camara

import "context"

// Codec converts between a wire representation A and a domain value B.
// In describes the accepted wire input, Out the domain value.
type Codec[A, B any] interface {
	In() Schema[A]
	Out() Schema[B]
	Decode(ctx context.Context, a A) (B, error)
	Encode(ctx context.Context, b B) (A, error)
}
