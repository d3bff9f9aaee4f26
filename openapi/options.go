package openapi

import (
	"fmt"

	camara "github.com/camara-go/camara"
)

// UnknownBehavior configures how keys not declared in an object schema are
// treated when additionalProperties does not say otherwise.
type UnknownBehavior int

const (
	// UnknownPreserve keeps undeclared keys in the coerced map.
	UnknownPreserve UnknownBehavior = iota
	UnknownPrune
	UnknownStrict
)

func (u UnknownBehavior) policy() camara.UnknownPolicy {
	switch u {
	case UnknownPrune:
		return camara.UnknownStrip
	case UnknownStrict:
		return camara.UnknownStrict
	default:
		return camara.UnknownPassthrough
	}
}

// Options controls import behavior.
type Options struct {
	Unknown UnknownBehavior
	// LenientEnums makes every imported enum accept values outside its
	// declared members.
	LenientEnums bool
}

// Diag carries non-fatal warnings produced during import.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }
