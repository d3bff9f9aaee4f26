package transport

import (
	"context"
	"net/http"

	"github.com/camara-go/camara/models"
)

// SimSwapBasePath is the default mount point of the SIM Swap API.
const SimSwapBasePath = "/sim-swap/v1"

// SimSwap calls the SIM Swap API.
type SimSwap struct {
	c    *Client
	base string
}

// NewSimSwap returns a SIM Swap client mounted at SimSwapBasePath.
func NewSimSwap(c *Client) *SimSwap { return &SimSwap{c: c, base: SimSwapBasePath} }

// Check reports whether the line had a SIM swap within the requested period.
func (s *SimSwap) Check(ctx context.Context, req models.CreateCheckSimSwap) (models.CheckSimSwapInfo, error) {
	return Call(ctx, s.c, http.MethodPost, s.base+"/check", models.CreateCheckSimSwapSchema(), req, models.CheckSimSwapInfoSchema())
}

// Retrieve returns the latest SIM swap date of the line.
func (s *SimSwap) Retrieve(ctx context.Context, req models.CreateSimSwapDate) (models.SimSwapInfo, error) {
	return Call(ctx, s.c, http.MethodPost, s.base+"/retrieve-date", models.CreateSimSwapDateSchema(), req, models.SimSwapInfoSchema())
}
