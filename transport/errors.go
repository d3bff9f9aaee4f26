package transport

import (
	"errors"
	"fmt"

	"github.com/camara-go/camara/models"
)

var (
	// ErrInvalidConfig is returned by NewClient for unusable configuration.
	ErrInvalidConfig = errors.New("transport: invalid configuration")

	// ErrInvalidResponse wraps response bodies that do not coerce into the
	// expected model. The coercion Issues stay reachable through errors.As.
	ErrInvalidResponse = errors.New("transport: invalid response")
)

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	// Info is the coerced error body. When the body is not an ErrorInfo,
	// Status mirrors StatusCode and Message holds the raw body.
	Info models.ErrorInfo
}

func (e *APIError) Error() string {
	if e.Info.Code != "" {
		return fmt.Sprintf("transport: %d %s: %s", e.StatusCode, e.Info.Code, e.Info.Message)
	}
	return fmt.Sprintf("transport: %d: %s", e.StatusCode, e.Info.Message)
}
