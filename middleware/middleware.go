// Package middleware validates CAMARA request bodies at net/http boundaries.
//
// A handler chain typically looks like:
//
//	h := middleware.ValidateJSON(models.CreateSessionSchema(), middleware.DefaultJSONOpt())(
//		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//			req, _ := middleware.FromContext[models.CreateSession](r.Context())
//			...
//		}))
package middleware

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/models"
)

// CodeInvalidArgument is the CAMARA error code for rejected request bodies.
const CodeInvalidArgument = "INVALID_ARGUMENT"

// ctxKeyBody is a typed context key for the coerced body. Using a generic
// struct type keeps keys distinct per T.
type ctxKeyBody[T any] struct{}

// ContextWithBody attaches a coerced body to the context.
func ContextWithBody[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyBody[T]{}, v)
}

// FromContext retrieves the body stored by ValidateJSON.
func FromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyBody[T]{}).(T)
	return v, ok
}

// DefaultJSONOpt returns the recommended options for HTTP JSON boundaries:
// duplicate keys are errors and bodies are capped at 1 MiB.
func DefaultJSONOpt() camara.JSONOpt {
	return camara.JSONOpt{
		Strictness: camara.Strictness{OnDuplicateKey: camara.Error},
		MaxBytes:   1 << 20,
	}
}

// ValidateJSON coerces the request body with s. On success the value is
// stored in the request context; otherwise the client gets a 400 ErrorInfo.
// A zero opt means DefaultJSONOpt.
func ValidateJSON[T any](s camara.Schema[T], opt camara.JSONOpt) func(http.Handler) http.Handler {
	if opt == (camara.JSONOpt{}) {
		opt = DefaultJSONOpt()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := io.Reader(r.Body)
			if opt.MaxBytes > 0 {
				body = io.LimitReader(r.Body, opt.MaxBytes+1)
			}
			data, err := io.ReadAll(body)
			if err != nil {
				WriteError(w, http.StatusBadRequest, CodeInvalidArgument, err.Error())
				return
			}
			v, err := camara.CoerceJSON(r.Context(), s, data, opt)
			if err != nil {
				WriteError(w, http.StatusBadRequest, CodeInvalidArgument, describe(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithBody(r.Context(), v)))
		})
	}
}

// WriteError answers with a CAMARA ErrorInfo body.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	info := models.ErrorInfo{Status: int64(status), Code: code, Message: message}
	wire, err := models.ErrorInfoSchema().Dump(context.Background(), info)
	if err != nil {
		http.Error(w, message, status)
		return
	}
	data, err := json.Marshal(wire)
	if err != nil {
		http.Error(w, message, status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func describe(err error) string {
	iss, ok := camara.AsIssues(err)
	if !ok || len(iss) == 0 {
		return err.Error()
	}
	it := iss[0]
	msg := fmt.Sprintf("%s: %s", it.Code, it.Message)
	if p := it.Dotted(); p != "" {
		msg = p + ": " + msg
	}
	if n := len(iss) - 1; n > 0 {
		msg += fmt.Sprintf(" (and %d more)", n)
	}
	return msg
}
