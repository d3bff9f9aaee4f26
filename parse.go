package camara

import (
	"context"
	"errors"
	"io"

	j "github.com/goccy/go-json"

	eng "github.com/camara-go/camara/internal/engine"
)

// DecodeJSON decodes raw JSON into the wire tree consumed by Coerce: objects
// become map[string]any, arrays []any, numbers json.Number. Duplicate keys,
// depth and size are enforced according to opt.
func DecodeJSON(data []byte, opts ...JSONOpt) (any, error) {
	opt := lastJSONOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, Issues{NewIssue(CodeTruncated, map[string]any{"max": int(opt.MaxBytes)})}
	}
	src := eng.Enforce(eng.NewBytes(data), eng.Limits{
		Duplicates: duplicatePolicy(opt.Strictness.OnDuplicateKey),
		MaxDepth:   opt.MaxDepth,
		FailFast:   opt.Coerce.FailFast,
	})
	v, err := eng.DecodeAnyFromSource(src)
	if err != nil {
		return nil, toIssues(err)
	}
	return v, nil
}

// DecodeJSONReader is DecodeJSON for streams.
func DecodeJSONReader(r io.Reader, opts ...JSONOpt) (any, error) {
	opt := lastJSONOpt(opts)
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return DecodeJSON(data, opts...)
}

// CoerceJSON decodes raw JSON and coerces it with s.
func CoerceJSON[T any](ctx context.Context, s Schema[T], data []byte, opts ...JSONOpt) (T, error) {
	var zero T
	if s == nil {
		return zero, ErrNilSchema
	}
	opt := lastJSONOpt(opts)
	v, err := DecodeJSON(data, opt)
	if err != nil {
		return zero, err
	}
	if len(opts) > 0 {
		ctx = WithCoerceOpt(ctx, opt.Coerce)
	}
	return s.Coerce(ctx, v)
}

// DumpJSON dumps v with s and encodes the resulting wire tree as JSON.
// Object keys are emitted in sorted order.
func DumpJSON[T any](ctx context.Context, s Schema[T], v T) ([]byte, error) {
	if s == nil {
		return nil, ErrNilSchema
	}
	w, err := s.Dump(ctx, v)
	if err != nil {
		return nil, err
	}
	return j.Marshal(w)
}

// ---- helpers ----

func lastJSONOpt(opts []JSONOpt) JSONOpt {
	if len(opts) == 0 {
		return JSONOpt{}
	}
	return opts[len(opts)-1]
}

func duplicatePolicy(s Severity) eng.Policy {
	switch s {
	case Error:
		return eng.Reject
	case Warn:
		return eng.Report
	default:
		return eng.Allow
	}
}

func toIssues(err error) Issues {
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var f *eng.Finding
	if errors.As(err, &f) {
		return Issues{Issue{Code: f.Code, Path: f.Pointer, Message: f.Message}}
	}
	return Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
}
