package dsl

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	camara "github.com/camara-go/camara"
	js "github.com/camara-go/camara/jsonschema"
)

// Lazy defers building a schema until first use, which lets a schema refer
// to itself. Every descent through a lazy schema counts towards
// CoerceOpt.MaxDepth and fails with too_deep beyond it.
func Lazy[T any](build func() camara.Schema[T]) camara.Schema[T] {
	return &lazySchema[T]{build: build}
}

type lazySchema[T any] struct {
	once  sync.Once
	build func() camara.Schema[T]
	s     camara.Schema[T]
	err   error
	// exporting counts JSONSchema calls in progress; a nested call is the
	// recursive reference itself.
	exporting atomic.Int32
}

func (l *lazySchema[T]) get() (camara.Schema[T], error) {
	l.once.Do(func() {
		if l.build != nil {
			l.s = l.build()
		}
		if l.s == nil {
			l.err = camara.ErrNilSchema
		}
	})
	return l.s, l.err
}

func (l *lazySchema[T]) Coerce(ctx context.Context, v any) (T, error) {
	var zero T
	s, err := l.get()
	if err != nil {
		return zero, err
	}
	ctx, err = camara.Descend(ctx)
	if err != nil {
		return zero, err
	}
	return s.Coerce(ctx, v)
}

func (l *lazySchema[T]) Dump(ctx context.Context, v T) (any, error) {
	s, err := l.get()
	if err != nil {
		return nil, err
	}
	ctx, err = camara.Descend(ctx)
	if err != nil {
		return nil, err
	}
	return s.Dump(ctx, v)
}

func (l *lazySchema[T]) JSONSchema() (*js.Schema, error) {
	s, err := l.get()
	if err != nil {
		return nil, err
	}
	if l.exporting.Add(1) > 1 {
		l.exporting.Add(-1)
		return &js.Schema{}, nil
	}
	defer l.exporting.Add(-1)
	return s.JSONSchema()
}

// Ref resolves the schema registered under name in r on first use. Registry
// entries can refer to each other, or to themselves, through Ref.
func Ref[T any](r *camara.Registry, name string) camara.Schema[T] {
	ref := &refSchema[T]{name: name}
	ref.lazy.build = func() camara.Schema[T] {
		s, err := camara.LookupSchema[T](r, name)
		if err != nil {
			ref.err = err
			return nil
		}
		return s
	}
	return ref
}

type refSchema[T any] struct {
	lazy lazySchema[T]
	name string
	err  error
}

func (s *refSchema[T]) resolveErr() error {
	if _, err := s.lazy.get(); err != nil {
		if s.err != nil {
			return fmt.Errorf("dsl: ref %q: %w", s.name, s.err)
		}
		return err
	}
	return nil
}

func (s *refSchema[T]) Coerce(ctx context.Context, v any) (T, error) {
	if err := s.resolveErr(); err != nil {
		var zero T
		return zero, err
	}
	return s.lazy.Coerce(ctx, v)
}

func (s *refSchema[T]) Dump(ctx context.Context, v T) (any, error) {
	if err := s.resolveErr(); err != nil {
		return nil, err
	}
	return s.lazy.Dump(ctx, v)
}

// JSONSchema returns a $ref to the component instead of inlining it.
func (s *refSchema[T]) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Ref: "#/components/schemas/" + s.name}, nil
}
