package camara

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	js "github.com/camara-go/camara/jsonschema"
)

// ErrUnknownSchema is returned when a registry has no entry for a name.
var ErrUnknownSchema = errors.New("camara: unknown schema")

// Registry maps schema names to schemas that are built once, on first lookup,
// and are read-only afterwards. It is safe for concurrent use.
//
// Recursive schemas must not look themselves up while being built; use
// dsl.Ref or dsl.Lazy for self references instead.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
}

type registryEntry struct {
	once   sync.Once
	build  func() (any, Schema[any])
	typed  any
	erased Schema[any]
	err    error
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{entries: map[string]*registryEntry{}} }

// DefaultRegistry is the process-wide registry used by the models package.
var DefaultRegistry = NewRegistry()

// RegisterSchema stores a schema builder under name. The builder runs at most
// once, on the first lookup. Registering the same name twice panics. A
// builder that panics makes every lookup of name fail with that panic.
func RegisterSchema[T any](r *Registry, name string, build func() Schema[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[name]; dup {
		panic(fmt.Sprintf("camara: schema %q registered twice", name))
	}
	r.entries[name] = &registryEntry{build: func() (any, Schema[any]) {
		s := build()
		return s, Erase(s)
	}}
}

// LookupSchema returns the typed schema registered under name.
func LookupSchema[T any](r *Registry, name string) (Schema[T], error) {
	e, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	s, ok := e.typed.(Schema[T])
	if !ok {
		return nil, fmt.Errorf("camara: schema %q has type %T", name, e.typed)
	}
	return s, nil
}

// MustSchema is like LookupSchema but panics on error.
func MustSchema[T any](r *Registry, name string) Schema[T] {
	s, err := LookupSchema[T](r, name)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the type-erased view of the schema registered under name.
func (r *Registry) Lookup(name string) (Schema[any], error) {
	e, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	return e.erased, nil
}

// Names lists registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) resolve(name string) (*registryEntry, error) {
	r.mu.Lock()
	e, ok := r.entries[name]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}
	// Built outside the registry lock so that builders may register or look
	// up other entries.
	e.once.Do(func() {
		defer func() {
			if p := recover(); p != nil {
				e.err = fmt.Errorf("camara: building schema %q: %v", name, p)
			}
		}()
		e.typed, e.erased = e.build()
	})
	if e.err != nil {
		return nil, e.err
	}
	return e, nil
}

// Erase adapts Schema[T] to Schema[any]. Dump accepts only values of type T.
func Erase[T any](s Schema[T]) Schema[any] {
	if ea, ok := any(s).(Schema[any]); ok {
		return ea
	}
	return erasedSchema[T]{inner: s}
}

type erasedSchema[T any] struct{ inner Schema[T] }

func (e erasedSchema[T]) Coerce(ctx context.Context, v any) (any, error) {
	t, err := e.inner.Coerce(ctx, v)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (e erasedSchema[T]) Dump(ctx context.Context, v any) (any, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return nil, Fail(CodeInvalidType, map[string]any{"expected": fmt.Sprintf("%T", zero), "got": fmt.Sprintf("%T", v)})
	}
	return e.inner.Dump(ctx, t)
}

func (e erasedSchema[T]) JSONSchema() (*js.Schema, error) { return e.inner.JSONSchema() }
