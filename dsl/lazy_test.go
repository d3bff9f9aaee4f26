package dsl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
)

type node struct {
	Name     string
	Children camara.Optional[[]node]
	Extra    camara.Extras
}

var nodeSchema camara.Schema[node]

func init() {
	nodeSchema = dsl.Model[node]("Node").
		Field(dsl.Req("name", dsl.String(), func(m *node) *string { return &m.Name })).
		Field(dsl.Opt("children", dsl.List[node](dsl.Lazy(func() camara.Schema[node] { return nodeSchema })), func(m *node) *camara.Optional[[]node] { return &m.Children })).
		Unknown(func(m *node) *camara.Extras { return &m.Extra }).
		MustBuild()
}

func nest(depth int) map[string]any {
	n := map[string]any{"name": "leaf"}
	for i := 0; i < depth; i++ {
		n = map[string]any{"name": "n", "children": []any{n}}
	}
	return n
}

func TestLazy_RecursiveRoundTrip(t *testing.T) {
	ctx := context.Background()
	in := nest(3)
	got, err := nodeSchema.Coerce(ctx, in)
	if err != nil {
		t.Fatalf("coerce: %v", err)
	}
	kids, ok := got.Children.Get()
	if !ok || len(kids) != 1 {
		t.Fatalf("unexpected children %+v", got.Children)
	}
	w, err := nodeSchema.Dump(ctx, got)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if diff := cmp.Diff(any(in), w); diff != "" {
		t.Fatalf("(-in +dump):\n%s", diff)
	}
}

func TestLazy_DepthGuard(t *testing.T) {
	ctx := camara.WithCoerceOpt(context.Background(), camara.CoerceOpt{MaxDepth: 4})
	if _, err := nodeSchema.Coerce(ctx, nest(4)); err != nil {
		t.Fatalf("depth 4 should pass: %v", err)
	}
	_, err := nodeSchema.Coerce(ctx, nest(5))
	iss, _ := camara.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != camara.CodeTooDeep {
		t.Fatalf("expected too_deep, got %+v", iss)
	}
	if iss[0].Path != "/children/0/children/0/children/0/children/0/children/0" {
		t.Fatalf("unexpected path %s", iss[0].Path)
	}
}

func TestLazy_JSONSchemaTerminates(t *testing.T) {
	js, err := nodeSchema.JSONSchema()
	if err != nil {
		t.Fatal(err)
	}
	if js.Properties["children"].Items == nil {
		t.Fatalf("unexpected schema %+v", js)
	}
}

func TestRef_Registry(t *testing.T) {
	ctx := context.Background()
	reg := camara.NewRegistry()
	camara.RegisterSchema(reg, "Node", func() camara.Schema[node] {
		return dsl.Model[node]("Node").
			Field(dsl.Req("name", dsl.String(), func(m *node) *string { return &m.Name })).
			Field(dsl.Opt("children", dsl.List[node](dsl.Ref[node](reg, "Node")), func(m *node) *camara.Optional[[]node] { return &m.Children })).
			Unknown(func(m *node) *camara.Extras { return &m.Extra }).
			MustBuild()
	})

	s := camara.MustSchema[node](reg, "Node")
	if _, err := s.Coerce(ctx, nest(2)); err != nil {
		t.Fatalf("coerce: %v", err)
	}
	js, _ := s.JSONSchema()
	if js.Properties["children"].Items.Ref != "#/components/schemas/Node" {
		t.Fatalf("ref should not be inlined: %+v", js.Properties["children"].Items)
	}

	missing := dsl.Ref[node](reg, "Nope")
	if _, err := missing.Coerce(ctx, map[string]any{}); !errors.Is(err, camara.ErrUnknownSchema) {
		t.Fatalf("expected ErrUnknownSchema, got %v", err)
	}
}
