// Package dsl provides the schema DSL for camara: primitive, enum,
// container, record and union coercers, all implementing camara.Schema[T].
//
// Overview
//   - Primitives: String()/Int()/Float()/Bool()/DateTime()/UUID()/Any(), with
//     StringAs[T]/IntAs[T] projections onto named scalar types.
//   - Enum(members...): closed string sets; Lenient() passes unknown values through.
//   - List(elem)/Map(elem): order-preserving arrays and string-keyed maps.
//   - Model[M](name): statically declared record field tables, built from
//     Req (plain required field) and Opt (camara.Optional slot) declarations.
//   - Union[U](name): polymorphic values, either discriminator-based or
//     structural (first declared variant that coerces cleanly wins).
//   - Lazy/Ref: recursive schemas, resolved once, bounded by CoerceOpt.MaxDepth.
//   - Object(): dynamic map-based records for shapes known only at runtime.
//
// Entry points
//   - Model[M](name).Field(Req(...)).Field(Opt(...).Nullable()).Unknown(...).MustBuild()
//   - Union[U](name).Discriminator(key).Variant(Case[U, V](tag, s)...).MustBuild()
//   - Object().Field(key, Adapt(s)).Required().MustBuild()
//
// File layout (roles)
//   - primitives.go, numbers.go: scalar coercers and narrowing rules.
//   - enum.go: EnumSchema.
//   - list.go, map_core.go: containers.
//   - model.go: ModelBuilder/FieldSpec and the record coercer.
//   - union.go: UnionBuilder/Case and the union coercer.
//   - nullable.go, lazy.go: wrappers.
//   - adapter.go, object_builder.go, object_core.go: AnyAdapter and dynamic objects.
//   - codec_wrap.go: Codec[A,B] to Schema[B].
//
// Error model
//
// Every coercer reports issues relative to itself, rooted at "/". Containers
// rebase child issues under the key or index, so the final path names the
// failing leaf, e.g. /subscriptionDetail/device/ipv4Address/publicPort.
// Issues are ordered by field declaration order, then sorted unknown keys.
//
// Example
//
//	type PortRange struct {
//		From  int64
//		To    int64
//		Extra camara.Extras
//	}
//
//	var portRange = dsl.Model[PortRange]("PortRange").
//		Field(dsl.Req("from", dsl.Int().Min(0).Max(65535), func(m *PortRange) *int64 { return &m.From })).
//		Field(dsl.Req("to", dsl.Int().Min(0).Max(65535), func(m *PortRange) *int64 { return &m.To })).
//		Unknown(func(m *PortRange) *camara.Extras { return &m.Extra }).
//		MustBuild()
//
//	pr, err := portRange.Coerce(ctx, map[string]any{"from": 5010, "to": 5020})
package dsl
