// Package camara is the typed wire coercion engine behind the CAMARA client
// SDK. It converts decoded JSON trees (maps, slices, strings, json.Number,
// booleans, nil) into strongly typed records and dumps them back.
//
// The root package provides:
//
// - The Schema contract (Coerce/Dump/JSONSchema) shared by every coercer
// - A stable error model via Issues (JSON Pointer path, code, message)
// - Optional[T] and Extras, the record slots for optional, nullable and
//   unrecognized fields
// - A Registry that builds each named schema once and shares it read-only
// - JSON entry points (CoerceJSON, DumpJSON) with duplicate-key and depth
//   enforcement
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the DSL under dsl/, codecs under codec/, CAMARA shapes under models/
//   and the CLI under cmd/camara.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := camara.MustSchema[models.SinkCredential](camara.DefaultRegistry, "SinkCredential")
//	cred, err := camara.CoerceJSON(ctx, s, data)
//	if iss, ok := camara.AsIssues(err); ok {
//		for _, it := range iss {
//			log.Printf("%s: %s", it.Dotted(), it.Message)
//		}
//	}
//	body, err := camara.DumpJSON(ctx, s, cred.WithCredentialType(models.CredentialTypeAccessToken))
package camara
