// Package models declares a representative set of CAMARA API shapes
// (credentials, devices, QoD sessions, SIM swap, location areas and the
// common error envelope) on top of the dsl package.
//
// Every schema is registered by name in camara.DefaultRegistry and built on
// first lookup. Records carry their unrecognized wire keys in Extra so that
// fields added by newer API versions survive a coerce/dump round trip.
// Records are values: the With methods return modified copies.
package models
