// Package store provides a SQLite-backed typed record store. It is
// the storage boundary the engine's Load and Dump serve: values go in
// through Dump (canonical to native) and come back out through Load
// (native to canonical), with the native form serialized as JSON text
// in a single records table.
//
// The store deliberately exposes no transactions or connection
// management; it exists to exercise the conversion boundary, not to
// be a database layer.
package store
