// Package store defines the persistence port interfaces and the sentinel
// errors their implementations return. Handlers and services depend on
// these interfaces; the MongoDB implementation lives in
// internal/platform/mongodb.
package store
