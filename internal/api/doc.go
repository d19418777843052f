// Package api provides the HTTP handlers, request/response models, and
// error mapping for the REST endpoints. Handlers depend on the store and
// service port interfaces only; wiring happens in cmd/server.
package api
