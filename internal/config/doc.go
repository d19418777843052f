// Package config defines the application configuration structure and
// loading logic. Configuration comes from environment variables (prefixed
// with CONTACTS_) and an optional config.yaml file, with environment
// variables taking precedence.
package config
