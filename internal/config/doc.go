// Package config loads, normalizes, and validates recipebox configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the RECIPEBOX_STORE environment override. The
// Config type centralizes where the cookbook lives, which storage backend
// backs it, how output is rendered, and how logs are emitted.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical backend names, and clear validation errors.
package config
