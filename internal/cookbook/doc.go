// Package cookbook owns a recipe store for the lifetime of one session.
//
// A Cookbook pairs a single recipe.Store with the configured persistence
// backend (a JSON file or a SQLite snapshot) and an advisory file lock so
// concurrent recipebox processes do not overwrite each other. Read-only
// sessions take a shared lock; writers take an exclusive one. Callers mutate
// the store directly and call Commit to persist the whole collection.
package cookbook
