// Package recipedb keeps a snapshot of the recipe collection in SQLite.
//
// It is an alternative to the JSON store file with the same whole-collection
// semantics: Save replaces every row inside one transaction and Load returns
// the records in their stored order. There is no incremental write path.
//
// Schema changes bump schemaVersion in schema.go. A database written by a
// different version is refused with ErrSchemaMismatch; users delete it and
// save again from the JSON file.
package recipedb
