// Package recipe owns the in-memory recipe collection and its on-disk form.
//
// A Store assigns identifiers, executes add/get/update/delete against an
// ordered slice of records, and serializes the whole collection to a JSON
// array. Loading always replaces the collection; it never merges. Readers get
// deep copies so only Store methods can change stored records.
//
// The Store is single-owner and performs no locking. Callers that share one
// across goroutines or processes must add their own exclusion (the cookbook
// package holds a file lock for the CLI). Nothing in this package logs; every
// failure is returned to the caller, classified with ErrIO or ErrFormat.
package recipe
