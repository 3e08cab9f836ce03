// Package main hosts the recipebox CLI entrypoint and command graph.
//
// The Cobra-based command tree maps terminal invocations onto recipe store
// operations: adding, listing, showing, editing, and deleting recipes, whole
// collection save and load, YAML or JSON exchange, and configuration
// scaffolding. It centralizes configuration resolution, cookbook locking,
// and structured logging setup so subcommands only deal with presentation.
//
// Keep this package lean: store semantics live in internal/recipe and input
// parsing in internal/recipeform; commands here only wire and render.
package main
