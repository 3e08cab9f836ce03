// Package recipeform converts free-form recipe input into store arguments.
//
// Front ends collect a name, a comma-separated ingredient list, a
// newline-separated instruction list, and a servings string. This package
// splits and trims those values, applies the servings fallback policy, and
// prefills drafts from stored recipes for editing. It never touches a store.
package recipeform
