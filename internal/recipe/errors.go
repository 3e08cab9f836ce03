package recipe

import "errors"

var (
	// ErrIO marks failures reading or writing a recipe file.
	ErrIO = errors.New("recipe file i/o failed")
	// ErrFormat marks content that is not a well-formed recipe collection.
	ErrFormat = errors.New("invalid recipe data")
)

// ErrorKind classifies err as "io", "format", or "unknown".
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFormat):
		return "format"
	case errors.Is(err, ErrIO):
		return "io"
	default:
		return "unknown"
	}
}
