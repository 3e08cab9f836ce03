package recipe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names an encoding for a recipe collection.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied name (case-insensitive, "yml" accepted)
// to a Format.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported recipe format %q (want json or yaml)", value)
	}
}

// Encode writes records to w in the requested format.
func Encode(w io.Writer, records []Recipe, format Format) error {
	normalized := make([]Recipe, 0, len(records))
	for _, r := range records {
		normalized = append(normalized, r.Clone())
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = encodeJSON(normalized)
	case FormatYAML:
		data, err = yaml.Marshal(normalized)
	default:
		return fmt.Errorf("unsupported recipe format %q", format)
	}
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrFormat, format, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, format, err)
	}
	return nil
}

// Decode reads a whole collection from r. Every record must carry all five
// fields; unknown fields are ignored.
func Decode(r io.Reader, format Format) ([]Recipe, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, format, err)
	}
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported recipe format %q", format)
	}
}

// wireRecipe uses pointers so absent and null fields can be told apart from
// zero values.
type wireRecipe struct {
	ID           *uint32   `json:"id" yaml:"id"`
	Name         *string   `json:"name" yaml:"name"`
	Ingredients  *[]string `json:"ingredients" yaml:"ingredients"`
	Instructions *[]string `json:"instructions" yaml:"instructions"`
	Servings     *uint32   `json:"servings" yaml:"servings"`
}

func (w wireRecipe) toRecipe(index int) (Recipe, error) {
	var missing []string
	if w.ID == nil {
		missing = append(missing, "id")
	}
	if w.Name == nil {
		missing = append(missing, "name")
	}
	if w.Ingredients == nil {
		missing = append(missing, "ingredients")
	}
	if w.Instructions == nil {
		missing = append(missing, "instructions")
	}
	if w.Servings == nil {
		missing = append(missing, "servings")
	}
	if len(missing) > 0 {
		return Recipe{}, fmt.Errorf("%w: record %d: missing %s", ErrFormat, index, strings.Join(missing, ", "))
	}
	return Recipe{
		ID:           *w.ID,
		Name:         *w.Name,
		Ingredients:  cloneLines(*w.Ingredients),
		Instructions: cloneLines(*w.Instructions),
		Servings:     *w.Servings,
	}, nil
}

func fromWire(wire []wireRecipe) ([]Recipe, error) {
	records := make([]Recipe, 0, len(wire))
	for i, w := range wire {
		r, err := w.toRecipe(i)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func encodeJSON(records []Recipe) ([]byte, error) {
	if records == nil {
		records = []Recipe{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func decodeJSON(data []byte) ([]Recipe, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrFormat)
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array of recipes", ErrFormat)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	var wire []wireRecipe
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: parse json: %w", ErrFormat, err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after recipe array", ErrFormat)
	}
	return fromWire(wire)
}

func decodeYAML(data []byte) ([]Recipe, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %w", ErrFormat, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrFormat)
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected a YAML sequence of recipes", ErrFormat)
	}

	var wire []wireRecipe
	if err := root.Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %w", ErrFormat, err)
	}
	return fromWire(wire)
}
