package workflow

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrSchemaMismatch is wrapped by every DecodeError caused by a value of the
// wrong shape or an unknown key.
var ErrSchemaMismatch = errors.New("schema mismatch")

// DecodeError reports the first problem found while decoding a document, with
// the dotted path of the offending field (e.g. "jobs.build.steps[1].with").
type DecodeError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *DecodeError) Error() string {
	path := e.Path
	if path == "" {
		path = "document"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d, column %d): %v", path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Parse decodes a document produced by Marshal back into a Workflow. On
// failure the returned Workflow is the zero value and the error is a
// *DecodeError, or a YAML syntax error.
func Parse(data []byte) (Workflow, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Workflow{}, fmt.Errorf("parsing YAML: %w", err)
	}
	return fromDocument(&doc)
}

// Decode reads a single document from r and decodes it like Parse.
func Decode(r io.Reader) (Workflow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Workflow{}, fmt.Errorf("reading workflow: %w", err)
	}
	return Parse(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
}

func fromDocument(doc *yaml.Node) (Workflow, error) {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Workflow{}, &DecodeError{Err: fmt.Errorf("%w: empty document", ErrSchemaMismatch)}
	}

	var w Workflow
	if err := w.UnmarshalYAML(doc.Content[0]); err != nil {
		return Workflow{}, err
	}
	return w, nil
}

// fieldDecoder decodes one YAML node into a destination it has captured.
type fieldDecoder func(node *yaml.Node) error

// decodeMapping walks a mapping node, dispatching each key to its decoder.
// Unknown keys are rejected.
func decodeMapping(node *yaml.Node, fields map[string]fieldDecoder) error {
	node = deref(node)
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return shapeError(node, "mapping")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], deref(node.Content[i+1])
		decode, ok := fields[key.Value]
		if !ok {
			return &DecodeError{
				Path:   key.Value,
				Line:   key.Line,
				Column: key.Column,
				Err:    fmt.Errorf("%w: unknown field", ErrSchemaMismatch),
			}
		}
		if err := decode(value); err != nil {
			return atPath(key.Value, value, err)
		}
	}
	return nil
}

func scalar[T any](dst *T) fieldDecoder {
	return func(node *yaml.Node) error {
		if node.Kind != yaml.ScalarNode {
			return shapeError(node, "scalar")
		}
		return node.Decode(dst)
	}
}

func value(dst *Value) fieldDecoder {
	return func(node *yaml.Node) error {
		return node.Decode(dst)
	}
}

// object decodes into a struct type that implements yaml.Unmarshaler.
func object[T any](dst *T) fieldDecoder {
	return func(node *yaml.Node) error {
		return any(dst).(yaml.Unmarshaler).UnmarshalYAML(node)
	}
}

// optional allocates *dst and decodes into it. A null node still allocates,
// since "key:" with no body means the section is present.
func optional[T any](dst **T) fieldDecoder {
	return func(node *yaml.Node) error {
		v := new(T)
		if err := object(v)(node); err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func sequence[T any](dst *[]T, elem func(*T) fieldDecoder) fieldDecoder {
	return func(node *yaml.Node) error {
		if isNull(node) {
			return nil
		}
		if node.Kind != yaml.SequenceNode {
			return shapeError(node, "sequence")
		}

		out := make([]T, len(node.Content))
		for i, item := range node.Content {
			item = deref(item)
			if err := elem(&out[i])(item); err != nil {
				return atPath(fmt.Sprintf("[%d]", i), item, err)
			}
		}
		*dst = out
		return nil
	}
}

func mapping[T any](dst *map[string]T, elem func(*T) fieldDecoder) fieldDecoder {
	return func(node *yaml.Node) error {
		if isNull(node) {
			return nil
		}
		if node.Kind != yaml.MappingNode {
			return shapeError(node, "mapping")
		}

		out := make(map[string]T, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, item := node.Content[i], deref(node.Content[i+1])
			var v T
			if err := elem(&v)(item); err != nil {
				return atPath(key.Value, item, err)
			}
			out[key.Value] = v
		}
		*dst = out
		return nil
	}
}

func stringList(dst *[]string) fieldDecoder {
	return sequence(dst, scalar[string])
}

func stringMap(dst *map[string]string) fieldDecoder {
	return mapping(dst, scalar[string])
}

// atPath prefixes err with one path segment, creating a DecodeError if err is
// not one already.
func atPath(segment string, node *yaml.Node, err error) error {
	if de, ok := err.(*DecodeError); ok {
		de.Path = joinPath(segment, de.Path)
		return de
	}
	return &DecodeError{Path: segment, Line: node.Line, Column: node.Column, Err: err}
}

func joinPath(parent, child string) string {
	switch {
	case child == "":
		return parent
	case strings.HasPrefix(child, "["):
		return parent + child
	default:
		return parent + "." + child
	}
}

func shapeError(node *yaml.Node, want string) error {
	return &DecodeError{
		Line:   node.Line,
		Column: node.Column,
		Err:    fmt.Errorf("%w: expected a %s, got a %s", ErrSchemaMismatch, want, kindName(node)),
	}
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "nothing"
	}
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func deref(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
