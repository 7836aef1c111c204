package workflow

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const indent = 2

// Marshal renders w as a YAML document.
func Marshal(w Workflow) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes w to out as a YAML document.
func Encode(out io.Writer, w Workflow) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(indent)

	if err := enc.Encode(w); err != nil {
		return fmt.Errorf("encoding workflow %q: %w", w.Name, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding workflow %q: %w", w.Name, err)
	}
	return nil
}
