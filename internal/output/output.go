// Package output serializes reports for other tools to consume.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format names a serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q: must be \"json\" or \"yaml\"", ErrUnknownFormat, s)
	}
}

// Encode writes v to w as a single document.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}
