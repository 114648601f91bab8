package enum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a definition document.
type Format string

const (
	// FormatJSON is a single JSON object.
	FormatJSON Format = "json"

	// FormatYAML is a single YAML document.
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a Format from a file extension (.json, .yaml, .yml).
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported enum definition format: %q (supported: .json, .yaml, .yml)", ext)
	}
}

// Decode parses a definition document and builds an enumeration from it.
//
// The document root must be a mapping of keys to text or numeric values, and
// the data must hold exactly one document. Validation errors are the same as
// From's; syntax errors and trailing content are returned wrapped and do not
// match any of the package's sentinel errors.
func Decode(data []byte, format Format) (*Enumeration, error) {
	var doc any

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON enum definition: %w", err)
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, errors.New("failed to parse JSON enum definition: unexpected data after top-level value")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		err := dec.Decode(&doc)
		switch {
		case errors.Is(err, io.EOF):
			// An empty document leaves doc nil, which From rejects.
		case err != nil:
			return nil, fmt.Errorf("failed to parse YAML enum definition: %w", err)
		default:
			var extra any
			if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
				return nil, errors.New("failed to parse YAML enum definition: expected a single document")
			}
		}
	default:
		return nil, fmt.Errorf("unsupported enum definition format: %q", format)
	}

	return From(doc)
}

// LoadFile reads a definition file and builds an enumeration from it.
// The format is detected by file extension (.json, .yaml, .yml).
func LoadFile(path string) (*Enumeration, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enum definition file: %w", err)
	}

	e, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return e, nil
}
