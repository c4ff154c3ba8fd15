// Package seed loads initial records from YAML, TOML or JSON files.
package seed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/furry-store/store"
)

// Format names a seed file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

var (
	// ErrUnsupportedFormat is returned for file extensions Load cannot decode.
	ErrUnsupportedFormat = errors.New("unsupported seed format")
	// ErrInvalidAssignment is returned when an assignment has no "=".
	ErrInvalidAssignment = errors.New("assignment must look like key=value")
)

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads and decodes a seed file.
func Load(path string) (store.Record, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	rec, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return rec, nil
}

// Parse decodes data as a flat record. An empty document yields an empty
// record. Nested values are kept as decoded; the store compares them by
// reference only.
func Parse(data []byte, format Format) (store.Record, error) {
	rec := store.Record{}
	if len(bytes.TrimSpace(data)) == 0 {
		return rec, nil
	}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &rec)
	case FormatTOML:
		err = toml.Unmarshal(data, &rec)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&rec)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = store.Record{}
	}
	normalizeNumbers(rec)
	return rec, nil
}

// ParseAssignment splits "key=value" and decodes value as a YAML scalar, so
// "n=2" yields an int and "ok=true" a bool. An empty value is an empty string.
func ParseAssignment(s string) (string, any, error) {
	key, raw, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidAssignment, s)
	}
	if strings.TrimSpace(raw) == "" {
		return key, "", nil
	}
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return "", nil, fmt.Errorf("parse value for %q: %w", key, err)
	}
	return key, value, nil
}

// normalizeNumbers turns top-level integers into int and other JSON numbers
// into float64, so the same seed compares equal whatever its encoding.
func normalizeNumbers(rec store.Record) {
	for k, v := range rec {
		switch n := v.(type) {
		case int64:
			if int64(int(n)) == n {
				rec[k] = int(n)
			}
		case json.Number:
			if i, err := n.Int64(); err == nil && int64(int(i)) == i {
				rec[k] = int(i)
			} else if f, err := n.Float64(); err == nil {
				rec[k] = f
			}
		}
	}
}
