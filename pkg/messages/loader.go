package messages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps "yaml", "yml" or "json" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return f, nil
}

// Load decodes a catalog from r. Keys that are not catalog templates are
// ignored; missing keys stay empty, so the result is meant to be merged over
// Default.
func Load(ctx context.Context, r io.Reader, format Format) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return Catalog{}, errors.Join(ErrLoadCancelled, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Catalog{}, errors.Join(ErrFailedToRead, err)
	}

	var c Catalog
	if len(strings.TrimSpace(string(data))) == 0 {
		return c, nil
	}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Catalog{}, errors.Join(ErrFailedToParseYAML, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &c); err != nil {
			return Catalog{}, errors.Join(ErrFailedToParseJSON, err)
		}
	default:
		return Catalog{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return c, nil
}

// LoadFile reads a YAML or JSON catalog file, chosen by extension.
func LoadFile(ctx context.Context, path string) (Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Catalog{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, errors.Join(ErrFailedToRead, err)
	}
	defer f.Close()

	return Load(ctx, f, format)
}

// Encode writes c in the given format.
func Encode(w io.Writer, c Catalog, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
