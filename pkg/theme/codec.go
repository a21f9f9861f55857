package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format 主题文档格式
type Format string

const (
	// FormatJSON is the editor's native theme document format.
	FormatJSON Format = "json"
	// FormatYAML is an authoring format.
	FormatYAML Format = "yaml"
	// FormatTOML is an authoring format.
	FormatTOML Format = "toml"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json", "jsonc":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Ext returns the file extension (with dot) for the format.
func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return "." + string(f)
}

// MarshalJSON implements json.Marshaler.
func (s ScopeList) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(s[0])
	}
	return json.Marshal([]string(s))
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *ScopeList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*s = ScopeList{one}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("%w: scope must be a string or an array of strings", ErrInvalidSelector)
	}
	*s = list
	return nil
}

// Encode writes the theme in the given format.
func Encode(w io.Writer, t *Theme, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("failed to marshal theme to JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("failed to marshal theme to YAML: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("failed to marshal theme to TOML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal encodes the theme into a byte slice.
func Marshal(t *Theme, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a theme document in the given format.
func Decode(r io.Reader, f Format) (*Theme, error) {
	var t Theme
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		if err := dec.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to parse JSON theme: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to parse YAML theme: %w", err)
		}
	case FormatTOML:
		if err := decodeTOML(r, &t); err != nil {
			return nil, fmt.Errorf("failed to parse TOML theme: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return &t, nil
}

// decodeTOML reads the document into generic values and converts them through
// JSON, where ScopeList accepts both a string and an array.
// TOML has no "$" in bare keys, so the schema key is "schema".
func decodeTOML(r io.Reader, t *Theme) error {
	var doc map[string]any
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return err
	}
	if v, ok := doc["schema"]; ok {
		delete(doc, "schema")
		doc["$schema"] = v
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, t)
}

// Unmarshal decodes a theme from bytes.
func Unmarshal(data []byte, f Format) (*Theme, error) {
	return Decode(bytes.NewReader(data), f)
}

// LoadFile reads a theme document, choosing the format by extension.
func LoadFile(path string) (*Theme, error) {
	f, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	t, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// WriteFile writes a theme document, choosing the format by extension.
func WriteFile(path string, t *Theme) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(t, f)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
