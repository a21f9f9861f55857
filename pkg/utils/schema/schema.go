// Package schema provides utilities for working with JSON schemas.
package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/yeisme/vivid/pkg/configs"
	"github.com/yeisme/vivid/pkg/theme"
)

// HexColorPattern matches the color literals the theme accepts.
const HexColorPattern = `^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`

// FontStylePattern matches space-separated font style words, or the empty string.
const FontStylePattern = `^((normal|bold|italic|underline|strikethrough)( (bold|italic|underline|strikethrough))*)?$`

var scopeListType = reflect.TypeOf(theme.ScopeList{})

// mapScopeList describes a scope as a selector string or a list of selectors.
func mapScopeList(t reflect.Type) *jsonschema.Schema {
	if t != scopeListType {
		return nil
	}
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string", MinLength: ptr(uint64(1))},
			{Type: "array", Items: &jsonschema.Schema{Type: "string", MinLength: ptr(uint64(1))}},
		},
	}
}

func ptr[T any](v T) *T { return &v }

func setPattern(s *jsonschema.Schema, prop, pattern string) {
	if s == nil || s.Properties == nil {
		return
	}
	if p, ok := s.Properties.Get(prop); ok {
		p.Pattern = pattern
	}
}

// ThemeSchema reflects the theme document schema.
func ThemeSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		Mapper:                     mapScopeList,
		RequiredFromJSONSchemaTags: true,
	}
	s := reflector.Reflect(&theme.Theme{})
	s.Title = "Vivid color theme"

	if def, ok := s.Definitions["Settings"]; ok {
		setPattern(def, "foreground", HexColorPattern)
		setPattern(def, "background", HexColorPattern)
		setPattern(def, "fontStyle", FontStylePattern)
	}
	if def, ok := s.Definitions["Theme"]; ok && def.Properties != nil {
		if colors, ok := def.Properties.Get("colors"); ok {
			colors.AdditionalProperties = &jsonschema.Schema{Type: "string", Pattern: HexColorPattern}
		}
	}
	return s
}

// ConfigSchema reflects the application configuration schema.
func ConfigSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "mapstructure",
	}
	s := reflector.Reflect(&configs.Config{})
	s.Title = "vivid configuration"
	return s
}

func write(out io.Writer, s *jsonschema.Schema) error {
	schemaJSON, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(schemaJSON))
	return err
}

// GenThemeSchema generates the JSON schema for theme documents and writes it to the provided writer.
func GenThemeSchema(out io.Writer) error {
	return write(out, ThemeSchema())
}

// GenConfigSchema generates the JSON schema for the entire application configuration and writes it to the provided writer.
func GenConfigSchema(out io.Writer) error {
	return write(out, ConfigSchema())
}
