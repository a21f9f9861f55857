// Package theme holds the Vivid color-theme definitions and the scope resolver
// that turns a TextMate scope stack into an effective color and font style.
//
// A Theme mirrors the editor's JSON theme document: a flat map of UI colors and an
// ordered list of token color rules. Themes are treated as immutable once loaded;
// every operation in this package reads them and none modifies them.
package theme

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSchema is the $schema value the editor expects in a color theme document.
const DefaultSchema = "vscode://schemas/color-theme"

// Variant 主题变体 (dark / light)
type Variant string

const (
	// Dark is the dark variant.
	Dark Variant = "dark"
	// Light is the light variant.
	Light Variant = "light"
)

// Variants returns all variants in display order.
func Variants() []Variant {
	return []Variant{Dark, Light}
}

// ParseVariant 解析变体名称，兼容编辑器的 uiTheme 写法 (vs-dark / vs)
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark", "vs-dark", "hc-black":
		return Dark, nil
	case "light", "vs", "hc-light":
		return Light, nil
	default:
		return "", fmt.Errorf("%w: %q (want dark or light)", ErrUnknownVariant, s)
	}
}

// String implements fmt.Stringer.
func (v Variant) String() string { return string(v) }

// Theme is one variant's definition table.
type Theme struct {
	Schema      string            `json:"$schema,omitempty" yaml:"$schema,omitempty" toml:"schema,omitempty" mapstructure:"$schema"`
	Name        string            `json:"name" yaml:"name" toml:"name" mapstructure:"name" jsonschema:"required"`
	Type        Variant           `json:"type" yaml:"type" toml:"type" mapstructure:"type" jsonschema:"required,enum=dark,enum=light"`
	Colors      map[string]string `json:"colors" yaml:"colors" toml:"colors" mapstructure:"colors"`
	TokenColors []TokenColorRule  `json:"tokenColors" yaml:"tokenColors" toml:"tokenColors" mapstructure:"tokenColors"`
}

// TokenColorRule maps one or more scope selectors to settings.
// Position in Theme.TokenColors breaks specificity ties: later rules win.
type TokenColorRule struct {
	Name     string    `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" mapstructure:"name"`
	Scope    ScopeList `json:"scope" yaml:"scope" toml:"scope" mapstructure:"scope"`
	Settings Settings  `json:"settings" yaml:"settings" toml:"settings" mapstructure:"settings"`
}

// Settings is the style applied by a token color rule. Empty fields are unset.
type Settings struct {
	Foreground string `json:"foreground,omitempty" yaml:"foreground,omitempty" toml:"foreground,omitempty" mapstructure:"foreground"`
	Background string `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty" mapstructure:"background"`
	FontStyle  string `json:"fontStyle,omitempty" yaml:"fontStyle,omitempty" toml:"fontStyle,omitempty" mapstructure:"fontStyle"`
}

// IsZero reports whether no attribute is set.
func (s Settings) IsZero() bool {
	return s.Foreground == "" && s.Background == "" && s.FontStyle == ""
}

// ScopeList is a rule's scope field. The editor accepts either a single string
// or an array of strings; a single entry is encoded back as a plain string.
type ScopeList []string

// MarshalYAML implements yaml.Marshaler.
func (s ScopeList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *ScopeList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = ScopeList{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("%w: scope must be a string or a list of strings (line %d)", ErrInvalidSelector, node.Line)
	}
}

// Selectors splits every entry on commas and returns the trimmed selector strings.
func (s ScopeList) Selectors() []string {
	var out []string
	for _, entry := range s {
		for _, part := range strings.Split(entry, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// DefaultForeground returns the color used for scopes no rule matches.
func (t *Theme) DefaultForeground() string {
	if fg, ok := t.Colors["editor.foreground"]; ok && fg != "" {
		return fg
	}
	if fg, ok := t.Colors["foreground"]; ok && fg != "" {
		return fg
	}
	if t.Type == Light {
		return "#333333"
	}
	return "#D4D4D4"
}

// DefaultBackground returns the editor background, falling back per variant.
func (t *Theme) DefaultBackground() string {
	if bg, ok := t.Colors["editor.background"]; ok && bg != "" {
		return bg
	}
	if t.Type == Light {
		return "#FFFFFF"
	}
	return "#1E1E1E"
}

// Slug returns the file-name form of the theme name ("Vivid Dark" -> "vivid-dark").
func (t *Theme) Slug() string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(t.Name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ColorKeys returns the UI color keys in sorted order.
func (t *Theme) ColorKeys() []string {
	return slices.Sorted(maps.Keys(t.Colors))
}

// Clone returns a deep copy.
func (t *Theme) Clone() *Theme {
	out := &Theme{
		Schema:      t.Schema,
		Name:        t.Name,
		Type:        t.Type,
		Colors:      maps.Clone(t.Colors),
		TokenColors: make([]TokenColorRule, len(t.TokenColors)),
	}
	for i, r := range t.TokenColors {
		r.Scope = slices.Clone(r.Scope)
		out.TokenColors[i] = r
	}
	return out
}

// Equal reports whether two tables are identical, including rule order.
func (t *Theme) Equal(o *Theme) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Schema != o.Schema || t.Name != o.Name || t.Type != o.Type {
		return false
	}
	if !maps.Equal(t.Colors, o.Colors) || len(t.TokenColors) != len(o.TokenColors) {
		return false
	}
	for i := range t.TokenColors {
		a, b := t.TokenColors[i], o.TokenColors[i]
		if a.Name != b.Name || a.Settings != b.Settings || !slices.Equal(a.Scope, b.Scope) {
			return false
		}
	}
	return true
}
