package schema

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/yeisme/vivid/pkg/theme"
)

func TestThemeSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := GenThemeSchema(&buf); err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"tokenColors"`, `"oneOf"`, `"foreground"`, `"pattern"`} {
		if !strings.Contains(out, want) {
			t.Errorf("schema missing %s", want)
		}
	}

	s := ThemeSchema()
	def, ok := s.Definitions["Theme"]
	if !ok {
		t.Fatal("Theme definition missing")
	}
	if len(def.Required) == 0 || def.Required[0] != "name" {
		t.Errorf("required = %v", def.Required)
	}
}

func TestPatternsAgreeWithParser(t *testing.T) {
	hex := regexp.MustCompile(HexColorPattern)
	for _, c := range []string{"#D946EF", "#c41e3a", "#16161E80", "#FFF", "D946EF", "#D946EG", "#D946EF8"} {
		if got, want := hex.MatchString(c), theme.IsHexColor(c); got != want {
			t.Errorf("%q: pattern %v, IsHexColor %v", c, got, want)
		}
	}
	fs := regexp.MustCompile(FontStylePattern)
	for _, s := range []string{"", "italic", "bold underline", "normal", "oblique"} {
		_, err := theme.ParseFontStyle(s)
		if got, want := fs.MatchString(s), err == nil; got != want {
			t.Errorf("%q: pattern %v, ParseFontStyle ok %v", s, got, want)
		}
	}
}

func TestConfigSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := GenConfigSchema(&buf); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"min_contrast"`, `"hotload"`, `"markdown_style"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("config schema missing %s", want)
		}
	}
}
