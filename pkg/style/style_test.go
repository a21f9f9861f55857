package style

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

// bytes.Buffer 不是终端，lipgloss 输出不含转义序列

func TestPrintSwatchesAligns(t *testing.T) {
	var buf bytes.Buffer
	err := PrintSwatches(&buf, "", []Swatch{
		{Name: "editor.background", Hex: "#16161E"},
		{Name: "背景", Hex: "#FAFAFA80", Note: "alpha"},
	})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	// 两行的十六进制列起始于相同的显示列
	i0 := strings.Index(lines[0], "#16161E")
	i1 := strings.Index(lines[1], "#FAFAFA80")
	if runewidth.StringWidth(lines[0][:i0]) != runewidth.StringWidth(lines[1][:i1]) {
		t.Errorf("hex columns misaligned:\n%s", buf.String())
	}
	if !strings.HasSuffix(lines[1], "alpha") {
		t.Errorf("note missing: %q", lines[1])
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	err := PrintIssues(&buf, []Issue{
		{Level: "error", Path: "colors.x", Message: "invalid color"},
		{Level: "warning", Path: "tokenColors[12]", Message: "duplicate selector"},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"error", "warning", "colors.x", "duplicate selector"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatters(t *testing.T) {
	data := map[string]any{"a": 1, "b": []string{"x"}}
	tests := []struct {
		name string
		fn   func(any) (string, error)
		want string
	}{
		{"json", FormatJSON, "\"a\": 1"},
		{"yaml", FormatYAML, "a: 1"},
		{"toml", FormatTOML, "a = 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(data)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(got, tt.want) || !strings.HasSuffix(got, "\n") {
				t.Errorf("%s output = %q", tt.name, got)
			}
		})
	}

	got, err := FormatJSON(`{"k":"<v>"}`)
	if err != nil || got != "{\n  \"k\": \"<v>\"\n}\n" {
		t.Errorf("FormatJSON(raw) = %q, %v", got, err)
	}
	if _, err := FormatYAML("a: [unclosed"); err == nil {
		t.Error("expected YAML parse error")
	}
}

func TestPrintCodePlain(t *testing.T) {
	var buf bytes.Buffer
	src := "{\n  \"name\": \"Vivid Dark\"\n}\n"
	if err := PrintCode(&buf, "theme.json", src, true); err != nil {
		t.Fatal(err)
	}
	if buf.String() != src {
		t.Errorf("PrintCode() = %q, want %q", buf.String(), src)
	}
}
