package changelog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `# Changelog

All notable changes to this theme are documented here.

## [Unreleased]

- Tune diff editor backgrounds

## [1.1.0] - 2025-03-02

- Add Light variant
- Recolor string literals to crimson
  in both variants

## [1.0.0] - 2025-01-15

* Initial release
`

func TestParse(t *testing.T) {
	releases, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(releases) != 3 {
		t.Fatalf("got %d releases, want 3", len(releases))
	}
	if !releases[0].Unreleased || len(releases[0].Notes) != 1 {
		t.Errorf("unexpected first release: %+v", releases[0])
	}
	r := releases[1]
	if r.Version != "1.1.0" || r.Date.Format("2006-01-02") != "2025-03-02" {
		t.Errorf("release = %+v", r)
	}
	if len(r.Notes) != 2 || r.Notes[1] != "Recolor string literals to crimson in both variants" {
		t.Errorf("notes = %q", r.Notes)
	}
	if releases[2].Notes[0] != "Initial release" {
		t.Errorf("star bullets not parsed: %q", releases[2].Notes)
	}

	latest, err := Latest(releases)
	if err != nil || latest.Version != "1.1.0" {
		t.Errorf("Latest() = %v, %v", latest.Version, err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"bad version", "## [1.0] - 2025-01-01\n", ErrInvalidVersion},
		{"ascending", "## [1.0.0] - 2025-01-01\n## [1.2.0] - 2025-02-01\n", ErrOrder},
		{"duplicate", "## [1.0.0]\n## [1.0.0]\n", ErrOrder},
		{"unreleased late", "## [1.0.0]\n## [Unreleased]\n", ErrOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Parse(strings.NewReader("## [2.0.0] - 2025-13-01\n")); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestParseSkipsCodeBlocks(t *testing.T) {
	doc := "# Changelog\n\n" +
		"## [1.1.0] - 2025-03-02\n\n" +
		"- Document the heading format:\n\n" +
		"```md\n## [0.9.0] - 2025-01-01\n- not a note\n```\n\n" +
		"    ## [0.8.0] - 2024-12-01\n\n" +
		"## [1.0.0] - 2025-01-15\n\n" +
		"- Initial release\n"

	releases, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(releases) != 2 {
		t.Fatalf("got %d releases, want 2: %+v", len(releases), releases)
	}
	if releases[0].Version != "1.1.0" || releases[1].Version != "1.0.0" {
		t.Errorf("versions = %s, %s", releases[0].Version, releases[1].Version)
	}
	if len(releases[0].Notes) != 1 || releases[0].Notes[0] != "Document the heading format:" {
		t.Errorf("notes = %q", releases[0].Notes)
	}
	if releases[1].Line != 14 {
		t.Errorf("line = %d, want 14", releases[1].Line)
	}
}

func TestLatestEmpty(t *testing.T) {
	if _, err := Latest([]Release{{Version: "Unreleased", Unreleased: true}}); !errors.Is(err, ErrNoReleases) {
		t.Errorf("Latest() error = %v", err)
	}
}

func TestMarkdownRoundTrip(t *testing.T) {
	releases, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	again, err := Parse(strings.NewReader(Markdown(releases, 0)))
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(releases) {
		t.Fatalf("got %d releases, want %d", len(again), len(releases))
	}
	for i := range releases {
		if again[i].Version != releases[i].Version || strings.Join(again[i].Notes, "|") != strings.Join(releases[i].Notes, "|") {
			t.Errorf("release %d: %+v != %+v", i, again[i], releases[i])
		}
	}
	if got := Markdown(releases, 1); strings.Contains(got, "1.1.0") {
		t.Errorf("limit not applied:\n%s", got)
	}
}

func TestParseFileRepoChangelog(t *testing.T) {
	path := filepath.Join("..", "..", "CHANGELOG.md")
	if _, err := os.Stat(path); err != nil {
		t.Skip("CHANGELOG.md not present")
	}
	releases, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if _, err := Latest(releases); err != nil {
		t.Errorf("Latest() error = %v", err)
	}
}
