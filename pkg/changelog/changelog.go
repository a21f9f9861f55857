// Package changelog reads the theme's CHANGELOG.md, keeps releases in semantic
// version order and renders them for the terminal.
package changelog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/mod/semver"
)

var (
	// ErrInvalidVersion 版本号不是合法的语义化版本
	ErrInvalidVersion = errors.New("invalid release version")
	// ErrOrder 版本未按降序排列或重复
	ErrOrder = errors.New("releases out of order")
	// ErrNoReleases 文件中没有任何版本
	ErrNoReleases = errors.New("no releases found")
)

// Release is one "## [x.y.z] - YYYY-MM-DD" section.
type Release struct {
	Version string    `json:"version" yaml:"version" toml:"version"`
	Date    time.Time `json:"date,omitzero" yaml:"date,omitempty" toml:"date,omitempty"`
	Notes   []string  `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`
	// Unreleased marks the "## [Unreleased]" section, which has no version.
	Unreleased bool `json:"unreleased,omitempty" yaml:"unreleased,omitempty" toml:"unreleased,omitempty"`
	Line       int  `json:"line" yaml:"line" toml:"line"`
}

// Semver returns the canonical "vX.Y.Z" form used for comparison.
func (r Release) Semver() string {
	return "v" + strings.TrimPrefix(r.Version, "v")
}

var (
	// heading matches the text of a level-2 heading: "[1.2.0] - 2025-09-08"
	heading = regexp.MustCompile(`^\[([^\]]+)\](?:\s+-\s+(\S+))?$`)
	parser  = goldmark.New().Parser()
)

// blockText joins the raw lines of a block node, one space between lines.
func blockText(n ast.Node, src []byte) string {
	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if t := strings.TrimSpace(string(seg.Value(src))); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// lineOf returns the 1-based line of a block node's first line.
func lineOf(n ast.Node, src []byte) int {
	if n.Lines().Len() == 0 {
		return 0
	}
	return bytes.Count(src[:n.Lines().At(0).Start], []byte("\n")) + 1
}

// itemText returns the paragraph text of a list item, ignoring nested lists.
func itemText(item ast.Node, src []byte) string {
	var parts []string
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.Kind() {
		case ast.KindParagraph, ast.KindTextBlock:
			if t := blockText(c, src); t != "" {
				parts = append(parts, t)
			}
		}
	}
	return strings.Join(parts, " ")
}

// Parse reads releases from changelog markdown. Releases must be listed newest
// first without duplicates. Only top-level level-2 headings start a release, so
// headings inside code blocks are ignored.
func Parse(r io.Reader) ([]Release, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc := parser.Parse(text.NewReader(src))

	var (
		out  []Release
		errs []error
		cur  *Release
	)
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level != 2 {
				if node.Level < 2 {
					cur = nil
				}
				continue
			}
			line := lineOf(node, src)
			m := heading.FindStringSubmatch(blockText(node, src))
			if m == nil {
				cur = nil
				continue
			}
			out = append(out, Release{Version: m[1], Line: line})
			cur = &out[len(out)-1]
			if strings.EqualFold(m[1], "unreleased") {
				cur.Unreleased = true
				cur.Version = "Unreleased"
				continue
			}
			if !semver.IsValid(cur.Semver()) || semver.Canonical(cur.Semver()) != cur.Semver() {
				errs = append(errs, fmt.Errorf("line %d: %w: %q", line, ErrInvalidVersion, m[1]))
			}
			if m[2] != "" {
				d, err := time.Parse(time.DateOnly, m[2])
				if err != nil {
					errs = append(errs, fmt.Errorf("line %d: invalid date %q: %w", line, m[2], err))
				}
				cur.Date = d
			}
		case *ast.List:
			if cur == nil {
				continue
			}
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				if t := itemText(item, src); t != "" {
					cur.Notes = append(cur.Notes, t)
				}
			}
		}
	}
	if err := checkOrder(out); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return out, errors.Join(errs...)
	}
	return out, nil
}

func checkOrder(releases []Release) error {
	var errs []error
	prev := ""
	seen := make(map[string]int)
	for i, r := range releases {
		if r.Unreleased {
			if i != 0 {
				errs = append(errs, fmt.Errorf("line %d: %w: Unreleased must come first", r.Line, ErrOrder))
			}
			continue
		}
		v := r.Semver()
		if !semver.IsValid(v) {
			continue
		}
		if at, ok := seen[v]; ok {
			errs = append(errs, fmt.Errorf("line %d: %w: %s duplicates line %d", r.Line, ErrOrder, r.Version, at))
			continue
		}
		seen[v] = r.Line
		if prev != "" && semver.Compare(v, prev) >= 0 {
			errs = append(errs, fmt.Errorf("line %d: %w: %s listed after %s", r.Line, ErrOrder, r.Version, strings.TrimPrefix(prev, "v")))
		}
		prev = v
	}
	return errors.Join(errs...)
}

// ParseFile parses a changelog file.
func ParseFile(path string) ([]Release, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	releases, err := Parse(f)
	if err != nil {
		return releases, fmt.Errorf("%s: %w", path, err)
	}
	return releases, nil
}

// Latest returns the highest released version, ignoring Unreleased.
func Latest(releases []Release) (Release, error) {
	var best *Release
	for i := range releases {
		r := &releases[i]
		if r.Unreleased || !semver.IsValid(r.Semver()) {
			continue
		}
		if best == nil || semver.Compare(r.Semver(), best.Semver()) > 0 {
			best = r
		}
	}
	if best == nil {
		return Release{}, ErrNoReleases
	}
	return *best, nil
}

// Markdown renders releases back into changelog markdown; limit <= 0 keeps all.
func Markdown(releases []Release, limit int) string {
	var b strings.Builder
	b.WriteString("# Changelog\n")
	for i, r := range releases {
		if limit > 0 && i >= limit {
			break
		}
		b.WriteString("\n## [" + r.Version + "]")
		if !r.Date.IsZero() {
			b.WriteString(" - " + r.Date.Format(time.DateOnly))
		}
		b.WriteString("\n\n")
		for _, n := range r.Notes {
			b.WriteString("- " + n + "\n")
		}
	}
	return b.String()
}
