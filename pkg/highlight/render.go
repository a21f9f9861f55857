package highlight

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/yeisme/vivid/pkg/theme"
)

// RenderOptions controls terminal preview output.
type RenderOptions struct {
	// LineNumbers prefixes each line with its number in the theme's line number color.
	LineNumbers bool
	// Width truncates lines wider than Width cells; zero disables truncation.
	Width int
	// Background paints the editor background behind the code.
	Background bool
	// TabWidth is the number of cells a tab expands to (default 4).
	TabWidth int
}

// opaque drops the alpha channel so the terminal gets a plain RGB value.
func opaque(hex string) lipgloss.Color {
	if len(hex) == 9 {
		hex = hex[:7]
	}
	return lipgloss.Color(hex)
}

func tokenStyle(re *lipgloss.Renderer, st theme.Style, bg string) lipgloss.Style {
	s := re.NewStyle().Foreground(opaque(st.Foreground))
	if bg != "" {
		s = s.Background(opaque(bg))
	}
	if st.Background != "" {
		s = s.Background(opaque(st.Background))
	}
	return s.
		Bold(st.FontStyle.Has(theme.Bold)).
		Italic(st.FontStyle.Has(theme.Italic)).
		Underline(st.FontStyle.Has(theme.Underline)).
		Strikethrough(st.FontStyle.Has(theme.Strikethrough))
}

// Render writes the source with every token colored by the resolver.
func Render(w io.Writer, src *Source, r *theme.Resolver, opts RenderOptions) error {
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}
	re := lipgloss.NewRenderer(w)
	th := r.Theme()

	bg := ""
	if opts.Background {
		bg = th.DefaultBackground()
	}

	lineNoColor := th.Colors["editorLineNumber.foreground"]
	if lineNoColor == "" {
		lineNoColor = th.DefaultForeground()
	}
	gutter := re.NewStyle().Foreground(opaque(lineNoColor))
	if bg != "" {
		gutter = gutter.Background(opaque(bg))
	}

	digits := len(fmt.Sprint(lineCount(src)))
	width := opts.Width
	if width > 0 && opts.LineNumbers {
		// gutter: digits plus one space
		width = max(width-digits-1, 1)
	}

	var lines []string
	var cur strings.Builder
	col := 0
	truncated := false
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		col = 0
		truncated = false
	}

	tab := strings.Repeat(" ", opts.TabWidth)
	for _, tok := range src.Tokens {
		style := tokenStyle(re, r.Resolve(tok.Stack...), bg)
		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				flush()
			}
			if part == "" || truncated {
				continue
			}
			part = strings.ReplaceAll(part, "\t", tab)
			if width > 0 {
				if col >= width {
					truncated = true
					continue
				}
				if col+runewidth.StringWidth(part) > width {
					part = runewidth.Truncate(part, width-col, "…")
					truncated = true
				}
				col += runewidth.StringWidth(part)
			}
			cur.WriteString(style.Render(part))
		}
	}
	if cur.Len() > 0 {
		flush()
	}

	for i, line := range lines {
		if opts.LineNumbers {
			if _, err := io.WriteString(w, gutter.Render(fmt.Sprintf("%*d ", digits, i+1))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// lineCount returns the number of lines Render prints for src.
func lineCount(src *Source) int {
	n, last := 0, ""
	for _, tok := range src.Tokens {
		n += strings.Count(tok.Text, "\n")
		if tok.Text != "" {
			last = tok.Text
		}
	}
	if last != "" && !strings.HasSuffix(last, "\n") {
		n++
	}
	return n
}
