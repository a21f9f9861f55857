// Package highlight tokenizes fixture source files with chroma, classifies each
// token with a TextMate scope and resolves it against a theme variant. It stands
// in for the editor's tokenizer when inspecting how the theme colors real code.
package highlight

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/yeisme/vivid/pkg/theme"
)

// Token is one lexed segment with its scope stack.
type Token struct {
	Text  string
	Type  chroma.TokenType
	Scope string
	// Stack is the scope stack, outermost first: the language root scope and, when
	// Scope is set, the token scope.
	Stack []string
}

// Source is a tokenized file.
type Source struct {
	Path     string
	Language string
	Root     string
	Tokens   []Token
}

// lexerFor picks a lexer by file name, then by content analysis.
func lexerFor(filename, source string) chroma.Lexer {
	l := lexers.Match(filepath.Base(filename))
	if l == nil {
		l = lexers.Analyse(source)
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

// rootScope returns the language root scope ("source.go").
func rootScope(l chroma.Lexer) string {
	cfg := l.Config()
	if cfg == nil || len(cfg.Aliases) == 0 {
		return "source"
	}
	return "source." + cfg.Aliases[0]
}

// Tokenize lexes source and classifies every token.
func Tokenize(filename, source string) (*Source, error) {
	l := lexerFor(filename, source)
	it, err := l.Tokenise(nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize %s: %w", filename, err)
	}
	root := rootScope(l)
	src := &Source{Path: filename, Root: root}
	if cfg := l.Config(); cfg != nil {
		src.Language = cfg.Name
	}
	for _, tok := range it.Tokens() {
		scope := ScopeFor(tok.Type)
		stack := []string{root}
		if scope != "" {
			stack = append(stack, scope)
		}
		src.Tokens = append(src.Tokens, Token{
			Text:  tok.Value,
			Type:  tok.Type,
			Scope: scope,
			Stack: stack,
		})
	}
	return src, nil
}

// TokenizeFile reads and tokenizes a file.
func TokenizeFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Tokenize(path, string(data))
}

// Scopes returns the distinct non-empty scopes in the source, sorted.
func (s *Source) Scopes() []string {
	seen := make(map[string]struct{})
	for _, t := range s.Tokens {
		if t.Scope != "" {
			seen[t.Scope] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for sc := range seen {
		out = append(out, sc)
	}
	sort.Strings(out)
	return out
}

// ScopeResult is how one scope resolves in one variant.
type ScopeResult struct {
	Variant   theme.Variant `json:"variant" yaml:"variant" toml:"variant"`
	Scope     string        `json:"scope" yaml:"scope" toml:"scope"`
	Count     int           `json:"count" yaml:"count" toml:"count"`
	Color     string        `json:"color" yaml:"color" toml:"color"`
	FontStyle string        `json:"font_style,omitempty" yaml:"font_style,omitempty" toml:"font_style,omitempty"`
	Selector  string        `json:"selector,omitempty" yaml:"selector,omitempty" toml:"selector,omitempty"`
	Default   bool          `json:"default" yaml:"default" toml:"default"`
	// Ties counts same-specificity rules that disagree; the later rule still wins.
	Ties int `json:"ties" yaml:"ties" toml:"ties"`
}

// Report is the inspection of a set of fixture files.
type Report struct {
	Files   []string      `json:"files" yaml:"files" toml:"files"`
	Results []ScopeResult `json:"results" yaml:"results" toml:"results"`
}

// Ambiguous returns the results that had same-specificity disagreements.
func (r Report) Ambiguous() []ScopeResult {
	var out []ScopeResult
	for _, res := range r.Results {
		if res.Ties > 0 {
			out = append(out, res)
		}
	}
	return out
}

// Headers implements style.Tabular.
func (r Report) Headers() []string {
	return []string{"variant", "scope", "count", "color", "font style", "selector"}
}

// Rows implements style.Tabular.
func (r Report) Rows() [][]string {
	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		sel := res.Selector
		if res.Default {
			sel = "(default)"
		}
		rows = append(rows, []string{
			string(res.Variant), res.Scope, strconv.Itoa(res.Count), res.Color, res.FontStyle, sel,
		})
	}
	return rows
}

// Inspect resolves every scope found in the sources against each resolver.
func Inspect(sources []*Source, resolvers ...*theme.Resolver) Report {
	var rep Report
	counts := make(map[string]int)
	for _, s := range sources {
		rep.Files = append(rep.Files, s.Path)
		for _, t := range s.Tokens {
			if t.Scope != "" {
				counts[t.Scope]++
			}
		}
	}
	scopes := make([]string, 0, len(counts))
	for sc := range counts {
		scopes = append(scopes, sc)
	}
	sort.Strings(scopes)

	for _, r := range resolvers {
		for _, sc := range scopes {
			st := r.ResolveScope(sc)
			rep.Results = append(rep.Results, ScopeResult{
				Variant:   r.Theme().Type,
				Scope:     sc,
				Count:     counts[sc],
				Color:     st.Foreground,
				FontStyle: st.FontStyle.String(),
				Selector:  st.Selector,
				Default:   st.Default,
				Ties:      len(r.Ties(sc)),
			})
		}
	}
	return rep
}
