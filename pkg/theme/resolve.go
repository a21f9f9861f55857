package theme

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Style is the effective presentation of a token.
type Style struct {
	Foreground string
	Background string
	FontStyle  FontStyle
	// Default is true when no rule set the foreground and the theme default was used.
	Default bool
	// Rule is the index of the rule that supplied the foreground, -1 for the default.
	Rule int
	// Selector is the selector text that supplied the foreground.
	Selector string
}

// Match is one rule selector that applies to a scope stack.
type Match struct {
	Rule        int
	Name        string
	Selector    string
	Settings    Settings
	Specificity Specificity
}

type compiledRule struct {
	index     int
	name      string
	selectors []Selector
	settings  Settings
	fontStyle FontStyle
}

// Resolver answers scope lookups for one theme. It is safe for concurrent use.
type Resolver struct {
	theme *Theme
	rules []compiledRule

	mu    sync.RWMutex
	cache map[string]Style
}

// NewResolver compiles the theme's selectors.
func NewResolver(t *Theme) (*Resolver, error) {
	r := &Resolver{
		theme: t,
		rules: make([]compiledRule, 0, len(t.TokenColors)),
		cache: make(map[string]Style),
	}
	for i, rule := range t.TokenColors {
		sels, err := ParseSelectors(rule.Scope)
		if err != nil {
			return nil, fmt.Errorf("tokenColors[%d]: %w", i, err)
		}
		fs, err := ParseFontStyle(rule.Settings.FontStyle)
		if err != nil {
			return nil, fmt.Errorf("tokenColors[%d]: %w", i, err)
		}
		r.rules = append(r.rules, compiledRule{
			index:     i,
			name:      rule.Name,
			selectors: sels,
			settings:  rule.Settings,
			fontStyle: fs,
		})
	}
	return r, nil
}

// MustResolver is NewResolver for themes known to compile.
func MustResolver(t *Theme) *Resolver {
	r, err := NewResolver(t)
	if err != nil {
		panic(err)
	}
	return r
}

// Theme returns the table the resolver reads.
func (r *Resolver) Theme() *Theme { return r.theme }

// ResolveScope resolves a space-separated scope stack, outermost first
// ("source.go meta.function keyword.control").
func (r *Resolver) ResolveScope(stack string) Style {
	return r.Resolve(strings.Fields(stack)...)
}

// Resolve returns the effective style for a scope stack, outermost first.
// Foreground, background and font style are each taken from the most specific
// matching rule that sets them; an unmatched foreground falls back to the theme default.
// Elements containing whitespace are split, so Resolve("a b") equals Resolve("a", "b").
func (r *Resolver) Resolve(stack ...string) Style {
	stack = splitStack(stack)
	key := strings.Join(stack, " ")
	r.mu.RLock()
	st, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return st
	}

	st = r.resolve(stack)

	r.mu.Lock()
	r.cache[key] = st
	r.mu.Unlock()
	return st
}

func (r *Resolver) resolve(stack []string) Style {
	st := Style{
		Foreground: r.theme.DefaultForeground(),
		Default:    true,
		Rule:       -1,
	}
	var fgBest, bgBest, fsBest *Specificity
	for _, m := range r.matches(stack) {
		spec := m.Specificity
		if m.Settings.Foreground != "" && (fgBest == nil || spec.Compare(*fgBest) > 0) {
			fgBest = &spec
			st.Foreground = m.Settings.Foreground
			st.Default = false
			st.Rule = m.Rule
			st.Selector = m.Selector
		}
		if m.Settings.Background != "" && (bgBest == nil || spec.Compare(*bgBest) > 0) {
			bgBest = &spec
			st.Background = m.Settings.Background
		}
		if m.Settings.FontStyle != "" && (fsBest == nil || spec.Compare(*fsBest) > 0) {
			fsBest = &spec
			st.FontStyle = r.rules[m.Rule].fontStyle
		}
	}
	return st
}

// splitStack splits whitespace-separated scopes inside stack elements and drops
// empty ones; the result contains no whitespace, so joining it with a space is
// a unique cache key.
func splitStack(stack []string) []string {
	out := make([]string, 0, len(stack))
	for _, s := range stack {
		out = append(out, strings.Fields(s)...)
	}
	return out
}

// Explain lists every matching rule selector, most specific first.
func (r *Resolver) Explain(stack ...string) []Match {
	ms := r.matches(splitStack(stack))
	slices.SortStableFunc(ms, func(a, b Match) int {
		return b.Specificity.Compare(a.Specificity)
	})
	return ms
}

// matches returns, per rule, the best-matching selector.
func (r *Resolver) matches(stack []string) []Match {
	if len(stack) == 0 {
		return nil
	}
	var out []Match
	for _, rule := range r.rules {
		var best *Match
		for _, sel := range rule.selectors {
			spec, ok := sel.Match(stack, rule.index)
			if !ok {
				continue
			}
			if best == nil || spec.Compare(best.Specificity) > 0 {
				best = &Match{
					Rule:        rule.index,
					Name:        rule.name,
					Selector:    sel.Text,
					Settings:    rule.settings,
					Specificity: spec,
				}
			}
		}
		if best != nil {
			out = append(out, *best)
		}
	}
	return out
}

// Ties returns pairs of matches for the stack whose specificity differs only by
// rule position and that disagree on the foreground. The later rule still wins;
// a tie usually means one of the rules is dead for this scope.
func (r *Resolver) Ties(stack ...string) [][2]Match {
	ms := r.matches(splitStack(stack))
	var out [][2]Match
	for i := 0; i < len(ms); i++ {
		for j := i + 1; j < len(ms); j++ {
			a, b := ms[i], ms[j]
			if a.Settings.Foreground == "" || b.Settings.Foreground == "" {
				continue
			}
			if a.Specificity.Tie(b.Specificity) && !strings.EqualFold(a.Settings.Foreground, b.Settings.Foreground) {
				out = append(out, [2]Match{a, b})
			}
		}
	}
	return out
}
