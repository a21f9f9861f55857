package theme

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTheme(rules ...TokenColorRule) *Theme {
	return &Theme{
		Name: "Test",
		Type: Dark,
		Colors: map[string]string{
			"editor.background": "#000000",
			"editor.foreground": "#FAFAFA",
		},
		TokenColors: rules,
	}
}

func TestSelectorMatch(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		stack    []string
		match    bool
		depth    int
		parents  int
	}{
		{"exact", "keyword.control", []string{"keyword.control"}, true, 2, 0},
		{"prefix", "keyword", []string{"keyword.control.go"}, true, 1, 0},
		{"partial segment", "keyword", []string{"keywords"}, false, 0, 0},
		{"more specific selector", "keyword.control.go", []string{"keyword.control"}, false, 0, 0},
		{"ancestor", "meta.function keyword", []string{"source.go", "meta.function.go", "keyword.control"}, true, 1, 1},
		{"ancestor skipping", "source keyword", []string{"source.go", "meta.block", "keyword.control"}, true, 1, 1},
		{"ancestor missing", "meta.class keyword", []string{"source.go", "meta.function", "keyword.control"}, false, 0, 0},
		{"ancestor order", "meta.block source", []string{"source.go", "meta.block", "string"}, false, 0, 0},
		{"innermost only", "source", []string{"source.go", "keyword"}, false, 0, 0},
		{"empty stack", "keyword", nil, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := ParseSelector(tt.selector)
			require.NoError(t, err)
			spec, ok := sel.Match(tt.stack, 0)
			assert.Equal(t, tt.match, ok)
			if ok {
				assert.Equal(t, tt.depth, spec.Depth)
				assert.Len(t, spec.Parents, tt.parents)
			}
		})
	}
}

func TestParseSelectorErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "keyword -string", "(keyword)", "a | b", "keyword..control", "keyword.", "key$word"} {
		_, err := ParseSelector(in)
		assert.ErrorIs(t, err, ErrInvalidSelector, "selector %q", in)
	}

	sels, err := ParseSelectors(ScopeList{"keyword, storage", "meta.function  variable"})
	require.NoError(t, err)
	require.Len(t, sels, 3)
	assert.Equal(t, "meta.function variable", sels[2].Text)
	assert.Equal(t, []string{"meta.function", "variable"}, sels[2].Path)

	_, err = ParseSelectors(ScopeList{" , "})
	assert.ErrorIs(t, err, ErrInvalidSelector)
}

func TestResolveMostSpecificWins(t *testing.T) {
	r := MustResolver(testTheme(
		TokenColorRule{Scope: ScopeList{"keyword.control"}, Settings: Settings{Foreground: "#222222"}},
		TokenColorRule{Scope: ScopeList{"keyword"}, Settings: Settings{Foreground: "#111111"}},
	))
	// deeper selector wins even though it comes first
	assert.Equal(t, "#222222", r.ResolveScope("keyword.control.go").Foreground)
	assert.Equal(t, "#111111", r.ResolveScope("keyword.operator").Foreground)
}

func TestResolveLaterRuleBreaksTies(t *testing.T) {
	r := MustResolver(testTheme(
		TokenColorRule{Scope: ScopeList{"string"}, Settings: Settings{Foreground: "#111111"}},
		TokenColorRule{Scope: ScopeList{"string"}, Settings: Settings{Foreground: "#222222"}},
	))
	st := r.ResolveScope("string.quoted")
	assert.Equal(t, "#222222", st.Foreground)
	assert.Equal(t, 1, st.Rule)

	ties := r.Ties("string.quoted")
	require.Len(t, ties, 1)
	assert.Equal(t, 0, ties[0][0].Rule)
	assert.Equal(t, 1, ties[0][1].Rule)
}

func TestResolveParentsAddSpecificity(t *testing.T) {
	r := MustResolver(testTheme(
		TokenColorRule{Scope: ScopeList{"source entity.name"}, Settings: Settings{Foreground: "#111111"}},
		TokenColorRule{Scope: ScopeList{"entity.name"}, Settings: Settings{Foreground: "#222222"}},
	))
	assert.Equal(t, "#111111", r.Resolve("source.go", "entity.name.type").Foreground)
	assert.Equal(t, "#222222", r.Resolve("text.html", "entity.name.type").Foreground)
	assert.Empty(t, r.Ties("source.go", "entity.name.type"))
}

func TestResolveAttributesIndependently(t *testing.T) {
	r := MustResolver(testTheme(
		TokenColorRule{Scope: ScopeList{"keyword"}, Settings: Settings{Foreground: "#111111", FontStyle: "bold"}},
		TokenColorRule{Scope: ScopeList{"keyword.control"}, Settings: Settings{Foreground: "#222222"}},
		TokenColorRule{Scope: ScopeList{"keyword.control.flow"}, Settings: Settings{Background: "#333333"}},
	))
	st := r.ResolveScope("keyword.control.flow")
	assert.Equal(t, "#222222", st.Foreground)
	assert.Equal(t, "#333333", st.Background)
	assert.Equal(t, Bold, st.FontStyle)
	assert.Equal(t, 1, st.Rule)
	assert.Equal(t, "keyword.control", st.Selector)
}

func TestResolveFallsBackToDefaultForeground(t *testing.T) {
	r := MustResolver(testTheme(
		TokenColorRule{Scope: ScopeList{"keyword"}, Settings: Settings{Foreground: "#111111"}},
	))
	st := r.ResolveScope("markup.heading")
	assert.True(t, st.Default)
	assert.Equal(t, "#FAFAFA", st.Foreground)
	assert.Equal(t, -1, st.Rule)
	assert.Zero(t, st.FontStyle)

	st = r.Resolve()
	assert.True(t, st.Default)
}

func TestExplainOrder(t *testing.T) {
	r := MustResolver(testTheme(
		TokenColorRule{Name: "kw", Scope: ScopeList{"keyword"}, Settings: Settings{Foreground: "#111111"}},
		TokenColorRule{Name: "ctl", Scope: ScopeList{"keyword.control", "meta keyword.control"}, Settings: Settings{Foreground: "#222222"}},
		TokenColorRule{Name: "str", Scope: ScopeList{"string"}, Settings: Settings{Foreground: "#333333"}},
	))
	ms := r.Explain("meta.block", "keyword.control")
	require.Len(t, ms, 2)
	assert.Equal(t, "ctl", ms[0].Name)
	assert.Equal(t, "meta keyword.control", ms[0].Selector)
	assert.Equal(t, "kw", ms[1].Name)
}

func TestNewResolverRejectsMalformedRules(t *testing.T) {
	_, err := NewResolver(testTheme(TokenColorRule{Scope: ScopeList{""}, Settings: Settings{Foreground: "#111111"}}))
	assert.ErrorIs(t, err, ErrInvalidSelector)

	_, err = NewResolver(testTheme(TokenColorRule{Scope: ScopeList{"keyword"}, Settings: Settings{FontStyle: "blink"}}))
	assert.ErrorIs(t, err, ErrInvalidFontStyle)
}

func TestResolverConcurrentUse(t *testing.T) {
	r := MustResolver(MustBuiltin(Dark))
	scopes := []string{"keyword.control", "string.quoted.double", "comment.line", "unknown.scope"}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = r.ResolveScope(scopes[j%len(scopes)])
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, "#D946EF", r.ResolveScope("keyword.control").Foreground)
}

func TestResolveStackFormsAgree(t *testing.T) {
	joinedFirst := MustResolver(MustBuiltin(Dark))
	assert.Equal(t, "#D946EF", joinedFirst.Resolve("string.quoted keyword.control").Foreground)
	assert.Equal(t, "#D946EF", joinedFirst.Resolve("string.quoted", "keyword.control").Foreground)

	splitFirst := MustResolver(MustBuiltin(Dark))
	assert.Equal(t, "#D946EF", splitFirst.Resolve("string.quoted", "keyword.control").Foreground)
	assert.Equal(t, "#D946EF", splitFirst.Resolve("string.quoted keyword.control").Foreground)
	assert.Equal(t, "#D946EF", splitFirst.ResolveScope("  string.quoted   keyword.control ").Foreground)

	assert.Equal(t,
		splitFirst.Explain("meta.block", "keyword.control"),
		splitFirst.Explain("meta.block keyword.control"))
}
