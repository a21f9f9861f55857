package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueAt(r Report, path string) *Issue {
	for i := range r.Issues {
		if strings.HasPrefix(r.Issues[i].Path, path) {
			return &r.Issues[i]
		}
	}
	return nil
}

func TestValidateCatchesAuthoringErrors(t *testing.T) {
	th := &Theme{
		Name: "",
		Type: "sepia",
		Colors: map[string]string{
			"editor.background": "#000",
			"editor.backgroud":  "#000000",
		},
		TokenColors: []TokenColorRule{
			{Scope: ScopeList{""}, Settings: Settings{Foreground: "#FFFFFF"}},
			{Scope: ScopeList{"keyword"}, Settings: Settings{Foreground: "purple"}},
			{Scope: ScopeList{"string -comment"}, Settings: Settings{Foreground: "#FFFFFF"}},
			{Scope: ScopeList{"constant"}, Settings: Settings{FontStyle: "shiny"}},
		},
	}
	r := Validate(th, ValidateOptions{})

	for _, path := range []string{
		"name",
		"type",
		"colors.editor.background",
		"tokenColors[0].scope",
		"tokenColors[1].settings.foreground",
		"tokenColors[2].scope",
		"tokenColors[3].settings.fontStyle",
	} {
		is := issueAt(r, path)
		if assert.NotNil(t, is, "expected issue at %s", path) {
			assert.Equal(t, SeverityError, is.Severity, path)
		}
	}

	typo := issueAt(r, "colors.editor.backgroud")
	require.NotNil(t, typo)
	assert.Equal(t, SeverityWarning, typo.Severity)
	assert.Contains(t, typo.Message, `"editor.background"`)

	assert.Error(t, r.Err(false))
}

func TestValidateWarnings(t *testing.T) {
	th := testTheme(
		TokenColorRule{Scope: ScopeList{"keyword"}, Settings: Settings{Foreground: "#111111"}},
		TokenColorRule{Scope: ScopeList{"string", "keyword"}, Settings: Settings{Foreground: "#EEEEEE"}},
		TokenColorRule{Scope: ScopeList{"comment"}},
	)
	r := Validate(th, ValidateOptions{MinContrast: 4.5})
	assert.Empty(t, r.Errors())

	dup := issueAt(r, "tokenColors[1].scope")
	require.NotNil(t, dup)
	assert.Contains(t, dup.Message, "tokenColors[0]")

	assert.NotNil(t, issueAt(r, "tokenColors[2].settings"))

	low := issueAt(r, "tokenColors[0].settings.foreground")
	require.NotNil(t, low)
	assert.Contains(t, low.Message, "contrast")

	assert.NoError(t, r.Err(false))
	assert.Error(t, r.Err(true))
}

func TestValidateAllowUnknownKeys(t *testing.T) {
	th := testTheme(TokenColorRule{Scope: ScopeList{"keyword"}, Settings: Settings{Foreground: "#EEEEEE"}})
	th.Colors["myExtension.customColor"] = "#123456"

	r := Validate(th, ValidateOptions{})
	assert.NotNil(t, issueAt(r, "colors.myExtension.customColor"))

	r = Validate(th, ValidateOptions{AllowUnknownKeys: true})
	assert.Empty(t, r.Issues)
}

func TestSuggestUIKey(t *testing.T) {
	assert.Equal(t, "editorCursor.foreground", SuggestUIKey("editorCursor.foregrond"))
	assert.Equal(t, "", SuggestUIKey("zzzzzzzzzzzzzzzzzzzzzzz"))
	assert.True(t, IsKnownUIKey("editor.background"))
	assert.False(t, IsKnownUIKey("editor.backgroundd"))
}
