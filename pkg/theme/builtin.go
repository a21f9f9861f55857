package theme

import "fmt"

// palette is the named color set one variant is authored from.
type palette struct {
	Background     string
	BackgroundAlt  string
	Surface        string
	LineHighlight  string
	Selection      string
	Foreground     string
	ForegroundDim  string
	Comment        string
	Cursor         string
	Border         string
	Purple         string // control flow
	Crimson        string // string literals
	Blue           string
	Cyan           string
	Green          string
	Amber          string
	Orange         string
	Red            string
	Punctuation    string
	ActiveLineNo   string
	InactiveLineNo string
}

// vividDark: purple control flow (#D946EF), crimson literals (#C41E3A)
var vividDark = palette{
	Background:     "#16161E",
	BackgroundAlt:  "#1F2029",
	Surface:        "#24252F",
	LineHighlight:  "#22232D",
	Selection:      "#D946EF33",
	Foreground:     "#E4E4E7",
	ForegroundDim:  "#A1A1AA",
	Comment:        "#71717A",
	Cursor:         "#F0ABFC",
	Border:         "#2E2F3A",
	Purple:         "#D946EF",
	Crimson:        "#C41E3A",
	Blue:           "#60A5FA",
	Cyan:           "#22D3EE",
	Green:          "#4ADE80",
	Amber:          "#FBBF24",
	Orange:         "#FB923C",
	Red:            "#F87171",
	Punctuation:    "#9CA3AF",
	ActiveLineNo:   "#E4E4E7",
	InactiveLineNo: "#52525B",
}

var vividLight = palette{
	Background:     "#FAFAFA",
	BackgroundAlt:  "#F1F1F4",
	Surface:        "#FFFFFF",
	LineHighlight:  "#F4F4F5",
	Selection:      "#A21CAF26",
	Foreground:     "#27272A",
	ForegroundDim:  "#52525B",
	Comment:        "#71717A",
	Cursor:         "#A21CAF",
	Border:         "#E4E4E7",
	Purple:         "#A21CAF",
	Crimson:        "#C41E3A",
	Blue:           "#1D4ED8",
	Cyan:           "#0E7490",
	Green:          "#15803D",
	Amber:          "#B45309",
	Orange:         "#C2410C",
	Red:            "#DC2626",
	Punctuation:    "#6B7280",
	ActiveLineNo:   "#27272A",
	InactiveLineNo: "#A1A1AA",
}

func (p palette) uiColors() map[string]string {
	return map[string]string{
		"foreground":                          p.Foreground,
		"focusBorder":                         p.Purple,
		"descriptionForeground":               p.ForegroundDim,
		"errorForeground":                     p.Red,
		"textLink.foreground":                 p.Blue,
		"editor.background":                   p.Background,
		"editor.foreground":                   p.Foreground,
		"editor.lineHighlightBackground":      p.LineHighlight,
		"editor.selectionBackground":          p.Selection,
		"editor.findMatchBackground":          p.Amber + "66",
		"editor.findMatchHighlightBackground": p.Amber + "33",
		"editorCursor.foreground":             p.Cursor,
		"editorWhitespace.foreground":         p.Border,
		"editorIndentGuide.background1":       p.Border,
		"editorIndentGuide.activeBackground1": p.ForegroundDim,
		"editorLineNumber.foreground":         p.InactiveLineNo,
		"editorLineNumber.activeForeground":   p.ActiveLineNo,
		"editorBracketMatch.border":           p.Purple,
		"editorError.foreground":              p.Red,
		"editorWarning.foreground":            p.Amber,
		"editorWidget.background":             p.BackgroundAlt,
		"editorWidget.border":                 p.Border,
		"activityBar.background":              p.BackgroundAlt,
		"activityBar.foreground":              p.Foreground,
		"activityBarBadge.background":         p.Purple,
		"activityBarBadge.foreground":         "#FFFFFF",
		"sideBar.background":                  p.BackgroundAlt,
		"sideBar.foreground":                  p.ForegroundDim,
		"statusBar.background":                p.BackgroundAlt,
		"statusBar.foreground":                p.ForegroundDim,
		"titleBar.activeBackground":           p.BackgroundAlt,
		"titleBar.activeForeground":           p.Foreground,
		"tab.activeBackground":                p.Background,
		"tab.activeForeground":                p.Foreground,
		"tab.inactiveBackground":              p.BackgroundAlt,
		"tab.inactiveForeground":              p.ForegroundDim,
		"tab.border":                          p.Border,
		"panel.background":                    p.BackgroundAlt,
		"panel.border":                        p.Border,
		"terminal.foreground":                 p.Foreground,
		"terminal.ansiRed":                    p.Red,
		"terminal.ansiGreen":                  p.Green,
		"terminal.ansiYellow":                 p.Amber,
		"terminal.ansiBlue":                   p.Blue,
		"terminal.ansiMagenta":                p.Purple,
		"terminal.ansiCyan":                   p.Cyan,
		"input.background":                    p.Surface,
		"input.border":                        p.Border,
		"button.background":                   p.Purple,
		"button.foreground":                   "#FFFFFF",
		"list.activeSelectionBackground":      p.Selection,
		"list.hoverBackground":                p.LineHighlight,
		"badge.background":                    p.Purple,
		"badge.foreground":                    "#FFFFFF",
		"scrollbarSlider.background":          p.Border + "99",

		"gitDecoration.modifiedResourceForeground":  p.Amber,
		"gitDecoration.untrackedResourceForeground": p.Green,
		"gitDecoration.deletedResourceForeground":   p.Red,
	}
}

func rule(name string, scope []string, fg, fontStyle string) TokenColorRule {
	return TokenColorRule{
		Name:     name,
		Scope:    ScopeList(scope),
		Settings: Settings{Foreground: fg, FontStyle: fontStyle},
	}
}

// tokenColors lists general selectors before specific ones so the file reads in
// the same order the resolver ranks them.
func (p palette) tokenColors() []TokenColorRule {
	return []TokenColorRule{
		rule("Comments", []string{"comment", "punctuation.definition.comment"}, p.Comment, "italic"),
		rule("Strings", []string{"string", "string.quoted", "punctuation.definition.string"}, p.Crimson, ""),
		rule("String escapes", []string{"constant.character.escape", "constant.other.placeholder"}, p.Amber, ""),
		rule("Regular expressions", []string{"string.regexp"}, p.Orange, ""),
		rule("Keywords", []string{"keyword", "storage.modifier"}, p.Blue, ""),
		rule("Control flow", []string{"keyword.control", "keyword.other.important"}, p.Purple, ""),
		rule("Operators", []string{"keyword.operator", "punctuation.accessor"}, p.Cyan, ""),
		rule("Storage types", []string{"storage", "storage.type"}, p.Blue, "italic"),
		rule("Numbers", []string{"constant.numeric"}, p.Amber, ""),
		rule("Language constants", []string{"constant.language", "support.constant"}, p.Amber, "bold"),
		rule("Other constants", []string{"variable.other.constant", "constant.other"}, p.Orange, ""),
		rule("Functions", []string{"entity.name.function", "support.function", "meta.function-call entity.name.function"}, p.Green, ""),
		rule("Types", []string{"entity.name.type", "entity.name.class", "support.type", "support.class"}, p.Cyan, ""),
		rule("Namespaces", []string{"entity.name.namespace", "entity.name.package"}, p.ForegroundDim, ""),
		rule("Variables", []string{"variable", "variable.other"}, p.Foreground, ""),
		rule("Parameters", []string{"variable.parameter"}, p.Orange, "italic"),
		rule("Language variables", []string{"variable.language"}, p.Purple, "italic"),
		rule("Decorators", []string{"meta.decorator", "entity.name.function.decorator"}, p.Amber, "italic"),
		rule("Preprocessor", []string{"meta.preprocessor", "keyword.control.directive"}, p.Purple, "bold"),
		rule("Tags", []string{"entity.name.tag"}, p.Purple, ""),
		rule("Attributes", []string{"entity.other.attribute-name"}, p.Amber, "italic"),
		rule("Punctuation", []string{"punctuation", "meta.brace"}, p.Punctuation, ""),
		rule("Invalid", []string{"invalid", "invalid.illegal"}, p.Red, "underline"),
		rule("Deprecated", []string{"invalid.deprecated"}, p.Amber, "strikethrough"),
		rule("Markup headings", []string{"markup.heading", "entity.name.section"}, p.Purple, "bold"),
		rule("Markup emphasis", []string{"markup.italic"}, p.Foreground, "italic"),
		rule("Markup strong", []string{"markup.bold"}, p.Foreground, "bold"),
		rule("Markup links", []string{"markup.underline.link"}, p.Blue, "underline"),
		rule("Markup inserted", []string{"markup.inserted"}, p.Green, ""),
		rule("Markup deleted", []string{"markup.deleted"}, p.Red, ""),
	}
}

func (p palette) theme(name string, v Variant) *Theme {
	return &Theme{
		Schema:      DefaultSchema,
		Name:        name,
		Type:        v,
		Colors:      p.uiColors(),
		TokenColors: p.tokenColors(),
	}
}

// Builtin returns a fresh copy of the shipped definition for a variant.
func Builtin(v Variant) (*Theme, error) {
	switch v {
	case Dark:
		return vividDark.theme("Vivid Dark", Dark), nil
	case Light:
		return vividLight.theme("Vivid Light", Light), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
}

// MustBuiltin is Builtin for the two known variants.
func MustBuiltin(v Variant) *Theme {
	t, err := Builtin(v)
	if err != nil {
		panic(err)
	}
	return t
}
