package theme

import (
	"slices"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// knownUIKeys is the subset of the editor's workbench color keys this theme and
// its validator recognize. Unknown keys are reported as warnings, not errors,
// because the editor silently ignores them.
var knownUIKeys = []string{
	"foreground",
	"focusBorder",
	"descriptionForeground",
	"errorForeground",
	"selection.background",
	"widget.shadow",
	"textLink.foreground",
	"textLink.activeForeground",

	"editor.background",
	"editor.foreground",
	"editor.lineHighlightBackground",
	"editor.lineHighlightBorder",
	"editor.selectionBackground",
	"editor.selectionHighlightBackground",
	"editor.inactiveSelectionBackground",
	"editor.wordHighlightBackground",
	"editor.wordHighlightStrongBackground",
	"editor.findMatchBackground",
	"editor.findMatchHighlightBackground",
	"editor.rangeHighlightBackground",
	"editorCursor.foreground",
	"editorCursor.background",
	"editorWhitespace.foreground",
	"editorIndentGuide.background1",
	"editorIndentGuide.activeBackground1",
	"editorLineNumber.foreground",
	"editorLineNumber.activeForeground",
	"editorBracketMatch.background",
	"editorBracketMatch.border",
	"editorError.foreground",
	"editorWarning.foreground",
	"editorInfo.foreground",
	"editorGutter.background",
	"editorWidget.background",
	"editorWidget.border",
	"editorSuggestWidget.background",
	"editorSuggestWidget.selectedBackground",
	"editorHoverWidget.background",
	"editorGroupHeader.tabsBackground",

	"activityBar.background",
	"activityBar.foreground",
	"activityBar.inactiveForeground",
	"activityBarBadge.background",
	"activityBarBadge.foreground",
	"sideBar.background",
	"sideBar.foreground",
	"sideBarTitle.foreground",
	"sideBarSectionHeader.background",
	"statusBar.background",
	"statusBar.foreground",
	"statusBar.debuggingBackground",
	"statusBar.noFolderBackground",
	"titleBar.activeBackground",
	"titleBar.activeForeground",
	"titleBar.inactiveBackground",
	"tab.activeBackground",
	"tab.activeForeground",
	"tab.inactiveBackground",
	"tab.inactiveForeground",
	"tab.border",
	"panel.background",
	"panel.border",
	"terminal.background",
	"terminal.foreground",
	"terminal.ansiBlack",
	"terminal.ansiRed",
	"terminal.ansiGreen",
	"terminal.ansiYellow",
	"terminal.ansiBlue",
	"terminal.ansiMagenta",
	"terminal.ansiCyan",
	"terminal.ansiWhite",
	"input.background",
	"input.foreground",
	"input.border",
	"button.background",
	"button.foreground",
	"button.hoverBackground",
	"list.activeSelectionBackground",
	"list.activeSelectionForeground",
	"list.hoverBackground",
	"list.inactiveSelectionBackground",
	"badge.background",
	"badge.foreground",
	"scrollbarSlider.background",
	"scrollbarSlider.hoverBackground",
	"scrollbarSlider.activeBackground",
	"gitDecoration.modifiedResourceForeground",
	"gitDecoration.untrackedResourceForeground",
	"gitDecoration.deletedResourceForeground",
}

var knownUIKeySet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(knownUIKeys))
	for _, k := range knownUIKeys {
		m[k] = struct{}{}
	}
	return m
}()

// KnownUIKeys returns the recognized UI color keys, sorted.
func KnownUIKeys() []string {
	out := slices.Clone(knownUIKeys)
	sort.Strings(out)
	return out
}

// IsKnownUIKey reports whether key is a recognized UI color key.
func IsKnownUIKey(key string) bool {
	_, ok := knownUIKeySet[key]
	return ok
}

// SuggestUIKey returns the closest recognized key for a misspelled one, or "".
func SuggestUIKey(key string) string {
	ranks := fuzzy.RankFindFold(key, knownUIKeys)
	if len(ranks) == 0 {
		// fall back to edit distance against every key
		best, bestDist := "", -1
		for _, k := range knownUIKeys {
			d := fuzzy.LevenshteinDistance(key, k)
			if bestDist < 0 || d < bestDist {
				best, bestDist = k, d
			}
		}
		if bestDist >= 0 && bestDist <= len(key)/3+1 {
			return best
		}
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
