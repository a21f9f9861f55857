package theme

import (
	"fmt"
	"regexp"
	"strings"
)

var scopeNameRegex = regexp.MustCompile(`^[A-Za-z0-9_+\-]+(?:\.[A-Za-z0-9_+\-]+)*$`)

// Selector is one compiled scope selector path, e.g. "meta.function keyword.control".
// Path holds the names outermost first; the last name targets the innermost scope.
type Selector struct {
	Text string
	Path []string
}

// ParseSelector compiles a single selector (no commas).
func ParseSelector(text string) (Selector, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Selector{}, fmt.Errorf("%w: empty selector", ErrInvalidSelector)
	}
	if strings.ContainsAny(text, "()|,") {
		return Selector{}, fmt.Errorf("%w: %q: grouping, alternation and lists are not supported here", ErrInvalidSelector, text)
	}
	names := strings.Fields(text)
	for _, name := range names {
		if strings.HasPrefix(name, "-") {
			return Selector{}, fmt.Errorf("%w: %q: exclusion selectors are not supported", ErrInvalidSelector, text)
		}
		if !scopeNameRegex.MatchString(name) {
			return Selector{}, fmt.Errorf("%w: %q: malformed scope name %q", ErrInvalidSelector, text, name)
		}
	}
	return Selector{Text: strings.Join(names, " "), Path: names}, nil
}

// ParseSelectors compiles every selector in a rule's scope list.
func ParseSelectors(scope ScopeList) ([]Selector, error) {
	texts := scope.Selectors()
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: rule has no scope", ErrInvalidSelector)
	}
	out := make([]Selector, 0, len(texts))
	for _, text := range texts {
		sel, err := ParseSelector(text)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}
	return out, nil
}

// scopeMatches reports whether selector name n matches scope s:
// s equals n, or s continues n with further dot segments.
func scopeMatches(n, s string) bool {
	if !strings.HasPrefix(s, n) {
		return false
	}
	return len(s) == len(n) || s[len(n)] == '.'
}

func segments(name string) int {
	return strings.Count(name, ".") + 1
}

// Specificity orders matches; compare with Compare.
type Specificity struct {
	// Depth is the segment count of the name matched against the innermost scope.
	Depth int
	// Parents holds the segment counts of the ancestor names, innermost first.
	Parents []int
	// Index is the rule position in the theme.
	Index int
}

// Compare returns -1, 0 or +1 as a is less, equally or more specific than b.
func (a Specificity) Compare(b Specificity) int {
	if c := cmpInt(a.Depth, b.Depth); c != 0 {
		return c
	}
	if c := cmpInt(len(a.Parents), len(b.Parents)); c != 0 {
		return c
	}
	for i := range a.Parents {
		if c := cmpInt(a.Parents[i], b.Parents[i]); c != 0 {
			return c
		}
	}
	return cmpInt(a.Index, b.Index)
}

// Tie reports whether a and b differ only by rule position.
func (a Specificity) Tie(b Specificity) bool {
	a.Index, b.Index = 0, 0
	return a.Compare(b) == 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Match tests the selector against a scope stack (outermost first).
// The last path name must match the innermost scope; the remaining names must
// match ancestors in order, skipping unmatched ancestors.
func (s Selector) Match(stack []string, index int) (Specificity, bool) {
	if len(stack) == 0 || len(s.Path) == 0 {
		return Specificity{}, false
	}
	target := s.Path[len(s.Path)-1]
	if !scopeMatches(target, stack[len(stack)-1]) {
		return Specificity{}, false
	}
	spec := Specificity{Depth: segments(target), Index: index}

	si := len(stack) - 2
	for pi := len(s.Path) - 2; pi >= 0; pi-- {
		name := s.Path[pi]
		for si >= 0 && !scopeMatches(name, stack[si]) {
			si--
		}
		if si < 0 {
			return Specificity{}, false
		}
		spec.Parents = append(spec.Parents, segments(name))
		si--
	}
	return spec, true
}
