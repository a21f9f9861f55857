package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Severity 校验问题的严重级别
type Severity string

const (
	// SeverityError marks issues the editor rejects or silently drops.
	SeverityError Severity = "error"
	// SeverityWarning marks issues that load but are probably mistakes.
	SeverityWarning Severity = "warning"
)

// Issue is one validation finding.
type Issue struct {
	Severity Severity `json:"severity" yaml:"severity" toml:"severity"`
	Path     string   `json:"path" yaml:"path" toml:"path"`
	Message  string   `json:"message" yaml:"message" toml:"message"`
}

// String implements fmt.Stringer.
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Path, i.Message)
}

// Report collects the findings for one theme.
type Report struct {
	Theme  string  `json:"theme" yaml:"theme" toml:"theme"`
	Issues []Issue `json:"issues" yaml:"issues" toml:"issues"`
}

// Errors returns the error-level issues.
func (r Report) Errors() []Issue { return r.filter(SeverityError) }

// Warnings returns the warning-level issues.
func (r Report) Warnings() []Issue { return r.filter(SeverityWarning) }

func (r Report) filter(s Severity) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}

// Err returns nil when the report has no errors (or, when strict, no issues at
// all); otherwise the joined issues.
func (r Report) Err(strict bool) error {
	var errs []error
	for _, i := range r.Issues {
		if i.Severity == SeverityError || strict {
			errs = append(errs, errors.New(i.String()))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("theme %q: %w", r.Theme, errors.Join(errs...))
}

func (r *Report) add(s Severity, path, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Severity: s, Path: path, Message: fmt.Sprintf(format, args...)})
}

// ValidateOptions tunes the optional checks.
type ValidateOptions struct {
	// MinContrast is the minimum WCAG contrast ratio between a rule's foreground
	// and editor.background; zero disables the check.
	MinContrast float64
	// AllowUnknownKeys suppresses warnings for unrecognized UI keys.
	AllowUnknownKeys bool
}

// Validate runs the authoring checks on a theme table.
func Validate(t *Theme, opts ValidateOptions) Report {
	r := Report{Theme: t.Name}

	if strings.TrimSpace(t.Name) == "" {
		r.add(SeverityError, "name", "theme name is empty")
	}
	if _, err := ParseVariant(string(t.Type)); err != nil {
		r.add(SeverityError, "type", "%v", err)
	}

	for _, key := range t.ColorKeys() {
		path := "colors." + key
		if _, err := ParseColor(t.Colors[key]); err != nil {
			r.add(SeverityError, path, "%v", err)
		}
		if !opts.AllowUnknownKeys && !IsKnownUIKey(key) {
			if s := SuggestUIKey(key); s != "" {
				r.add(SeverityWarning, path, "unrecognized UI color key (did you mean %q?)", s)
			} else {
				r.add(SeverityWarning, path, "unrecognized UI color key")
			}
		}
	}

	var bg Color
	bgOK := false
	if c, err := ParseColor(t.DefaultBackground()); err == nil {
		bg, bgOK = c, true
	}

	seen := make(map[string]int)
	for i, rule := range t.TokenColors {
		path := fmt.Sprintf("tokenColors[%d]", i)
		if rule.Name != "" {
			path += " (" + rule.Name + ")"
		}

		if len(rule.Scope.Selectors()) == 0 {
			r.add(SeverityError, path+".scope", "scope selector is empty")
		}
		for _, text := range rule.Scope.Selectors() {
			sel, err := ParseSelector(text)
			if err != nil {
				r.add(SeverityError, path+".scope", "%v", err)
				continue
			}
			if prev, ok := seen[sel.Text]; ok {
				r.add(SeverityWarning, path+".scope", "selector %q already used by tokenColors[%d]; this rule overrides it", sel.Text, prev)
			}
			seen[sel.Text] = i
		}

		if rule.Settings.IsZero() {
			r.add(SeverityWarning, path+".settings", "rule sets no attributes")
		}
		for _, f := range []struct{ name, value string }{
			{"foreground", rule.Settings.Foreground},
			{"background", rule.Settings.Background},
		} {
			if f.value == "" {
				continue
			}
			if _, err := ParseColor(f.value); err != nil {
				r.add(SeverityError, path+".settings."+f.name, "%v", err)
			}
		}
		if _, err := ParseFontStyle(rule.Settings.FontStyle); err != nil {
			r.add(SeverityError, path+".settings.fontStyle", "%v", err)
		}

		if opts.MinContrast > 0 && bgOK && rule.Settings.Foreground != "" {
			if fg, err := ParseColor(rule.Settings.Foreground); err == nil {
				ratio := ContrastRatio(fg.BlendOver(bg), bg)
				if ratio < opts.MinContrast {
					r.add(SeverityWarning, path+".settings.foreground", "contrast %.2f:1 against %s is below %.2f:1", ratio, bg, opts.MinContrast)
				}
			}
		}
	}
	return r
}
