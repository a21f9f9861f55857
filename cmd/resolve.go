package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"github.com/yeisme/vivid/pkg/configs"
	"github.com/yeisme/vivid/pkg/highlight"
	"github.com/yeisme/vivid/pkg/style"
	"github.com/yeisme/vivid/pkg/theme"
)

type matchInfo struct {
	Rule        int    `json:"rule" yaml:"rule" toml:"rule"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Selector    string `json:"selector" yaml:"selector" toml:"selector"`
	Foreground  string `json:"foreground,omitempty" yaml:"foreground,omitempty" toml:"foreground,omitempty"`
	FontStyle   string `json:"font_style,omitempty" yaml:"font_style,omitempty" toml:"font_style,omitempty"`
	Specificity string `json:"specificity" yaml:"specificity" toml:"specificity"`
}

type resolveResult struct {
	Variant    theme.Variant `json:"variant" yaml:"variant" toml:"variant"`
	Stack      string        `json:"stack" yaml:"stack" toml:"stack"`
	Foreground string        `json:"foreground" yaml:"foreground" toml:"foreground"`
	Background string        `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`
	FontStyle  string        `json:"font_style,omitempty" yaml:"font_style,omitempty" toml:"font_style,omitempty"`
	Selector   string        `json:"selector,omitempty" yaml:"selector,omitempty" toml:"selector,omitempty"`
	Default    bool          `json:"default" yaml:"default" toml:"default"`
	Matches    []matchInfo   `json:"matches,omitempty" yaml:"matches,omitempty" toml:"matches,omitempty"`
}

type resolveResults []resolveResult

func (r resolveResults) Headers() []string {
	return []string{"variant", "stack", "foreground", "font style", "selector"}
}

func (r resolveResults) Rows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, res := range r {
		sel := res.Selector
		if res.Default {
			sel = "(default)"
		}
		rows = append(rows, []string{string(res.Variant), res.Stack, res.Foreground, res.FontStyle, sel})
	}
	return rows
}

func specString(s theme.Specificity) string {
	parents := make([]string, len(s.Parents))
	for i, p := range s.Parents {
		parents[i] = fmt.Sprint(p)
	}
	return fmt.Sprintf("depth=%d parents=[%s] rule=%d", s.Depth, strings.Join(parents, ","), s.Index)
}

func resolveOne(r *theme.Resolver, stack string, explain bool) resolveResult {
	st := r.ResolveScope(stack)
	res := resolveResult{
		Variant:    r.Theme().Type,
		Stack:      stack,
		Foreground: st.Foreground,
		Background: st.Background,
		FontStyle:  st.FontStyle.String(),
		Selector:   st.Selector,
		Default:    st.Default,
	}
	if explain {
		for _, m := range r.Explain(strings.Fields(stack)...) {
			res.Matches = append(res.Matches, matchInfo{
				Rule:        m.Rule,
				Name:        m.Name,
				Selector:    m.Selector,
				Foreground:  m.Settings.Foreground,
				FontStyle:   m.Settings.FontStyle,
				Specificity: specString(m.Specificity),
			})
		}
	}
	return res
}

func printResolveText(w io.Writer, results resolveResults, explain bool) error {
	for _, res := range results {
		sel := res.Selector
		if res.Default {
			sel = "(default foreground)"
		}
		line := fmt.Sprintf("%s  %s  %s", res.Variant, res.Stack, res.Foreground)
		if res.FontStyle != "" {
			line += " " + res.FontStyle
		}
		if err := style.PrintSwatches(w, "", []style.Swatch{{Name: string(res.Variant) + "  " + res.Stack, Hex: res.Foreground, Note: strings.TrimSpace(res.FontStyle + "  " + sel)}}); err != nil {
			return err
		}
		if !explain {
			continue
		}
		node := style.TreeNode{Text: line}
		for _, m := range res.Matches {
			text := fmt.Sprintf("%s  %s", m.Selector, m.Foreground)
			if m.Name != "" {
				text += "  (" + m.Name + ")"
			}
			node.Children = append(node.Children, style.TreeNode{
				Text:     text,
				Children: []style.TreeNode{{Text: m.Specificity}},
			})
		}
		if len(node.Children) == 0 {
			node.Children = []style.TreeNode{{Text: "no rule matches"}}
		}
		if err := style.PrintTree(w, node); err != nil {
			return err
		}
	}
	return nil
}

// candidateScopes 收集交互选择的候选作用域：主题选择器的最内层名称与分词器可产生的作用域
func candidateScopes(resolvers []*theme.Resolver) []string {
	seen := make(map[string]struct{})
	for _, s := range highlight.KnownScopes() {
		seen[s] = struct{}{}
	}
	for _, r := range resolvers {
		for _, rule := range r.Theme().TokenColors {
			for _, sel := range rule.Scope.Selectors() {
				if f := strings.Fields(sel); len(f) > 0 {
					seen[f[len(f)-1]] = struct{}{}
				}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func pickScopes(resolvers []*theme.Resolver) ([]string, error) {
	candidates := candidateScopes(resolvers)
	idx, err := fuzzyfinder.FindMulti(candidates,
		func(i int) string { return candidates[i] },
		fuzzyfinder.WithPromptString("scope> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 {
				return ""
			}
			var b strings.Builder
			for _, r := range resolvers {
				st := r.ResolveScope(candidates[i])
				fmt.Fprintf(&b, "%s\n  foreground: %s\n", r.Theme().Name, st.Foreground)
				if fs := st.FontStyle.String(); fs != "" {
					fmt.Fprintf(&b, "  font style: %s\n", fs)
				}
				if st.Default {
					b.WriteString("  (default foreground)\n")
				} else {
					fmt.Fprintf(&b, "  selector:   %s\n", st.Selector)
				}
			}
			return b.String()
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, candidates[i])
	}
	return out, nil
}

var (
	resolveVariant     string
	resolveExplain     bool
	resolveInteractive bool

	resolveCmd = &cobra.Command{
		Use:   "resolve [scope stack...]",
		Short: "Resolve TextMate scopes to their effective colors",
		Long: `vivid resolve prints the foreground, font style and winning selector for each
scope stack. A stack is one argument with space-separated scopes, outermost
first; quote it to pass more than one scope.

Examples:
  vivid resolve keyword.control
  vivid resolve string.quoted --variant all
  vivid resolve "source.go meta.function-call entity.name.function" --explain
  vivid resolve -i                       # pick scopes interactively`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := vividCtx.Registry()
			if err != nil {
				return err
			}
			variants, err := selectVariants(reg, resolveVariant)
			if err != nil {
				return err
			}
			resolvers, err := resolversFor(reg, variants)
			if err != nil {
				return err
			}

			stacks := args
			if resolveInteractive {
				picked, err := pickScopes(resolvers)
				if err != nil {
					return err
				}
				stacks = append(stacks, picked...)
			}
			if len(stacks) == 0 {
				return errors.New("no scope given (pass a scope or use -i)")
			}

			var results resolveResults
			for _, stack := range stacks {
				for _, r := range resolvers {
					results = append(results, resolveOne(r, stack, resolveExplain))
				}
			}

			format := configs.GetOutputFormatFromFlags(cmd)
			if format == configs.FormatText {
				return printResolveText(cmd.OutOrStdout(), results, resolveExplain)
			}
			return configs.OutputData(results, format, cmd.OutOrStdout(), vividCtx.Color())
		},
	}
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	configs.AddOutputFlags(resolveCmd, configs.FormatText)
	resolveCmd.Flags().StringVar(&resolveVariant, "variant", "", "Variant to resolve against (dark, light, all); default from config")
	resolveCmd.Flags().BoolVarP(&resolveExplain, "explain", "e", false, "List every matching rule, most specific first")
	resolveCmd.Flags().BoolVarP(&resolveInteractive, "interactive", "i", false, "Pick scopes with a fuzzy finder")
}
