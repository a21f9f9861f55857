package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yeisme/vivid/pkg/configs"
	"github.com/yeisme/vivid/pkg/highlight"
	"github.com/yeisme/vivid/pkg/style"
)

var (
	inspectVariant string

	inspectCmd = &cobra.Command{
		Use:   "inspect [files...]",
		Short: "Show how the theme colors every scope found in sample sources",
		Long: `vivid inspect tokenizes sample source files, maps each token to a TextMate
scope and reports the color every variant gives it. Without arguments the
theme.fixtures globs from the config are used.

Examples:
  vivid inspect
  vivid inspect main.go lexer.py --variant dark
  vivid inspect -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandFixtures(args, vividCtx.Config.Theme.Fixtures)
			if err != nil {
				return err
			}

			reg, err := vividCtx.Registry()
			if err != nil {
				return err
			}
			variant := inspectVariant
			if variant == "" {
				variant = "all"
			}
			variants, err := selectVariants(reg, variant)
			if err != nil {
				return err
			}
			resolvers, err := resolversFor(reg, variants)
			if err != nil {
				return err
			}

			sources := make([]*highlight.Source, 0, len(paths))
			for _, p := range paths {
				src, err := highlight.TokenizeFile(p)
				if err != nil {
					return err
				}
				log.Debug().Str("file", p).Str("language", src.Language).Int("tokens", len(src.Tokens)).Msg("tokenized")
				sources = append(sources, src)
			}

			rep := highlight.Inspect(sources, resolvers...)
			for _, amb := range rep.Ambiguous() {
				log.Warn().Str("variant", string(amb.Variant)).Str("scope", amb.Scope).Int("ties", amb.Ties).Msg("rules of equal specificity disagree; the later rule wins")
			}

			out := cmd.OutOrStdout()
			format := configs.GetOutputFormatFromFlags(cmd)
			switch format {
			case configs.FormatText:
				files := make([]any, 0, len(rep.Files))
				for _, f := range rep.Files {
					files = append(files, f)
				}
				if err := style.PrintList(out, files...); err != nil {
					return err
				}
				fallthrough
			case configs.FormatTable:
				return style.PrintTabular(out, rep, style.DetectTerminalWidth(out))
			}
			return configs.OutputData(rep, format, out, vividCtx.Color())
		},
	}
)

// expandFixtures 展开参数或配置中的 glob，返回去重后的文件列表
func expandFixtures(args, globs []string) ([]string, error) {
	patterns := args
	if len(patterns) == 0 {
		patterns = globs
	}
	if len(patterns) == 0 {
		return nil, errors.New("no source files given and theme.fixtures is empty")
	}
	seen := make(map[string]struct{})
	var out []string
	for _, pat := range patterns {
		matches, err := filepath.Glob(pat)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pat, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no files match %v", patterns)
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	configs.AddOutputFlags(inspectCmd, configs.FormatTable)
	inspectCmd.Flags().StringVar(&inspectVariant, "variant", "", "Variants to inspect (dark, light, all); default all")
}
