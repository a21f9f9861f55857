package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/yeisme/vivid/pkg/build"
	"github.com/yeisme/vivid/pkg/configs"
	"github.com/yeisme/vivid/pkg/style"
	"github.com/yeisme/vivid/pkg/theme"
)

type artifactList []build.Artifact

func (a artifactList) Headers() []string {
	return []string{"variant", "name", "source", "path", "bytes", "warnings"}
}

func (a artifactList) Rows() [][]string {
	rows := make([][]string, 0, len(a))
	for _, art := range a {
		rows = append(rows, []string{
			string(art.Variant), art.Name, art.Source, art.Path,
			strconv.Itoa(art.Bytes), strconv.Itoa(len(art.Warnings)),
		})
	}
	return rows
}

var (
	buildVariant   string
	buildFormat    string
	buildOutDir    string
	buildSourceDir string
	buildStrict    bool
	buildNoChecks  bool

	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Write the theme files the extension ships",
		Long: `vivid build validates every selected variant and writes one
<slug>-color-theme file per variant into the output directory. If any
variant fails validation nothing is written.

Examples:
  vivid build
  vivid build --variant dark --out dist
  vivid build --theme-format yaml --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := buildOptions(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			artifacts, err := build.Build(cmd.Context(), opts)
			if err != nil {
				return err
			}
			log.Info().Int("artifacts", len(artifacts)).Dur("elapsed", time.Since(start)).Str("out", opts.OutputDir).Msg("build finished")

			format := configs.GetOutputFormatFromFlags(cmd)
			if format != configs.FormatText {
				return configs.OutputData(artifactList(artifacts), format, cmd.OutOrStdout(), vividCtx.Color())
			}
			out := cmd.OutOrStdout()
			for _, art := range artifacts {
				msg := fmt.Sprintf("%s -> %s (%d bytes)", art.Name, art.Path, art.Bytes)
				if err := style.PrintStatus(out, true, msg); err != nil {
					return err
				}
				if len(art.Warnings) == 0 {
					continue
				}
				issues := make([]style.Issue, 0, len(art.Warnings))
				for _, w := range art.Warnings {
					issues = append(issues, style.Issue{Level: string(w.Severity), Path: w.Path, Message: w.Message})
				}
				if err := style.PrintIssues(out, issues); err != nil {
					return err
				}
			}
			return nil
		},
	}
)

// buildOptions 合并配置与命令行参数，build 与 watch 共用
func buildOptions(cmd *cobra.Command) (build.Options, error) {
	opts := build.OptionsFromConfig(vividCtx.Config.Theme)
	flags := cmd.Flags()
	if flags.Changed("theme-format") {
		f, err := theme.ParseFormat(buildFormat)
		if err != nil {
			return opts, err
		}
		opts.Format = f
	}
	if flags.Changed("out") {
		opts.OutputDir = buildOutDir
	}
	if flags.Changed("source") {
		opts.SourceDir = buildSourceDir
	}
	if buildStrict {
		opts.Strict = true
	}
	if buildNoChecks {
		opts.Validate = theme.ValidateOptions{AllowUnknownKeys: true}
	}
	if buildVariant != "" {
		reg, err := vividCtx.Registry()
		if err != nil {
			return opts, err
		}
		variants, err := selectVariants(reg, buildVariant)
		if err != nil {
			return opts, err
		}
		opts.Variants = variants
	}
	return opts, nil
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&buildVariant, "variant", "", "Variants to build (dark, light, all); default all")
	cmd.Flags().StringVar(&buildFormat, "theme-format", "json", "Theme document format: json, yaml, toml")
	cmd.Flags().StringVar(&buildOutDir, "out", "", "Output directory (default theme.output_dir)")
	cmd.Flags().StringVar(&buildSourceDir, "source", "", "Theme source directory (default theme.source_dir)")
	cmd.Flags().BoolVar(&buildStrict, "strict", false, "Fail on validation warnings")
	cmd.Flags().BoolVar(&buildNoChecks, "no-checks", false, "Skip the optional contrast and unknown UI key checks")
}

func init() {
	rootCmd.AddCommand(buildCmd)

	configs.AddOutputFlags(buildCmd, configs.FormatText)
	addBuildFlags(buildCmd)
}
