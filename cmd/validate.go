package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yeisme/vivid/pkg/build"
	"github.com/yeisme/vivid/pkg/configs"
	"github.com/yeisme/vivid/pkg/style"
	"github.com/yeisme/vivid/pkg/theme"
)

var (
	validateStrict      bool
	validateMinContrast float64
	validateAllowKeys   bool

	validateCmd = &cobra.Command{
		Use:   "validate [theme files...]",
		Short: "Check theme documents for invalid colors, selectors and keys",
		Long: `vivid validate checks every color value, font style, scope selector and UI key.
Without arguments it validates the registered variants (builtin, overlaid by
theme.source_dir). Errors always fail; warnings fail only with --strict.

Examples:
  vivid validate
  vivid validate themes/vivid-dark-color-theme.json --strict
  vivid validate --min-contrast 4.5 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := theme.ValidateOptions{
				MinContrast:      vividCtx.Config.Theme.MinContrast,
				AllowUnknownKeys: validateAllowKeys,
			}
			if cmd.Flags().Changed("min-contrast") {
				opts.MinContrast = validateMinContrast
			}
			strict := vividCtx.Config.Theme.Strict || validateStrict

			var reports []theme.Report
			var loadErrs []error
			if len(args) == 0 {
				reg, err := vividCtx.Registry()
				if err != nil {
					return err
				}
				for _, v := range reg.Variants() {
					t, err := reg.Get(v)
					if err != nil {
						return err
					}
					rep := theme.Validate(t, opts)
					rep.Theme = fmt.Sprintf("%s (%s)", t.Name, reg.Source(v))
					reports = append(reports, rep)
				}
			} else {
				for _, path := range args {
					t, err := theme.LoadFile(path)
					if err != nil {
						loadErrs = append(loadErrs, err)
						reports = append(reports, theme.Report{
							Theme:  path,
							Issues: []theme.Issue{{Severity: theme.SeverityError, Path: path, Message: err.Error()}},
						})
						continue
					}
					rep := theme.Validate(t, opts)
					rep.Theme = path
					reports = append(reports, rep)
				}
			}

			failed := 0
			for _, rep := range reports {
				if rep.Err(strict) != nil {
					failed++
				}
			}

			format := configs.GetOutputFormatFromFlags(cmd)
			if format != configs.FormatText {
				if err := configs.OutputData(reports, format, cmd.OutOrStdout(), vividCtx.Color()); err != nil {
					return err
				}
			} else if err := printReports(cmd, reports, strict); err != nil {
				return err
			}

			log.Debug().Int("themes", len(reports)).Int("failed", failed).Float64("min_contrast", opts.MinContrast).Msg("validation finished")
			if failed > 0 {
				return errors.Join(append(loadErrs, fmt.Errorf("%w: %d of %d themes failed", build.ErrValidation, failed, len(reports)))...)
			}
			return nil
		},
	}
)

func printReports(cmd *cobra.Command, reports []theme.Report, strict bool) error {
	out := cmd.OutOrStdout()
	for _, rep := range reports {
		err := rep.Err(strict)
		if len(rep.Issues) == 0 {
			if err := style.PrintStatus(out, true, rep.Theme+": ok"); err != nil {
				return err
			}
			continue
		}
		msg := fmt.Sprintf("%s: %d errors, %d warnings", rep.Theme, len(rep.Errors()), len(rep.Warnings()))
		if err := style.PrintStatus(out, err == nil, msg); err != nil {
			return err
		}
		issues := make([]style.Issue, 0, len(rep.Issues))
		for _, is := range rep.Issues {
			issues = append(issues, style.Issue{Level: string(is.Severity), Path: is.Path, Message: is.Message})
		}
		if err := style.PrintIssues(out, issues); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)

	configs.AddOutputFlags(validateCmd, configs.FormatText)
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as errors")
	validateCmd.Flags().Float64Var(&validateMinContrast, "min-contrast", 0, "Minimum contrast ratio against editor.background (0 disables)")
	validateCmd.Flags().BoolVar(&validateAllowKeys, "allow-unknown-keys", false, "Do not warn about unrecognized UI color keys")
}
