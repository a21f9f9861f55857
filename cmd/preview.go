package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yeisme/vivid/pkg/highlight"
	"github.com/yeisme/vivid/pkg/style"
)

var (
	previewVariant     string
	previewLineNumbers bool
	previewWidth       int
	previewBackground  bool

	previewCmd = &cobra.Command{
		Use:   "preview <file>",
		Short: "Print a source file colored with the theme",
		Long: `vivid preview renders a source file in the terminal with every token colored
by the selected variant. Needs a true color terminal for exact colors.

Examples:
  vivid preview testdata/sample.go
  vivid preview main.py --variant light --background -n`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := vividCtx.Registry()
			if err != nil {
				return err
			}
			variants, err := selectVariants(reg, previewVariant)
			if err != nil {
				return err
			}
			resolvers, err := resolversFor(reg, variants)
			if err != nil {
				return err
			}
			src, err := highlight.TokenizeFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			width := previewWidth
			if width == 0 {
				width = style.DetectTerminalWidth(out)
			}
			for _, r := range resolvers {
				if len(resolvers) > 1 {
					if err := style.PrintHeading(out, r.Theme().Name); err != nil {
						return err
					}
				}
				opts := highlight.RenderOptions{
					LineNumbers: previewLineNumbers,
					Width:       width,
					Background:  previewBackground,
				}
				if err := highlight.Render(out, src, r, opts); err != nil {
					return err
				}
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewVariant, "variant", "", "Variant to render with (dark, light, all); default from config")
	previewCmd.Flags().BoolVarP(&previewLineNumbers, "line-numbers", "n", false, "Show line numbers")
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 0, "Truncate lines to this many cells (default terminal width)")
	previewCmd.Flags().BoolVar(&previewBackground, "background", false, "Paint the editor background")
}
