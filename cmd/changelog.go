package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yeisme/vivid/pkg/changelog"
	"github.com/yeisme/vivid/pkg/configs"
	"github.com/yeisme/vivid/pkg/style"
)

var (
	changelogFile  string
	changelogCheck bool
	changelogLimit int

	changelogCmd = &cobra.Command{
		Use:   "changelog",
		Short: "Render or check the theme changelog",
		Long: `vivid changelog renders CHANGELOG.md in the terminal. With --check it verifies
that every release heading carries a semantic version and a valid date, and
that releases are listed newest first.

Examples:
  vivid changelog --limit 2
  vivid changelog --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			releases, err := changelog.ParseFile(changelogFile)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if changelogCheck {
				latest, err := changelog.Latest(releases)
				if err != nil {
					return err
				}
				log.Debug().Int("releases", len(releases)).Str("latest", latest.Version).Msg("changelog checked")
				return style.PrintStatus(out, true, fmt.Sprintf("%s: %d releases, latest %s", changelogFile, len(releases), latest.Version))
			}

			format := configs.GetOutputFormatFromFlags(cmd)
			if format != configs.FormatText {
				if changelogLimit > 0 && changelogLimit < len(releases) {
					releases = releases[:changelogLimit]
				}
				return configs.OutputData(releases, format, out, vividCtx.Color())
			}

			md := changelog.Markdown(releases, changelogLimit)
			if !vividCtx.Color() {
				_, err := fmt.Fprint(out, md)
				return err
			}
			d := vividCtx.Config.Display
			return style.RenderMarkdown(out, md, d.Width, d.MarkdownStyle)
		},
	}
)

func init() {
	rootCmd.AddCommand(changelogCmd)

	configs.AddOutputFlags(changelogCmd, configs.FormatText)
	changelogCmd.Flags().StringVar(&changelogFile, "file", "CHANGELOG.md", "Changelog file")
	changelogCmd.Flags().BoolVar(&changelogCheck, "check", false, "Validate versions, dates and ordering")
	changelogCmd.Flags().IntVarP(&changelogLimit, "limit", "n", 0, "Show only the newest N sections")
}
