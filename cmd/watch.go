package cmd

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/vivid/pkg/build"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the theme files whenever a theme source changes",
	Long: `vivid watch builds once, then watches theme.source_dir (or app.hotload.dir)
and rebuilds on every change until interrupted. Failed builds are logged and
leave the previous output in place.

Examples:
  vivid watch --source themes/src --out dist`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}
		hc := vividCtx.Config.App.Hotload
		if opts.SourceDir == "" {
			opts.SourceDir = hc.Dir
		}
		log.Info().Str("dir", opts.SourceDir).Str("out", opts.OutputDir).Msg("watching theme sources")

		err = build.Watch(cmd.Context(), hc, opts, func(artifacts []build.Artifact, err error) {
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				log.Error().Err(err).Msg("build failed")
				return
			}
			names := make([]string, 0, len(artifacts))
			for _, a := range artifacts {
				names = append(names, a.Path)
			}
			log.Info().Msgf("built %s", strings.Join(names, ", "))
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	addBuildFlags(watchCmd)
}
