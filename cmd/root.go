// Package cmd provides command-line interface commands for vivid
package cmd

import (
	stdctx "context"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/vivid/pkg/context"
	log2 "github.com/yeisme/vivid/pkg/utils/log"
	"github.com/yeisme/vivid/pkg/utils/version"
)

var (
	vividCtx *context.VividContext
	log      log2.Logger

	// Global flags
	globalFlags       context.GlobalFlags
	cpuProfileFlag    string
	cpuProfileFile    *os.File
	versionEnableFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vivid",
	Short: "vivid builds and checks the Vivid color theme",
	Long: `vivid is the toolkit behind the Vivid color theme for VS Code.

It holds the Dark and Light theme definitions, resolves TextMate scopes to
colors the way the editor does, validates theme documents and writes the
theme files the extension ships.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if versionEnableFlag {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return err
		}
		return cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cpuProfileFlag != "" {
			f, err := os.Create(cpuProfileFlag)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				_ = f.Close()
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			cpuProfileFile = f
		}

		ctx, err := context.InitVividContext(cmd.Context(), globalFlags)
		if err != nil {
			return err
		}
		vividCtx = ctx
		log = ctx.Logger

		log.Debug().Msgf("Execute Command: %s %s", "vivid", strings.Join(os.Args[1:], " "))
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if cpuProfileFile != nil {
			pprof.StopCPUProfile()
			_ = cpuProfileFile.Close()
		}
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute(ctx stdctx.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "config file")
	rootCmd.PersistentFlags().StringVar(&cpuProfileFlag, "cpu-profile", "", "write cpu profile to `file`")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "V", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "suppress all log output")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.NoColor, "no-color", false, "disable color output")
	rootCmd.Flags().BoolVarP(&versionEnableFlag, "version", "v", false, "show version information")
}
