package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yeisme/vivid/pkg/configs"
	"github.com/yeisme/vivid/pkg/style"
)

var (
	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage vivid configuration",
		Long:    `vivid config allows you to view, check and create the vivid configuration file.`,
		Aliases: []string{"c"},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate vivid configuration",
		Long: `vivid config validate loads the configuration file and environment variables
and checks every value. The configuration is already loaded before any command
runs, so reaching this command means it is valid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fileUsed := vividCtx.Viper.ConfigFileUsed()
			if fileUsed == "" {
				fileUsed = "(defaults, no config file found)"
			}
			log.Info().Str("file", fileUsed).Msg("config is valid")
			return style.PrintStatus(cmd.OutOrStdout(), true, "config is valid: "+fileUsed)
		},
		Aliases: []string{"check", "verify"},
	}

	configListCmd = &cobra.Command{
		Use:   "list [section]",
		Short: "List vivid configuration",
		Long: `vivid config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - app: Application and watch settings
  - log: Logging settings
  - theme: Theme build and validation settings
  - display: Terminal output settings

Examples:
  vivid config list                    # Show all configuration (viper raw data)
  vivid config list --all              # Show all configuration with defaults
  vivid config list theme              # Show only theme settings
  vivid config list --json             # Output in JSON format
  vivid config list theme --all --toml # Show theme config with defaults in TOML`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			format := configs.GetOutputFormatFromFlags(cmd)
			showAll, _ := cmd.Flags().GetBool("all")

			data, err := configs.GetConfigSection(vividCtx.Viper, section, showAll)
			if err != nil {
				return fmt.Errorf("error getting config section: %w", err)
			}
			return configs.OutputData(data, format, cmd.OutOrStdout(), vividCtx.Color())
		},
		Aliases: []string{"ls"},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize vivid configuration",
		Long: `vivid config init creates a new configuration file with default settings.

Examples:
  vivid config init                          # Create .vivid.yaml in current directory
  vivid config init --path configs/vivid.toml
  vivid config init --format json            # Create .vivid.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			formatStr, _ := cmd.Flags().GetString("format")

			format, err := configs.ParseOutputFormat(formatStr)
			if err != nil {
				return err
			}
			if path == "" {
				path = configs.DefaultConfigPath(format)
			}
			if err := configs.CreateDefaultConfig(path, format); err != nil {
				return err
			}

			log.Info().Str("path", path).Msg("config file created")
			return style.PrintStatus(cmd.OutOrStdout(), true, "created "+path)
		},
	}
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(
		configListCmd,
		configValidateCmd,
		configInitCmd,
	)

	configs.AddOutputFlags(configListCmd, configs.FormatYAML)
	configListCmd.Flags().BoolP("all", "a", false, "Show complete configuration with defaults (processed struct)")

	configInitCmd.Flags().StringP("path", "p", "", "Path to the config file")
	configInitCmd.Flags().StringP("format", "f", "yaml", "Format of the config file (yaml, json, toml)")
}
