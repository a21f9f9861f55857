package cmd

import (
	"os"
	"strconv"

	xterm "github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/yeisme/vivid/pkg/configs"
	"github.com/yeisme/vivid/pkg/style"
	"github.com/yeisme/vivid/pkg/theme"
)

type themeInfo struct {
	Variant theme.Variant `json:"variant" yaml:"variant" toml:"variant"`
	Name    string        `json:"name" yaml:"name" toml:"name"`
	Source  string        `json:"source" yaml:"source" toml:"source"`
	Colors  int           `json:"colors" yaml:"colors" toml:"colors"`
	Rules   int           `json:"rules" yaml:"rules" toml:"rules"`
}

type themeList []themeInfo

func (l themeList) Headers() []string {
	return []string{"variant", "name", "source", "colors", "rules"}
}

func (l themeList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, t := range l {
		rows = append(rows, []string{string(t.Variant), t.Name, t.Source, strconv.Itoa(t.Colors), strconv.Itoa(t.Rules)})
	}
	return rows
}

var (
	themeCmd = &cobra.Command{
		Use:   "theme",
		Short: "Inspect the registered theme variants",
	}

	themeListCmd = &cobra.Command{
		Use:     "list",
		Short:   "List the theme variants and where they come from",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := vividCtx.Registry()
			if err != nil {
				return err
			}
			var list themeList
			for _, v := range reg.Variants() {
				t, err := reg.Get(v)
				if err != nil {
					return err
				}
				list = append(list, themeInfo{
					Variant: v,
					Name:    t.Name,
					Source:  reg.Source(v),
					Colors:  len(t.Colors),
					Rules:   len(t.TokenColors),
				})
			}
			return configs.OutputData(list, configs.GetOutputFormatFromFlags(cmd), cmd.OutOrStdout(), vividCtx.Color())
		},
	}

	exportOutput string

	exportCmd = &cobra.Command{
		Use:   "export [variant]",
		Short: "Print or write one theme document",
		Long: `vivid export writes the theme document of a variant in JSON, YAML or TOML.

Examples:
  vivid export dark                      # JSON to stdout
  vivid export light -f yaml             # YAML to stdout
  vivid export dark -o vivid-dark.toml   # format chosen by extension`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := vividCtx.Registry()
			if err != nil {
				return err
			}
			v := vividCtx.Config.Theme.Variant()
			if len(args) > 0 {
				t, err := reg.Lookup(args[0])
				if err != nil {
					return err
				}
				v = t.Type
			}
			t, err := reg.Get(v)
			if err != nil {
				return err
			}

			if exportOutput != "" {
				if err := theme.WriteFile(exportOutput, t); err != nil {
					return err
				}
				log.Info().Str("theme", t.Name).Str("path", exportOutput).Msg("theme exported")
				return nil
			}

			formatStr, _ := cmd.Flags().GetString("format")
			f, err := theme.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			data, err := theme.Marshal(t, f)
			if err != nil {
				return err
			}
			if !vividCtx.Color() || !isTerminal(cmd) {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return style.PrintCode(cmd.OutOrStdout(), "theme"+f.Ext(), string(data), true)
		},
	}
)

// isTerminal 输出是否为终端；重定向到文件时不做高亮
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && xterm.IsTerminal(f.Fd())
}

func init() {
	rootCmd.AddCommand(themeCmd, exportCmd)
	themeCmd.AddCommand(themeListCmd)

	configs.AddOutputFlags(themeListCmd, configs.FormatTable)

	exportCmd.Flags().StringP("format", "f", "json", "Document format (json, yaml, toml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout (format from extension)")
}
