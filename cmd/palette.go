package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/vivid/pkg/configs"
	"github.com/yeisme/vivid/pkg/style"
	"github.com/yeisme/vivid/pkg/theme"
)

type paletteEntry struct {
	Kind     string  `json:"kind" yaml:"kind" toml:"kind"`
	Name     string  `json:"name" yaml:"name" toml:"name"`
	Color    string  `json:"color" yaml:"color" toml:"color"`
	Contrast float64 `json:"contrast,omitempty" yaml:"contrast,omitempty" toml:"contrast,omitempty"`
}

type palette struct {
	Variant theme.Variant  `json:"variant" yaml:"variant" toml:"variant"`
	Name    string         `json:"name" yaml:"name" toml:"name"`
	Entries []paletteEntry `json:"entries" yaml:"entries" toml:"entries"`
}

// contrastAgainst 返回颜色叠加到背景后的对比度，无法解析时返回 0
func contrastAgainst(hex string, bg theme.Color, ok bool) float64 {
	if !ok {
		return 0
	}
	c, err := theme.ParseColor(hex)
	if err != nil {
		return 0
	}
	return theme.ContrastRatio(c.BlendOver(bg), bg)
}

func buildPalette(t *theme.Theme, uiOnly, tokensOnly bool) palette {
	p := palette{Variant: t.Type, Name: t.Name}
	bg, err := theme.ParseColor(t.DefaultBackground())
	hasBG := err == nil

	if !tokensOnly {
		for _, key := range t.ColorKeys() {
			p.Entries = append(p.Entries, paletteEntry{Kind: "ui", Name: key, Color: t.Colors[key]})
		}
	}
	if !uiOnly {
		for i, rule := range t.TokenColors {
			if rule.Settings.Foreground == "" {
				continue
			}
			name := rule.Name
			if name == "" {
				name = strings.Join(rule.Scope.Selectors(), ", ")
			}
			if name == "" {
				name = fmt.Sprintf("rule %d", i)
			}
			p.Entries = append(p.Entries, paletteEntry{
				Kind:     "token",
				Name:     name,
				Color:    rule.Settings.Foreground,
				Contrast: contrastAgainst(rule.Settings.Foreground, bg, hasBG),
			})
		}
	}
	return p
}

var (
	paletteVariant    string
	paletteUIOnly     bool
	paletteTokensOnly bool
	paletteMinimum    float64

	paletteCmd = &cobra.Command{
		Use:   "palette",
		Short: "Show the UI and token colors of a variant as swatches",
		Long: `vivid palette lists every UI color key and every token color rule of a
variant. Token colors are annotated with their contrast ratio against the
editor background; ratios below the minimum are flagged.

Examples:
  vivid palette
  vivid palette --variant all --tokens
  vivid palette --variant light -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := vividCtx.Registry()
			if err != nil {
				return err
			}
			variants, err := selectVariants(reg, paletteVariant)
			if err != nil {
				return err
			}
			minimum := vividCtx.Config.Theme.MinContrast
			if cmd.Flags().Changed("min-contrast") {
				minimum = paletteMinimum
			}

			var palettes []palette
			for _, v := range variants {
				t, err := reg.Get(v)
				if err != nil {
					return err
				}
				palettes = append(palettes, buildPalette(t, paletteUIOnly, paletteTokensOnly))
			}

			format := configs.GetOutputFormatFromFlags(cmd)
			if format != configs.FormatText {
				return configs.OutputData(palettes, format, cmd.OutOrStdout(), vividCtx.Color())
			}
			for _, p := range palettes {
				swatches := make([]style.Swatch, 0, len(p.Entries))
				for _, e := range p.Entries {
					sw := style.Swatch{Name: e.Name, Hex: e.Color}
					if e.Contrast > 0 {
						sw.Note = fmt.Sprintf("%.2f:1", e.Contrast)
						if minimum > 0 && e.Contrast < minimum {
							sw.Note += " low contrast"
						}
					}
					swatches = append(swatches, sw)
				}
				if err := style.PrintSwatches(cmd.OutOrStdout(), p.Name, swatches); err != nil {
					return err
				}
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(paletteCmd)

	configs.AddOutputFlags(paletteCmd, configs.FormatText)
	paletteCmd.Flags().StringVar(&paletteVariant, "variant", "", "Variants to show (dark, light, all); default from config")
	paletteCmd.Flags().BoolVar(&paletteUIOnly, "ui", false, "Only show UI colors")
	paletteCmd.Flags().BoolVar(&paletteTokensOnly, "tokens", false, "Only show token colors")
	paletteCmd.Flags().Float64Var(&paletteMinimum, "min-contrast", 0, "Flag token colors below this contrast ratio")
	paletteCmd.MarkFlagsMutuallyExclusive("ui", "tokens")
}
