package configs

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"github.com/yeisme/vivid/pkg/theme"
)

// ThemeConfig 主题构建与校验配置
type ThemeConfig struct {
	SourceDir      string   `mapstructure:"source_dir"`      // 主题源文件目录，为空时使用内置定义
	OutputDir      string   `mapstructure:"output_dir"`      // 构建输出目录
	Format         string   `mapstructure:"format"`          // 输出格式: json, yaml, toml
	DefaultVariant string   `mapstructure:"default_variant"` // 默认变体: dark, light
	Fixtures       []string `mapstructure:"fixtures"`        // inspect 使用的示例源文件 glob
	MinContrast    float64  `mapstructure:"min_contrast"`    // 前景色与编辑器背景的最小对比度，0 表示不检查
	Strict         bool     `mapstructure:"strict"`          // 将警告视为错误
}

func setThemeConfigDefaults(v *viper.Viper) {
	v.SetDefault("theme.source_dir", "")
	v.SetDefault("theme.output_dir", "themes")
	v.SetDefault("theme.format", "json")
	v.SetDefault("theme.default_variant", "dark")
	v.SetDefault("theme.fixtures", []string{"pkg/highlight/testdata/*-test.*"})
	v.SetDefault("theme.min_contrast", 3.0)
	v.SetDefault("theme.strict", false)
}

// Validate 检查主题配置取值
func (c ThemeConfig) Validate() error {
	var errs []error
	if _, err := theme.ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("theme.format: %w", err))
	}
	if _, err := theme.ParseVariant(c.DefaultVariant); err != nil {
		errs = append(errs, fmt.Errorf("theme.default_variant: %w", err))
	}
	if c.MinContrast < 0 || c.MinContrast > 21 {
		errs = append(errs, fmt.Errorf("theme.min_contrast: %v is outside [0, 21]", c.MinContrast))
	}
	return errors.Join(errs...)
}

// Variant 返回解析后的默认变体
func (c ThemeConfig) Variant() theme.Variant {
	v, err := theme.ParseVariant(c.DefaultVariant)
	if err != nil {
		return theme.Dark
	}
	return v
}

// OutputFormat 返回解析后的输出格式
func (c ThemeConfig) OutputFormat() theme.Format {
	f, err := theme.ParseFormat(c.Format)
	if err != nil {
		return theme.FormatJSON
	}
	return f
}
