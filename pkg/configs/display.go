package configs

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yeisme/vivid/pkg/style"
)

// DisplayConfig 终端输出配置
type DisplayConfig struct {
	NoColor       bool   `mapstructure:"no_color"`       // 禁用彩色输出
	Width         int    `mapstructure:"width"`          // 表格与 Markdown 宽度，0 表示自动探测
	MarkdownStyle string `mapstructure:"markdown_style"` // glamour 样式: dark, light, dracula, notty
}

func setDisplayConfigDefaults(v *viper.Viper) {
	v.SetDefault("display.no_color", false)
	v.SetDefault("display.width", 0)
	v.SetDefault("display.markdown_style", "dracula")
}

// OutputFormat 输出格式类型
type OutputFormat string

const (
	// FormatYAML represents the YAML output format.
	FormatYAML OutputFormat = "yaml"
	// FormatJSON represents the JSON output format.
	FormatJSON OutputFormat = "json"
	// FormatTOML represents the TOML output format.
	FormatTOML OutputFormat = "toml"
	// FormatText represents the plain text output format.
	FormatText OutputFormat = "text"
	// FormatTable renders data that implements style.Tabular as a table.
	FormatTable OutputFormat = "table"
)

// ValidFormats 返回所有有效的输出格式
func ValidFormats() []string {
	return []string{string(FormatYAML), string(FormatJSON), string(FormatTOML), string(FormatText), string(FormatTable)}
}

// ParseOutputFormat 解析输出格式字符串
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "text", "txt":
		return FormatText, nil
	case "table":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported format '%s', supported formats: %s", format, strings.Join(ValidFormats(), ", "))
	}
}

// AddOutputFlags 为命令注册 --format 及其快捷标志
func AddOutputFlags(cmd *cobra.Command, def OutputFormat) {
	cmd.Flags().StringP("format", "f", string(def), fmt.Sprintf("Output format (%s)", strings.Join(ValidFormats(), ", ")))
	cmd.Flags().Bool("yaml", false, "Output in YAML format")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("toml", false, "Output in TOML format")
}

// GetOutputFormatFromFlags 从命令行标志获取输出格式
func GetOutputFormatFromFlags(cmd *cobra.Command) OutputFormat {
	// 具体的格式标志优先于 --format 的默认值
	if yaml, _ := cmd.Flags().GetBool("yaml"); yaml {
		return FormatYAML
	}
	if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
		return FormatJSON
	}
	if toml, _ := cmd.Flags().GetBool("toml"); toml {
		return FormatTOML
	}

	if formatFlag, _ := cmd.Flags().GetString("format"); formatFlag != "" {
		if format, err := ParseOutputFormat(formatFlag); err == nil {
			return format
		}
	}

	// 默认格式
	return FormatYAML
}

// OutputData 根据指定格式输出数据；color 为 false 时不做高亮
func OutputData(data any, format OutputFormat, out io.Writer, color bool) error {
	switch format {
	case FormatYAML:
		s, err := style.FormatYAML(data)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		return style.PrintCode(out, "out.yaml", s, color)

	case FormatJSON:
		s, err := style.FormatJSON(data)
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
		return style.PrintCode(out, "out.json", s, color)

	case FormatTOML:
		s, err := style.FormatTOML(data)
		if err != nil {
			return fmt.Errorf("failed to marshal to TOML: %w", err)
		}
		return style.PrintCode(out, "out.toml", s, color)

	case FormatTable:
		if t, ok := data.(style.Tabular); ok {
			return style.PrintTabular(out, t, 0)
		}
		// 非表格数据回退到文本
		_, err := fmt.Fprintf(out, "%+v\n", data)
		return err

	case FormatText:
		if s, ok := data.(fmt.Stringer); ok {
			_, err := fmt.Fprintln(out, s.String())
			return err
		}
		_, err := fmt.Fprintf(out, "%+v\n", data)
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// GetConfigSection 从 viper 实例获取指定配置段
func GetConfigSection(v *viper.Viper, section string, showAll bool) (any, error) {
	if showAll {
		// 返回完整的配置结构体（包含默认值）
		var config Config
		if err := v.Unmarshal(&config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}

		if section == "" {
			return config, nil
		}

		// 使用反射动态查找配置段
		val := reflect.ValueOf(config)
		typ := val.Type()
		lowerSection := strings.ToLower(section)

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			tag := field.Tag.Get("mapstructure")
			if strings.ToLower(tag) == lowerSection {
				return val.Field(i).Interface(), nil
			}
		}

		return nil, fmt.Errorf("unknown configuration section: %s", section)
	}

	// 返回 viper 的原始数据
	lowerSection := strings.ToLower(section)

	if lowerSection == "" {
		// 显示所有配置
		return v.AllSettings(), nil
	}

	if v.IsSet(lowerSection) {
		return v.Get(lowerSection), nil
	}

	return nil, fmt.Errorf("unknown or unset configuration section %s", section)
}
