package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath 返回指定格式的默认配置文件名
func DefaultConfigPath(format OutputFormat) string {
	return ".vivid." + string(format)
}

// CreateDefaultConfig 以默认值创建配置文件；文件已存在时返回错误
func CreateDefaultConfig(path string, format OutputFormat) error {
	switch format {
	case FormatYAML, FormatJSON, FormatTOML:
	default:
		return fmt.Errorf("format %q is not supported for config files", format)
	}
	if path == "" {
		path = DefaultConfigPath(format)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建配置目录失败: %w", err)
		}
	}

	v := NewViper()
	v.SetConfigType(string(format))
	if err := v.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}
	return nil
}
