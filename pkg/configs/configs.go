// Package configs 提供应用程序配置管理功能
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 VIVID_THEME_OUTPUT_DIR
const EnvPrefix = "VIVID"

// Config 应用配置结构
type Config struct {
	Version string        `mapstructure:"version"`
	Log     LogConfig     `mapstructure:"log"`
	App     AppConfig     `mapstructure:"app"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Display DisplayConfig `mapstructure:"display"`
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", "1.0")
	setLogConfigDefaults(v)
	setAppConfigDefaults(v)
	setThemeConfigDefaults(v)
	setDisplayConfigDefaults(v)
}

// searchPaths 配置文件搜索路径
func searchPaths() []string {
	paths := []string{
		".",
		"./configs",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/vivid",
	}

	// Windows 特殊路径
	if runtime.GOOS == "windows" {
		paths = append(paths,
			"$USERPROFILE",
			"$APPDATA/vivid",
		)
	} else {
		paths = append(paths, "/etc/vivid")
	}
	return paths
}

// findConfigFile 尝试查找不同格式的配置文件
func findConfigFile() string {
	configNames := []string{".vivid", "vivid"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths() {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)

				// 展开环境变量
				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}

				if _, err := os.Stat(configFile); err == nil {
					return configFile
				}
			}
		}
	}

	return ""
}

// NewViper 创建带默认值和环境变量绑定的 viper 实例
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadConfig 加载配置文件；configPath 为空时按搜索路径查找
func LoadConfig(v *viper.Viper, configPath string) (*Config, error) {
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("读取配置文件失败: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// 确保日志目录存在
	if config.Log.Mode == "file" || config.Log.Mode == "both" {
		logDir := filepath.Dir(config.Log.FilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
	}

	return &config, nil
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Log.Mode) {
	case "", "console", "file", "both":
	default:
		errs = append(errs, fmt.Errorf("log.mode: unsupported value %q (console, file, both)", c.Log.Mode))
	}
	errs = append(errs, c.Theme.Validate())
	if c.Display.Width < 0 {
		errs = append(errs, fmt.Errorf("display.width: must not be negative"))
	}
	return errors.Join(errs...)
}
