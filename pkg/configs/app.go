package configs

import (
	"github.com/spf13/viper"
)

// AppConfig 应用配置
type AppConfig struct {
	Name    string        `mapstructure:"name"`
	Debug   bool          `mapstructure:"debug"`
	Verbose bool          `mapstructure:"verbose"`
	Quiet   bool          `mapstructure:"quiet"` // 是否安静模式，禁止所有日志输出
	Hotload HotloadConfig `mapstructure:"hotload"`
}

// HotloadConfig 热加载配置，供 vivid watch 使用
type HotloadConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	Dir            string   `mapstructure:"dir"` // 为空时监视 theme.source_dir
	Filter         []string `mapstructure:"filter"`
	Recursive      bool     `mapstructure:"recursive"`
	Debounce       int      `mapstructure:"debounce"`        // 防抖时间，毫秒
	IgnorePatterns []string `mapstructure:"ignore_patterns"` // 忽略的文件模式
}

func setAppConfigDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "vivid")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.verbose", false)
	v.SetDefault("app.quiet", false)

	// 热加载配置默认值
	v.SetDefault("app.hotload.enabled", true)
	v.SetDefault("app.hotload.dir", "")
	v.SetDefault("app.hotload.filter", []string{"*.json", "*.yaml", "*.yml", "*.toml"})
	v.SetDefault("app.hotload.recursive", false)
	v.SetDefault("app.hotload.debounce", 300) // 毫秒
	v.SetDefault("app.hotload.ignore_patterns", []string{
		"*.tmp",
		"*.swp",
		"*~",
		".git/*",
	})
}
