// Package context 保存一次命令执行所需的配置、viper 实例与日志记录器
package context

import (
	"context"

	"github.com/spf13/viper"
	"github.com/yeisme/vivid/pkg/configs"
	"github.com/yeisme/vivid/pkg/style"
	"github.com/yeisme/vivid/pkg/theme"
	"github.com/yeisme/vivid/pkg/utils/log"
)

// GlobalFlags 根命令的全局标志
type GlobalFlags struct {
	ConfigPath string
	Debug      bool
	Verbose    bool
	Quiet      bool
	NoColor    bool
}

// VividContext 命令执行上下文
type VividContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Viper  *viper.Viper
	Logger log.Logger // 日志记录器
}

// InitVividContext 加载配置并初始化日志，标志优先于配置文件
func InitVividContext(ctx context.Context, flags GlobalFlags) (*VividContext, error) {
	v := configs.NewViper()
	config, err := configs.LoadConfig(v, flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	if flags.Debug {
		config.App.Debug = true
	}
	if flags.Verbose {
		config.App.Verbose = true
	}
	if flags.Quiet {
		config.App.Quiet = true
	}
	if flags.NoColor {
		config.Display.NoColor = true
	}

	logger := log.InitLogger(ctx, &config.Log, &config.App)
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug().Str("file", used).Msg("config loaded")
	}

	// 输出高亮跟随默认变体
	style.SetCodeVariant(config.Theme.Variant())

	return &VividContext{
		Context: ctx,
		Config:  config,
		Viper:   v,
		Logger:  logger,
	}, nil
}

// Color 是否输出彩色内容
func (c *VividContext) Color() bool {
	return !c.Config.Display.NoColor
}

// Registry 返回内置主题注册表，配置了 source_dir 时叠加目录中的主题
func (c *VividContext) Registry() (*theme.Registry, error) {
	reg := theme.BuiltinRegistry()
	if dir := c.Config.Theme.SourceDir; dir != "" {
		paths, err := reg.LoadDir(dir)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug().Strs("files", paths).Str("dir", dir).Msg("theme sources loaded")
	}
	return reg, nil
}
