// Package context 定义贯穿命令执行过程的应用上下文
package context

import (
	"context"

	"github.com/spf13/viper"
	"github.com/yeisme/linelens/pkg/configs"
	"github.com/yeisme/linelens/pkg/utils/log"
)

// GlobalFlags 根命令的持久化标志
type GlobalFlags struct {
	ConfigPath    string
	Debug         bool
	Verbose       bool
	Quiet         bool
	CPUProfile    string
	Trace         string
	VersionEnable bool
}

// LensContext 应用上下文，携带配置与日志记录器
type LensContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Viper  *viper.Viper    // 配置实例
	Logger log.Logger      // 日志记录器
}

// InitLensContext 加载配置并初始化日志，构造应用上下文
// 命令行标志优先于配置文件中的同名设置
func InitLensContext(configPath string, debug, verbose, quiet bool) *LensContext {
	ctx := context.Background()
	config, err := configs.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}

	// 标志覆盖配置文件
	if debug {
		config.App.Debug = true
	}
	if verbose {
		config.App.Verbose = true
	}
	if quiet {
		config.App.Quiet = true
	}

	logger := log.InitLogger(ctx, &config.Log, &config.App)

	return &LensContext{
		Context: ctx,
		Config:  config,
		Viper:   viper.GetViper(),
		Logger:  logger,
	}
}
