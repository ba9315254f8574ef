// Package configs 提供应用程序配置管理功能
package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Version string        `mapstructure:"version"`
	App     AppConfig     `mapstructure:"app"`
	Log     LogConfig     `mapstructure:"log"`
	Analyze AnalyzeConfig `mapstructure:"analyze"`
	Watch   WatchConfig   `mapstructure:"watch"`
}

// setDefaults 在全局 viper 实例上设置所有配置段的默认值
func setDefaults() {
	applyDefaults(viper.GetViper())
}

// applyDefaults 在指定 viper 实例上设置所有配置段的默认值
func applyDefaults(v *viper.Viper) {
	v.SetDefault("version", "1.0")
	setAppConfigDefaults(v)
	setLogConfigDefaults(v)
	setAnalyzeConfigDefaults(v)
	setWatchConfigDefaults(v)
}

var globalConfig *Config

// tryLoadConfigFiles 尝试在搜索路径中查找不同格式的配置文件
func tryLoadConfigFiles() bool {
	// 配置文件搜索路径
	searchPaths := []string{
		".",
		"./configs",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/linelens",
	}

	// Windows 特殊路径
	if runtime.GOOS == "windows" {
		searchPaths = append(searchPaths,
			"$USERPROFILE",
			"$APPDATA/linelens",
		)
	} else {
		searchPaths = append(searchPaths, "/etc/linelens")
	}

	// 配置文件名和扩展名的组合
	configNames := []string{".linelens", "linelens"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)

				// 展开环境变量
				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}

				if _, err := os.Stat(configFile); err == nil {
					viper.SetConfigFile(configFile)
					return true
				}
			}
		}
	}

	return false
}

// LoadConfig 加载配置文件
// configPath 为空时按搜索路径自动查找，找不到配置文件时使用默认值
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		tryLoadConfigFiles()
	}

	// 环境变量前缀，例如 LINELENS_LOG_LEVEL
	viper.SetEnvPrefix("LINELENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && viper.ConfigFileUsed() != "" {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 确保日志目录存在
	if config.Log.Mode == "file" || config.Log.Mode == "both" {
		logDir := filepath.Dir(config.Log.FilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
	}

	globalConfig = &config
	return &config, nil
}

// GetConfig 获取全局配置，尚未加载时按默认路径加载一次
func GetConfig() *Config {
	if globalConfig == nil {
		config, err := LoadConfig("")
		if err != nil {
			panic(fmt.Sprintf("无法加载配置: %v", err))
		}
		return config
	}
	return globalConfig
}
