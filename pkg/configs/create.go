package configs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// CreateDefaultConfig 按指定格式在 path 创建包含默认值的配置文件
// path 已存在时返回错误，不会覆盖已有文件
func CreateDefaultConfig(path string, format OutputFormat) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("配置文件已存在: %s", path)
	}

	// 在独立的 viper 实例上应用默认值，避免混入已加载的用户配置
	v := viper.New()
	applyDefaults(v)
	settings := v.AllSettings()

	var data []byte
	var err error
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(settings)
	case FormatJSON:
		data, err = json.MarshalIndent(settings, "", "  ")
	case FormatTOML:
		data, err = toml.Marshal(settings)
	default:
		return fmt.Errorf("unsupported config file format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("序列化默认配置失败: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建配置目录失败: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}
	return nil
}
