package configs

import "github.com/spf13/viper"

// WatchConfig 目录监视配置
type WatchConfig struct {
	// Recursive 是否递归监视子目录
	Recursive bool `mapstructure:"recursive" jsonschema:"title=Recursive,description=Watch subdirectories recursively"`

	// Debounce 防抖时间，毫秒
	Debounce int `mapstructure:"debounce" jsonschema:"title=Debounce,description=Quiet period in milliseconds before re-analyzing"`

	// IgnorePatterns 忽略的文件模式
	IgnorePatterns []string `mapstructure:"ignore_patterns" jsonschema:"title=IgnorePatterns,description=File patterns whose events are ignored,nullable"`

	// GitIgnore 是否使用 .gitignore 文件
	GitIgnore bool `mapstructure:"git_ignore" jsonschema:"title=GitIgnore,description=Skip events for files matched by .gitignore"`
}

func setWatchConfigDefaults(v *viper.Viper) {
	v.SetDefault("watch.recursive", true)
	v.SetDefault("watch.debounce", 300) // 毫秒
	v.SetDefault("watch.ignore_patterns", []string{
		"*.tmp",
		"*.swp",
		"*.log",
		"tmp/*",
		"vendor/*",
		".git/*",
		"node_modules/*",
	})
	v.SetDefault("watch.git_ignore", true) // 默认使用 .gitignore
}
