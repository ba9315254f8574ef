package configs

import "github.com/spf13/viper"

// AnalyzeConfig 统计分析配置
type AnalyzeConfig struct {
	// Format 默认输出格式
	Format string `mapstructure:"format" jsonschema:"title=Format,description=Default output format (text,json,yaml,toml,markdown)"`

	// Detailed 是否统计代码行的细分类别
	Detailed bool `mapstructure:"detailed" jsonschema:"title=Detailed,description=Break code lines down into import/class/function/variable/other"`

	// WithFiles 结果中是否携带每个文件的明细
	WithFiles bool `mapstructure:"with_files" jsonschema:"title=WithFiles,description=Include per-file details in the result"`

	// Sort 文件明细排序方式
	Sort string `mapstructure:"sort" jsonschema:"title=Sort,description=File detail ordering (path,size,lines)"`

	// RespectGitignore 是否遵循 .gitignore 规则
	RespectGitignore bool `mapstructure:"respect_gitignore" jsonschema:"title=RespectGitignore,description=Skip files matched by the root .gitignore"`

	// FollowSymlinks 是否跟随符号链接
	FollowSymlinks bool `mapstructure:"follow_symlinks" jsonschema:"title=FollowSymlinks,description=Follow symbolic links while walking"`

	// MaxFileSize 跳过超过该大小的文件（字节），0 表示不限制
	MaxFileSize int64 `mapstructure:"max_file_size" jsonschema:"title=MaxFileSize,description=Skip files larger than this many bytes (0 means unlimited)"`

	// Concurrency 并发 worker 数量，0 表示使用 CPU 核数
	Concurrency int `mapstructure:"concurrency" jsonschema:"title=Concurrency,description=Number of analysis workers (0 means NumCPU)"`

	// Include 仅统计匹配这些模式的文件
	Include []string `mapstructure:"include" jsonschema:"title=Include,description=Only analyze files matching these patterns,nullable"`

	// Exclude 排除匹配这些模式的文件
	Exclude []string `mapstructure:"exclude" jsonschema:"title=Exclude,description=Skip files matching these patterns,nullable"`
}

func setAnalyzeConfigDefaults(v *viper.Viper) {
	v.SetDefault("analyze.format", "text")
	v.SetDefault("analyze.detailed", false)
	v.SetDefault("analyze.with_files", false)
	v.SetDefault("analyze.sort", "path")
	v.SetDefault("analyze.respect_gitignore", true)
	v.SetDefault("analyze.follow_symlinks", false)
	v.SetDefault("analyze.max_file_size", 0)
	v.SetDefault("analyze.concurrency", 0)
	v.SetDefault("analyze.include", []string{})
	v.SetDefault("analyze.exclude", []string{})
}
