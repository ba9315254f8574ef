// Package language 维护内置语言表：每种语言的注释标记与
// 代码角色匹配规则，以及按文件后缀查找语言的注册表
package language

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/yeisme/linelens/pkg/models"
)

// BlockMarker 多行注释的起止标记对
type BlockMarker struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// RoleMatcher 将一条正则绑定到一个代码角色，
// 表内顺序即匹配优先级：导入 > 类型定义 > 函数定义 > 变量声明
type RoleMatcher struct {
	Role    models.CodeRole
	Pattern *regexp.Regexp
}

// Spec 描述单一语言的全部分类规则，构建后只读，可被并发共享
type Spec struct {
	Name          string        // 语言名称，例如 "Python"
	Extensions    []string      // 识别的文件后缀（含点号，小写）
	LineComments  []string      // 单行注释标记
	BlockComments []BlockMarker // 多行注释标记对
	Matchers      []RoleMatcher // 按优先级排列的角色匹配规则
}

// MatchRole 返回行匹配到的代码角色，无规则命中时为 RoleOther
// 匹配使用原始行，缩进是否被接受由各规则自身决定
func (s *Spec) MatchRole(line string) models.CodeRole {
	for _, m := range s.Matchers {
		if m.Pattern.MatchString(line) {
			return m.Role
		}
	}
	return models.RoleOther
}

// Descriptor 语言的对外展示信息，用于 languages 命令输出
type Descriptor struct {
	Name          string        `json:"name" yaml:"name"`
	Extensions    []string      `json:"extensions" yaml:"extensions"`
	LineComments  []string      `json:"line_comments" yaml:"line_comments"`
	BlockComments []BlockMarker `json:"block_comments" yaml:"block_comments"`
	Roles         []string      `json:"roles" yaml:"roles"`
}

// Registry 管理语言规则注册与后缀映射
type Registry struct {
	specs  []*Spec
	byExt  map[string]*Spec
	byName map[string]*Spec
}

// NewRegistry 基于给定语言规则创建注册表
func NewRegistry(specs ...*Spec) *Registry {
	r := &Registry{
		specs:  specs,
		byExt:  make(map[string]*Spec),
		byName: make(map[string]*Spec),
	}
	for _, spec := range specs {
		r.byName[strings.ToLower(spec.Name)] = spec
		for _, ext := range spec.Extensions {
			r.byExt[strings.ToLower(ext)] = spec
		}
	}
	return r
}

// SpecForPath 根据文件后缀查找语言规则，后缀不区分大小写
func (r *Registry) SpecForPath(path string) (*Spec, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	spec, ok := r.byExt[ext]
	return spec, ok
}

// SpecByName 根据语言名称查找规则，名称不区分大小写
func (r *Registry) SpecByName(name string) (*Spec, bool) {
	spec, ok := r.byName[strings.ToLower(name)]
	return spec, ok
}

// All 返回全部已注册语言，按名称排序
func (r *Registry) All() []*Spec {
	out := append([]*Spec(nil), r.specs...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Descriptors 返回全部语言的展示信息，按名称排序
func (r *Registry) Descriptors() []Descriptor {
	specs := r.All()
	out := make([]Descriptor, 0, len(specs))
	for _, spec := range specs {
		exts := append([]string(nil), spec.Extensions...)
		sort.Strings(exts)
		roles := make([]string, 0, len(spec.Matchers))
		for _, m := range spec.Matchers {
			roles = append(roles, m.Role.String())
		}
		out = append(out, Descriptor{
			Name:          spec.Name,
			Extensions:    exts,
			LineComments:  append([]string(nil), spec.LineComments...),
			BlockComments: append([]BlockMarker(nil), spec.BlockComments...),
			Roles:         roles,
		})
	}
	return out
}

var defaultRegistry = NewRegistry(builtinSpecs()...)

// Default 返回内置语言注册表
func Default() *Registry {
	return defaultRegistry
}

// SpecForPath 在内置注册表中按文件后缀查找语言规则
func SpecForPath(path string) (*Spec, bool) {
	return defaultRegistry.SpecForPath(path)
}

// SpecByName 在内置注册表中按语言名称查找规则
func SpecByName(name string) (*Spec, bool) {
	return defaultRegistry.SpecByName(name)
}

// All 返回内置注册表中的全部语言
func All() []*Spec {
	return defaultRegistry.All()
}

// Descriptors 返回内置注册表中全部语言的展示信息
func Descriptors() []Descriptor {
	return defaultRegistry.Descriptors()
}
