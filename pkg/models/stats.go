package models

// LineCategory 表示一行源代码的基础分类
type LineCategory int

const (
	// CategoryBlank 空行，去除尾部换行后只包含空格或制表符
	CategoryBlank LineCategory = iota
	// CategoryComment 注释行，包括单行注释与多行注释块内的行
	CategoryComment
	// CategoryCode 代码行，所有不是空行也不是注释的行
	CategoryCode
)

// String 返回分类的可读名称
func (c LineCategory) String() string {
	switch c {
	case CategoryBlank:
		return "Blank"
	case CategoryComment:
		return "Comment"
	case CategoryCode:
		return "Code"
	default:
		return "Unknown"
	}
}

// CodeRole 表示代码行的细分角色，按固定优先级排列：
// 导入 > 类型定义 > 函数定义 > 变量声明 > 其他
type CodeRole int

const (
	// RoleImport 导入或包含语句
	RoleImport CodeRole = iota
	// RoleClass 类或类型定义
	RoleClass
	// RoleFunction 函数或方法定义
	RoleFunction
	// RoleVariable 变量声明或赋值
	RoleVariable
	// RoleOther 未匹配任何角色的普通代码行
	RoleOther
)

// String 返回角色的可读名称
func (r CodeRole) String() string {
	switch r {
	case RoleImport:
		return "Import"
	case RoleClass:
		return "ClassDefinition"
	case RoleFunction:
		return "FunctionDefinition"
	case RoleVariable:
		return "VariableDeclaration"
	case RoleOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// LineTally 存储空行、注释行和代码行的计数，是一个可复用的基本单位
type LineTally struct {
	Blank    int `json:"blank" yaml:"blank"`       // 空行数
	Comments int `json:"comments" yaml:"comments"` // 注释行数
	Code     int `json:"code" yaml:"code"`         // 代码行数
}

// Sum 返回三类行数之和
func (t LineTally) Sum() int {
	return t.Blank + t.Comments + t.Code
}

// Add 将另一组计数累加到当前计数上
func (t *LineTally) Add(o LineTally) {
	t.Blank += o.Blank
	t.Comments += o.Comments
	t.Code += o.Code
}

// Bump 按分类递增对应计数
func (t *LineTally) Bump(c LineCategory) {
	switch c {
	case CategoryBlank:
		t.Blank++
	case CategoryComment:
		t.Comments++
	case CategoryCode:
		t.Code++
	}
}

// RoleTally 存储代码行按角色细分后的计数
type RoleTally struct {
	Import   int `json:"import" yaml:"import"`                             // 导入语句行数
	Class    int `json:"class_definition" yaml:"class_definition"`         // 类定义行数
	Function int `json:"function_definition" yaml:"function_definition"`   // 函数定义行数
	Variable int `json:"variable_declaration" yaml:"variable_declaration"` // 变量声明行数
	Other    int `json:"other_code" yaml:"other_code"`                     // 其他代码行数
}

// Sum 返回所有角色计数之和，恒等于对应的代码行数
func (t RoleTally) Sum() int {
	return t.Import + t.Class + t.Function + t.Variable + t.Other
}

// Add 将另一组角色计数累加到当前计数上
func (t *RoleTally) Add(o RoleTally) {
	t.Import += o.Import
	t.Class += o.Class
	t.Function += o.Function
	t.Variable += o.Variable
	t.Other += o.Other
}

// Bump 按角色递增对应计数
func (t *RoleTally) Bump(r CodeRole) {
	switch r {
	case RoleImport:
		t.Import++
	case RoleClass:
		t.Class++
	case RoleFunction:
		t.Function++
	case RoleVariable:
		t.Variable++
	case RoleOther:
		t.Other++
	}
}

// FileStats 存储单个文件的详细统计信息
//
// 嵌入的 LineTally 在序列化时展平，使输出保持
// blank/comments/code/total/detailed 的扁平结构
type FileStats struct {
	Path      string `json:"path" yaml:"path"`         // 文件相对于分析根目录的路径
	Language  string `json:"language" yaml:"language"` // 文件所属的编程语言
	Size      int64  `json:"size" yaml:"size"`         // 文件大小（字节）
	LineTally `yaml:",inline"`
	Total     int       `json:"total" yaml:"total"`       // 总行数，等于三类行数之和
	Detailed  RoleTally `json:"detailed" yaml:"detailed"` // 代码行的角色细分
}

// LanguageStats 存储单一语言的聚合统计信息
type LanguageStats struct {
	FileCount int `json:"files" yaml:"files"` // 该语言的文件总数
	LineTally `yaml:",inline"`
	Lines     int         `json:"total_lines" yaml:"total_lines"` // 该语言的总行数
	Size      int64       `json:"total_size" yaml:"total_size"`   // 该语言的总字节数
	Detailed  RoleTally   `json:"detailed" yaml:"detailed"`       // 该语言代码行的角色细分
	Files     []FileStats `json:"file_details,omitempty" yaml:"file_details,omitempty"`
}

// AddFile 将单个文件的统计并入语言聚合
func (s *LanguageStats) AddFile(f FileStats) {
	s.FileCount++
	s.LineTally.Add(f.LineTally)
	s.Lines += f.Total
	s.Size += f.Size
	s.Detailed.Add(f.Detailed)
}

// ScanFailure 记录目录分析中处理失败的单个文件，
// 单个文件的失败不会中断整体分析
type ScanFailure struct {
	Path  string `json:"path" yaml:"path"`   // 失败文件的路径
	Error string `json:"error" yaml:"error"` // 失败原因
}

// AnalysisResult 是最终分析结果的顶层结构体
type AnalysisResult struct {
	// Root 本次分析的根路径
	Root string `json:"root" yaml:"root"`

	// Module 根目录 go.mod 声明的模块路径，不存在时为空
	Module string `json:"module,omitempty" yaml:"module,omitempty"`

	// Total 所有语言的总体统计
	Total LanguageStats `json:"total" yaml:"total"`

	// Languages 键是语言名称（例如 "Python", "Go"），
	// 值是该语言的聚合统计，使用指针便于遍历文件时直接累加
	Languages map[string]*LanguageStats `json:"languages" yaml:"languages"`

	// Files 所有成功分析的文件，按路径排序
	Files []FileStats `json:"file_details,omitempty" yaml:"file_details,omitempty"`

	// Failures 处理失败的文件列表，按路径排序
	Failures []ScanFailure `json:"failures,omitempty" yaml:"failures,omitempty"`
}
