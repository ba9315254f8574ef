package language

import (
	"regexp"

	"github.com/yeisme/linelens/pkg/models"
)

// builtinSpecs 构建内置语言表
//
// 角色规则的顺序在所有语言中统一为
// 导入 > 类定义 > 函数定义 > 变量声明，先命中者生效
func builtinSpecs() []*Spec {
	return []*Spec{
		{
			Name:         "Python",
			Extensions:   []string{".py"},
			LineComments: []string{"#"},
			BlockComments: []BlockMarker{
				{Start: `"""`, End: `"""`},
				{Start: "'''", End: "'''"},
			},
			Matchers: []RoleMatcher{
				{models.RoleImport, regexp.MustCompile(`^(?:from\s+\w+\s+)?import\s+\w+`)},
				{models.RoleClass, regexp.MustCompile(`^\s*class\s+\w+`)},
				{models.RoleFunction, regexp.MustCompile(`^\s*def\s+\w+`)},
				{models.RoleVariable, regexp.MustCompile(`^\s*[a-zA-Z_]\w*\s*=`)},
			},
		},
		{
			Name:         "Java",
			Extensions:   []string{".java"},
			LineComments: []string{"//"},
			BlockComments: []BlockMarker{
				{Start: "/*", End: "*/"},
			},
			Matchers: []RoleMatcher{
				{models.RoleImport, regexp.MustCompile(`^import\s+[\w.]+;?`)},
				{models.RoleClass, regexp.MustCompile(`^\s*(public|private|protected)?\s*class\s+\w+`)},
				{models.RoleFunction, regexp.MustCompile(`^\s*(public|private|protected|static|\s)*\s*[\w<>\[\]]+\s+\w+\s*\(`)},
				{models.RoleVariable, regexp.MustCompile(`^\s*(private|public|protected|static)*\s*[\w<>\[\]]+\s+\w+\s*[=;]`)},
			},
		},
		{
			Name:         "JavaScript",
			Extensions:   []string{".js"},
			LineComments: []string{"//"},
			BlockComments: []BlockMarker{
				{Start: "/*", End: "*/"},
			},
			Matchers: []RoleMatcher{
				{models.RoleImport, regexp.MustCompile(`^import\s+.*from\s+['"].*['"]`)},
				{models.RoleClass, regexp.MustCompile(`^\s*class\s+\w+`)},
				{models.RoleFunction, regexp.MustCompile(`^\s*(?:function\s+\w+|\w+\s*=\s*function)`)},
				{models.RoleVariable, regexp.MustCompile(`^\s*(?:var|let|const)\s+\w+`)},
			},
		},
		{
			Name:         "TypeScript",
			Extensions:   []string{".ts", ".tsx"},
			LineComments: []string{"//"},
			BlockComments: []BlockMarker{
				{Start: "/*", End: "*/"},
			},
			Matchers: []RoleMatcher{
				{models.RoleImport, regexp.MustCompile(`^import\s+.*from\s+['"].*['"]`)},
				{models.RoleClass, regexp.MustCompile(`^\s*(?:export\s+)?(?:abstract\s+)?(?:class|interface)\s+\w+`)},
				{models.RoleFunction, regexp.MustCompile(`^\s*(?:export\s+)?(?:function\s+\w+|\w+\s*=\s*function)`)},
				{models.RoleVariable, regexp.MustCompile(`^\s*(?:export\s+)?(?:var|let|const)\s+\w+`)},
			},
		},
		{
			Name:         "C",
			Extensions:   []string{".c", ".h"},
			LineComments: []string{"//"},
			BlockComments: []BlockMarker{
				{Start: "/*", End: "*/"},
			},
			Matchers: []RoleMatcher{
				{models.RoleImport, regexp.MustCompile(`^#include\s+[<"].*[>"]`)},
				{models.RoleFunction, regexp.MustCompile(`^\w+\s+\w+\s*\(`)},
				{models.RoleVariable, regexp.MustCompile(`^\s*\w+\s+\w+\s*=?`)},
			},
		},
		{
			Name:         "Go",
			Extensions:   []string{".go"},
			LineComments: []string{"//"},
			BlockComments: []BlockMarker{
				{Start: "/*", End: "*/"},
			},
			Matchers: []RoleMatcher{
				{models.RoleImport, regexp.MustCompile(`^import\s+`)},
				{models.RoleClass, regexp.MustCompile(`^\s*type\s+\w+`)},
				{models.RoleFunction, regexp.MustCompile(`^\s*func\s+`)},
				{models.RoleVariable, regexp.MustCompile(`^\s*(?:var|const)\s+\w+`)},
			},
		},
	}
}
