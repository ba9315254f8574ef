package language

import (
	"testing"

	"github.com/yeisme/linelens/pkg/models"
)

func Test_SpecForPath(t *testing.T) {
	cases := map[string]string{
		"a.py":        "Python",
		"B.PY":        "Python",
		"Main.java":   "Java",
		"app.js":      "JavaScript",
		"app.ts":      "TypeScript",
		"view.tsx":    "TypeScript",
		"lib.c":       "C",
		"lib.h":       "C",
		"main.go":     "Go",
		"sub/dir/x.py": "Python",
	}
	for path, want := range cases {
		spec, ok := SpecForPath(path)
		if !ok {
			t.Fatalf("%s: no spec", path)
		}
		if spec.Name != want {
			t.Fatalf("%s => %s want %s", path, spec.Name, want)
		}
	}
	if _, ok := SpecForPath("readme.txt"); ok {
		t.Fatal("txt should be unknown")
	}
	if _, ok := SpecForPath("Makefile"); ok {
		t.Fatal("no extension should be unknown")
	}
}

func Test_SpecByName(t *testing.T) {
	if _, ok := SpecByName("python"); !ok {
		t.Fatal("lookup should ignore case")
	}
	if _, ok := SpecByName("COBOL"); ok {
		t.Fatal("unknown language")
	}
}

func Test_MatchRole_Python(t *testing.T) {
	spec, _ := SpecByName("Python")
	cases := map[string]models.CodeRole{
		"import os":                models.RoleImport,
		"from os import path":      models.RoleImport,
		"class Foo:":               models.RoleClass,
		"  class Bar(Base):":       models.RoleClass,
		"def main():":              models.RoleFunction,
		"    def helper(x):":       models.RoleFunction,
		"x = 1":                    models.RoleVariable,
		"  total = a + b":          models.RoleVariable,
		"print(x)":                 models.RoleOther,
		"return x":                 models.RoleOther,
	}
	for line, want := range cases {
		if got := spec.MatchRole(line); got != want {
			t.Fatalf("%q => %s want %s", line, got, want)
		}
	}
}

// 固定优先级：同一行可匹配多个规则时，导入优先于类，类优先于函数，
// 函数优先于变量
func Test_MatchRole_Precedence(t *testing.T) {
	js, _ := SpecByName("JavaScript")
	// class 出现在表尾的旧顺序会把这一行判为变量声明
	if got := js.MatchRole("class Foo {"); got != models.RoleClass {
		t.Fatalf("class line => %s", got)
	}
	if got := js.MatchRole("const fn = function () {"); got != models.RoleVariable {
		t.Fatalf("const-function line => %s want VariableDeclaration", got)
	}
	py, _ := SpecByName("Python")
	// "import" 同时满足变量规则前缀的情况不存在，但顺序仍须是导入在前
	if py.Matchers[0].Role != models.RoleImport {
		t.Fatal("import must be first matcher")
	}
}

func Test_MatchRole_C(t *testing.T) {
	spec, _ := SpecByName("C")
	cases := map[string]models.CodeRole{
		`#include <stdio.h>`: models.RoleImport,
		`#include "lib.h"`:   models.RoleImport,
		"int main(void) {":   models.RoleFunction,
		"  int x = 1;":       models.RoleVariable,
		"}":                  models.RoleOther,
	}
	for line, want := range cases {
		if got := spec.MatchRole(line); got != want {
			t.Fatalf("%q => %s want %s", line, got, want)
		}
	}
}

func Test_MatchRole_IndentedImportIsNotImport(t *testing.T) {
	py, _ := SpecByName("Python")
	// 导入规则锚定行首，缩进的 import 不按导入计
	if got := py.MatchRole("    import os"); got == models.RoleImport {
		t.Fatal("indented import should not match import role")
	}
}

func Test_Descriptors(t *testing.T) {
	ds := Descriptors()
	if len(ds) != 6 {
		t.Fatalf("descriptor count %d", len(ds))
	}
	// All 按名称排序
	for i := 1; i < len(ds); i++ {
		if ds[i-1].Name > ds[i].Name {
			t.Fatalf("descriptors not sorted: %s > %s", ds[i-1].Name, ds[i].Name)
		}
	}
	c, ok := SpecByName("C")
	if !ok || len(c.Matchers) != 3 {
		t.Fatal("C has no class matcher")
	}
}

func Test_RegistryIsolation(t *testing.T) {
	r := NewRegistry(&Spec{Name: "X", Extensions: []string{".x"}})
	if _, ok := r.SpecForPath("a.py"); ok {
		t.Fatal("custom registry should not know python")
	}
	if _, ok := r.SpecForPath("a.x"); !ok {
		t.Fatal("custom registry lookup")
	}
}
