package analyze

import (
	"testing"

	"github.com/yeisme/linelens/pkg/language"
	"github.com/yeisme/linelens/pkg/models"
)

func mustSpec(t *testing.T, name string) *language.Spec {
	t.Helper()
	spec, ok := language.SpecByName(name)
	if !ok {
		t.Fatalf("no spec for %s", name)
	}
	return spec
}

func Test_ClassifyLine_Basics(t *testing.T) {
	py := mustSpec(t, "Python")
	var st BlockState

	cases := []struct {
		line string
		cat  models.LineCategory
		role models.CodeRole
	}{
		{"", models.CategoryBlank, models.RoleOther},
		{"   \t  ", models.CategoryBlank, models.RoleOther},
		{"# comment", models.CategoryComment, models.RoleOther},
		{"   # indented comment", models.CategoryComment, models.RoleOther},
		{"import os", models.CategoryCode, models.RoleImport},
		{"class Foo:", models.CategoryCode, models.RoleClass},
		{"def main():", models.CategoryCode, models.RoleFunction},
		{"x = 1", models.CategoryCode, models.RoleVariable},
		{"print('hi')", models.CategoryCode, models.RoleOther},
	}
	for _, c := range cases {
		cat, role := ClassifyLine(c.line, &st, py)
		if cat != c.cat {
			t.Fatalf("%q => %s want %s", c.line, cat, c.cat)
		}
		if cat == models.CategoryCode && role != c.role {
			t.Fatalf("%q role => %s want %s", c.line, role, c.role)
		}
		if st.InBlock() {
			t.Fatalf("%q should not open a block", c.line)
		}
	}
}

// 块注释从打开行到关闭行之间的每一行都是注释，其后紧跟的代码行是代码
func Test_ClassifyLine_BlockSpanning(t *testing.T) {
	c := mustSpec(t, "C")
	var st BlockState

	lines := []string{"/* start", "middle", "end */", "int x = 1;"}
	want := []models.LineCategory{
		models.CategoryComment,
		models.CategoryComment,
		models.CategoryComment,
		models.CategoryCode,
	}
	for i, line := range lines {
		cat, _ := ClassifyLine(line, &st, c)
		if cat != want[i] {
			t.Fatalf("line %d %q => %s want %s", i, line, cat, want[i])
		}
	}
	if st.InBlock() {
		t.Fatal("block should be closed")
	}
}

// 空行优先于注释状态：块内的空白行仍计为空行
func Test_ClassifyLine_BlankWinsInsideBlock(t *testing.T) {
	c := mustSpec(t, "C")
	var st BlockState

	ClassifyLine("/* open", &st, c)
	if !st.InBlock() {
		t.Fatal("block not opened")
	}
	cat, _ := ClassifyLine("   ", &st, c)
	if cat != models.CategoryBlank {
		t.Fatalf("blank inside block => %s", cat)
	}
	if !st.InBlock() {
		t.Fatal("blank line must not close the block")
	}
}

// 起止标记在同一行成对出现时按单行注释处理，状态保持关闭
func Test_ClassifyLine_SingleLineBlockUse(t *testing.T) {
	c := mustSpec(t, "C")
	var st BlockState

	cat, _ := ClassifyLine("/* inline */", &st, c)
	if cat != models.CategoryComment {
		t.Fatalf("inline block => %s", cat)
	}
	if st.InBlock() {
		t.Fatal("inline block must not leave state open")
	}
}

// 块起始标记必须位于行首（允许缩进），行中部出现不生效
func Test_ClassifyLine_BlockStartMustBePrefix(t *testing.T) {
	c := mustSpec(t, "C")
	var st BlockState

	cat, _ := ClassifyLine("int x = 1; /* trailing", &st, c)
	if cat != models.CategoryCode {
		t.Fatalf("trailing marker line => %s want Code", cat)
	}
	if st.InBlock() {
		t.Fatal("mid-line marker must not open a block")
	}
}

// Python 两对块标记独立配对：''' 打开的块只能由 ''' 关闭
func Test_ClassifyLine_PythonPairedQuotes(t *testing.T) {
	py := mustSpec(t, "Python")
	var st BlockState

	ClassifyLine("'''", &st, py)
	if !st.InBlock() {
		t.Fatal("''' should open a block")
	}
	cat, _ := ClassifyLine(`she said """hello"""`, &st, py)
	if cat != models.CategoryComment || !st.InBlock() {
		t.Fatal(`""" must not close a ''' block`)
	}
	ClassifyLine("done '''", &st, py)
	if st.InBlock() {
		t.Fatal("matching ''' should close the block")
	}
}

// 注释行永远不会被当作代码，即使内容形似导入语句
func Test_ClassifyLine_CommentNeverCode(t *testing.T) {
	py := mustSpec(t, "Python")
	var st BlockState

	cat, _ := ClassifyLine("# import os", &st, py)
	if cat != models.CategoryComment {
		t.Fatalf("commented import => %s", cat)
	}
	js := mustSpec(t, "JavaScript")
	cat, _ = ClassifyLine("// const x = 1", &st, js)
	if cat != models.CategoryComment {
		t.Fatalf("commented const => %s", cat)
	}
}

func Test_BlockState_Reset(t *testing.T) {
	c := mustSpec(t, "C")
	var st BlockState
	ClassifyLine("/* open", &st, c)
	st.Reset()
	if st.InBlock() {
		t.Fatal("reset should close the block")
	}
}
