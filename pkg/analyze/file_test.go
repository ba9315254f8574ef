package analyze

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// helper to write file
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func Test_AnalyzeReader_ThreeLines(t *testing.T) {
	js := mustSpec(t, "JavaScript")
	src := "// header\n \nimport x from 'lib'\n"

	st, err := AnalyzeReader(context.Background(), js, strings.NewReader(src))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if st.Comments != 1 || st.Blank != 1 || st.Code != 1 {
		t.Fatalf("tally %+v", st.LineTally)
	}
	if st.Total != 3 {
		t.Fatalf("total %d", st.Total)
	}
	if st.Detailed.Import != 1 {
		t.Fatalf("detailed %+v", st.Detailed)
	}
}

// 未闭合的块注释一直延续到文件末尾，不是错误
func Test_AnalyzeReader_UnterminatedBlock(t *testing.T) {
	c := mustSpec(t, "C")
	src := "int x = 1;\n/* open\nstill comment\nmore\n"

	st, err := AnalyzeReader(context.Background(), c, strings.NewReader(src))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if st.Code != 1 || st.Comments != 3 {
		t.Fatalf("tally %+v", st.LineTally)
	}
}

func Test_AnalyzeReader_Invariants(t *testing.T) {
	py := mustSpec(t, "Python")
	src := `import os
from sys import path

class App:
    """doc

    body
    """
    def run(self):
        x = 1
        # note
        return x
`
	st, err := AnalyzeReader(context.Background(), py, strings.NewReader(src))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if st.LineTally.Sum() != st.Total {
		t.Fatalf("blank+comments+code=%d total=%d", st.LineTally.Sum(), st.Total)
	}
	if st.Detailed.Sum() != st.Code {
		t.Fatalf("roles=%d code=%d", st.Detailed.Sum(), st.Code)
	}
}

func Test_AnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	content := "# doc\n\nimport os\nx = 1\n"
	p := writeFile(t, dir, "app.py", content)

	st, err := AnalyzeFile(context.Background(), p)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if st.Language != "Python" {
		t.Fatalf("lang %s", st.Language)
	}
	if st.Path != p {
		t.Fatalf("path %s", st.Path)
	}
	if st.Size != int64(len(content)) {
		t.Fatalf("size %d want %d", st.Size, len(content))
	}
	if st.Total != 4 || st.Blank != 1 || st.Comments != 1 || st.Code != 2 {
		t.Fatalf("tally %+v total %d", st.LineTally, st.Total)
	}
	if st.Detailed.Import != 1 || st.Detailed.Variable != 1 {
		t.Fatalf("detailed %+v", st.Detailed)
	}
}

func Test_AnalyzeFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "notes.txt", "hello\n")

	_, err := AnalyzeFile(context.Background(), p)
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("err %v", err)
	}
}

func Test_AnalyzeFile_Missing(t *testing.T) {
	_, err := AnalyzeFile(context.Background(), filepath.Join(t.TempDir(), "ghost.py"))
	if !errors.Is(err, ErrUnreadableFile) {
		t.Fatalf("err %v", err)
	}
}

// 同一文件分析两次结果完全一致
func Test_AnalyzeFile_Idempotent(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.js", "// c\nconst x = 1\nfunction f() {}\n")

	first, err := AnalyzeFile(context.Background(), p)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	second, err := AnalyzeFile(context.Background(), p)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("first %+v second %+v", first, second)
	}
}

func Test_AnalyzeFile_Cancelled(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.py", "x = 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := AnalyzeFile(ctx, p); !errors.Is(err, context.Canceled) {
		t.Fatalf("err %v", err)
	}
}
