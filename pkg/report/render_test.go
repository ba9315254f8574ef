package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yeisme/linelens/pkg/analyze"
	"github.com/yeisme/linelens/pkg/models"
)

// sampleResult 构造一个两种语言、三个文件的结果用于渲染测试
func sampleResult() *models.AnalysisResult {
	files := []models.FileStats{
		{Path: "a.py", Language: "Python", Size: 100, LineTally: models.LineTally{Blank: 1, Comments: 2, Code: 3}, Total: 6, Detailed: models.RoleTally{Import: 1, Other: 2}},
		{Path: "b.py", Language: "Python", Size: 300, LineTally: models.LineTally{Blank: 0, Comments: 1, Code: 4}, Total: 5, Detailed: models.RoleTally{Function: 2, Other: 2}},
		{Path: "c.go", Language: "Go", Size: 200, LineTally: models.LineTally{Blank: 2, Comments: 2, Code: 6}, Total: 10, Detailed: models.RoleTally{Import: 1, Class: 1, Function: 1, Other: 3}},
	}

	res := &models.AnalysisResult{
		Root:      "/tmp/project",
		Languages: make(map[string]*models.LanguageStats),
		Files:     files,
	}
	for _, f := range files {
		ls, ok := res.Languages[f.Language]
		if !ok {
			ls = &models.LanguageStats{}
			res.Languages[f.Language] = ls
		}
		ls.AddFile(f)
		ls.Files = append(ls.Files, f)
		res.Total.AddFile(f)
	}
	return res
}

func Test_buildLanguageTable(t *testing.T) {
	res := sampleResult()
	headers, rows := buildLanguageTable(res)

	if len(headers) != 8 {
		t.Fatalf("headers = %d, want 8", len(headers))
	}
	// 两种语言加 TOTAL 行
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	// 语言按名称排序，Go 在 Python 之前
	if rows[0][0] != "Go" || rows[1][0] != "Python" {
		t.Fatalf("row order = %s, %s", rows[0][0], rows[1][0])
	}
	last := rows[len(rows)-1]
	if last[0] != "TOTAL" {
		t.Fatalf("last row = %s, want TOTAL", last[0])
	}
	if last[1] != "3" || last[2] != "13" {
		t.Fatalf("TOTAL files/code = %s/%s, want 3/13", last[1], last[2])
	}
	if last[5] != "100.0%" {
		t.Fatalf("TOTAL code%% = %s", last[5])
	}
}

func Test_buildLanguageTable_Empty(t *testing.T) {
	res := &models.AnalysisResult{Languages: map[string]*models.LanguageStats{}}
	_, rows := buildLanguageTable(res)
	if len(rows) != 0 {
		t.Fatalf("empty result should have no rows, got %d", len(rows))
	}
}

func Test_buildDetailedTable(t *testing.T) {
	res := sampleResult()
	headers, rows := buildDetailedTable(res)

	if len(headers) != 6 {
		t.Fatalf("headers = %d, want 6", len(headers))
	}
	last := rows[len(rows)-1]
	if last[0] != "TOTAL" {
		t.Fatalf("last row = %s, want TOTAL", last[0])
	}
	// import 总数 = 1 (a.py) + 1 (c.go)
	if last[1] != "2" {
		t.Fatalf("TOTAL import = %s, want 2", last[1])
	}
}

func Test_buildFileTable(t *testing.T) {
	res := sampleResult()
	_, rows := buildFileTable(res)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][0] != "a.py" {
		t.Fatalf("first row path = %s", rows[0][0])
	}
}

func Test_sortFileDetails(t *testing.T) {
	res := sampleResult()

	sortFileDetails(res, "size")
	if res.Files[0].Path != "b.py" || res.Files[1].Path != "c.go" || res.Files[2].Path != "a.py" {
		t.Fatalf("size order = %s, %s, %s", res.Files[0].Path, res.Files[1].Path, res.Files[2].Path)
	}
	for _, ls := range res.Languages {
		for i := 1; i < len(ls.Files); i++ {
			if ls.Files[i-1].Size < ls.Files[i].Size {
				t.Fatal("per-language files not sorted by size")
			}
		}
	}

	sortFileDetails(res, "lines")
	if res.Files[0].Path != "c.go" {
		t.Fatalf("lines order first = %s, want c.go", res.Files[0].Path)
	}

	// 未知排序方式保持现状
	before := append([]models.FileStats(nil), res.Files...)
	sortFileDetails(res, "path")
	for i := range before {
		if res.Files[i].Path != before[i].Path {
			t.Fatal("path sort must not reorder here")
		}
	}
}

func Test_buildMarkdown(t *testing.T) {
	res := sampleResult()
	res.Module = "example.com/demo"
	res.Failures = []models.ScanFailure{{Path: "broken.py", Error: "permission denied"}}

	md := buildMarkdown(res, Options{Detailed: true, Options: analyze.Options{WithFiles: true}}, 42*time.Millisecond)

	for _, want := range []string{
		"# Line statistics",
		"`example.com/demo`",
		"## Languages",
		"## Code breakdown",
		"## Files",
		"## Failures",
		"`broken.py`: permission denied",
		"| language | files | code |",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func Test_writeMarkdownTable_Empty(t *testing.T) {
	var b strings.Builder
	writeMarkdownTable(&b, nil, nil)
	if b.Len() != 0 {
		t.Fatalf("empty headers should write nothing, got %q", b.String())
	}
}

func Test_isHumanFormat(t *testing.T) {
	for _, f := range []string{"", "text", "TXT", "markdown", "md"} {
		if !isHumanFormat(f) {
			t.Fatalf("%q should be human", f)
		}
	}
	for _, f := range []string{"json", "yaml", "toml"} {
		if isHumanFormat(f) {
			t.Fatalf("%q should be machine", f)
		}
	}
}

func Test_resolveRoot(t *testing.T) {
	if got := resolveRoot([]string{"/tmp/x"}); got != "/tmp/x" {
		t.Fatalf("resolveRoot = %s", got)
	}
	got := resolveRoot(nil)
	if !filepath.IsAbs(got) {
		t.Fatalf("default root should be absolute, got %s", got)
	}
}

func Test_readModulePath(t *testing.T) {
	dir := t.TempDir()
	if got := readModulePath(dir); got != "" {
		t.Fatalf("no go.mod should yield empty, got %q", got)
	}

	content := "module example.com/demo\n\ngo 1.24\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if got := readModulePath(dir); got != "example.com/demo" {
		t.Fatalf("module = %q", got)
	}
}

func Test_exportResult(t *testing.T) {
	res := sampleResult()
	path := filepath.Join(t.TempDir(), "out", "report.json")

	if err := exportResult(res, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded models.AnalysisResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if decoded.Total.FileCount != res.Total.FileCount {
		t.Fatalf("file count = %d, want %d", decoded.Total.FileCount, res.Total.FileCount)
	}
}
