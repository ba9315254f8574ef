package style

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

var ansiRe = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

func Test_colorizeJSON_PreservesText(t *testing.T) {
	src := "{\n  \"name\": \"a: b\",\n  \"lines\": 42,\n  \"ratio\": -3.5e2,\n  \"ok\": true,\n  \"skip\": false,\n  \"mod\": null,\n  \"esc\": \"say \\\"hi\\\"\"\n}\n"
	got := stripANSI(colorizeJSON(src))
	if got != src {
		t.Fatalf("colorizeJSON changed text:\n%q\nwant\n%q", got, src)
	}
}

func Test_colorizeYAML_PreservesText(t *testing.T) {
	src := "name: linelens\nfiles: 12\nratio: 37.5\nok: true\nempty: null\ntilde: ~\nitems:\n  - one\n  - -5\n  - \"quoted: colon\"\n'odd key': value\n"
	got := stripANSI(colorizeYAML(src))
	if got != src {
		t.Fatalf("colorizeYAML changed text:\n%q\nwant\n%q", got, src)
	}
}

func Test_colorizeTOML_PreservesText(t *testing.T) {
	src := "# top comment\n[app]\nname = 'linelens'\ndebug = false\nmax = 1048576 # bytes\nexts = [\"py\", \"go\"]\n"
	got := stripANSI(colorizeTOML(src))
	if got != src {
		t.Fatalf("colorizeTOML changed text:\n%q\nwant\n%q", got, src)
	}
}

func Test_PrintJSON_InvalidInput(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, "{not json"); err == nil {
		t.Fatal("expected error for invalid JSON text")
	}
}

func Test_PrintJSON_Value(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, map[string]int{"code": 7}); err != nil {
		t.Fatalf("PrintJSON: %v", err)
	}
	got := stripANSI(buf.String())
	want := "{\n  \"code\": 7\n}\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func Test_PrintYAML_Value(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintYAML(&buf, map[string]any{"nested": map[string]int{"code": 7}}); err != nil {
		t.Fatalf("PrintYAML: %v", err)
	}
	got := stripANSI(buf.String())
	// 2 空格缩进
	if !strings.Contains(got, "nested:\n  code: 7\n") {
		t.Fatalf("unexpected YAML output: %q", got)
	}
}

func Test_looksNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"42", true},
		{"-7", true},
		{"3.14", true},
		{"1,234", true},
		{"37.5%", true},
		{"1.2 MB", true},
		{"512 B", true},
		{"", false},
		{"TOTAL", false},
		{"Python", false},
		{"main.py", false},
		{"KB", false},
	}
	for _, c := range cases {
		if got := looksNumeric(c.in); got != c.want {
			t.Errorf("looksNumeric(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func Test_numericColumns(t *testing.T) {
	headers := []string{"language", "files", "size"}
	rows := [][]string{
		{"Python", "3", "1.2 KB"},
		{"Go", "10", "980 B"},
		{"TOTAL", "13", "2.2 KB"},
	}
	got := numericColumns(headers, rows)
	want := []bool{false, true, true}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func Test_numericColumns_NoRows(t *testing.T) {
	got := numericColumns([]string{"a", "b"}, nil)
	if got[0] || got[1] {
		t.Fatal("empty table must not mark numeric columns")
	}
}

func Test_PrintAlignedList(t *testing.T) {
	var buf bytes.Buffer
	items := []ListItem{
		{Name: "Go", Description: "exts .go"},
		{Name: "Python", Description: "exts .py"},
	}
	if err := PrintAlignedList(&buf, items); err != nil {
		t.Fatalf("PrintAlignedList: %v", err)
	}
	lines := strings.Split(strings.TrimRight(stripANSI(buf.String()), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "  Go      exts .go" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "  Python  exts .py" {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}

func Test_PrintAlignedList_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintAlignedList(&buf, nil); err != nil {
		t.Fatalf("PrintAlignedList: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("empty list should print nothing, got %q", buf.String())
	}
}
