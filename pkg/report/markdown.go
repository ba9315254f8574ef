package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yeisme/linelens/pkg/models"
	"github.com/yeisme/linelens/pkg/style"
	"github.com/yeisme/linelens/pkg/utils/fsop"
)

// renderMarkdown 将报告构建为 Markdown 并经 glamour 渲染到终端
func renderMarkdown(w io.Writer, res *models.AnalysisResult, opts Options, elapsed time.Duration) error {
	md := buildMarkdown(res, opts, elapsed)
	return style.RenderMarkdown(w, md, 0, "")
}

// buildMarkdown 构建 Markdown 文本报告，结构与文本渲染保持一致
func buildMarkdown(res *models.AnalysisResult, opts Options, elapsed time.Duration) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Line statistics\n\n")
	fmt.Fprintf(&b, "Project: `%s`\n\n", res.Root)
	if res.Module != "" {
		fmt.Fprintf(&b, "Module: `%s`\n\n", res.Module)
	}

	b.WriteString("## Languages\n\n")
	langHeaders, langRows := buildLanguageTable(res)
	writeMarkdownTable(&b, langHeaders, langRows)

	if opts.Detailed {
		b.WriteString("\n## Code breakdown\n\n")
		detailHeaders, detailRows := buildDetailedTable(res)
		writeMarkdownTable(&b, detailHeaders, detailRows)
	}

	if opts.WithFiles && len(res.Files) > 0 {
		b.WriteString("\n## Files\n\n")
		fileHeaders, fileRows := buildFileTable(res)
		writeMarkdownTable(&b, fileHeaders, fileRows)
	}

	if len(res.Failures) > 0 {
		b.WriteString("\n## Failures\n\n")
		for _, f := range res.Failures {
			fmt.Fprintf(&b, "- `%s`: %s\n", f.Path, f.Error)
		}
	}

	fmt.Fprintf(&b, "\n*%d files, %d lines, %s in %s*\n",
		res.Total.FileCount,
		res.Total.Lines,
		fsop.FormatSize(res.Total.Size),
		elapsed.Round(time.Millisecond),
	)
	return b.String()
}

// writeMarkdownTable 以 Markdown 表格语法写出表头与数据行
func writeMarkdownTable(b *strings.Builder, headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")

	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	b.WriteString("| " + strings.Join(sep, " | ") + " |\n")

	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
}
