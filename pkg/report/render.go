package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/yeisme/linelens/pkg/models"
	"github.com/yeisme/linelens/pkg/style"
	"github.com/yeisme/linelens/pkg/utils/fsop"
)

// renderText 渲染默认的终端文本报告：
// 头部、语言表、可选的角色细分表与文件明细表、失败列表、汇总尾行
func renderText(w io.Writer, res *models.AnalysisResult, opts Options, elapsed time.Duration) error {
	fmt.Fprintf(w, "Project: %s\n", res.Root)
	if res.Module != "" {
		fmt.Fprintf(w, "Module: %s\n", res.Module)
	}

	langHeaders, langRows := buildLanguageTable(res)
	if err := style.PrintTable(w, langHeaders, langRows, 0); err != nil {
		log.Error().Err(err).Msg("failed to print language table")
	}

	if opts.Detailed {
		detHeaders, detRows := buildDetailedTable(res)
		fmt.Fprintln(w)
		_ = style.PrintHeading(w, "Code breakdown")
		if err := style.PrintTable(w, detHeaders, detRows, 0); err != nil {
			log.Error().Err(err).Msg("failed to print breakdown table")
		}
	}

	if opts.WithFiles && len(res.Files) > 0 {
		fileHeaders, fileRows := buildFileTable(res)
		fmt.Fprintln(w)
		_ = style.PrintHeading(w, "Files")
		if err := style.PrintTable(w, fileHeaders, fileRows, 0); err != nil {
			log.Error().Err(err).Msg("failed to print file table")
		}
	}

	if len(res.Failures) > 0 {
		fmt.Fprintln(w)
		_ = style.PrintHeading(w, "Failures")
		items := make([]style.ListItem, 0, len(res.Failures))
		for _, f := range res.Failures {
			items = append(items, style.ListItem{Name: f.Path, Description: f.Error, Danger: true})
		}
		_ = style.PrintAlignedList(w, items)
	}

	fmt.Fprintf(w, "\n%d files, %d lines, %s in %s\n",
		res.Total.FileCount,
		res.Total.Lines,
		fsop.FormatSize(res.Total.Size),
		elapsed.Round(time.Millisecond),
	)
	return nil
}

// sortedLanguageNames 返回按名称排序的语言键
func sortedLanguageNames(res *models.AnalysisResult) []string {
	names := make([]string, 0, len(res.Languages))
	for name := range res.Languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildLanguageTable 构建语言统计表数据（含 TOTAL 行）
func buildLanguageTable(res *models.AnalysisResult) ([]string, [][]string) {
	headers := []string{"language", "files", "code", "comments", "blank", "code%", "lines", "size"}

	names := sortedLanguageNames(res)
	rows := make([][]string, 0, len(names)+1)

	for _, name := range names {
		ls := res.Languages[name]
		codePct := 0.0
		if res.Total.Code > 0 {
			codePct = float64(ls.Code) * 100 / float64(res.Total.Code)
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", ls.FileCount),
			fmt.Sprintf("%d", ls.Code),
			fmt.Sprintf("%d", ls.Comments),
			fmt.Sprintf("%d", ls.Blank),
			fmt.Sprintf("%.1f%%", codePct),
			fmt.Sprintf("%d", ls.Lines),
			fsop.FormatSize(ls.Size),
		})
	}

	if len(names) > 0 { // TOTAL 行
		rows = append(rows, []string{
			"TOTAL",
			fmt.Sprintf("%d", res.Total.FileCount),
			fmt.Sprintf("%d", res.Total.Code),
			fmt.Sprintf("%d", res.Total.Comments),
			fmt.Sprintf("%d", res.Total.Blank),
			"100.0%",
			fmt.Sprintf("%d", res.Total.Lines),
			fsop.FormatSize(res.Total.Size),
		})
	}
	return headers, rows
}

// buildDetailedTable 构建代码角色细分表数据（含 TOTAL 行）
func buildDetailedTable(res *models.AnalysisResult) ([]string, [][]string) {
	headers := []string{"language", "import", "class", "function", "variable", "other"}

	names := sortedLanguageNames(res)
	rows := make([][]string, 0, len(names)+1)

	for _, name := range names {
		d := res.Languages[name].Detailed
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", d.Import),
			fmt.Sprintf("%d", d.Class),
			fmt.Sprintf("%d", d.Function),
			fmt.Sprintf("%d", d.Variable),
			fmt.Sprintf("%d", d.Other),
		})
	}

	if len(names) > 0 {
		d := res.Total.Detailed
		rows = append(rows, []string{
			"TOTAL",
			fmt.Sprintf("%d", d.Import),
			fmt.Sprintf("%d", d.Class),
			fmt.Sprintf("%d", d.Function),
			fmt.Sprintf("%d", d.Variable),
			fmt.Sprintf("%d", d.Other),
		})
	}
	return headers, rows
}

// buildFileTable 构建文件明细表数据
func buildFileTable(res *models.AnalysisResult) ([]string, [][]string) {
	headers := []string{"path", "language", "code", "comments", "blank", "lines", "size"}
	rows := make([][]string, 0, len(res.Files))
	for _, f := range res.Files {
		rows = append(rows, []string{
			f.Path,
			f.Language,
			fmt.Sprintf("%d", f.Code),
			fmt.Sprintf("%d", f.Comments),
			fmt.Sprintf("%d", f.Blank),
			fmt.Sprintf("%d", f.Total),
			fsop.FormatSize(f.Size),
		})
	}
	return headers, rows
}

// sortFileDetails 按指定方式重排文件明细
// path 为默认序，聚合阶段已经排好；size 与 lines 为降序，同值按路径
func sortFileDetails(res *models.AnalysisResult, by string) {
	less := fileLess(by)
	if less == nil {
		return
	}
	sort.SliceStable(res.Files, func(i, j int) bool { return less(res.Files[i], res.Files[j]) })
	for _, ls := range res.Languages {
		sort.SliceStable(ls.Files, func(i, j int) bool { return less(ls.Files[i], ls.Files[j]) })
	}
}

func fileLess(by string) func(a, b models.FileStats) bool {
	switch strings.ToLower(by) {
	case "size":
		return func(a, b models.FileStats) bool {
			if a.Size != b.Size {
				return a.Size > b.Size
			}
			return a.Path < b.Path
		}
	case "lines":
		return func(a, b models.FileStats) bool {
			if a.Total != b.Total {
				return a.Total > b.Total
			}
			return a.Path < b.Path
		}
	default:
		return nil
	}
}
