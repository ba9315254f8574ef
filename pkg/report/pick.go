package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/yeisme/linelens/pkg/models"
	"github.com/yeisme/linelens/pkg/style"
	"github.com/yeisme/linelens/pkg/utils/fsop"
)

// pickAndShow 用 fuzzyfinder 在文件明细中交互挑选一个文件并打印其统计
// 用户取消选择不算错误
func pickAndShow(res *models.AnalysisResult, w io.Writer) error {
	files := res.Files
	if len(files) == 0 {
		return fmt.Errorf("no file details available, rerun with --files")
	}

	idx, err := fuzzyfinder.Find(files,
		func(i int) string {
			f := files[i]
			return fmt.Sprintf("%s (%s, %d lines)", f.Path, f.Language, f.Total)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 {
				return ""
			}
			return previewFile(files[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return err
	}

	return printFileDetail(w, files[idx])
}

// previewFile 构建预览窗格里的统计摘要
func previewFile(f models.FileStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", f.Path)
	fmt.Fprintf(&b, "Language:  %s\n", f.Language)
	fmt.Fprintf(&b, "Size:      %s\n", fsop.FormatSize(f.Size))
	fmt.Fprintf(&b, "Blank:     %d\n", f.Blank)
	fmt.Fprintf(&b, "Comments:  %d\n", f.Comments)
	fmt.Fprintf(&b, "Code:      %d\n", f.Code)
	fmt.Fprintf(&b, "Total:     %d\n", f.Total)
	fmt.Fprintf(&b, "\nImport:    %d\n", f.Detailed.Import)
	fmt.Fprintf(&b, "Class:     %d\n", f.Detailed.Class)
	fmt.Fprintf(&b, "Function:  %d\n", f.Detailed.Function)
	fmt.Fprintf(&b, "Variable:  %d\n", f.Detailed.Variable)
	fmt.Fprintf(&b, "Other:     %d\n", f.Detailed.Other)
	return b.String()
}

// printFileDetail 以字段表的形式打印单个文件的完整统计
func printFileDetail(w io.Writer, f models.FileStats) error {
	rows := [][]string{
		{"Path", f.Path},
		{"Language", f.Language},
		{"Size", fsop.FormatSize(f.Size)},
		{"Blank", fmt.Sprintf("%d", f.Blank)},
		{"Comments", fmt.Sprintf("%d", f.Comments)},
		{"Code", fmt.Sprintf("%d", f.Code)},
		{"Total", fmt.Sprintf("%d", f.Total)},
		{"Import", fmt.Sprintf("%d", f.Detailed.Import)},
		{"Class", fmt.Sprintf("%d", f.Detailed.Class)},
		{"Function", fmt.Sprintf("%d", f.Detailed.Function)},
		{"Variable", fmt.Sprintf("%d", f.Detailed.Variable)},
		{"Other", fmt.Sprintf("%d", f.Detailed.Other)},
	}
	return style.PrintTable(w, []string{"Field", "Value"}, rows, 0)
}
