package style

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	xterm "github.com/charmbracelet/x/term"
)

// PrintTable 用于标准化表格输出，支持自定义表头和内容
// width: 期望的表格宽度；当 width<=0 时自动探测终端宽度（失败则回退到80）。
// 整列都是数值（含 37.5% 与 1.2 MB 这类带单位的值）时该列右对齐
func PrintTable(w io.Writer, headers []string, rows [][]string, width int) error {
	if width <= 0 {
		width = detectTerminalWidth(w)
		if width <= 0 {
			width = 80
		}
	}

	re := lipgloss.NewRenderer(w)
	baseStyle := re.NewStyle().Padding(0, 1)
	numStyle := baseStyle.Align(lipgloss.Right)
	headerStyle := baseStyle.Foreground(ColorAccentPrimary).Bold(true)

	upper := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = strings.ToUpper(h)
	}
	numericCol := numericColumns(headers, rows)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle().Foreground(ColorBorder)).
		Headers(upper...).
		Width(width).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col >= 0 && col < len(numericCol) && numericCol[col] {
					return headerStyle.Align(lipgloss.Right)
				}
				return headerStyle
			}
			if col >= 0 && col < len(numericCol) && numericCol[col] {
				return numStyle
			}
			return baseStyle
		})

	_, err := fmt.Fprintln(w, tbl)
	return err
}

// numericColumns 标记每一列是否整列都是数值单元格
func numericColumns(headers []string, rows [][]string) []bool {
	cols := make([]bool, len(headers))
	for c := range cols {
		cols[c] = len(rows) > 0
		for _, r := range rows {
			if c >= len(r) || !looksNumeric(r[c]) {
				cols[c] = false
				break
			}
		}
	}
	return cols
}

// looksNumeric 判断单元格是否是数值，允许百分号与 B/KB/MB/GB/TB 单位后缀
func looksNumeric(s string) bool {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	for _, unit := range []string{" B", " KB", " MB", " GB", " TB"} {
		if v, ok := strings.CutSuffix(s, unit); ok {
			s = v
			break
		}
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != ',' && r != '-' {
			return false
		}
	}
	return true
}

// detectTerminalWidth 尝试从 writer 获取终端宽度，失败则返回 0
func detectTerminalWidth(w io.Writer) int {
	// 优先使用文件描述符
	if f, ok := w.(*os.File); ok {
		if fw := f.Fd(); fw > 0 {
			if cols, _, err := xterm.GetSize(fw); err == nil && cols > 0 {
				return cols
			}
		}
	}
	// 尝试从环境变量读取（例如某些环境会设置 COLUMNS）
	if v := os.Getenv("COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
