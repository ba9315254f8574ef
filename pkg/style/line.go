package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ListItem 一个带说明的对齐列表项
type ListItem struct {
	Name        string
	Description string
	Danger      bool // 以危险色渲染名称，例如扫描失败的文件
}

// PrintHeading 打印一个区块标题
func PrintHeading(w io.Writer, title string) error {
	style := lipgloss.NewStyle().
		Foreground(ColorAccentText).
		Background(ColorAccentPrimary).
		Bold(true).
		Padding(0, 1)
	_, err := fmt.Fprintln(w, style.Render(strings.ToUpper(title)))
	return err
}

// PrintAlignedList 以对齐的方式打印名称加说明的列表
// 对齐按显示宽度计算，名称含全角字符时也能对齐
func PrintAlignedList(w io.Writer, items []ListItem) error {
	if len(items) == 0 {
		return nil
	}
	// 计算最大名称显示宽度用于对齐
	maxName := 0
	for _, it := range items {
		if l := runewidth.StringWidth(it.Name); l > maxName {
			maxName = l
		}
	}

	nameStyle := lipgloss.NewStyle().Foreground(ColorAccentPrimary).Bold(true)
	nameDanger := lipgloss.NewStyle().Foreground(ColorDanger)
	descStyle := lipgloss.NewStyle().Foreground(ColorText)

	for _, it := range items {
		name := it.Name
		if it.Danger {
			name = nameDanger.Render(name)
		} else {
			name = nameStyle.Render(name)
		}
		padding := strings.Repeat(" ", maxName-runewidth.StringWidth(it.Name))
		line := fmt.Sprintf("  %s%s  %s", name, padding, descStyle.Render(it.Description))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
