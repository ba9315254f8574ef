package style

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown 渲染传入的 Markdown 文本并输出到指定 writer
// 与其它 style 包函数风格一致: 写入 w 并返回 error
//
// width<=0 时使用探测到的终端宽度，最终宽度被限制在 [80, 120]；
// theme 为空时默认 "dracula"
func RenderMarkdown(w io.Writer, input string, width int, theme string) error {
	if theme == "" {
		theme = "dracula"
	}
	if width <= 0 {
		width = detectTerminalWidth(w)
	}
	if width < 80 {
		width = 80
	}
	if width > 120 {
		width = 120
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
		glamour.WithStandardStyle(theme),
		glamour.WithInlineTableLinks(true),
	)
	if err != nil {
		return err
	}

	out, err := r.Render(input)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}
