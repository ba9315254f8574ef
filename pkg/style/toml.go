package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	toml "github.com/pelletier/go-toml/v2"
)

// PrintTOML 将任意值以带高亮的 TOML 形式输出到 writer
//
// 入参规则与 PrintYAML 一致:
//   - string / []byte: 视为已经编码好的 TOML 文本，原样高亮输出
//   - 其他任意 Go 值: 使用 toml.Marshal 编码后再渲染
func PrintTOML(w io.Writer, v any) error {
	var text string
	switch x := v.(type) {
	case string:
		text = x
	case []byte:
		text = string(x)
	default:
		b, err := toml.Marshal(v)
		if err != nil {
			return err
		}
		text = string(b)
	}
	_, err := fmt.Fprint(w, colorizeTOML(text))
	return err
}

// colorizeTOML 对 TOML 文本做轻量高亮
// 按行处理：表头 [table]、键、字符串、数字、布尔、数组标点与注释分别着色
func colorizeTOML(s string) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorJSONKey).Bold(true)
	strStyle := lipgloss.NewStyle().Foreground(ColorJSONValue)
	numStyle := lipgloss.NewStyle().Foreground(ColorJSONNumber)
	boolStyle := lipgloss.NewStyle().Foreground(ColorJSONBool)
	punctStyle := lipgloss.NewStyle().Foreground(ColorJSONPunct)
	commentStyle := lipgloss.NewStyle().Foreground(ColorJSONPunct)

	var out strings.Builder
	lines := strings.Split(s, "\n")
	for li, line := range lines {
		if li > 0 {
			out.WriteByte('\n')
		}
		if line == "" {
			continue
		}

		trimmed := strings.TrimLeft(line, " \t")
		if indent := len(line) - len(trimmed); indent > 0 {
			out.WriteString(line[:indent])
		}

		// 注释行
		if strings.HasPrefix(trimmed, "#") {
			out.WriteString(commentStyle.Render(trimmed))
			continue
		}

		// 表头 [table] 或 [[array-of-tables]]
		if strings.HasPrefix(trimmed, "[") {
			if idx := strings.LastIndex(trimmed, "]"); idx >= 0 {
				out.WriteString(punctStyle.Render(trimmed[:idx+1]))
				out.WriteString(trimmed[idx+1:])
			} else {
				out.WriteString(punctStyle.Render(trimmed))
			}
			continue
		}

		// 行尾注释先剥离
		content, comment := trimmed, ""
		if ci := indexUnquoted(trimmed, '#'); ci >= 0 {
			content = strings.TrimRight(trimmed[:ci], " ")
			comment = trimmed[ci:]
		}

		if eq := indexUnquoted(content, '='); eq >= 0 {
			out.WriteString(keyStyle.Render(strings.TrimSpace(content[:eq])))
			out.WriteString(" ")
			out.WriteString(punctStyle.Render("="))
			if rest := strings.TrimSpace(content[eq+1:]); rest != "" {
				out.WriteString(" ")
				colorizeTOMLValue(rest, &out, strStyle, numStyle, boolStyle, punctStyle)
			}
		} else {
			// 多行数组的续行等，原样输出
			out.WriteString(content)
		}

		if comment != "" {
			out.WriteByte(' ')
			out.WriteString(commentStyle.Render(comment))
		}
	}
	return out.String()
}

// colorizeTOMLValue 对一段 TOML 值文本逐 token 着色后写入 out
func colorizeTOMLValue(s string, out *strings.Builder, strStyle, numStyle, boolStyle, punctStyle lipgloss.Style) {
	i := 0
	for i < len(s) {
		ch := s[i]
		if ch == '"' || ch == '\'' {
			token, next := readQuotedToken(s, i)
			out.WriteString(strStyle.Render(token))
			i = next
			continue
		}
		if ch == '[' || ch == ']' || ch == ',' {
			out.WriteString(punctStyle.Render(string(ch)))
			i++
			continue
		}
		if ch == '-' || (ch >= '0' && ch <= '9') {
			j := readNumber(s, i)
			out.WriteString(numStyle.Render(s[i:j]))
			i = j
			continue
		}
		if hasPrefixAt(s, i, "true") {
			out.WriteString(boolStyle.Render("true"))
			i += 4
			continue
		}
		if hasPrefixAt(s, i, "false") {
			out.WriteString(boolStyle.Render("false"))
			i += 5
			continue
		}
		out.WriteByte(ch)
		i++
	}
}
