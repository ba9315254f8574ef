package style

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// PrintYAML 将任意值以带高亮的 YAML 形式输出到 writer
//
// 入参规则:
//   - string / []byte: 视为已经编码好的 YAML 文本，原样高亮输出
//   - 其他任意 Go 值: 以 2 空格缩进编码后再渲染
func PrintYAML(w io.Writer, v any) error {
	var text string
	switch x := v.(type) {
	case string:
		text = x
	case []byte:
		text = string(x)
	default:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		text = buf.String()
	}
	_, err := fmt.Fprint(w, colorizeYAML(text))
	return err
}

// colorizeYAML 对 YAML 文本做轻量高亮（键名、列表符号、数字、布尔、null）
// 按行处理：缩进原样保留，行内第一个未被引号包裹的冒号之前视为键
func colorizeYAML(s string) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorJSONKey).Bold(true)
	strStyle := lipgloss.NewStyle().Foreground(ColorJSONValue)
	numStyle := lipgloss.NewStyle().Foreground(ColorJSONNumber)
	boolStyle := lipgloss.NewStyle().Foreground(ColorJSONBool)
	nullStyle := lipgloss.NewStyle().Foreground(ColorJSONNull)
	punctStyle := lipgloss.NewStyle().Foreground(ColorJSONPunct)

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

		// 列表项前缀
		if strings.HasPrefix(trimmed, "- ") || trimmed == "-" {
			out.WriteString(punctStyle.Render("-"))
			if trimmed == "-" {
				continue
			}
			out.WriteByte(' ')
			trimmed = trimmed[2:]
		}
		if trimmed == "" {
			continue
		}

		if idx := indexUnquoted(trimmed, ':'); idx > 0 {
			out.WriteString(keyStyle.Render(trimmed[:idx]))
			out.WriteString(punctStyle.Render(":"))
			rest := trimmed[idx+1:]
			if len(rest) > 0 && rest[0] == ' ' {
				out.WriteByte(' ')
				rest = rest[1:]
			}
			colorizeYAMLValue(rest, &out, strStyle, numStyle, boolStyle, nullStyle)
		} else {
			// 整行是值（续行、流式列表成员等）
			colorizeYAMLValue(trimmed, &out, strStyle, numStyle, boolStyle, nullStyle)
		}
	}
	return out.String()
}

// colorizeYAMLValue 对一段 YAML 值文本逐 token 着色后写入 out
func colorizeYAMLValue(s string, out *strings.Builder, strStyle, numStyle, boolStyle, nullStyle lipgloss.Style) {
	i := 0
	for i < len(s) {
		ch := s[i]
		if ch == '"' || ch == '\'' {
			token, next := readQuotedToken(s, i)
			out.WriteString(strStyle.Render(token))
			i = next
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
		if ch == '~' {
			out.WriteString(nullStyle.Render("~"))
			i++
			continue
		}
		if hasPrefixAt(s, i, "null") {
			out.WriteString(nullStyle.Render("null"))
			i += 4
			continue
		}
		out.WriteByte(ch)
		i++
	}
}
