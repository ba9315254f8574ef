package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// PrintJSON 将任意值以缩进并带简洁高亮的方式输出到 writer
//
// 入参支持:
//   - string / []byte: 视为原始 JSON 文本，校验并重新缩进
//   - 其他任意 Go 值: 使用 [json.MarshalIndent] 编码后再渲染
func PrintJSON(w io.Writer, v any) error {
	pretty, err := formatJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, colorizeJSON(pretty))
	return err
}

// formatJSON 返回缩进后的 JSON 文本，末尾带换行
func formatJSON(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null\n", nil
	case string:
		return indentJSON([]byte(x))
	case []byte:
		return indentJSON(x)
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		if len(b) == 0 || b[len(b)-1] != '\n' {
			b = append(b, '\n')
		}
		return string(b), nil
	}
}

// indentJSON 校验并缩进原始 JSON 字节
func indentJSON(src []byte) (string, error) {
	src = bytes.TrimSpace(src)
	if len(src) == 0 {
		return "null\n", nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, src, "", "  "); err != nil {
		return "", err
	}
	if out.Len() == 0 || out.Bytes()[out.Len()-1] != '\n' {
		_ = out.WriteByte('\n')
	}
	return out.String(), nil
}

// colorizeJSON 对已缩进的 JSON 文本做轻量高亮
// 只对语义 token 着色，缩进与空白原样保留
func colorizeJSON(s string) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorJSONKey).Bold(true)
	strStyle := lipgloss.NewStyle().Foreground(ColorJSONValue)
	numStyle := lipgloss.NewStyle().Foreground(ColorJSONNumber)
	boolStyle := lipgloss.NewStyle().Foreground(ColorJSONBool)
	nullStyle := lipgloss.NewStyle().Foreground(ColorJSONNull)
	punctStyle := lipgloss.NewStyle().Foreground(ColorJSONPunct)

	var b bytes.Buffer
	i := 0
	for i < len(s) {
		ch := s[i]
		switch ch {
		case '"':
			token, next := readQuotedToken(s, i)
			// 字符串结束后第一个非空白字符是冒号则视为键名
			j := next
			for j < len(s) && unicode.IsSpace(rune(s[j])) {
				j++
			}
			if j < len(s) && s[j] == ':' {
				b.WriteString(keyStyle.Render(token))
			} else {
				b.WriteString(strStyle.Render(token))
			}
			i = next
			continue
		case '{', '}', '[', ']', ':', ',':
			b.WriteString(punctStyle.Render(string(ch)))
			i++
			continue
		}
		if ch == '-' || (ch >= '0' && ch <= '9') {
			j := readNumber(s, i)
			b.WriteString(numStyle.Render(s[i:j]))
			i = j
			continue
		}
		if hasPrefixAt(s, i, "true") {
			b.WriteString(boolStyle.Render("true"))
			i += 4
			continue
		}
		if hasPrefixAt(s, i, "false") {
			b.WriteString(boolStyle.Render("false"))
			i += 5
			continue
		}
		if hasPrefixAt(s, i, "null") {
			b.WriteString(nullStyle.Render("null"))
			i += 4
			continue
		}
		b.WriteByte(ch)
		i++
	}
	return b.String()
}
