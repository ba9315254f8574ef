package style

import "unicode"

// 本文件集中 JSON/YAML/TOML 高亮共用的扫描辅助函数

// readNumber 返回从 i 开始的数字 token 的结束位置（半开区间）
// 支持负号、小数与指数形式
func readNumber(s string, i int) int {
	j := i
	if j < len(s) && s[j] == '-' {
		j++
	}
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		j++
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
	}
	return j
}

// hasPrefixAt 判断 s 在位置 i 处是否出现独立的字面量 pref
// 前后必须是边界或非标识符字符，避免把 truename 里的 true 当作布尔
func hasPrefixAt(s string, i int, pref string) bool {
	if i+len(pref) > len(s) {
		return false
	}
	if s[i:i+len(pref)] != pref {
		return false
	}
	if i > 0 {
		r := rune(s[i-1])
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return false
		}
	}
	if i+len(pref) < len(s) {
		r := rune(s[i+len(pref)])
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return false
		}
	}
	return true
}

// indexUnquoted 在一行中找到第一个不在引号内的目标字符位置，找不到返回 -1
// 双引号内按反斜杠转义处理，单引号内按成对单引号转义处理
func indexUnquoted(line string, target byte) int {
	inQuote := rune(0)
	escaped := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if inQuote == '"' {
			if ch == '\\' && !escaped {
				escaped = true
				continue
			}
			if ch == '"' && !escaped {
				inQuote = 0
			}
			escaped = false
			continue
		}
		if inQuote == '\'' {
			if ch == '\'' {
				if i+1 < len(line) && line[i+1] == '\'' {
					i++
					continue
				}
				inQuote = 0
			}
			continue
		}
		switch ch {
		case '"':
			inQuote = '"'
			escaped = false
		case '\'':
			inQuote = '\''
		case target:
			return i
		}
	}
	return -1
}

// readQuotedToken 从位置 i（指向开引号）读取完整的带引号 token，
// 返回 token 本身与下一个扫描位置
func readQuotedToken(s string, i int) (string, int) {
	q := s[i]
	j := i + 1
	if q == '"' {
		escaped := false
		for j < len(s) {
			ch := s[j]
			if ch == '\\' && !escaped {
				escaped = true
				j++
				continue
			}
			if ch == '"' && !escaped {
				j++
				break
			}
			escaped = false
			j++
		}
		return s[i:j], j
	}
	// 单引号字符串，'' 表示转义的单引号
	for j < len(s) {
		if s[j] == '\'' {
			if j+1 < len(s) && s[j+1] == '\'' {
				j += 2
				continue
			}
			j++
			break
		}
		j++
	}
	return s[i:j], j
}
