// Package analyze 实现行分类引擎以及文件与目录两级的统计入口：
// 按语言规则把每一行判为空行、注释或代码，代码行再细分角色，
// 目录模式下并发处理文件并聚合为语言级与总体统计
package analyze

import (
	"strings"

	"github.com/yeisme/linelens/pkg/language"
	"github.com/yeisme/linelens/pkg/models"
)

// BlockState 跟踪单个文件扫描过程中的多行注释状态
//
// 状态随文件从头到尾顺序推进，文件开始时必须为关闭状态；
// 语言可以有多对块标记（如 Python 的 """ 与 '''），
// 打开后只有与之配对的结束标记才能关闭
type BlockState struct {
	end string // 当前打开块的结束标记，空串表示不在块内
}

// InBlock 返回当前是否处于多行注释块内
func (s *BlockState) InBlock() bool {
	return s.end != ""
}

// Reset 关闭任何打开的块，开始新文件前调用
func (s *BlockState) Reset() {
	s.end = ""
}

// ClassifyLine 对一行文本分类并推进注释状态
//
// 判定顺序固定：
//  1. 去除首尾空白后为空 → 空行，即使当前处于注释块内
//  2. 处于注释块内 → 注释；行中出现结束标记则关闭块，
//     标记之后的内容不再另行分类
//  3. 左侧去空白后以某对块标记的起始标记开头 → 注释；
//     若结束标记未同时出现在其后则打开块
//  4. 左侧去空白后以单行注释标记开头 → 注释
//  5. 其余 → 代码，按规则表顺序取第一个命中的角色，
//     无命中则为 Other
//
// 返回的角色仅在类别为 CategoryCode 时有意义
func ClassifyLine(line string, state *BlockState, spec *language.Spec) (models.LineCategory, models.CodeRole) {
	if strings.TrimSpace(line) == "" {
		return models.CategoryBlank, models.RoleOther
	}

	if state.InBlock() {
		if strings.Contains(line, state.end) {
			state.end = ""
		}
		return models.CategoryComment, models.RoleOther
	}

	trimmed := strings.TrimLeft(line, " \t")
	for _, bm := range spec.BlockComments {
		if strings.HasPrefix(trimmed, bm.Start) {
			// 起始标记之后未出现结束标记才算打开新块，
			// 同一行内成对出现按单行注释处理
			if !strings.Contains(trimmed[len(bm.Start):], bm.End) {
				state.end = bm.End
			}
			return models.CategoryComment, models.RoleOther
		}
	}

	for _, marker := range spec.LineComments {
		if strings.HasPrefix(trimmed, marker) {
			return models.CategoryComment, models.RoleOther
		}
	}

	return models.CategoryCode, spec.MatchRole(line)
}
