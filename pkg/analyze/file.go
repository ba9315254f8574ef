package analyze

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yeisme/linelens/pkg/language"
	"github.com/yeisme/linelens/pkg/models"
)

// AnalyzeReader 按给定语言规则对 r 逐行分类统计
//
// 逐行流式处理，内存占用与文件大小无关
// 返回的 FileStats 只填充统计字段，Path 与 Size 由调用方补齐
func AnalyzeReader(ctx context.Context, spec *language.Spec, r io.Reader) (*models.FileStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &models.FileStats{Language: spec.Name}
	var state BlockState

	sc := bufio.NewScanner(r)
	// 提高最大 token 大小，避免超长行导致扫描失败
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB 单行
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		category, role := ClassifyLine(sc.Text(), &state, spec)
		stats.LineTally.Bump(category)
		if category == models.CategoryCode {
			stats.Detailed.Bump(role)
		}
		stats.Total++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableFile, err)
	}
	return stats, nil
}

// AnalyzeFile 分析单个文件
// 后缀无法识别时返回 ErrUnsupportedLanguage，
// 文件不可读时返回 ErrUnreadableFile
func AnalyzeFile(ctx context.Context, path string) (*models.FileStats, error) {
	spec, ok := language.SpecForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, filepath.Ext(path))
	}
	return AnalyzeFileWithSpec(ctx, spec, path)
}

// AnalyzeFileWithSpec 使用已确定的语言规则分析单个文件
// 文件大小从文件系统获取，与行扫描无关
func AnalyzeFileWithSpec(ctx context.Context, spec *language.Spec, path string) (*models.FileStats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableFile, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableFile, err)
	}
	defer func() { _ = f.Close() }()

	stats, err := AnalyzeReader(ctx, spec, f)
	if err != nil {
		return nil, err
	}
	stats.Path = path
	stats.Size = info.Size()
	return stats, nil
}
