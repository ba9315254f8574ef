package analyze

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	zlog "github.com/rs/zerolog/log"
	"github.com/yeisme/linelens/pkg/language"
	"github.com/yeisme/linelens/pkg/models"
	"github.com/yeisme/linelens/pkg/utils/gitignore"
)

// Options 控制目录分析的文件筛选与并发行为
type Options struct {
	Include          []string // 仅统计匹配的文件，支持 glob 与目录前缀
	Exclude          []string // 排除匹配的文件，Include 为空时生效
	RespectGitignore bool     // 是否应用根目录下的 .gitignore 规则
	FollowSymlinks   bool     // 是否跟随符号链接
	MaxFileSizeBytes int64    // 单文件大小上限，0 表示不限制
	Concurrency      int      // worker 数量，0 表示按 CPU 数自动确定
	WithFiles        bool     // 结果中保留每个文件的明细
}

// AnalyzePath 分析一个文件或目录树
//
// root 不存在时返回 ErrPathNotFound
// root 为单个文件时，不支持的后缀与读取失败都是致命错误；
// root 为目录时，不支持的后缀被静默跳过，单个文件的读取失败
// 记录为 ScanFailure，分析继续
func AnalyzePath(ctx context.Context, root string, opts Options) (*models.AnalysisResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
		}
		return nil, err
	}

	if !info.IsDir() {
		stats, err := AnalyzeFile(ctx, root)
		if err != nil {
			return nil, err
		}
		return Aggregate(root, []models.FileStats{*stats}, nil, opts), nil
	}

	gi := loadGitIgnore(root, opts.RespectGitignore)

	files, collectFailures, err := collectFiles(ctx, root, opts, gi)
	if err != nil {
		return nil, err
	}
	zlog.Debug().Int("files", len(files)).Str("root", root).Msg("collected files for analysis")

	conc := prepareConcurrency(opts.Concurrency)
	results, failures, err := processFilesConcurrently(ctx, root, files, conc)
	failures = append(failures, collectFailures...)
	res := Aggregate(root, results, failures, opts)
	if err != nil {
		// 取消时已完成的部分仍然有效，连同错误一起交给调用方
		return res, err
	}
	return res, nil
}

// loadGitIgnore 尝试加载根目录下的 .gitignore
// respect 为 false 或加载失败时返回 nil，后续匹配始终为不忽略
func loadGitIgnore(root string, respect bool) *gitignore.GitIgnore {
	if !respect {
		return nil
	}
	gi, err := gitignore.LoadFromDir(root)
	if err != nil {
		return nil
	}
	return gi
}

// collectFiles 递归遍历 root，收集所有待分析的文件路径
// 过滤顺序：目录跳过规则、gitignore、include/exclude、
// 语言后缀、符号链接策略、大小上限
//
// 根目录之下的条目读取失败（例如无权限的子目录）记录为失败项，
// 遍历继续；只有根目录本身不可读才是致命错误
func collectFiles(ctx context.Context, root string, opts Options, gi *gitignore.GitIgnore) ([]string, []models.ScanFailure, error) {
	files := make([]string, 0, 256)
	var failures []models.ScanFailure
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			failures = append(failures, models.ScanFailure{Path: toRelSlash(root, path), Error: walkErr.Error()})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if shouldSkipDir(toRelSlash(root, path), opts, gi) {
				return filepath.SkipDir
			}
			return nil
		}

		relSlash := toRelSlash(root, path)
		if !shouldIncludeFile(relSlash, opts, gi) {
			return nil
		}

		// 未映射到受支持语言的文件直接跳过，不算错误
		if _, ok := language.SpecForPath(path); !ok {
			return nil
		}

		if isSymlink(d) && !opts.FollowSymlinks {
			return nil
		}
		if overSize(path, opts.MaxFileSizeBytes) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return files, failures, nil
}

// toRelSlash 将 path 转换为相对 root 的路径并统一使用 / 分隔，
// 保证模式匹配与输出在各平台一致
func toRelSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// shouldSkipDir 判断是否跳过整个目录
// 任意层级的 .git 始终跳过；Include 为空时 Exclude 对目录生效，
// 避免排除目录后其子文件又被 Include 命中的矛盾
func shouldSkipDir(relSlash string, opts Options, gi *gitignore.GitIgnore) bool {
	if relSlash == ".git" || strings.HasSuffix(relSlash, "/.git") {
		return true
	}
	if gi != nil && gi.Match(relSlash, true) {
		return true
	}
	if len(opts.Include) == 0 && matchesAny(relSlash, opts.Exclude) {
		return true
	}
	return false
}

// shouldIncludeFile 判断文件是否纳入统计
// gitignore 优先；Include 非空时为白名单模式，否则检查 Exclude
func shouldIncludeFile(relSlash string, opts Options, gi *gitignore.GitIgnore) bool {
	if gi != nil && gi.Match(relSlash, false) {
		return false
	}
	if len(opts.Include) > 0 {
		return matchesAny(relSlash, opts.Include)
	}
	return !matchesAny(relSlash, opts.Exclude)
}

// matchesAny 检查相对路径是否命中任一模式
// 支持四种写法：标准 glob（*.py、cmd/*）、跨层级 glob（**/*.py、
// vendor/**）、目录前缀（vendor/ 或 vendor）以及普通子串
func matchesAny(relSlash string, patterns []string) bool {
	for _, raw := range patterns {
		p := normalizePattern(raw)
		if p == "" {
			continue
		}
		if globMatch(p, relSlash) {
			return true
		}
		if prefix, ok := strings.CutSuffix(p, "/*"); ok {
			if prefix == relSlash || strings.HasPrefix(relSlash, prefix+"/") {
				return true
			}
			continue
		}
		prefix := strings.TrimSuffix(p, "/")
		if prefix == relSlash || strings.HasPrefix(relSlash, prefix+"/") {
			return true
		}
		if strings.Contains(relSlash, p) {
			return true
		}
	}
	return false
}

// normalizePattern 将模式统一为 / 分隔并去掉前导 ./
func normalizePattern(raw string) string {
	p := strings.TrimSpace(raw)
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	return p
}

// globMatch 对 / 分隔的相对路径做 glob 匹配
// "**" 段匹配任意数量（含零个）的路径段，其余段按 path.Match 处理；
// 不含 "**" 的模式等同于 filepath.Match
func globMatch(pattern, relSlash string) bool {
	if !strings.Contains(pattern, "**") {
		ok, _ := filepath.Match(pattern, relSlash)
		return ok
	}
	return globSegsMatch(strings.Split(pattern, "/"), strings.Split(relSlash, "/"))
}

func globSegsMatch(pats, segs []string) bool {
	if len(pats) == 0 {
		return len(segs) == 0
	}
	if pats[0] == "**" {
		for i := 0; i <= len(segs); i++ {
			if globSegsMatch(pats[1:], segs[i:]) {
				return true
			}
		}
		return false
	}
	if len(segs) == 0 {
		return false
	}
	if ok, err := path.Match(pats[0], segs[0]); err != nil || !ok {
		return false
	}
	return globSegsMatch(pats[1:], segs[1:])
}

// isSymlink 判断目录条目是否为符号链接
func isSymlink(d fs.DirEntry) bool {
	return d.Type()&fs.ModeSymlink != 0
}

// overSize 判断文件是否超过大小上限，limit <= 0 表示不限制
// 获取大小失败时按未超限处理，让后续读取去报告具体错误
func overSize(path string, limit int64) bool {
	if limit <= 0 {
		return false
	}
	if st, err := os.Stat(path); err == nil {
		return st.Size() > limit
	}
	return false
}

// prepareConcurrency 确定 worker 数量
// 用户指定正数时使用该值，否则取 CPU 核心数，至少为 1
func prepareConcurrency(c int) int {
	if c > 0 {
		return c
	}
	return max(runtime.NumCPU(), 1)
}

// processFilesConcurrently 用 worker pool 并发分析文件列表
//
// inCh 分发任务，outCh 收集结果，分发器发送完毕后关闭 inCh，
// 等待所有 worker 结束再关闭 outCh。主 goroutine 串行收集，
// worker 之间不共享任何可变状态
//
// 单个文件的分析失败转为 ScanFailure 而不中断其余文件；
// ctx 被取消时停止分发并返回已完成的部分结果与取消错误
func processFilesConcurrently(ctx context.Context, root string, files []string, conc int) ([]models.FileStats, []models.ScanFailure, error) {
	type item struct {
		stats *models.FileStats
		fail  *models.ScanFailure
	}

	inCh := make(chan string)
	outCh := make(chan item)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for path := range inCh {
			rel := toRelSlash(root, path)
			stats, err := AnalyzeFile(ctx, path)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				outCh <- item{fail: &models.ScanFailure{Path: rel, Error: err.Error()}}
				continue
			}
			stats.Path = rel
			outCh <- item{stats: stats}
		}
	}

	wg.Add(conc)
	for range conc {
		go worker()
	}

	go func() {
		defer close(outCh)
		for _, f := range files {
			if ctx.Err() != nil {
				break
			}
			inCh <- f
		}
		close(inCh)
		wg.Wait()
	}()

	results := make([]models.FileStats, 0, len(files))
	var failures []models.ScanFailure
	for it := range outCh {
		if it.fail != nil {
			failures = append(failures, *it.fail)
			continue
		}
		results = append(results, *it.stats)
	}

	return results, failures, ctx.Err()
}
