// Package report 执行统计并把结果渲染为终端报告或机读格式
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yeisme/linelens/pkg/analyze"
	"github.com/yeisme/linelens/pkg/configs"
	lctx "github.com/yeisme/linelens/pkg/context"
	"github.com/yeisme/linelens/pkg/models"
	"github.com/yeisme/linelens/pkg/style"
	log2 "github.com/yeisme/linelens/pkg/utils/log"
	"github.com/yeisme/linelens/pkg/utils/watch"
	"golang.org/x/mod/modfile"
)

var log log2.Logger

func init() {
	log = log2.GetLogger()
}

// Options 控制一次统计的过滤、渲染与后续动作
type Options struct {
	analyze.Options

	Format   string // 输出格式: text, json, yaml, toml, markdown
	Detailed bool   // 追加代码角色细分表
	Sort     string // 文件明细排序方式: path, size, lines
	Out      string // 结果导出文件，始终写入 JSON
	Watch    bool   // 监视目录变化并持续重新统计
	Pick     bool   // 统计后交互挑选单个文件查看明细
}

// ExecuteAnalyzeCommand 负责执行业务逻辑（统计 + 输出）
//
// args 可能包含一个 root 路径，为空则默认为当前目录；
// w 为输出目标（通常为 cmd.OutOrStdout()）
func ExecuteAnalyzeCommand(lensCtx *lctx.LensContext, opts Options, args []string, w io.Writer) error {
	root := resolveRoot(args)

	res, err := analyzeOnce(lensCtx, root, opts, w)
	if err != nil {
		return err
	}

	if opts.Pick {
		if err := pickAndShow(res, w); err != nil {
			return err
		}
	}

	if opts.Watch {
		hook := func() {
			if _, err := analyzeOnce(lensCtx, root, opts, w); err != nil {
				log.Error().Err(err).Msg("re-analysis failed")
			}
		}
		return watch.Watch(lensCtx, root, lensCtx.Config.Watch, hook)
	}
	return nil
}

// analyzeOnce 统计一次并按选定格式输出，返回结果供后续动作使用
func analyzeOnce(lensCtx *lctx.LensContext, root string, opts Options, w io.Writer) (*models.AnalysisResult, error) {
	var sp *style.Spinner
	if isHumanFormat(opts.Format) {
		sp = style.NewSpinner(w, "Analyzing")
		sp.Start()
	}

	start := time.Now()
	res, err := analyze.AnalyzePath(lensCtx, root, opts.Options)
	elapsed := time.Since(start)

	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return nil, err
	}

	res.Module = readModulePath(root)
	sortFileDetails(res, opts.Sort)

	if err := output(w, res, opts, elapsed); err != nil {
		return nil, err
	}

	if opts.Out != "" {
		if err := exportResult(res, opts.Out); err != nil {
			return nil, err
		}
		log.Info().Msgf("Result exported to %s", opts.Out)
	}
	return res, nil
}

// isHumanFormat 判断格式是否面向终端阅读，
// 机读格式不显示 spinner，保证输出可以直接通过管道消费
func isHumanFormat(format string) bool {
	switch strings.ToLower(format) {
	case "", "text", "txt", "markdown", "md":
		return true
	}
	return false
}

// output 按格式分发渲染
func output(w io.Writer, res *models.AnalysisResult, opts Options, elapsed time.Duration) error {
	switch strings.ToLower(opts.Format) {
	case "", "text", "txt":
		return renderText(w, res, opts, elapsed)
	case "markdown", "md":
		return renderMarkdown(w, res, opts, elapsed)
	case "json", "yaml", "yml", "toml":
		format, err := configs.ParseOutputFormat(opts.Format)
		if err != nil {
			return err
		}
		return configs.OutputData(res, format, w)
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

// resolveRoot 解析根路径参数
func resolveRoot(args []string) string {
	root := "."
	if len(args) > 0 && args[0] != "" {
		root = args[0]
	}
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return root
}

// readModulePath 读取 root 下 go.mod 声明的模块路径，没有则为空
func readModulePath(root string) string {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return ""
	}
	f, err := modfile.ParseLax("go.mod", data, nil)
	if err != nil || f.Module == nil {
		return ""
	}
	return f.Module.Mod.Path
}

// exportResult 把结果以 JSON 写入文件
// 导出固定用 JSON，与终端显示格式无关
func exportResult(res *models.AnalysisResult, path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal analysis result failed: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create export directory failed: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write export file failed: %w", err)
	}
	return nil
}
