package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yeisme/linelens/pkg/configs"
	"github.com/yeisme/linelens/pkg/utils/gitignore"
	"github.com/yeisme/linelens/pkg/utils/log"
)

// watchContext 事件循环的运行时状态
type watchContext struct {
	root     string
	watcher  *fsnotify.Watcher
	cfg      configs.WatchConfig
	gi       *gitignore.GitIgnore
	debounce time.Duration
	logger   log.Logger
}

// commonIgnorePatterns 始终忽略的临时文件与系统文件
var commonIgnorePatterns = []string{
	"*.tmp", "*.swp", "*.log", "~*", ".DS_Store", "Thumbs.db",
	"*.lock", "*.pid", "*.temp",
}

// runEventLoop 消费 fsnotify 事件，经过滤后用防抖定时器合并触发 hook
// ctx 取消即返回，定时器只在有未消费的变化时点火
func runEventLoop(ctx context.Context, wc *watchContext, hook Func) error {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-wc.watcher.Events:
			if !ok {
				return nil
			}
			if !handleEvent(wc, event) {
				continue
			}
			// 重置防抖窗口
			if timer == nil {
				timer = time.NewTimer(wc.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(wc.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			hook()

		case err, ok := <-wc.watcher.Errors:
			if !ok {
				return nil
			}
			wc.logger.Error().Msgf("watcher 错误: %s", err)
		}
	}
}

// handleEvent 过滤事件并维护目录注册，返回是否视为一次有效变化
func handleEvent(wc *watchContext, event fsnotify.Event) bool {
	wc.logger.Debug().Msgf("事件: %s %s", event.Op, event.Name)

	if isPathIgnored(wc, event.Name) {
		return false
	}

	switch {
	case event.Has(fsnotify.Create):
		return onCreate(wc, event.Name)
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return true
	case event.Has(fsnotify.Write):
		return true
	}
	return false
}

// onCreate 新建目录时自动注册到 watcher，新建文件视为有效变化
func onCreate(wc *watchContext, name string) bool {
	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	if info.IsDir() {
		if wc.cfg.Recursive && !isPathIgnored(wc, name) {
			if err := wc.watcher.Add(name); err != nil {
				wc.logger.Warn().Msgf("注册新目录 %q 失败: %v", name, err)
			} else {
				wc.logger.Debug().Msgf("已注册新目录: %s", name)
			}
		}
		return false
	}
	return true
}

// isPathIgnored 汇总全部忽略规则：.git、内置与用户模式、.gitignore
func isPathIgnored(wc *watchContext, name string) bool {
	rel := toRelSlash(wc.root, name)

	if rel == ".git" || strings.HasPrefix(rel, ".git/") || strings.Contains(rel, "/.git/") {
		return true
	}
	if matchesIgnorePattern(rel, wc.cfg.IgnorePatterns) {
		return true
	}
	if wc.gi != nil && len(wc.gi.Patterns()) > 0 {
		// Remove 事件无法 Stat，一律按文件匹配
		if wc.gi.Match(rel, false) || wc.gi.Match(rel, true) {
			return true
		}
	}
	return false
}

// matchesIgnorePattern 检查相对路径是否命中用户或内置忽略模式
// 模式可以匹配文件名（*.tmp）或带路径的整体（tmp/*）
func matchesIgnorePattern(rel string, patterns []string) bool {
	base := filepath.Base(rel)
	all := make([]string, 0, len(patterns)+len(commonIgnorePatterns))
	all = append(all, patterns...)
	all = append(all, commonIgnorePatterns...)

	for _, pattern := range all {
		p := strings.TrimPrefix(filepath.ToSlash(pattern), "./")
		if p == "" {
			continue
		}
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
		if strings.Contains(p, "/") {
			if ok, _ := filepath.Match(p, rel); ok {
				return true
			}
			if prefix, ok := strings.CutSuffix(p, "/*"); ok {
				if rel == prefix || strings.HasPrefix(rel, prefix+"/") {
					return true
				}
			}
		}
	}
	return false
}

// toRelSlash 将 name 转换为相对 root 的 / 分隔路径
func toRelSlash(root, name string) string {
	rel, err := filepath.Rel(root, name)
	if err != nil {
		return filepath.ToSlash(name)
	}
	return filepath.ToSlash(rel)
}
