// Package watch 基于 fsnotify 监视目录树的变化，
// 在事件平静一个防抖窗口后触发回调，用于持续重新统计
package watch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yeisme/linelens/pkg/configs"
	"github.com/yeisme/linelens/pkg/utils/fsop"
	"github.com/yeisme/linelens/pkg/utils/gitignore"
	"github.com/yeisme/linelens/pkg/utils/log"
)

// Func 防抖窗口结束后触发的回调
type Func func()

// Watch 监视 root 下的文件变化并在变化平静后调用 hook
// ctx 取消时返回 nil，其余错误原样返回
func Watch(ctx context.Context, root string, cfg configs.WatchConfig, hook Func) error {
	logger := log.GetLogger()

	if root == "" {
		var err error
		root, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("获取当前目录失败: %w", err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("创建 watcher 失败: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			logger.Error().Msgf("关闭 watcher 失败: %v", cerr)
		}
	}()

	// 在启用时加载 .gitignore，失败视为没有规则
	var gi *gitignore.GitIgnore
	if cfg.GitIgnore {
		if loaded, err := gitignore.LoadFromDir(root); err == nil {
			gi = loaded
		} else {
			logger.Warn().Msgf("加载 %s 下的 .gitignore 失败: %v", root, err)
		}
	}

	// 注册要监视的目录
	if cfg.Recursive {
		if err := addDirectoriesToWatcher(watcher, root, cfg, gi, logger); err != nil {
			return err
		}
	} else {
		if err := watcher.Add(root); err != nil {
			return fmt.Errorf("将根路径 %q 添加到 watcher 失败: %w", root, err)
		}
	}

	// 防抖时长
	debounce := time.Duration(cfg.Debounce) * time.Millisecond
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}

	wc := &watchContext{
		root:     root,
		watcher:  watcher,
		cfg:      cfg,
		gi:       gi,
		debounce: debounce,
		logger:   logger,
	}

	logger.Info().Msgf("已在 %s 启动 watcher (recursive=%t, debounce=%dms)",
		root, cfg.Recursive, debounce/time.Millisecond)

	return runEventLoop(ctx, wc, hook)
}

// addDirectoriesToWatcher 递归注册 root 及其全部子目录
// 单个目录注册失败只告警不中断
func addDirectoriesToWatcher(watcher *fsnotify.Watcher, root string, cfg configs.WatchConfig, gi *gitignore.GitIgnore, logger log.Logger) error {
	var subdirs []string
	var err error

	if gi != nil && len(gi.Patterns()) > 0 {
		subdirs, err = fsop.ListSubdirectoriesWithGitIgnore(root)
	} else {
		subdirs, err = fsop.ListSubdirectoriesFiltered(root, cfg.IgnorePatterns)
	}
	if err != nil {
		return fmt.Errorf("列出子目录失败: %w", err)
	}

	paths := append(subdirs, root)
	logger.Debug().Msgf("向 watcher 注册 %d 个目录", len(paths))
	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			logger.Warn().Msgf("注册目录 %q 失败，已跳过: %v", p, err)
		}
	}
	return nil
}
