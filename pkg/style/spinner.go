package style

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Spinner 是一个简单的终端旋转指示器
// 用于长时间运行的任务期间提供轻量反馈
type Spinner struct {
	out      io.Writer
	msg      string
	stopCh   chan struct{}
	doneCh   chan struct{}
	interval time.Duration
}

// NewSpinner 创建一个新的 Spinner
// out: 写入目标（一般为 cmd.OutOrStdout() 或 os.Stdout）
// msg: 前缀消息
func NewSpinner(out io.Writer, msg string) *Spinner {
	return &Spinner{
		out:      out,
		msg:      msg,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		interval: 120 * time.Millisecond,
	}
}

// Start 启动 spinner，直到 Stop 被调用
func (s *Spinner) Start() {
	go func() {
		defer close(s.doneCh)
		frames := []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}
		mark := lipgloss.NewStyle().Foreground(ColorSuccess).Render("✔")
		i := 0
		_, _ = fmt.Fprintf(s.out, "%s %c\r", s.msg, frames[i])
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stopCh:
				// 收尾覆盖最后一帧
				_, _ = fmt.Fprintf(s.out, "%s %s\n", s.msg, mark)
				return
			case <-ticker.C:
				i = (i + 1) % len(frames)
				_, _ = fmt.Fprintf(s.out, "%s %c\r", s.msg, frames[i])
			}
		}
	}()
}

// Stop 停止 spinner.
func (s *Spinner) Stop() {
	close(s.stopCh)
	<-s.doneCh
}
