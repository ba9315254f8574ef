package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	lctx "github.com/yeisme/linelens/pkg/context"
)

// ExecutePromptCommand 交互式循环：反复读取路径并统计，quit 或 exit 退出
// 单次统计的失败只打印错误，不结束循环
func ExecutePromptCommand(lensCtx *lctx.LensContext, opts Options, in io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintln(w, "\nEnter path to analyze (file or directory) or 'quit' to exit:")
		fmt.Fprint(w, "Path: ")
		if !sc.Scan() {
			break
		}

		input := strings.TrimSpace(sc.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "quit", "exit":
			return nil
		}

		res, err := analyzeOnce(lensCtx, resolveRoot([]string{input}), opts, w)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		if opts.Pick {
			if err := pickAndShow(res, w); err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
			}
		}
	}
	return sc.Err()
}
