package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/yeisme/linelens/pkg/configs"
	"github.com/yeisme/linelens/pkg/language"
	"github.com/yeisme/linelens/pkg/style"
)

// LanguagesOptions 控制 languages 命令的过滤与输出
type LanguagesOptions struct {
	Query  string // 模糊过滤关键字，空值列出全部
	Format string // 输出格式: list, json, yaml
	Pick   bool   // 交互挑选一种语言查看规则明细
}

// ExecuteLanguagesCommand 列出受支持的语言及其识别规则
func ExecuteLanguagesCommand(opts LanguagesOptions, w io.Writer) error {
	descs := language.Descriptors()

	if q := strings.TrimSpace(opts.Query); q != "" {
		descs = filterLanguages(descs, q)
		if len(descs) == 0 {
			return fmt.Errorf("no supported language matches %q", q)
		}
	}

	if opts.Pick {
		return pickLanguage(descs, w)
	}

	switch strings.ToLower(opts.Format) {
	case "json":
		return configs.OutputData(descs, configs.FormatJSON, w)
	case "yaml", "yml":
		return configs.OutputData(descs, configs.FormatYAML, w)
	case "", "list", "text":
		items := make([]style.ListItem, 0, len(descs))
		for _, d := range descs {
			items = append(items, style.ListItem{Name: d.Name, Description: describeLanguage(d)})
		}
		return style.PrintAlignedList(w, items)
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

// filterLanguages 按名称与后缀做模糊匹配
func filterLanguages(descs []language.Descriptor, query string) []language.Descriptor {
	q := strings.ToLower(query)
	out := make([]language.Descriptor, 0, len(descs))
	for _, d := range descs {
		hay := strings.ToLower(d.Name + " " + strings.Join(d.Extensions, " "))
		if fuzzy.Match(q, hay) || strings.Contains(hay, q) {
			out = append(out, d)
		}
	}
	return out
}

// describeLanguage 构建单行的规则摘要
func describeLanguage(d language.Descriptor) string {
	parts := []string{strings.Join(d.Extensions, " ")}
	if len(d.LineComments) > 0 {
		parts = append(parts, "line: "+strings.Join(d.LineComments, " "))
	}
	if len(d.BlockComments) > 0 {
		markers := make([]string, 0, len(d.BlockComments))
		for _, bm := range d.BlockComments {
			markers = append(markers, bm.Start+" "+bm.End)
		}
		parts = append(parts, "block: "+strings.Join(markers, " "))
	}
	return strings.Join(parts, " | ")
}

// pickLanguage 交互挑选一种语言并打印完整规则
func pickLanguage(descs []language.Descriptor, w io.Writer) error {
	idx, err := fuzzyfinder.Find(descs, func(i int) string {
		return fmt.Sprintf("%s (%s)", descs[i].Name, strings.Join(descs[i].Extensions, " "))
	})
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return err
	}

	d := descs[idx]
	rows := [][]string{
		{"Name", d.Name},
		{"Extensions", strings.Join(d.Extensions, " ")},
		{"Line comments", strings.Join(d.LineComments, " ")},
	}
	for _, bm := range d.BlockComments {
		rows = append(rows, []string{"Block comment", bm.Start + " ... " + bm.End})
	}
	rows = append(rows, []string{"Roles", strings.Join(d.Roles, ", ")})
	return style.PrintTable(w, []string{"Field", "Value"}, rows, 0)
}
