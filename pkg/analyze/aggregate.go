package analyze

import (
	"sort"

	"github.com/yeisme/linelens/pkg/models"
)

// Aggregate 将一组文件统计按语言分组求和并计算总计
//
// 求和满足交换律与结合律，输入顺序不影响最终数值，
// 并发完成顺序因此无关紧要；输出中的文件与失败列表
// 按路径排序，保证多次运行结果一致
func Aggregate(root string, files []models.FileStats, failures []models.ScanFailure, opts Options) *models.AnalysisResult {
	res := &models.AnalysisResult{
		Root:      root,
		Languages: make(map[string]*models.LanguageStats),
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	sort.Slice(failures, func(i, j int) bool { return failures[i].Path < failures[j].Path })

	for _, f := range files {
		lang := f.Language
		if lang == "" {
			lang = "Unknown"
		}

		ls, ok := res.Languages[lang]
		if !ok {
			ls = &models.LanguageStats{}
			res.Languages[lang] = ls
		}

		ls.AddFile(f)
		res.Total.AddFile(f)

		if opts.WithFiles {
			ls.Files = append(ls.Files, f)
			res.Files = append(res.Files, f)
		}
	}

	res.Failures = failures
	return res
}
