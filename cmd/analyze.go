package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/linelens/pkg/report"
)

var (
	analyzeOptions report.Options

	analyzeCmd = &cobra.Command{
		Use:     "analyze [path]",
		Aliases: []string{"a", "count", "stats"},
		Short:   "Count lines of code in a file or directory",
		Long: strings.TrimSpace(`
linelens analyze scans a file or directory tree and reports blank, comment and code line counts grouped by language.

Capabilities:
  - Classify every line as blank, comment or code using per-language comment markers.
  - Subdivide code lines into import, class, function, variable and other roles (--detailed).
  - Respect or ignore .gitignore when traversing the tree.
  - Include per-file details, sortable by path, size or line count.
  - Follow symlinks, limit file sizes, and control parallelism for large repositories.

Common examples:
  # Analyze current directory (human-readable summary)
  linelens analyze

  # Analyze a directory and get machine-friendly JSON output
  linelens analyze ./src --format json

  # Only include Go sources and README files
  linelens analyze --include "**/*.go" --include "**/README.md"

  # Exclude vendor and testdata directories
  linelens analyze --exclude "vendor/**" --exclude "**/testdata/**"

  # Ignore .gitignore rules (scan everything)
  linelens analyze --no-gitignore

  # Break code lines down by role (imports, classes, functions, variables)
  linelens analyze --detailed

  # Include per-file breakdown sorted by line count
  linelens analyze --files --sort lines

  # Skip very large files (>1MB) and raise worker count
  linelens analyze --max-file-size 1048576 --concurrency 8

  # Export the result to a JSON file while printing a text report
  linelens analyze --out report.json

  # Re-run the analysis whenever files under the tree change
  linelens analyze --watch

  # Interactively pick a file and inspect its statistics
  linelens analyze --pick

  # Short-form flags: include (-i), exclude (-e), detailed (-d), files (-f), format (-F), out (-o), watch (-w)
  linelens analyze -i "pkg/**" -e "vendor/**" -d -f -F json -o report.json

Notes:
  - --out always writes JSON regardless of the display format.
  - Use glob-style patterns for --include/--exclude; Windows backslashes are accepted but forward slashes are recommended.
`),
		Run: func(cmd *cobra.Command, args []string) {
			applyAnalyzeConfig(cmd)

			// normalize include/exclude patterns so they match the walker's relative slash paths
			normalize := func(raw string) string {
				r := strings.TrimSpace(raw)
				if r == "" {
					return ""
				}
				r = strings.ReplaceAll(r, "\\", "/")
				if after, ok := strings.CutPrefix(r, "./"); ok {
					r = after
				}
				return r
			}

			include := analyzeOptions.Include
			if cmd.Flags().Changed("include") {
				include, _ = cmd.Flags().GetStringSlice("include")
			}
			clean := make([]string, 0, len(include))
			for _, p := range include {
				if p2 := normalize(p); p2 != "" {
					clean = append(clean, p2)
				}
			}
			analyzeOptions.Include = clean

			exclude := analyzeOptions.Exclude
			if cmd.Flags().Changed("exclude") {
				exclude, _ = cmd.Flags().GetStringSlice("exclude")
			}
			clean = make([]string, 0, len(exclude))
			for _, p := range exclude {
				if p2 := normalize(p); p2 != "" {
					clean = append(clean, p2)
				}
			}
			analyzeOptions.Exclude = clean

			if noGitignore, _ := cmd.Flags().GetBool("no-gitignore"); noGitignore {
				analyzeOptions.RespectGitignore = false
			}

			// picking needs per-file details
			if analyzeOptions.Pick {
				analyzeOptions.WithFiles = true
			}

			if err := report.ExecuteAnalyzeCommand(lensCtx, analyzeOptions, args, cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("analyze failed")
				cmd.PrintErrf("Error: %v\n", err)
				os.Exit(1)
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addAnalyzeFlags(analyzeCmd, &analyzeOptions)
}

// applyAnalyzeConfig 用配置文件 analyze 段补全未显式传入的标志
func applyAnalyzeConfig(cmd *cobra.Command) {
	cfg := lensCtx.Config.Analyze
	if !cmd.Flags().Changed("format") {
		analyzeOptions.Format = cfg.Format
	}
	if !cmd.Flags().Changed("detailed") {
		analyzeOptions.Detailed = cfg.Detailed
	}
	if !cmd.Flags().Changed("files") {
		analyzeOptions.WithFiles = cfg.WithFiles
	}
	if !cmd.Flags().Changed("sort") {
		analyzeOptions.Sort = cfg.Sort
	}
	if !cmd.Flags().Changed("gitignore") && !cmd.Flags().Changed("no-gitignore") {
		analyzeOptions.RespectGitignore = cfg.RespectGitignore
	}
	if !cmd.Flags().Changed("follow-symlinks") {
		analyzeOptions.FollowSymlinks = cfg.FollowSymlinks
	}
	if !cmd.Flags().Changed("max-file-size") {
		analyzeOptions.MaxFileSizeBytes = cfg.MaxFileSize
	}
	if !cmd.Flags().Changed("concurrency") {
		analyzeOptions.Concurrency = cfg.Concurrency
	}
	if !cmd.Flags().Changed("include") {
		analyzeOptions.Include = cfg.Include
	}
	if !cmd.Flags().Changed("exclude") {
		analyzeOptions.Exclude = cfg.Exclude
	}
}

func addAnalyzeFlags(cmd *cobra.Command, opts *report.Options) {
	// add short aliases for common flags to improve ergonomics
	cmd.Flags().StringSliceVarP(&opts.Include, "include", "i", nil, "Only include paths matching these glob patterns (comma or repeated)")
	cmd.Flags().StringSliceVarP(&opts.Exclude, "exclude", "e", nil, "Exclude paths matching these glob patterns")
	cmd.Flags().BoolVarP(&opts.RespectGitignore, "gitignore", "g", true, "Respect .gitignore rules (disable with --no-gitignore)")
	// keep --no-gitignore without a short alias to avoid confusion with --gitignore
	cmd.Flags().Bool("no-gitignore", false, "Do not respect .gitignore (overrides --gitignore)")
	cmd.Flags().BoolVarP(&opts.FollowSymlinks, "follow-symlinks", "L", false, "Follow symbolic links")
	cmd.Flags().Int64VarP(&opts.MaxFileSizeBytes, "max-file-size", "m", 0, "Skip files larger than this size in bytes (0 means no limit)")
	cmd.Flags().IntVarP(&opts.Concurrency, "concurrency", "j", 0, "Number of concurrent workers (0 uses CPU cores)")
	cmd.Flags().BoolVarP(&opts.WithFiles, "files", "f", false, "Include per-file details in the report")

	cmd.Flags().StringVarP(&opts.Format, "format", "F", "text", "Output format: text, markdown, json, yaml, toml")
	cmd.Flags().BoolVarP(&opts.Detailed, "detailed", "d", false, "Break code lines down into import/class/function/variable/other")
	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", "path", "Order per-file details by: path, size, lines")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Export the result as JSON to `file`")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch the tree and re-run the analysis on changes")
	cmd.Flags().BoolVarP(&opts.Pick, "pick", "p", false, "Interactively pick a file and show its statistics (implies --files)")
}
