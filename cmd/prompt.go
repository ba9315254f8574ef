package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/linelens/pkg/report"
)

var (
	promptOptions report.Options

	promptCmd = &cobra.Command{
		Use:     "prompt",
		Short:   "Analyze paths interactively",
		Long:    `linelens prompt starts an interactive loop that reads a path, prints its line statistics and asks for the next one. Type quit or exit to leave.`,
		Aliases: []string{"repl", "i"},
		Example: strings.TrimSpace(`
  linelens prompt
  linelens prompt --detailed --files
  linelens prompt --format json
`),
		Run: func(cmd *cobra.Command, _ []string) {
			cfg := lensCtx.Config.Analyze
			if !cmd.Flags().Changed("format") {
				promptOptions.Format = cfg.Format
			}
			if !cmd.Flags().Changed("detailed") {
				promptOptions.Detailed = cfg.Detailed
			}
			if !cmd.Flags().Changed("files") {
				promptOptions.WithFiles = cfg.WithFiles
			}
			promptOptions.Sort = cfg.Sort
			promptOptions.RespectGitignore = cfg.RespectGitignore
			promptOptions.FollowSymlinks = cfg.FollowSymlinks
			promptOptions.MaxFileSizeBytes = cfg.MaxFileSize
			promptOptions.Concurrency = cfg.Concurrency
			promptOptions.Include = cfg.Include
			promptOptions.Exclude = cfg.Exclude

			if promptOptions.Pick {
				promptOptions.WithFiles = true
			}

			if err := report.ExecutePromptCommand(lensCtx, promptOptions, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("prompt failed")
				cmd.PrintErrf("Error: %v\n", err)
				os.Exit(1)
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().StringVarP(&promptOptions.Format, "format", "F", "text", "Output format: text, markdown, json, yaml, toml")
	promptCmd.Flags().BoolVarP(&promptOptions.Detailed, "detailed", "d", false, "Break code lines down into import/class/function/variable/other")
	promptCmd.Flags().BoolVarP(&promptOptions.WithFiles, "files", "f", false, "Include per-file details in each report")
	promptCmd.Flags().BoolVarP(&promptOptions.Pick, "pick", "p", false, "Pick a file interactively after each analysis (implies --files)")
}
