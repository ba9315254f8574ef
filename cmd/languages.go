package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/linelens/pkg/report"
)

var (
	languagesOptions report.LanguagesOptions

	languagesCmd = &cobra.Command{
		Use:     "languages [query]",
		Short:   "List supported languages and their comment rules",
		Long:    `linelens languages lists every language the analyzer recognizes, with its file extensions, comment markers and code role rules.`,
		Aliases: []string{"langs", "lang", "l"},
		Args:    cobra.MaximumNArgs(1),
		Example: strings.TrimSpace(`
  linelens languages
  linelens languages py
  linelens languages --format json
  linelens languages --pick
`),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				languagesOptions.Query = args[0]
			}

			if err := report.ExecuteLanguagesCommand(languagesOptions, cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("languages failed")
				cmd.PrintErrf("Error: %v\n", err)
				os.Exit(1)
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(languagesCmd)
	languagesCmd.Flags().StringVarP(&languagesOptions.Format, "format", "F", "", "Output format: list, json, yaml")
	languagesCmd.Flags().BoolVarP(&languagesOptions.Pick, "pick", "p", false, "Interactively pick a language and show its rules")
}
