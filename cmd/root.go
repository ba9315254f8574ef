package cmd

import (
	"fmt"
	"os"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/linelens/pkg/context"
	log2 "github.com/yeisme/linelens/pkg/utils/log"
	"github.com/yeisme/linelens/pkg/utils/version"
)

var (
	lensCtx *context.LensContext
	log     log2.Logger

	// Global flags
	globalFlags = context.GlobalFlags{}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "linelens",
	Short: "linelens counts lines of code and reports per-language statistics",
	Long:  `linelens is a command line tool that scans files or directories and reports blank, comment and code line counts grouped by language.`,
	Run: func(cmd *cobra.Command, args []string) {
		if globalFlags.VersionEnable {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			os.Exit(0)
		}
		_ = cmd.Help()
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		ctx := context.InitLensContext(globalFlags.ConfigPath, globalFlags.Debug, globalFlags.Verbose, globalFlags.Quiet)

		lensCtx = ctx
		log = ctx.Logger

		if globalFlags.CPUProfile != "" {
			f, err := os.Create(globalFlags.CPUProfile)
			if err != nil {
				log.Fatal().Err(err).Msg("could not create CPU profile")
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				log.Fatal().Err(err).Msg("could not start CPU profile")
			}
		}
		if globalFlags.Trace != "" {
			f, err := os.Create(globalFlags.Trace)
			if err != nil {
				log.Fatal().Err(err).Msg("could not create trace file")
			}
			if err := trace.Start(f); err != nil {
				log.Fatal().Err(err).Msg("could not start trace")
			}
		}

		log.Info().Msgf("Execute Command: %s %s", "linelens", strings.Join(os.Args[1:], " "))
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if globalFlags.CPUProfile != "" {
			pprof.StopCPUProfile()
		}
		if globalFlags.Trace != "" {
			trace.Stop()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "config file")
	rootCmd.PersistentFlags().StringVar(&globalFlags.CPUProfile, "cpu-profile", "", "write cpu profile to `file`")
	rootCmd.PersistentFlags().StringVar(&globalFlags.Trace, "trace", "", "write execution trace to `file`")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Quiet, "quiet", false, "suppress all output except errors")
	rootCmd.Flags().BoolVarP(&globalFlags.VersionEnable, "version", "v", false, "show version information")
}
