// Package cmd provides command-line interface commands for linelens
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/linelens/pkg/configs"
)

var (
	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage linelens configuration",
		Long:    `linelens config allows you to view and manage your linelens configuration settings.`,
		Aliases: []string{"c"},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate linelens configuration",
		Long:  `linelens config validate checks the validity of your configuration file and environment variables.`,
		Run: func(cmd *cobra.Command, _ []string) {
			// 检查配置文件加载
			err := lensCtx.Viper.ReadInConfig()
			if err != nil {
				cmd.PrintErrf("Config file error: %v\n", err)
				os.Exit(1)
			}

			fileUsed := lensCtx.Viper.ConfigFileUsed()

			log.Info().Msgf("Config file used: %s", fileUsed)
		},
		Aliases: []string{"check", "verify"},
	}

	configListCmd = &cobra.Command{
		Use:   "list [section]",
		Short: "List linelens configuration",
		Long: `linelens config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - app: Application settings
  - log: Logging settings
  - analyze: Analysis defaults
  - watch: Watch mode settings

Examples:
  linelens config list                    # Show all configuration (viper raw data)
  linelens config list --all              # Show all configuration with defaults
  linelens config list analyze            # Show only analysis defaults
  linelens config list --format yaml      # Output in YAML format
  linelens config list --format json      # Output in JSON format
  linelens config list --yaml             # Output in YAML format (shorthand)
  linelens config list app --all --json   # Show app config with defaults in JSON`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			// 确定输出格式
			format := configs.GetOutputFormatFromFlags(cmd)

			// 检查是否显示完整配置（包含默认值）
			showAll, _ := cmd.Flags().GetBool("all")

			// 获取配置数据
			data, err := configs.GetConfigSection(lensCtx.Viper, section, showAll)
			if err != nil {
				cmd.PrintErrf("Error getting config section: %v\n", err)
				os.Exit(1)
			}

			// 输出配置
			if err := configs.OutputData(data, format, cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Error displaying config")
			}
		},
		Aliases: []string{"ls"},
	}
	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize linelens configuration",
		Long: `linelens config init creates a new configuration file with default settings.

Examples:
  linelens config init                    # Create .linelens.yaml in current directory
  linelens config init --path ~/.config/linelens/linelens.yaml  # Specify custom path
  linelens config init --format json      # Create JSON format config`,
		Run: func(cmd *cobra.Command, _ []string) {
			path, _ := cmd.Flags().GetString("path")
			formatStr, _ := cmd.Flags().GetString("format")

			format, err := configs.ParseOutputFormat(formatStr)
			if err != nil {
				log.Fatal().Err(err).Msg("Invalid format specified")
			}
			if format == configs.FormatText {
				log.Fatal().Msg("Text format is not supported for config files")
			}

			// 未指定路径时按格式落在当前目录
			if path == "" {
				switch format {
				case configs.FormatYAML:
					path = ".linelens.yaml"
				case configs.FormatJSON:
					path = ".linelens.json"
				case configs.FormatTOML:
					path = ".linelens.toml"
				}
			}

			if err := configs.CreateDefaultConfig(path, format); err != nil {
				log.Fatal().Err(err).Msg("Failed to create config file")
			}

			log.Info().Msgf("Config file created successfully: %s", path)
		},
		Args: cobra.NoArgs,
	}
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(
		configListCmd,
		configValidateCmd,
		configInitCmd,
	)

	// 添加 config list 标志
	configListCmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	configListCmd.Flags().Bool("yaml", false, "Output in YAML format")
	configListCmd.Flags().Bool("json", false, "Output in JSON format")
	configListCmd.Flags().Bool("toml", false, "Output in TOML format")
	configListCmd.Flags().Bool("text", false, "Output in plain text format")
	configListCmd.Flags().BoolP("all", "a", false, "Show complete configuration with defaults (processed struct)")

	// 添加 config init 标志
	configInitCmd.Flags().StringP("path", "p", "", "Path to the config file")
	configInitCmd.Flags().StringP("format", "f", "yaml", "Format of the config file (yaml, json, toml)")
}
