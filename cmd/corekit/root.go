package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/corekit/core/config"
	"github.com/dmitrymomot/corekit/core/logger"
)

// inspectorConfig carries the env-driven defaults of the inspector.
type inspectorConfig struct {
	NoColor     bool   `env:"COREKIT_NO_COLOR" envDefault:"false"`
	ArticlesDir string `env:"COREKIT_ARTICLES_DIR" envDefault:"content"`
}

var (
	verbose bool
	noColor bool

	cfg inspectorConfig
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "corekit",
	Short: "Inspector for ranges, URLs and article front matter",
	Long: `corekit inspects the value types the corekit library implements:
location/length text ranges, URLs decomposed into percent-encoding-aware
components, and article documents with front-matter metadata.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(&cfg); err != nil {
			return err
		}
		if noColor || cfg.NoColor {
			color.NoColor = true
		}
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		log = logger.New(cmd.ErrOrStderr(), logger.WithLevel(level))
		log.Debug("inspector ready", logger.Component("cli"), logger.Version(version))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colorized output")

	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(articlesCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if log == nil {
		log = logger.New(os.Stderr, logger.WithLevel(slog.LevelWarn))
	}
	err := rootCmd.Execute()
	if err != nil {
		log.Error("command failed", logger.Error(err))
	}
	return err
}
