// Package commands implements the gonormal CLI commands.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gonormal/internal/config"
	"github.com/sartorproj/gonormal/internal/logging"
)

// Globals holds the persistent flags shared by every command.
type Globals struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// NewRootCommand builds the gonormal command tree.
func NewRootCommand(version string) *cobra.Command {
	globals := &Globals{}

	rootCmd := &cobra.Command{
		Use:   "gonormal",
		Short: "Descriptive statistics and Jarque-Bera normality checks",
		Long: `gonormal summarises numeric samples and checks them for normality.

Commands:
  simulate  Generate the letters or books dataset
  describe  Summarise CSV columns and test them for normality
  plot      Write a histogram of a CSV column as HTML`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&globals.ConfigPath, "config", "", "config file (default ./gonormal.yaml)")
	rootCmd.PersistentFlags().StringVar(&globals.LogLevel, "log-level", "", "log level: debug, info, warn, error, off")
	rootCmd.PersistentFlags().StringVar(&globals.LogFormat, "log-format", "", "log format: text, json")

	rootCmd.AddCommand(NewSimulateCommand(globals))
	rootCmd.AddCommand(NewDescribeCommand(globals))
	rootCmd.AddCommand(NewPlotCommand(globals))
	rootCmd.AddCommand(versionCmd(version))

	return rootCmd
}

// setup loads the configuration and builds the logger for cmd.
func (g *Globals) setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(g.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	if g.LogLevel != "" {
		cfg.Logging.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Logging.Format = g.LogFormat
	}

	logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger.With("command", cmd.CommandPath()), nil
}

func versionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gonormal %s\n", version)
		},
	}
}
