// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/sevenup/cpm/internal/config"
	"github.com/sevenup/cpm/internal/logger"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "Directory holding main.toml")
}

var (
	configPath string // directory of the configuration file

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "cpm",
		Short: "cpm serves the group role and group user associations over REST",
		Long: `cpm is the REST backend for the group-roles and group-users association
tables. Both resources support create, replace, partial update, list, get and delete.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config from configPath and initializes the logger.
func loadConfig() error {
	var err error

	if cfg, err = config.ReadConfig(configPath); err != nil {
		return err
	}

	if devMode {
		cfg.DevMode = true
	}

	return logger.Init(cfg.Log)
}
