// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the investigator CLI. The wizard
// collects an investigation configuration and generates a multi-agent
// research project from it; the remaining commands inspect projects and
// the generation history.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/investigator/internal/history"
	"github.com/pdiddy/investigator/internal/logger"
	"github.com/pdiddy/investigator/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// log is replaced in PersistentPreRunE once settings are known.
var log = logger.NewNop()

// rootCmd is the base command for the investigator CLI.
var rootCmd = &cobra.Command{
	Use:   "investigator",
	Short: "Configure and scaffold multi-agent investigations",
	Long: `investigator walks you through configuring a multi-agent investigation
(topic, time periods, perspective, validation rigor) and generates a project
directory with scout instructions, scoring rules, validation guidance, and an
orchestrator script for an external agent runner.

Run "investigator new" to start the wizard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := viper.GetString("log_level")
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = "debug"
		}
		l, err := logger.New(logger.Config{Level: level})
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./investigator.yaml or ~/.config/investigator/investigator.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")

	viper.SetDefault("output_dir", "")
	viper.SetDefault("history_db", "")
	viper.SetDefault("log_level", "warn")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("investigator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "investigator"))
		}
	}

	viper.SetEnvPrefix("INVESTIGATOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadSettings returns the effective settings with defaults filled in.
func loadSettings() (types.Settings, error) {
	var s types.Settings
	if err := viper.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("reading settings: %w", err)
	}
	if s.HistoryDB == "" {
		path, err := history.DefaultPath()
		if err != nil {
			return s, err
		}
		s.HistoryDB = path
	}
	return s, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
