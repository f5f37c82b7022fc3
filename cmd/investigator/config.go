// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/investigator/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect investigator settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as YAML",
	Long: `Show prints the settings after merging defaults, the config file, and
INVESTIGATOR_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		return writeSettings(cmd.OutOrStdout(), settings)
	},
}

func writeSettings(w io.Writer, s types.Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
