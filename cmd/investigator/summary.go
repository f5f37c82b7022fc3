// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/investigator/internal/collect"
	"github.com/pdiddy/investigator/internal/project"
)

var summaryCmd = &cobra.Command{
	Use:   "summary PROJECT_DIR",
	Short: "Print the configuration summary of a generated project",
	Long: `Summary reads config/investigation.json from a generated project and
prints the same summary the wizard shows before generating.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSummary(args[0], cmd.OutOrStdout())
	},
}

func runSummary(dir string, w io.Writer) error {
	cfg, err := project.Load(dir)
	if err != nil {
		return err
	}
	fmt.Fprint(w, collect.Summary(cfg))
	return nil
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
