// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/investigator/internal/generate"
	"github.com/pdiddy/investigator/internal/project"
	"github.com/pdiddy/investigator/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check PROJECT_DIR",
	Short: "Verify a project's layout and report collected articles",
	Long: `Check compares a generated project against its configuration, listing
any missing directories or documents, then counts the articles each explorer
has written to data/raw/<agent>/articles.jsonl against its targets.

Exits non-zero when the layout is incomplete.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args[0], cmd.OutOrStdout())
	},
}

func runCheck(dir string, w io.Writer) error {
	cfg, err := project.Load(dir)
	if err != nil {
		return err
	}

	missing, err := project.Missing(dir, cfg)
	if err != nil {
		return err
	}
	stray, err := strayScouts(dir, cfg)
	if err != nil {
		return err
	}
	status, err := project.Status(dir, cfg)
	if err != nil {
		return err
	}

	if len(missing) == 0 {
		fmt.Fprintln(w, "Layout: complete")
	} else {
		fmt.Fprintf(w, "Layout: %d missing\n", len(missing))
		for _, m := range missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
	}

	if len(stray) > 0 {
		fmt.Fprintf(w, "Stray scout documents (no matching agent): %d\n", len(stray))
		for _, f := range stray {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	}

	fmt.Fprintf(w, "\n%-24s  %-8s  %-8s  %-8s  %-8s  %-12s  %s\n",
		"Agent", "Articles", "Min", "Ideal", "Invalid", "Verified", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, s := range status {
		state := "pending"
		switch {
		case s.Articles >= s.Target.Ideal:
			state = "ideal"
		case s.MeetsMinimum():
			state = "ok"
		case s.Articles > 0:
			state = "short"
		}
		fmt.Fprintf(w, "%-24s  %-8d  %-8d  %-8d  %-8d  %-12d  %s\n",
			truncate(s.Name, 24), s.Articles, s.Target.Min, s.Target.Ideal,
			s.Invalid, s.ByCredibility[types.CredibilityVerified], state)
	}

	if len(missing) > 0 {
		return fmt.Errorf("project %s is incomplete", dir)
	}
	return nil
}

// strayScouts returns agents/scout-*.md documents that no configured
// explorer owns, relative to dir.
func strayScouts(dir string, cfg *types.Config) ([]string, error) {
	files, err := project.ScoutFiles(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	owned := make(map[string]bool, len(cfg.Agents.Explorers))
	for _, a := range cfg.Agents.Explorers {
		owned[generate.ScoutFile(a.Name)] = true
	}
	var stray []string
	for _, f := range files {
		rel := "agents/" + filepath.Base(f)
		if !owned[rel] {
			stray = append(stray, rel)
		}
	}
	return stray, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
