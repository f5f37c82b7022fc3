// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/investigator/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously generated projects",
	Long: `History lists projects recorded by "investigator new", newest first.
The database location comes from the history_db setting.`,
	RunE: runHistoryCmd,
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := history.Open(settings.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	return runHistory(cmd.Context(), store, limit, jsonOutput, cmd.OutOrStdout())
}

func runHistory(ctx context.Context, store *history.Store, limit int, jsonOutput bool, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	entries, err := store.List(ctx, limit)
	if err != nil {
		return err
	}
	return formatHistory(w, entries, jsonOutput)
}

func formatHistory(w io.Writer, entries []history.Entry, jsonOutput bool) error {
	if jsonOutput {
		if entries == nil {
			entries = []history.Entry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No projects recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-36s  %-20s  %-24s  %-30s  %-6s  %-8s  %s\n",
		"ID", "Generated", "Project", "Topic", "Agents", "Level", "Root")
	fmt.Fprintln(w, strings.Repeat("-", 148))
	for _, e := range entries {
		fmt.Fprintf(w, "%-36s  %-20s  %-24s  %-30s  %-6d  %-8s  %s\n",
			e.ID, e.GeneratedAt.Format("2006-01-02 15:04:05"),
			truncate(e.Project, 24), truncate(e.Topic, 30),
			e.Agents, e.Level, e.Root)
	}
	fmt.Fprintf(w, "\n%d projects\n", len(entries))
	return nil
}

var historyShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one recorded project and its configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")

		store, err := history.Open(settings.HistoryDB)
		if err != nil {
			return err
		}
		defer store.Close()

		return runHistoryShow(cmd.Context(), store, args[0], jsonOutput, cmd.OutOrStdout())
	},
}

// shownEntry is the --json form of history show; it carries the stored
// configuration that listings omit.
type shownEntry struct {
	history.Entry
	Config json.RawMessage `json:"config,omitempty"`
}

func runHistoryShow(ctx context.Context, store *history.Store, id string, jsonOutput bool, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	e, err := store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("history %s: %w", id, err)
	}

	if jsonOutput {
		out := shownEntry{Entry: e}
		if json.Valid([]byte(e.Config)) {
			out.Config = json.RawMessage(e.Config)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(w, "ID:         %s\n", e.ID)
	fmt.Fprintf(w, "Generated:  %s\n", e.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Project:    %s\n", e.Project)
	fmt.Fprintf(w, "Root:       %s\n", e.Root)
	fmt.Fprintf(w, "Topic:      %s\n", e.Topic)
	fmt.Fprintf(w, "Type:       %s\n", e.Type)
	fmt.Fprintf(w, "Agents:     %d\n", e.Agents)
	fmt.Fprintf(w, "Validation: %s\n", e.Level)
	if e.Config != "" {
		fmt.Fprintf(w, "\n%s", e.Config)
		if !strings.HasSuffix(e.Config, "\n") {
			fmt.Fprintln(w)
		}
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of projects to list")
	historyCmd.Flags().Bool("json", false, "output as JSON")
	historyShowCmd.Flags().Bool("json", false, "output as JSON")

	historyCmd.AddCommand(historyShowCmd)

	rootCmd.AddCommand(historyCmd)
}
