// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/investigator/internal/collect"
	"github.com/pdiddy/investigator/internal/generate"
	"github.com/pdiddy/investigator/internal/history"
	"github.com/pdiddy/investigator/internal/logger"
	"github.com/pdiddy/investigator/internal/project"
	"github.com/pdiddy/investigator/pkg/types"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Run the configuration wizard and generate a project",
	Long: `New asks for the investigation topic, purpose, type, keywords and scope,
the explorer agents and their time periods, the analysis perspective, the
validation level, and the project name. After you confirm the summary it
creates the project directory with every generated document.

With --answers the questions are answered from a YAML file instead of
stdin, which makes runs reproducible.`,
	RunE: runNewCmd,
}

// newOptions holds everything runNew needs besides its streams.
type newOptions struct {
	answersFile string
	outputDir   string
	historyDB   string
	noHistory   bool
	now         func() time.Time
}

func runNewCmd(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	opts := newOptions{
		outputDir: settings.OutputDir,
		historyDB: settings.HistoryDB,
		now:       time.Now,
	}
	opts.answersFile, _ = cmd.Flags().GetString("answers")
	if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
		opts.outputDir = dir
	}
	opts.noHistory, _ = cmd.Flags().GetBool("no-history")

	return runNew(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
}

func runNew(ctx context.Context, opts newOptions, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.now == nil {
		opts.now = time.Now
	}

	var p collect.Prompter
	if opts.answersFile != "" {
		answers, err := collect.LoadAnswers(opts.answersFile)
		if err != nil {
			return err
		}
		p = collect.NewAnswersPrompter(answers)
	} else {
		p = collect.NewLinePrompter(in, out)
	}

	baseDir := opts.outputDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		baseDir = wd
	}

	rule := strings.Repeat("=", 70)
	fmt.Fprintf(out, "%s\nMULTI-AGENT INVESTIGATOR - CONFIGURATION WIZARD\n%s\n", rule, rule)

	cfg, err := collect.NewSession(p, collect.Options{BaseDir: baseDir, Out: out, Logger: log}).Collect(ctx)
	if err != nil {
		return err
	}

	ok, err := collect.Confirm(ctx, p, cfg, out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "\nConfiguration cancelled.")
		return nil
	}

	now := opts.now()
	proj, err := generate.Generate(cfg, generate.Options{Now: now})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nGenerating project structure...\n\n")
	if err := project.NewWriter(log).Write(ctx, cfg.Output.ProjectRoot, proj); err != nil {
		return err
	}
	reportProject(out, cfg, proj)

	if !opts.noHistory {
		recordHistory(ctx, opts.historyDB, cfg, proj, now)
	}

	printNextSteps(out, cfg)
	return nil
}

func reportProject(w io.Writer, cfg *types.Config, proj *generate.Project) {
	fmt.Fprintf(w, "✓ Created %d directories\n", len(proj.Dirs))
	fmt.Fprintln(w, "✓ Generated configuration files")
	fmt.Fprintf(w, "✓ Generated %d scout agent prompts\n", len(cfg.Agents.Explorers))
	fmt.Fprintln(w, "✓ Generated orchestrator")
	fmt.Fprintln(w, "✓ Generated source validators")
	fmt.Fprintln(w, "✓ Generated README and quick start guide")
}

// recordHistory logs a warning on failure; the project is already written.
func recordHistory(ctx context.Context, dbPath string, cfg *types.Config, proj *generate.Project, now time.Time) {
	if dbPath == "" {
		return
	}
	store, err := history.Open(dbPath)
	if err != nil {
		log.Warn("history unavailable", logger.String("db", dbPath), logger.Error(err))
		return
	}
	defer store.Close()

	var body []byte
	if a, ok := proj.Artifact(generate.InvestigationFile); ok {
		body = a.Content
	}
	e, err := store.Record(ctx, history.NewEntry(cfg, body, now))
	if err != nil {
		log.Warn("recording history failed", logger.Error(err))
		return
	}
	log.Debug("recorded run", logger.String("id", e.ID), logger.String("db", dbPath))
}

func printNextSteps(w io.Writer, cfg *types.Config) {
	rule := strings.Repeat("=", 70)
	fmt.Fprintf(w, "\n%s\n✓ PROJECT CREATED SUCCESSFULLY\n%s\n", rule, rule)
	fmt.Fprintf(w, "\nLocation: %s\n", cfg.Output.ProjectRoot)
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. cd %s\n", cfg.Output.ProjectRoot)
	fmt.Fprintf(w, "  2. Review %s\n", generate.InvestigationFile)
	fmt.Fprintf(w, "  3. Run: ./%s\n", generate.OrchestratorFile)
	fmt.Fprintf(w, "  4. Follow %s to launch the %d explorer agents\n", generate.QuickStartFile, len(cfg.Agents.Explorers))
}

func init() {
	newCmd.Flags().String("answers", "", "YAML file answering the wizard questions")
	newCmd.Flags().String("output-dir", "", "directory to create the project in (default: settings output_dir, then cwd)")
	newCmd.Flags().Bool("no-history", false, "do not record the project in the history database")

	rootCmd.AddCommand(newCmd)
}
