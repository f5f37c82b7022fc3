// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect runs the configuration wizard: a fixed sequence of
// questions answered through a Prompter, assembled into a types.Config.
// Enumerated answers go through lookup tables with silent defaults; the
// explorer count, agent names, ISO date ranges and the project name are
// validated and rejected with sentinel errors.
package collect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/pdiddy/investigator/internal/ethics"
	"github.com/pdiddy/investigator/internal/logger"
	"github.com/pdiddy/investigator/pkg/types"
)

var (
	// ErrInvalidAgentCount means the explorer count is not an integer >= 1.
	ErrInvalidAgentCount = errors.New("explorer agent count must be a positive integer")

	// ErrInvalidAgentName means an agent name cannot be used as a single
	// directory name.
	ErrInvalidAgentName = errors.New("invalid explorer agent name")

	// ErrDuplicateAgent means two agents share a name or an ID slug and
	// would collide on disk or in the orchestrator.
	ErrDuplicateAgent = errors.New("duplicate explorer agent name")

	// ErrInvertedDateRange means both ends of a range are YYYY-MM-DD dates
	// and the start is after the end.
	ErrInvertedDateRange = errors.New("date range starts after it ends")

	// ErrInvalidProjectName means the project name is not a single relative
	// path element.
	ErrInvalidProjectName = errors.New("invalid project name")
)

const isoDate = "2006-01-02"

// Options configures a Session.
type Options struct {
	// BaseDir is the directory the project root is created in. Empty means
	// the current working directory.
	BaseDir string

	// Out receives section banners. Nil discards them.
	Out io.Writer

	Logger logger.Logger
}

// Session holds the in-progress configuration while the wizard advances one
// question at a time. A Session is used once.
type Session struct {
	prompter Prompter
	opts     Options
	log      logger.Logger
	cfg      types.Config
}

// NewSession returns a session asking questions through p.
func NewSession(p Prompter, opts Options) *Session {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Session{prompter: p, opts: opts, log: log}
}

// field binds a fixed question to the Config field its answer sets.
type field struct {
	q   Question
	set func(cfg *types.Config, answer string)
}

var investigationFields = []field{
	{
		q: Question{Key: KeyTopic, Text: "1. What topic do you want to investigate?\n" +
			`   Example: "European migration policy", "Climate change action", "AI regulation"`},
		set: func(cfg *types.Config, a string) { cfg.Investigation.Topic = a },
	},
	{
		q: Question{Key: KeyPurpose, Text: "2. What is the PURPOSE of this investigation?\n" +
			`   Example: "Assess democratic values and human rights record"` + "\n" +
			`            "Evaluate ethical and economic worth for investment decisions"` + "\n" +
			`            "Understand historical legacy and impact on modern society"`},
		set: func(cfg *types.Config, a string) { cfg.Investigation.Purpose = a },
	},
	{
		q: Question{Key: KeyType, Text: "3. What type of investigation is this?\n" +
			"   [1] Current news analysis (recent developments)\n" +
			"   [2] Historical investigation (past events)\n" +
			"   [3] Mixed (historical context + current situation)"},
		set: func(cfg *types.Config, a string) { cfg.Investigation.Type = LookupInvestigationType(a) },
	},
	{
		q: Question{Key: KeyKeywords, Text: "4. Enter keywords (comma-separated):\n" +
			`   Example: "migration, refugees, asylum policy, border control"`},
		set: func(cfg *types.Config, a string) { cfg.Investigation.Keywords = splitList(a) },
	},
	{
		q: Question{Key: KeyGeographicScope, Text: "5. Geographic scope?\n" +
			`   Example: "European Union", "Global", "United States"`},
		set: func(cfg *types.Config, a string) { cfg.Investigation.GeographicScope = a },
	},
}

// Collect asks every question in order and returns the assembled Config.
// The session hands the Config over; it must not be used afterwards.
func (s *Session) Collect(ctx context.Context) (*types.Config, error) {
	sections := []struct {
		title string
		run   func(context.Context) error
	}{
		{"SECTION 1: Investigation Topic", s.collectInvestigation},
		{"SECTION 2: Time Periods & Explorer Agents", s.collectExplorers},
		{"SECTION 3: Analysis Perspective", s.collectPerspective},
		{"SECTION 4: Critical Analysis & Misinformation Safeguards", s.collectValidation},
		{"SECTION 5: Output Configuration", s.collectOutput},
	}

	for _, sec := range sections {
		rule := strings.Repeat("-", 70)
		fmt.Fprintf(s.opts.Out, "\n%s\n%s\n%s\n", rule, sec.title, rule)
		if err := sec.run(ctx); err != nil {
			return nil, err
		}
	}

	s.log.Debug("configuration collected",
		logger.String("project", s.cfg.Output.ProjectName),
		logger.Int("explorers", len(s.cfg.Agents.Explorers)),
		logger.String("validation", string(s.cfg.Validation.Level)),
	)
	cfg := s.cfg
	return &cfg, nil
}

func (s *Session) ask(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer, err := s.prompter.Ask(ctx, q)
	if err != nil {
		return "", fmt.Errorf("answering %s: %w", q.Key, err)
	}
	return strings.TrimSpace(lineBreaks.Replace(answer)), nil
}

// lineBreaks folds multi-line answers (possible from answers files) onto one
// line; generated documents and scripts assume single-line values.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func (s *Session) collectInvestigation(ctx context.Context) error {
	for _, f := range investigationFields {
		answer, err := s.ask(ctx, f.q)
		if err != nil {
			return err
		}
		f.set(&s.cfg, answer)
	}
	return nil
}

func (s *Session) collectExplorers(ctx context.Context) error {
	answer, err := s.ask(ctx, Question{
		Key:  KeyAgentCount,
		Text: "6. How many explorer agents (time periods)?\n   Recommended: 3-5 agents",
	})
	if err != nil {
		return err
	}
	count, err := strconv.Atoi(answer)
	if err != nil || count < 1 {
		return fmt.Errorf("%w: %q", ErrInvalidAgentCount, answer)
	}

	explorers := make([]types.ExplorerAgent, 0, count)
	seen := make(map[string]bool, count)
	for i := 0; i < count; i++ {
		fmt.Fprintf(s.opts.Out, "\n--- Explorer Agent #%d ---\n", i+1)
		agent, err := s.collectAgent(ctx, i)
		if err != nil {
			return err
		}
		if seen[agent.ID] {
			return fmt.Errorf("%w: %q (%s)", ErrDuplicateAgent, agent.Name, agent.ID)
		}
		seen[agent.ID] = true
		explorers = append(explorers, agent)
	}
	s.cfg.Agents.Explorers = explorers
	return nil
}

func (s *Session) collectAgent(ctx context.Context, i int) (types.ExplorerAgent, error) {
	questions := []Question{
		{Key: KeyAgentName, Index: i, Text: `Name for this period (e.g., "recent", "mid-term-2023", "early-2020s"):`},
		{Key: KeyAgentFrom, Index: i, Text: `Start date (YYYY-MM-DD or relative like "6 months ago"):`},
		{Key: KeyAgentTo, Index: i, Text: `End date (YYYY-MM-DD or relative like "now", "1 month ago"):`},
		{Key: KeyAgentDescription, Index: i, Text: "Brief description of this period:"},
	}
	answers := make([]string, len(questions))
	for j, q := range questions {
		a, err := s.ask(ctx, q)
		if err != nil {
			return types.ExplorerAgent{}, err
		}
		answers[j] = a
	}

	name, from, to, description := answers[0], answers[1], answers[2], answers[3]
	slug := Slug(name)
	if !validPathElement(name) || slug == "" {
		return types.ExplorerAgent{}, fmt.Errorf("%w: %q", ErrInvalidAgentName, name)
	}
	if err := checkDateRange(from, to); err != nil {
		return types.ExplorerAgent{}, fmt.Errorf("agent %q: %w", name, err)
	}

	return types.ExplorerAgent{
		ID:          "scout-" + slug,
		Name:        name,
		DateRange:   types.DateRange{From: from, To: to},
		Description: description,
		TargetArticles: types.TargetArticles{
			Min:   types.DefaultMinArticles,
			Ideal: types.DefaultIdealArticles,
		},
	}, nil
}

// checkDateRange rejects ranges whose ends are both ISO dates in the wrong
// order. Relative or free-form ends are accepted unchecked.
func checkDateRange(from, to string) error {
	start, err := time.Parse(isoDate, from)
	if err != nil {
		return nil
	}
	end, err := time.Parse(isoDate, to)
	if err != nil {
		return nil
	}
	if start.After(end) {
		return fmt.Errorf("%w: %s > %s", ErrInvertedDateRange, from, to)
	}
	return nil
}

func (s *Session) collectPerspective(ctx context.Context) error {
	fmt.Fprintln(s.opts.Out, "\nThe system evaluates topics from a perspective that prioritizes:")
	fmt.Fprintln(s.opts.Out, "  * Human welfare and dignity (humanistic)")
	fmt.Fprintln(s.opts.Out, "  * Evidence-based facts (positivistic)")
	fmt.Fprintln(s.opts.Out, "  * Democratic accountability (democratic)")

	answer, err := s.ask(ctx, Question{
		Key: KeyPerspective,
		Text: "7. What specific perspective should guide the analysis?\n" +
			"   [1] General citizen welfare (broad human impact)\n" +
			`   [2] Specific group (e.g., "workers", "refugees", "youth")` + "\n" +
			"   [3] Environmental sustainability\n" +
			"   [4] Democratic governance quality\n" +
			"   [5] Custom (define your own)",
	})
	if err != nil {
		return err
	}

	opt := lookupPerspective(answer)
	description, focus := opt.description, opt.focus
	if opt.askDescription != nil {
		if description, err = s.ask(ctx, *opt.askDescription); err != nil {
			return err
		}
	}
	if opt.askFocus != nil {
		if focus, err = s.ask(ctx, *opt.askFocus); err != nil {
			return err
		}
	}

	s.cfg.Perspective = types.Perspective{
		Type:               opt.typ,
		Description:        description,
		Focus:              focus,
		EthicalFramework:   ethics.Framework(),
		MandatoryNegatives: ethics.MandatoryNegatives(),
	}
	return nil
}

func (s *Session) collectValidation(ctx context.Context) error {
	answer, err := s.ask(ctx, Question{
		Key: KeyValidation,
		Text: "8. Validation rigor level?\n" +
			"   [1] Standard (credible sources, basic verification)\n" +
			"   [2] High (multiple source verification, bias detection)\n" +
			"   [3] Maximum (extensive cross-checking, propaganda detection)",
	})
	if err != nil {
		return err
	}
	level := LookupValidationLevel(answer)

	flagged, err := s.ask(ctx, Question{
		Key:  KeyFlaggedSources,
		Text: "9. Any sources to flag as unreliable? (comma-separated, or press Enter to skip)",
	})
	if err != nil {
		return err
	}

	s.cfg.Validation = types.NewValidationPolicy(level, splitList(flagged))
	return nil
}

func (s *Session) collectOutput(ctx context.Context) error {
	name, err := s.ask(ctx, Question{
		Key:  KeyProjectName,
		Text: `10. Project name (filesystem-safe, e.g., "eu-migration-analysis"):`,
	})
	if err != nil {
		return err
	}
	if !validPathElement(name) {
		return fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	}

	root, err := filepath.Abs(filepath.Join(s.opts.BaseDir, name))
	if err != nil {
		return fmt.Errorf("resolving project root: %w", err)
	}

	formats := make([]string, len(types.DefaultExportFormats))
	copy(formats, types.DefaultExportFormats)
	s.cfg.Output = types.OutputSpec{
		ProjectName:       name,
		ProjectRoot:       root,
		GenerateDashboard: true,
		GenerateReport:    true,
		ExportFormats:     formats,
	}
	return nil
}

// validPathElement reports whether s names a single directory entry below
// its parent: non-empty, local, and free of separators and control
// characters.
func validPathElement(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	if strings.ContainsAny(s, `/\`) || strings.IndexFunc(s, unicode.IsControl) >= 0 {
		return false
	}
	return filepath.IsLocal(s)
}
