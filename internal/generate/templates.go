// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/investigator/internal/ethics"
	"github.com/pdiddy/investigator/pkg/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
	"inc":  func(i int) int { return i + 1 },
	// bullets renders items as a markdown list, or empty when there are none.
	"bullets": func(items []string, empty string) string {
		if len(items) == 0 {
			return empty
		}
		return "- " + strings.Join(items, "\n- ")
	},
	"yesNo": func(b bool) string {
		if b {
			return "YES"
		}
		return "NO"
	},
	"scout": ScoutFile,
	"raw":   RawDataDir,
}

var templates = template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))

// Credible-source excerpts: scouts get the first five, the README ten.
const (
	scoutCredibleSources  = 5
	readmeCredibleSources = 10
)

// view is the data every document template receives. Level-dependent
// switches are precomputed so templates only test booleans.
type view struct {
	Inv         types.Investigation
	Agents      []types.ExplorerAgent
	Perspective types.Perspective
	Validation  types.ValidationPolicy
	Req         types.ValidationRequirements
	Project     string

	Level      string
	LevelUpper string
	// Strict is true for every level above standard and gates the
	// misinformation and propaganda sections.
	Strict bool

	Pillars            []ethics.Pillar
	ProhibitedFramings []string
	CredibleExcerpt    []string

	// Per-document fields.
	Agent         types.ExplorerAgent
	ExampleRecord string
	Tree          string
	Files         map[string]string
}

func newView(cfg *types.Config) view {
	level := string(cfg.Validation.Level)
	var prohibited []string
	if fw := cfg.Perspective.EthicalFramework; fw != nil {
		prohibited = fw.ProhibitedPositiveFramings
	}
	return view{
		Inv:                cfg.Investigation,
		Agents:             cfg.Agents.Explorers,
		Perspective:        cfg.Perspective,
		Validation:         cfg.Validation,
		Req:                cfg.Validation.Requirements,
		Project:            cfg.Output.ProjectName,
		Level:              level,
		LevelUpper:         strings.ToUpper(level),
		Strict:             cfg.Validation.Level != types.LevelStandard,
		Pillars:            ethics.Pillars(),
		ProhibitedFramings: prohibited,
		Files: map[string]string{
			"investigation": InvestigationFile,
			"topic":         TopicFile,
			"rules":         SentimentRulesFile,
			"orchestrator":  OrchestratorFile,
			"validator":     ValidatorFile,
			"readme":        ReadmeFile,
			"quickstart":    QuickStartFile,
		},
	}
}

func excerpt(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}

func execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// exampleRecord is the sample line scouts are shown for articles.jsonl.
var exampleRecord = types.Article{
	Title:       "...",
	Source:      "...",
	URL:         "...",
	Date:        "YYYY-MM-DD",
	Content:     "...",
	Author:      "...",
	Type:        "news",
	Credibility: types.CredibilityVerified,
	Verification: types.Verification{
		Sources: []string{"source1", "source2"},
		Flags:   []string{},
	},
}

func renderScout(cfg *types.Config, agent types.ExplorerAgent) ([]byte, error) {
	record, err := marshalCompact(exampleRecord)
	if err != nil {
		return nil, err
	}
	v := newView(cfg)
	v.Agent = agent
	v.ExampleRecord = record
	v.CredibleExcerpt = excerpt(cfg.Validation.CredibleSources, scoutCredibleSources)
	return execute("scout.md.tmpl", v)
}

func renderValidator(cfg *types.Config) ([]byte, error) {
	return execute("validator.md.tmpl", newView(cfg))
}

func renderReadme(cfg *types.Config, tree string) ([]byte, error) {
	v := newView(cfg)
	v.Tree = tree
	v.CredibleExcerpt = excerpt(cfg.Validation.CredibleSources, readmeCredibleSources)
	return execute("readme.md.tmpl", v)
}

func renderQuickStart(cfg *types.Config) ([]byte, error) {
	return execute("quickstart.md.tmpl", newView(cfg))
}

// marshalCompact encodes v as single-line JSON without a trailing newline.
func marshalCompact(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
