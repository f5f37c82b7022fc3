// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"encoding/json"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/investigator/internal/ethics"
	"github.com/pdiddy/investigator/pkg/types"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func testConfig(level types.ValidationLevel) *types.Config {
	target := types.TargetArticles{Min: types.DefaultMinArticles, Ideal: types.DefaultIdealArticles}
	return &types.Config{
		Investigation: types.Investigation{
			Topic:           "Climate change action",
			Purpose:         "Evaluate policy effectiveness",
			Type:            types.TypeMixed,
			Keywords:        []string{"emissions", "carbon tax"},
			GeographicScope: "Global",
		},
		Agents: types.Agents{Explorers: []types.ExplorerAgent{
			{
				ID:             "scout-recent",
				Name:           "recent",
				DateRange:      types.DateRange{From: "6 months ago", To: "now"},
				Description:    "Latest developments",
				TargetArticles: target,
			},
			{
				ID:             "scout-2023",
				Name:           "2023",
				DateRange:      types.DateRange{From: "2023-01-01", To: "2023-12-31"},
				Description:    `The "COP28" year`,
				TargetArticles: target,
			},
		}},
		Perspective: types.Perspective{
			Type:               types.PerspectiveEnvironmental,
			Description:        "Environmental sustainability and climate action",
			Focus:              "Long-term sustainability, climate impact, ecological health",
			EthicalFramework:   ethics.Framework(),
			MandatoryNegatives: ethics.MandatoryNegatives(),
		},
		Validation: types.NewValidationPolicy(level, nil),
		Output: types.OutputSpec{
			ProjectName:       "climate",
			ProjectRoot:       "/tmp/climate",
			GenerateDashboard: true,
			GenerateReport:    true,
			ExportFormats:     []string{"html", "markdown", "json"},
		},
	}
}

func generate(t *testing.T, cfg *types.Config) *Project {
	t.Helper()
	p, err := Generate(cfg, Options{Now: fixedNow})
	require.NoError(t, err)
	return p
}

func content(t *testing.T, p *Project, path string) string {
	t.Helper()
	a, ok := p.Artifact(path)
	require.True(t, ok, "missing artifact %s", path)
	return string(a.Content)
}

// headings returns the text of every markdown heading in src.
func headings(t *testing.T, src string) []string {
	t.Helper()
	source := []byte(src)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))
	var out []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for c := h.FirstChild(); c != nil; c = c.NextSibling() {
			if txt, ok := c.(*ast.Text); ok {
				b.Write(txt.Segment.Value(source))
			}
		}
		out = append(out, b.String())
		return ast.WalkSkipChildren, nil
	})
	require.NoError(t, err)
	return out
}

func withoutGenerated(s string) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if !strings.HasPrefix(line, "# Generated: ") {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func TestGenerateLayout(t *testing.T) {
	p := generate(t, testConfig(types.LevelHigh))

	wantDirs := append(append([]string{}, BaseDirs...), "data/raw/recent", "data/raw/2023")
	assert.Equal(t, wantDirs, p.Dirs)

	var paths []string
	for _, a := range p.Artifacts {
		paths = append(paths, a.Path)
	}
	assert.Equal(t, []string{
		InvestigationFile,
		TopicFile,
		SentimentRulesFile,
		"agents/scout-recent.md",
		"agents/scout-2023.md",
		OrchestratorFile,
		ValidatorFile,
		ReadmeFile,
		QuickStartFile,
	}, paths)

	for _, a := range p.Artifacts {
		want := fs.FileMode(0o644)
		if a.Path == OrchestratorFile {
			want = 0o755
		}
		assert.Equal(t, want, a.Mode, a.Path)
	}
}

func TestGenerateOneScoutPerAgent(t *testing.T) {
	cfg := testConfig(types.LevelHigh)
	cfg.Agents.Explorers = cfg.Agents.Explorers[:1]
	p := generate(t, cfg)

	var scouts int
	for _, a := range p.Artifacts {
		if strings.HasPrefix(a.Path, "agents/") {
			scouts++
		}
	}
	assert.Equal(t, 1, scouts)
	assert.Equal(t, len(BaseDirs)+1, len(p.Dirs))
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := testConfig(types.LevelMaximum)
	a := generate(t, cfg)
	b := generate(t, cfg)
	assert.Equal(t, a, b, "same config and clock must give identical output")

	later, err := Generate(cfg, Options{Now: fixedNow.Add(48 * time.Hour)})
	require.NoError(t, err)
	require.Len(t, later.Artifacts, len(a.Artifacts))
	for i, art := range a.Artifacts {
		got := string(later.Artifacts[i].Content)
		if art.Path == OrchestratorFile {
			assert.NotEqual(t, string(art.Content), got)
			assert.Equal(t, withoutGenerated(string(art.Content)), withoutGenerated(got))
			continue
		}
		assert.Equal(t, string(art.Content), got, art.Path)
	}
}

func TestGenerateDoesNotModifyInputs(t *testing.T) {
	cfg := testConfig(types.LevelHigh)
	before, err := json.Marshal(cfg)
	require.NoError(t, err)
	fwBefore, err := json.Marshal(ethics.Framework())
	require.NoError(t, err)

	generate(t, cfg)

	after, err := json.Marshal(cfg)
	require.NoError(t, err)
	fwAfter, err := json.Marshal(ethics.Framework())
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
	assert.JSONEq(t, string(fwBefore), string(fwAfter))
	assert.Same(t, ethics.Framework(), cfg.Perspective.EthicalFramework)
}

func TestInvestigationFileRoundTrips(t *testing.T) {
	cfg := testConfig(types.LevelHigh)
	p := generate(t, cfg)

	var got types.Config
	require.NoError(t, json.Unmarshal([]byte(content(t, p, InvestigationFile)), &got))
	assert.Equal(t, *cfg, got)
	assert.True(t, strings.HasSuffix(content(t, p, InvestigationFile), "}\n"))
}

func TestTopicFile(t *testing.T) {
	p := generate(t, testConfig(types.LevelHigh))

	var topic Topic
	require.NoError(t, json.Unmarshal([]byte(content(t, p, TopicFile)), &topic))
	assert.Equal(t, "Climate change action", topic.Topic)
	assert.Equal(t, []string{"en"}, topic.Languages)
	require.Len(t, topic.TimePeriods, 2)
	assert.Equal(t, "2023", topic.TimePeriods[1].Name)
	assert.Equal(t, types.DateRange{From: "2023-01-01", To: "2023-12-31"}, topic.TimePeriods[1].DateRange)
}

func TestScoutDocument(t *testing.T) {
	p := generate(t, testConfig(types.LevelHigh))
	doc := content(t, p, "agents/scout-2023.md")

	for _, want := range []string{
		"# Scout Agent: 2023",
		"**Time Period**: 2023-01-01 → 2023-12-31",
		"**Keywords**: emissions, carbon tax",
		"**Validation Level**: HIGH",
		"Prioritize credible sources: Reuters, Associated Press, BBC, The Guardian, Financial Times\n",
		"AVOID flagged sources: None specified",
		"Minimum: 10 sources",
		"Ideal: 25 sources",
		"Verification: 2+ sources for key claims",
		"Save to `data/raw/2023/articles.jsonl`",
		`"credibility":"verified"`,
		"- Human rights violations\n",
		"- Misinformation flags are documented\n- Output is valid JSONL format",
	} {
		assert.Contains(t, doc, want)
	}
	assert.Contains(t, headings(t, doc), "Misinformation Detection")
}

func TestScoutDocumentStandardLevel(t *testing.T) {
	cfg := testConfig(types.LevelStandard)
	cfg.Validation = types.NewValidationPolicy(types.LevelStandard, []string{"Example Blog", "Rumor Mill"})
	p := generate(t, cfg)
	doc := content(t, p, "agents/scout-recent.md")

	assert.Contains(t, doc, "**Validation Level**: STANDARD\n\n### Source Verification")
	assert.NotContains(t, headings(t, doc), "Misinformation Detection")
	assert.NotContains(t, doc, "Misinformation flags are documented")
	assert.Contains(t, doc, "- Content is substantial and relevant\n- Output is valid JSONL format")
	assert.Contains(t, doc, "AVOID flagged sources: Example Blog, Rumor Mill")
}

func TestValidatorDocument(t *testing.T) {
	tests := []struct {
		level      types.ValidationLevel
		want       []string
		propaganda bool
	}{
		{
			level: types.LevelStandard,
			want: []string{
				"## Validation Level: STANDARD",
				"Minimum sources per claim: 2",
				"Require primary sources: NO",
				"Cross-reference controversial claims: YES",
				"Detect propaganda: NO",
			},
		},
		{
			level: types.LevelHigh,
			want: []string{
				"## Validation Level: HIGH",
				"Require primary sources: YES",
				"Flag biased language: YES",
				"Detect propaganda: NO",
			},
			propaganda: true,
		},
		{
			level: types.LevelMaximum,
			want: []string{
				"## Validation Level: MAXIMUM",
				"Minimum sources per claim: 3",
				"Detect propaganda: YES",
				"For 3+ sources required:",
			},
			propaganda: true,
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			p := generate(t, testConfig(tt.level))
			doc := content(t, p, ValidatorFile)
			for _, want := range tt.want {
				assert.Contains(t, doc, want)
			}
			assert.Contains(t, doc, "### Flagged Sources (Avoid)\nNone specified")
			hs := headings(t, doc)
			assert.Equal(t, tt.propaganda, contains(hs, "Propaganda Techniques to Detect"))
			assert.Equal(t, tt.propaganda, contains(hs, "Bias Indicators"))
		})
	}
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}

func TestSentimentRulesDocument(t *testing.T) {
	cfg := testConfig(types.LevelMaximum)
	rules := SentimentRules(cfg)

	assert.Same(t, ethics.Framework(), rules.EthicalFramework)
	assert.Equal(t, [2]int{-10, 10}, rules.ScoringScale.Range)
	assert.Equal(t, "Sentiment scoring rules from Environmental sustainability and climate action perspective", rules.Description)

	fw := ethics.Framework().ImmutablePrinciples.Humanistic
	require.Len(t, rules.Criteria.Positive, len(fw.PositiveIndicators))
	for i, c := range rules.Criteria.Positive {
		assert.Equal(t, fw.PositiveIndicators[i], c.Indicator)
		assert.Equal(t, 2, c.Weight)
		if i < 3 {
			assert.Equal(t, "critical", c.Category)
		} else {
			assert.Equal(t, "important", c.Category)
		}
		assert.Empty(t, c.Note)
	}
	require.Len(t, rules.Criteria.Negative, len(fw.NegativeIndicators))
	for _, c := range rules.Criteria.Negative {
		assert.Equal(t, -2, c.Weight)
		assert.Equal(t, "always-negative", c.Category)
		assert.NotEmpty(t, c.Note)
	}

	assert.Len(t, rules.MandatoryNegatives, 5)
	assert.Len(t, rules.ContextualFactors, 7)
	assert.Equal(t, ValidationView{
		EvidenceStandard:      types.LevelMaximum,
		MinimumSources:        3,
		RequirePrimarySources: true,
		FlagPropaganda:        true,
	}, rules.ValidationRequirements)

	p := generate(t, cfg)
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(content(t, p, SentimentRulesFile)), &raw))
	assert.Contains(t, raw, "ethicalFramework")
	assert.Contains(t, raw, "criteria")
}

func TestOrchestrator(t *testing.T) {
	cfg := testConfig(types.LevelHigh)
	p := generate(t, cfg)
	script := content(t, p, OrchestratorFile)

	assert.True(t, strings.HasPrefix(script, "#!/bin/sh\n"))
	assert.Contains(t, script, "# Investigation: Climate change action\n")
	assert.Contains(t, script, "# Generated: 2026-01-02T03:04:05Z\n")
	assert.Contains(t, script, "Validation Level: HIGH")
	assert.Contains(t, script, "  2. 2023: 2023-01-01 → 2023-12-31")
	assert.Contains(t, script, `  1. Task(subagent_type="Explore", prompt="agents/scout-recent.md", description="Latest developments")`)
	assert.Contains(t, script, `description="The \"COP28\" year"`)
	assert.Contains(t, script, "Misinformation detection (level: high)")

	const open, closing = "<<'INVESTIGATION_CONFIG'\n", "\nINVESTIGATION_CONFIG\n"
	start := strings.Index(script, open)
	require.GreaterOrEqual(t, start, 0)
	body := script[start+len(open):]
	end := strings.Index(body, closing)
	require.GreaterOrEqual(t, end, 0)

	var embedded OrchestratorConfig
	require.NoError(t, json.Unmarshal([]byte(body[:end]), &embedded))
	assert.Equal(t, OrchestratorDocument(cfg), embedded)
	assert.Equal(t, types.PerspectiveEnvironmental, embedded.Perspective.Type)
}

func TestOrchestratorKeepsUserTextOnOneLine(t *testing.T) {
	cfg := testConfig(types.LevelHigh)
	cfg.Investigation.Topic = "Split\nEXECUTION_PLAN\ntopic"
	p := generate(t, cfg)
	script := content(t, p, OrchestratorFile)

	for _, line := range strings.Split(script, "\n") {
		assert.NotEqual(t, "topic", line)
	}
	assert.Equal(t, 1, strings.Count(script, "\nEXECUTION_PLAN\n"))
	assert.Contains(t, script, "# Investigation: Split EXECUTION_PLAN topic\n")
}

func TestOrchestratorRunsWithMultiLineAgentText(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	cfg := testConfig(types.LevelHigh)
	cfg.Agents.Explorers[0].DateRange.From = "x\nEXECUTION_PLAN\n)\ntouch marker\ncat <<'EXECUTION_PLAN'"
	cfg.Agents.Explorers[1].DateRange.To = "y\nINVESTIGATION_CONFIG\ntouch marker"
	p := generate(t, cfg)

	dir := t.TempDir()
	script := filepath.Join(dir, OrchestratorFile)
	require.NoError(t, os.WriteFile(script, []byte(content(t, p, OrchestratorFile)), 0o755))

	run := func(args ...string) string {
		cmd := exec.Command(sh, append([]string{script}, args...)...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
		return string(out)
	}

	plan := run("plan")
	assert.Contains(t, plan, "  1. recent: x EXECUTION_PLAN ) touch marker cat <<'EXECUTION_PLAN' → now")
	assert.Contains(t, plan, "Then run Phases 2-4 sequentially")
	assert.NoFileExists(t, filepath.Join(dir, "marker"))

	var embedded OrchestratorConfig
	require.NoError(t, json.Unmarshal([]byte(run("config")), &embedded))
	assert.Equal(t, OrchestratorDocument(cfg), embedded)
	assert.NoFileExists(t, filepath.Join(dir, "marker"))
}

func TestReadmeTreeMatchesProject(t *testing.T) {
	p := generate(t, testConfig(types.LevelHigh))
	readme := content(t, p, ReadmeFile)

	start := strings.Index(readme, "```\nclimate/\n")
	require.GreaterOrEqual(t, start, 0)
	block := readme[start+len("```\n"):]
	block = block[:strings.Index(block, "```")]

	want := map[string]bool{}
	for _, d := range p.Dirs {
		for d != "." {
			want[d] = true
			d = path.Dir(d)
		}
	}
	for _, a := range p.Artifacts {
		want[a.Path] = true
	}
	assert.Equal(t, want, treePaths(t, block))
	assert.Contains(t, readme, "./orchestrator.sh")
	assert.Contains(t, readme, "- **Validation Level**: HIGH")
}

func TestQuickStart(t *testing.T) {
	p := generate(t, testConfig(types.LevelStandard))
	doc := content(t, p, QuickStartFile)
	assert.Contains(t, doc, "Standard validation with credible source prioritization.")
	assert.Contains(t, doc, "2. scout-2023 (2023-01-01 → 2023-12-31)")

	p = generate(t, testConfig(types.LevelMaximum))
	doc = content(t, p, QuickStartFile)
	assert.Contains(t, doc, "- 3+ source verification per claim")
	assert.Contains(t, doc, "- Propaganda detection enabled")
}
