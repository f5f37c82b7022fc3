// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/investigator/pkg/types"
)

// OrchestratorPerspective is the perspective summary embedded in the
// orchestrator; the ethical framework stays in sentiment-rules.json.
type OrchestratorPerspective struct {
	Type        types.PerspectiveType `json:"type"`
	Description string                `json:"description"`
}

// OrchestratorConfig is the data block embedded in orchestrator.sh and
// printed by `orchestrator.sh config`.
type OrchestratorConfig struct {
	Investigation types.Investigation     `json:"investigation"`
	Agents        types.Agents            `json:"agents"`
	Perspective   OrchestratorPerspective `json:"perspective"`
	Validation    types.ValidationPolicy  `json:"validation"`
}

// OrchestratorDocument projects cfg onto the embedded data block.
func OrchestratorDocument(cfg *types.Config) OrchestratorConfig {
	return OrchestratorConfig{
		Investigation: cfg.Investigation,
		Agents:        cfg.Agents,
		Perspective: OrchestratorPerspective{
			Type:        cfg.Perspective.Type,
			Description: cfg.Perspective.Description,
		},
		Validation: cfg.Validation,
	}
}

type orchestratorView struct {
	Inv         types.Investigation
	Agents      []types.ExplorerAgent
	Perspective string
	Level       string
	LevelUpper  string

	Topic      string
	Generated  string
	Script     string
	ConfigJSON string
	Rule       string
	ThinRule   string
}

// renderOrchestrator builds the script in two stages: the data block is
// encoded as JSON first, then inserted verbatim into a quoted heredoc so no
// user text is ever interpreted by the shell.
func renderOrchestrator(cfg *types.Config, now time.Time) ([]byte, error) {
	data, err := marshalJSON(OrchestratorDocument(cfg))
	if err != nil {
		return nil, fmt.Errorf("encoding orchestrator config: %w", err)
	}
	// Plan lines sit inside a heredoc; keep every piece of user text on the
	// line it is printed on so none can end the heredoc.
	inv := cfg.Investigation
	inv.Topic = singleLine(inv.Topic)
	inv.Purpose = singleLine(inv.Purpose)
	agents := make([]types.ExplorerAgent, len(cfg.Agents.Explorers))
	for i, a := range cfg.Agents.Explorers {
		a.Name = singleLine(a.Name)
		a.DateRange.From = singleLine(a.DateRange.From)
		a.DateRange.To = singleLine(a.DateRange.To)
		agents[i] = a
	}
	level := string(cfg.Validation.Level)
	return execute("orchestrator.sh.tmpl", orchestratorView{
		Inv:         inv,
		Agents:      agents,
		Perspective: singleLine(cfg.Perspective.Description),
		Level:       level,
		LevelUpper:  strings.ToUpper(level),
		Topic:       inv.Topic,
		Generated:   now.UTC().Format(time.RFC3339),
		Script:      OrchestratorFile,
		ConfigJSON:  strings.TrimSuffix(string(data), "\n"),
		Rule:        strings.Repeat("=", 70),
		ThinRule:    strings.Repeat("─", 70),
	})
}

// singleLine keeps header comments on one line.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
