// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate derives the project scaffold from a collected
// configuration: the directory set, the JSON configuration documents, one
// scout instruction document per explorer agent, the orchestrator script,
// the validator guidance, and the README and quick-start narratives.
//
// Generation is a pure function of the Config. The only value that varies
// between runs is the timestamp in the orchestrator header, taken from
// Options.Now.
package generate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"time"

	"github.com/pdiddy/investigator/pkg/types"
)

// Artifact paths, relative to the project root.
const (
	InvestigationFile  = "config/investigation.json"
	TopicFile          = "config/topic.json"
	SentimentRulesFile = "config/sentiment-rules.json"
	OrchestratorFile   = "orchestrator.sh"
	ValidatorFile      = "validators/source-validation.md"
	ReadmeFile         = "README.md"
	QuickStartFile     = "QUICKSTART.md"

	rawDataDir = "data/raw"
)

// BaseDirs are created in every project, before the per-agent raw dirs.
var BaseDirs = []string{
	"config",
	"config/templates",
	"agents",
	"data/raw",
	"data/analyzed",
	"data/synthesized",
	"data/visualizations",
	"validators",
	"docs",
}

const (
	fileMode       fs.FileMode = 0o644
	executableMode fs.FileMode = 0o755
)

// Artifact is one generated file.
type Artifact struct {
	// Path is slash-separated and relative to the project root.
	Path    string
	Content []byte
	Mode    fs.FileMode
}

// Project is the full derived scaffold: directories first, then artifacts
// in write order.
type Project struct {
	Dirs      []string
	Artifacts []Artifact
}

// Artifact returns the artifact at path and whether it exists.
func (p *Project) Artifact(path string) (Artifact, bool) {
	for _, a := range p.Artifacts {
		if a.Path == path {
			return a, true
		}
	}
	return Artifact{}, false
}

// Options controls the nondeterministic inputs of generation.
type Options struct {
	// Now stamps the orchestrator header. Zero means time.Now().
	Now time.Time
}

// RawDataDir returns the directory explorer agent name writes articles to.
func RawDataDir(name string) string {
	return path.Join(rawDataDir, name)
}

// ScoutFile returns the instruction document path for explorer agent name.
func ScoutFile(name string) string {
	return "agents/scout-" + name + ".md"
}

// Dirs returns the directory set for cfg: BaseDirs plus one raw-data
// directory per explorer, in declaration order.
func Dirs(cfg *types.Config) []string {
	dirs := make([]string, 0, len(BaseDirs)+len(cfg.Agents.Explorers))
	dirs = append(dirs, BaseDirs...)
	for _, a := range cfg.Agents.Explorers {
		dirs = append(dirs, RawDataDir(a.Name))
	}
	return dirs
}

// Generate derives the project for cfg. It reads cfg and the shared ethical
// framework and modifies neither. Errors indicate a template or encoding
// fault, never a problem with the configuration's content.
func Generate(cfg *types.Config, opts Options) (*Project, error) {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	p := &Project{Dirs: Dirs(cfg)}
	add := func(path string, mode fs.FileMode, build func() ([]byte, error)) error {
		content, err := build()
		if err != nil {
			return fmt.Errorf("generating %s: %w", path, err)
		}
		p.Artifacts = append(p.Artifacts, Artifact{Path: path, Content: content, Mode: mode})
		return nil
	}

	steps := []struct {
		path  string
		mode  fs.FileMode
		build func() ([]byte, error)
	}{
		{InvestigationFile, fileMode, func() ([]byte, error) { return marshalJSON(cfg) }},
		{TopicFile, fileMode, func() ([]byte, error) { return marshalJSON(TopicDocument(cfg)) }},
		{SentimentRulesFile, fileMode, func() ([]byte, error) { return marshalJSON(SentimentRules(cfg)) }},
	}
	for _, s := range steps {
		if err := add(s.path, s.mode, s.build); err != nil {
			return nil, err
		}
	}

	for _, agent := range cfg.Agents.Explorers {
		if err := add(ScoutFile(agent.Name), fileMode, func() ([]byte, error) {
			return renderScout(cfg, agent)
		}); err != nil {
			return nil, err
		}
	}

	if err := add(OrchestratorFile, executableMode, func() ([]byte, error) {
		return renderOrchestrator(cfg, opts.Now)
	}); err != nil {
		return nil, err
	}
	if err := add(ValidatorFile, fileMode, func() ([]byte, error) {
		return renderValidator(cfg)
	}); err != nil {
		return nil, err
	}

	// The README tree lists every path, including the two narratives
	// themselves, so it is rendered from the final path list.
	paths := make([]string, 0, len(p.Artifacts)+2)
	for _, a := range p.Artifacts {
		paths = append(paths, a.Path)
	}
	paths = append(paths, ReadmeFile, QuickStartFile)
	tree := RenderTree(cfg.Output.ProjectName, p.Dirs, paths)

	if err := add(ReadmeFile, fileMode, func() ([]byte, error) {
		return renderReadme(cfg, tree)
	}); err != nil {
		return nil, err
	}
	if err := add(QuickStartFile, fileMode, func() ([]byte, error) {
		return renderQuickStart(cfg)
	}); err != nil {
		return nil, err
	}

	return p, nil
}

// marshalJSON encodes v as two-space indented JSON with a trailing newline,
// leaving <, > and & unescaped so documents stay readable.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
