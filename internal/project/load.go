// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/investigator/internal/generate"
	"github.com/pdiddy/investigator/pkg/types"
)

const articlesFile = "articles.jsonl"

// scoutFilePattern matches explorer instruction documents: scout-<name>.md.
var scoutFilePattern = regexp.MustCompile(`^scout-.+\.md$`)

// Load reads config/investigation.json from a generated project.
func Load(projectDir string) (*types.Config, error) {
	path := filepath.Join(projectDir, filepath.FromSlash(generate.InvestigationFile))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project configuration: %w", err)
	}
	var cfg types.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing project configuration: %w", err)
	}
	return &cfg, nil
}

// ScoutFiles returns the sorted scout document paths in projectDir/agents.
func ScoutFiles(projectDir string) ([]string, error) {
	dir := filepath.Join(projectDir, "agents")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading agents directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if scoutFilePattern.MatchString(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Missing returns the directories and artifacts cfg implies that are absent
// from projectDir, as slash-separated relative paths in generation order.
// The orchestrator is also reported when it has lost its executable bit.
func Missing(projectDir string, cfg *types.Config) ([]string, error) {
	var missing []string
	for _, d := range generate.Dirs(cfg) {
		info, err := os.Stat(filepath.Join(projectDir, filepath.FromSlash(d)))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, d+"/")
		case err != nil:
			return nil, fmt.Errorf("checking %s: %w", d, err)
		case !info.IsDir():
			missing = append(missing, d+"/")
		}
	}

	files := []string{generate.InvestigationFile, generate.TopicFile, generate.SentimentRulesFile}
	for _, a := range cfg.Agents.Explorers {
		files = append(files, generate.ScoutFile(a.Name))
	}
	files = append(files, generate.OrchestratorFile, generate.ValidatorFile, generate.ReadmeFile, generate.QuickStartFile)

	for _, f := range files {
		info, err := os.Stat(filepath.Join(projectDir, filepath.FromSlash(f)))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, f)
		case err != nil:
			return nil, fmt.Errorf("checking %s: %w", f, err)
		case f == generate.OrchestratorFile && info.Mode().Perm()&0o100 == 0:
			missing = append(missing, f+" (not executable)")
		}
	}
	return missing, nil
}

// AgentStatus summarizes the articles one explorer has delivered.
type AgentStatus struct {
	Name          string                    `json:"name" yaml:"name"`
	Articles      int                       `json:"articles" yaml:"articles"`
	Target        types.TargetArticles      `json:"target" yaml:"target"`
	ByCredibility map[types.Credibility]int `json:"byCredibility" yaml:"by_credibility"`

	// Invalid counts lines that are not JSON article records.
	Invalid int `json:"invalid" yaml:"invalid"`
}

// MeetsMinimum reports whether the explorer reached its minimum target.
func (s AgentStatus) MeetsMinimum() bool {
	return s.Articles >= s.Target.Min
}

// Status reads data/raw/<agent>/articles.jsonl for every explorer in cfg.
// A missing file means the explorer has not run yet and counts as zero.
func Status(projectDir string, cfg *types.Config) ([]AgentStatus, error) {
	out := make([]AgentStatus, 0, len(cfg.Agents.Explorers))
	for _, a := range cfg.Agents.Explorers {
		st := AgentStatus{
			Name:          a.Name,
			Target:        a.TargetArticles,
			ByCredibility: map[types.Credibility]int{},
		}
		path := filepath.Join(projectDir, filepath.FromSlash(generate.RawDataDir(a.Name)), articlesFile)
		if err := countArticles(path, &st); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func countArticles(path string, st *AgentStatus) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var art types.Article
		if err := json.Unmarshal([]byte(line), &art); err != nil {
			st.Invalid++
			continue
		}
		st.Articles++
		st.ByCredibility[art.Credibility]++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
