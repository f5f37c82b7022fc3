// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/investigator/internal/ethics"
	"github.com/pdiddy/investigator/internal/generate"
	"github.com/pdiddy/investigator/pkg/types"
)

func projectConfig(root string) *types.Config {
	target := types.TargetArticles{Min: 2, Ideal: 5}
	return &types.Config{
		Investigation: types.Investigation{
			Topic:    "Housing policy",
			Purpose:  "Assess affordability measures",
			Type:     types.TypeCurrent,
			Keywords: []string{"rent", "zoning"},
		},
		Agents: types.Agents{Explorers: []types.ExplorerAgent{
			{ID: "scout-recent", Name: "recent", DateRange: types.DateRange{From: "1 year ago", To: "now"}, TargetArticles: target},
			{ID: "scout-2020", Name: "2020", DateRange: types.DateRange{From: "2020-01-01", To: "2020-12-31"}, TargetArticles: target},
		}},
		Perspective: types.Perspective{
			Type:               types.PerspectiveGeneralCitizen,
			Description:        "General citizen welfare",
			EthicalFramework:   ethics.Framework(),
			MandatoryNegatives: ethics.MandatoryNegatives(),
		},
		Validation: types.NewValidationPolicy(types.LevelStandard, nil),
		Output:     types.OutputSpec{ProjectName: filepath.Base(root), ProjectRoot: root},
	}
}

func writeProject(t *testing.T) (string, *types.Config) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "housing")
	cfg := projectConfig(root)
	p, err := generate.Generate(cfg, generate.Options{Now: time.Unix(0, 0)})
	require.NoError(t, err)
	require.NoError(t, NewWriter(nil).Write(context.Background(), root, p))
	return root, cfg
}

func TestLoad(t *testing.T) {
	root, cfg := writeProject(t)
	got, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "reading project configuration")

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "config", "investigation.json"), []byte("{"), 0o644))
	_, err = Load(root)
	assert.ErrorContains(t, err, "parsing project configuration")
}

func TestScoutFiles(t *testing.T) {
	root, _ := writeProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "agents", "notes.md"), nil, 0o644))

	files, err := ScoutFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "agents", "scout-2020.md"),
		filepath.Join(root, "agents", "scout-recent.md"),
	}, files)
}

func TestMissing(t *testing.T) {
	root, cfg := writeProject(t)

	missing, err := Missing(root, cfg)
	require.NoError(t, err)
	assert.Empty(t, missing)

	require.NoError(t, os.Remove(filepath.Join(root, "agents", "scout-2020.md")))
	require.NoError(t, os.Remove(filepath.Join(root, "data", "raw", "recent")))
	require.NoError(t, os.Chmod(filepath.Join(root, "orchestrator.sh"), 0o644))

	missing, err = Missing(root, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"data/raw/recent/",
		"agents/scout-2020.md",
		"orchestrator.sh (not executable)",
	}, missing)
}

func TestStatus(t *testing.T) {
	root, cfg := writeProject(t)
	records := []string{
		`{"title":"a","credibility":"verified"}`,
		`{"title":"b","credibility":"credible"}`,
		``,
		`not json`,
		`{"title":"c","credibility":"verified"}`,
	}
	path := filepath.Join(root, "data", "raw", "recent", "articles.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(records, "\n")), 0o644))

	status, err := Status(root, cfg)
	require.NoError(t, err)
	require.Len(t, status, 2)

	recent := status[0]
	assert.Equal(t, "recent", recent.Name)
	assert.Equal(t, 3, recent.Articles)
	assert.Equal(t, 1, recent.Invalid)
	assert.Equal(t, 2, recent.ByCredibility[types.CredibilityVerified])
	assert.Equal(t, 1, recent.ByCredibility[types.CredibilityCredible])
	assert.True(t, recent.MeetsMinimum())

	assert.Equal(t, "2020", status[1].Name)
	assert.Zero(t, status[1].Articles)
	assert.False(t, status[1].MeetsMinimum())
}
