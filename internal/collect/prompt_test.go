// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/investigator/pkg/types"
)

// --- LinePrompter ---

func TestLinePrompterReadsTrimmedLines(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("  first answer \nsecond"), &out)
	ctx := context.Background()

	got, err := p.Ask(ctx, Question{Key: KeyTopic, Text: "Topic?"})
	require.NoError(t, err)
	assert.Equal(t, "first answer", got)
	assert.Contains(t, out.String(), "Topic?")

	got, err = p.Ask(ctx, Question{Key: KeyPurpose, Text: "Purpose?"})
	require.NoError(t, err)
	assert.Equal(t, "second", got, "final line without newline is returned")

	_, err = p.Ask(ctx, Question{Key: KeyType, Text: "Type?"})
	assert.ErrorIs(t, err, io.EOF)
}

func TestLinePrompterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewLinePrompter(strings.NewReader("x\n"), io.Discard)
	_, err := p.Ask(ctx, Question{Key: KeyTopic})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLinePrompterDrivesSession(t *testing.T) {
	input := strings.Join(script("2", twoAgents, []string{"3"}, "1", "", "history-project"), "\n") + "\n"
	p := NewLinePrompter(strings.NewReader(input), io.Discard)
	var banners bytes.Buffer

	cfg, err := NewSession(p, Options{BaseDir: t.TempDir(), Out: &banners}).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.TypeHistorical, cfg.Investigation.Type)
	assert.Equal(t, types.PerspectiveEnvironmental, cfg.Perspective.Type)
	assert.Equal(t, types.LevelStandard, cfg.Validation.Level)
	assert.Contains(t, banners.String(), "SECTION 5: Output Configuration")
	assert.Contains(t, banners.String(), "--- Explorer Agent #2 ---")
}

// --- AnswersPrompter ---

const answersYAML = `topic: AI regulation
purpose: Determine policy effectiveness for citizen welfare
type: "3"
keywords: "AI act, liability, audits"
geographic_scope: European Union
agents:
  - name: recent
    from: 6 months ago
    to: now
    description: Implementation phase
  - name: "2023"
    from: "2023-01-01"
    to: "2023-12-31"
    description: Trilogue negotiations
perspective: "5"
perspective_description: Small software firms
perspective_focus: Compliance burden and innovation
validation: "3"
flagged_sources: "Example Blog"
project_name: ai-act
confirm: "y"
`

func writeAnswers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAnswers(t *testing.T) {
	a, err := LoadAnswers(writeAnswers(t, answersYAML))
	require.NoError(t, err)
	assert.Equal(t, "AI regulation", a.Topic)
	require.Len(t, a.Agents, 2)
	assert.Equal(t, "2023", a.Agents[1].Name)
	assert.Equal(t, "y", a.Confirm)
}

func TestLoadAnswersErrors(t *testing.T) {
	_, err := LoadAnswers(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading answers")

	_, err = LoadAnswers(writeAnswers(t, "agents: [unclosed\n"))
	assert.ErrorContains(t, err, "parsing answers")
}

func TestAnswersPrompterDrivesSession(t *testing.T) {
	a, err := LoadAnswers(writeAnswers(t, answersYAML))
	require.NoError(t, err)

	cfg, err := NewSession(NewAnswersPrompter(a), Options{BaseDir: t.TempDir()}).Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, types.TypeMixed, cfg.Investigation.Type)
	assert.Equal(t, []string{"AI act", "liability", "audits"}, cfg.Investigation.Keywords)
	require.Len(t, cfg.Agents.Explorers, 2)
	assert.Equal(t, "Trilogue negotiations", cfg.Agents.Explorers[1].Description)
	assert.Equal(t, types.PerspectiveCustom, cfg.Perspective.Type)
	assert.Equal(t, "Compliance burden and innovation", cfg.Perspective.Focus)
	assert.Equal(t, types.LevelMaximum, cfg.Validation.Level)
	assert.Equal(t, []string{"Example Blog"}, cfg.Validation.FlaggedSources)
	assert.Equal(t, "ai-act", cfg.Output.ProjectName)
}

func TestAnswersPrompterExplicitCountBeyondAgents(t *testing.T) {
	a, err := LoadAnswers(writeAnswers(t, answersYAML+"agent_count: \"3\"\n"))
	require.NoError(t, err)

	_, err = NewSession(NewAnswersPrompter(a), Options{}).Collect(context.Background())
	assert.ErrorIs(t, err, ErrNoAnswer)
}

func TestAnswersPrompterUnknownKey(t *testing.T) {
	_, err := NewAnswersPrompter(&AnswersFile{}).Ask(context.Background(), Question{Key: "nope"})
	assert.ErrorIs(t, err, ErrNoAnswer)
}
