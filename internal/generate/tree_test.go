// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// treePaths parses a rendered tree back into the set of paths it lists,
// relative to the root line.
func treePaths(t *testing.T, tree string) map[string]bool {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(tree, "\n"), "\n")
	require.NotEmpty(t, lines)
	require.True(t, strings.HasSuffix(lines[0], "/"), "root line %q", lines[0])

	got := map[string]bool{}
	var stack []string
	for _, line := range lines[1:] {
		runes := []rune(line)
		idx := -1
		for i := 0; i+1 < len(runes); i++ {
			if (runes[i] == '├' || runes[i] == '└') && runes[i+1] == '─' {
				idx = i
				break
			}
		}
		require.GreaterOrEqual(t, idx, 0, "no connector in %q", line)
		depth := idx / 4
		name := string(runes[idx+4:])
		if i := strings.Index(name, " # "); i >= 0 {
			name = name[:i]
		}
		name = strings.TrimSuffix(strings.TrimSpace(name), "/")

		stack = append(stack[:depth], name)
		got[strings.Join(stack, "/")] = true
	}
	return got
}

func TestRenderTree(t *testing.T) {
	got := RenderTree("demo",
		[]string{"config", "data/raw"},
		[]string{TopicFile, ReadmeFile},
	)
	want := "demo/\n" +
		"├── config/\n" +
		"│   └── topic.json" + strings.Repeat(" ", 15) + " # Investigation parameters\n" +
		"├── data/\n" +
		"│   └── raw/" + strings.Repeat(" ", 21) + " # Explorer agent outputs\n" +
		"└── README.md" + strings.Repeat(" ", 20) + " # This file\n"
	assert.Equal(t, want, got)
}

func TestRenderTreeKeepsInsertionOrder(t *testing.T) {
	got := RenderTree("p", []string{"b", "a"}, []string{"b/x.md", "a/y.md", "z.md"})
	assert.Equal(t, "p/\n├── b/\n│   └── x.md\n├── a/\n│   └── y.md\n└── z.md\n", got)
}

func TestRenderTreeRoundTrips(t *testing.T) {
	dirs := []string{"config", "agents", "data/raw", "data/raw/recent"}
	files := []string{InvestigationFile, "agents/scout-recent.md", OrchestratorFile}
	got := treePaths(t, RenderTree("proj", dirs, files))
	assert.Equal(t, map[string]bool{
		"config":                 true,
		"agents":                 true,
		"data":                   true,
		"data/raw":               true,
		"data/raw/recent":        true,
		InvestigationFile:        true,
		"agents/scout-recent.md": true,
		OrchestratorFile:         true,
	}, got)
}

func TestRenderTreeEmptyDirIsMarked(t *testing.T) {
	got := RenderTree("p", []string{"docs"}, nil)
	assert.Equal(t, "p/\n└── docs/\n", got)
}
