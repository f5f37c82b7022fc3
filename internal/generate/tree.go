// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"fmt"
	"strings"
)

// treeComment is the column annotations are aligned to.
const treeComment = 33

// treeNotes annotates well-known paths in the rendered tree.
var treeNotes = map[string]string{
	InvestigationFile:     "Complete configuration",
	TopicFile:             "Investigation parameters",
	SentimentRulesFile:    "Ethical framework & scoring rules",
	"config/templates":    "Custom prompt templates",
	"data/raw":            "Explorer agent outputs",
	"data/analyzed":       "Analyzer outputs",
	"data/synthesized":    "Synthesizer outputs",
	"data/visualizations": "Final dashboard",
	ValidatorFile:         "Validation guidelines",
	OrchestratorFile:      "Execution coordinator",
	QuickStartFile:        "Quick start guide",
	ReadmeFile:            "This file",
}

type treeNode struct {
	name     string
	path     string
	dir      bool
	children []*treeNode
}

func (n *treeNode) child(name string, dir bool) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			c.dir = c.dir || dir
			return c
		}
	}
	c := &treeNode{name: name, path: strings.TrimPrefix(n.path+"/"+name, "/"), dir: dir}
	n.children = append(n.children, c)
	return c
}

func (n *treeNode) insert(p string, dir bool) {
	parts := strings.Split(p, "/")
	cur := n
	for i, part := range parts {
		cur = cur.child(part, dir || i < len(parts)-1)
	}
}

// RenderTree draws the project layout rooted at root from exactly the given
// directories and files (slash-separated, relative). Entries keep the order
// they were first seen in; directories are suffixed with "/". The result
// ends with a newline.
func RenderTree(root string, dirs, files []string) string {
	top := &treeNode{name: root, dir: true}
	for _, d := range dirs {
		top.insert(d, true)
	}
	for _, f := range files {
		top.insert(f, false)
	}

	var b strings.Builder
	b.WriteString(root + "/\n")
	writeTree(&b, top, "")
	return b.String()
}

func writeTree(b *strings.Builder, n *treeNode, prefix string) {
	for i, c := range n.children {
		last := i == len(n.children)-1
		connector, indent := "├── ", "│   "
		if last {
			connector, indent = "└── ", "    "
		}
		name := c.name
		if c.dir {
			name += "/"
		}
		line := prefix + connector + name
		if note, ok := treeNotes[c.path]; ok {
			line = fmt.Sprintf("%-*s # %s", treeComment, line, note)
		}
		b.WriteString(line + "\n")
		if c.dir {
			writeTree(b, c, prefix+indent)
		}
	}
}
