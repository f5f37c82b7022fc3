// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Question keys. Agent questions repeat once per explorer with Question.Index
// set to the zero-based agent position.
const (
	KeyTopic                  = "topic"
	KeyPurpose                = "purpose"
	KeyType                   = "type"
	KeyKeywords               = "keywords"
	KeyGeographicScope        = "geographic_scope"
	KeyAgentCount             = "agent_count"
	KeyAgentName              = "agent.name"
	KeyAgentFrom              = "agent.from"
	KeyAgentTo                = "agent.to"
	KeyAgentDescription       = "agent.description"
	KeyPerspective            = "perspective"
	KeyPerspectiveGroup       = "perspective.group"
	KeyPerspectiveDescription = "perspective.description"
	KeyPerspectiveFocus       = "perspective.focus"
	KeyValidation             = "validation"
	KeyFlaggedSources         = "flagged_sources"
	KeyProjectName            = "project_name"
	KeyConfirm                = "confirm"
)

// Question is one prompt in the wizard sequence.
type Question struct {
	Key   string
	Index int
	Text  string
}

// Prompter answers questions one at a time, blocking until an answer is
// available. Implementations return answers untrimmed or trimmed; the
// session trims.
type Prompter interface {
	Ask(ctx context.Context, q Question) (string, error)
}

// LinePrompter asks questions on a terminal: it writes the question text to
// w and reads one line from r.
type LinePrompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewLinePrompter returns a LinePrompter reading from r and writing to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r), w: w}
}

// Ask prints the question and returns the next input line. A final line
// without a trailing newline is still returned; io.EOF is returned only when
// no input remains.
func (p *LinePrompter) Ask(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprintf(p.w, "\n%s\n   > ", q.Text)
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ErrNoAnswer is returned by AnswersPrompter when the file has no value for
// a question the sequence requires.
var ErrNoAnswer = errors.New("no answer provided")

// AgentAnswers holds one explorer's answers in an answers file.
type AgentAnswers struct {
	Name        string `yaml:"name"`
	From        string `yaml:"from"`
	To          string `yaml:"to"`
	Description string `yaml:"description"`
}

// AnswersFile is a non-interactive transcript of the wizard. Enumerated
// answers use the same option numbers the interactive prompts show.
type AnswersFile struct {
	Topic           string `yaml:"topic"`
	Purpose         string `yaml:"purpose"`
	Type            string `yaml:"type"`
	Keywords        string `yaml:"keywords"`
	GeographicScope string `yaml:"geographic_scope"`

	// AgentCount defaults to the number of Agents entries when empty.
	AgentCount string         `yaml:"agent_count"`
	Agents     []AgentAnswers `yaml:"agents"`

	Perspective            string `yaml:"perspective"`
	PerspectiveGroup       string `yaml:"perspective_group"`
	PerspectiveDescription string `yaml:"perspective_description"`
	PerspectiveFocus       string `yaml:"perspective_focus"`

	Validation     string `yaml:"validation"`
	FlaggedSources string `yaml:"flagged_sources"`
	ProjectName    string `yaml:"project_name"`

	// Confirm answers the final gate; empty proceeds.
	Confirm string `yaml:"confirm"`
}

// LoadAnswers reads an answers file from path.
func LoadAnswers(path string) (*AnswersFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	var a AnswersFile
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing answers: %w", err)
	}
	return &a, nil
}

// AnswersPrompter answers the wizard sequence from an AnswersFile, so
// scripted runs follow exactly the path an interactive run would.
type AnswersPrompter struct {
	answers *AnswersFile
}

// NewAnswersPrompter wraps a loaded answers file.
func NewAnswersPrompter(a *AnswersFile) *AnswersPrompter {
	return &AnswersPrompter{answers: a}
}

// Ask looks the answer up by question key.
func (p *AnswersPrompter) Ask(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	a := p.answers
	switch q.Key {
	case KeyTopic:
		return a.Topic, nil
	case KeyPurpose:
		return a.Purpose, nil
	case KeyType:
		return a.Type, nil
	case KeyKeywords:
		return a.Keywords, nil
	case KeyGeographicScope:
		return a.GeographicScope, nil
	case KeyAgentCount:
		if a.AgentCount == "" {
			return strconv.Itoa(len(a.Agents)), nil
		}
		return a.AgentCount, nil
	case KeyAgentName, KeyAgentFrom, KeyAgentTo, KeyAgentDescription:
		if q.Index < 0 || q.Index >= len(a.Agents) {
			return "", fmt.Errorf("%w: %s for agent #%d", ErrNoAnswer, q.Key, q.Index+1)
		}
		agent := a.Agents[q.Index]
		switch q.Key {
		case KeyAgentName:
			return agent.Name, nil
		case KeyAgentFrom:
			return agent.From, nil
		case KeyAgentTo:
			return agent.To, nil
		default:
			return agent.Description, nil
		}
	case KeyPerspective:
		return a.Perspective, nil
	case KeyPerspectiveGroup:
		return a.PerspectiveGroup, nil
	case KeyPerspectiveDescription:
		return a.PerspectiveDescription, nil
	case KeyPerspectiveFocus:
		return a.PerspectiveFocus, nil
	case KeyValidation:
		return a.Validation, nil
	case KeyFlaggedSources:
		return a.FlaggedSources, nil
	case KeyProjectName:
		return a.ProjectName, nil
	case KeyConfirm:
		return a.Confirm, nil
	}
	return "", fmt.Errorf("%w: unknown question %q", ErrNoAnswer, q.Key)
}
