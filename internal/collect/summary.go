// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/investigator/pkg/types"
)

// Summary renders the human-readable review of cfg shown before generation.
func Summary(cfg *types.Config) string {
	var b strings.Builder
	rule := strings.Repeat("=", 70)
	fmt.Fprintf(&b, "%s\nCONFIGURATION SUMMARY\n%s\n", rule, rule)

	inv := cfg.Investigation
	fmt.Fprintf(&b, "\nInvestigation: %s\n", inv.Topic)
	fmt.Fprintf(&b, "Purpose: %s\n", inv.Purpose)
	fmt.Fprintf(&b, "Type: %s\n", inv.Type)
	fmt.Fprintf(&b, "Geographic Scope: %s\n", inv.GeographicScope)
	fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(inv.Keywords, ", "))

	fmt.Fprintf(&b, "\nExplorer Agents: %d\n", len(cfg.Agents.Explorers))
	for i, a := range cfg.Agents.Explorers {
		fmt.Fprintf(&b, "   %d. %s: %s → %s\n", i+1, a.Name, a.DateRange.From, a.DateRange.To)
	}

	fmt.Fprintf(&b, "\nPerspective: %s\n", cfg.Perspective.Description)
	fmt.Fprintf(&b, "Validation Level: %s\n", strings.ToUpper(string(cfg.Validation.Level)))
	fmt.Fprintf(&b, "Project: %s\n", cfg.Output.ProjectName)
	return b.String()
}

// Confirm prints the summary of cfg to w and asks whether to generate. Only
// an explicit "n" (any case) declines; any other answer, including an empty
// one, proceeds.
func Confirm(ctx context.Context, p Prompter, cfg *types.Config, w io.Writer) (bool, error) {
	fmt.Fprintf(w, "\n%s", Summary(cfg))
	answer, err := p.Ask(ctx, Question{Key: KeyConfirm, Text: "Generate project? [Y/n]:"})
	if err != nil {
		return false, fmt.Errorf("answering %s: %w", KeyConfirm, err)
	}
	return !strings.EqualFold(strings.TrimSpace(answer), "n"), nil
}
