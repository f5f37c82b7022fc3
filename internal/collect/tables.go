// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"strings"

	"github.com/pdiddy/investigator/pkg/types"
)

// Enumerated answers are numeric option strings. Anything not in a table
// falls back to the documented default without an error.
const (
	defaultInvestigationType = types.TypeMixed
	defaultPerspectiveOption = "1"
	defaultValidationLevel   = types.LevelHigh
)

var investigationTypes = map[string]types.InvestigationType{
	"1": types.TypeCurrent,
	"2": types.TypeHistorical,
	"3": types.TypeMixed,
}

var validationLevels = map[string]types.ValidationLevel{
	"1": types.LevelStandard,
	"2": types.LevelHigh,
	"3": types.LevelMaximum,
}

// perspectiveOption describes one perspective choice. A nil question means
// the field is fixed; otherwise the session asks it after the choice.
type perspectiveOption struct {
	typ         types.PerspectiveType
	description string
	focus       string

	askDescription *Question
	askFocus       *Question
}

var perspectives = map[string]perspectiveOption{
	"1": {
		typ:         types.PerspectiveGeneralCitizen,
		description: "General citizen welfare and quality of life",
		focus:       "Broad impact on human welfare, rights, and dignity",
	},
	"2": {
		typ:   types.PerspectiveSpecificGroup,
		focus: "Impact on specific population with attention to vulnerability and rights",
		askDescription: &Question{
			Key:  KeyPerspectiveGroup,
			Text: `   Specify group (e.g., "workers", "students", "elderly"):`,
		},
	},
	"3": {
		typ:         types.PerspectiveEnvironmental,
		description: "Environmental sustainability and climate action",
		focus:       "Environmental impact with human welfare and future generations prioritized",
	},
	"4": {
		typ:         types.PerspectiveDemocratic,
		description: "Democratic governance and institutional quality",
		focus:       "Transparency, accountability, and citizen empowerment",
	},
	"5": {
		typ: types.PerspectiveCustom,
		askDescription: &Question{
			Key:  KeyPerspectiveDescription,
			Text: "   Describe your perspective:",
		},
		askFocus: &Question{
			Key:  KeyPerspectiveFocus,
			Text: "   What should be prioritized in analysis:",
		},
	},
}

// LookupInvestigationType maps an option string to a type, defaulting to mixed.
func LookupInvestigationType(answer string) types.InvestigationType {
	if t, ok := investigationTypes[strings.TrimSpace(answer)]; ok {
		return t
	}
	return defaultInvestigationType
}

// LookupValidationLevel maps an option string to a level, defaulting to high.
func LookupValidationLevel(answer string) types.ValidationLevel {
	if l, ok := validationLevels[strings.TrimSpace(answer)]; ok {
		return l
	}
	return defaultValidationLevel
}

func lookupPerspective(answer string) perspectiveOption {
	if p, ok := perspectives[strings.TrimSpace(answer)]; ok {
		return p
	}
	return perspectives[defaultPerspectiveOption]
}

// splitList splits a comma-separated answer, trims each entry, and drops
// empty entries. An empty answer yields an empty, non-nil slice.
func splitList(answer string) []string {
	out := []string{}
	for _, part := range strings.Split(answer, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Slug lowercases s and collapses every run of characters other than ASCII
// letters and digits into a single hyphen, trimming hyphens at both ends.
func Slug(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
