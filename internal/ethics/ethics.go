// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ethics holds the process-wide ethical framework attached to every
// investigation perspective. The framework is package data: it is built once
// at init, shared by pointer, and never copied or modified per project.
// Generators derive views of it (weighted criteria, bullet lists) instead.
package ethics

import "github.com/pdiddy/investigator/pkg/types"

// framework is the single shared policy value.
var framework = types.EthicalFramework{
	Name:    "Humanistic Democratic Framework",
	Version: "1.0.0",
	ImmutablePrinciples: types.Principles{
		Positivistic: types.PositivisticPrinciple{
			Description: "Evidence-based, verifiable facts prioritized over opinion",
			Rules: []string{
				"Claims must be supported by credible sources",
				"Multiple source verification required for controversial claims",
				"Primary sources preferred over secondary interpretations",
				"Statistical claims require methodology transparency",
			},
		},
		Humanistic: types.IndicatorPrinciple{
			Description: "Human welfare and dignity are paramount",
			PositiveIndicators: []string{
				"Expansion of human rights and freedoms",
				"Reduction of suffering and harm",
				"Increased access to education, healthcare, housing",
				"Protection of vulnerable populations",
				"Environmental sustainability for future generations",
				"Cultural diversity and expression protected",
			},
			NegativeIndicators: []string{
				"Violations of human rights (ALWAYS NEGATIVE)",
				"Discrimination based on identity (ALWAYS NEGATIVE)",
				"Authoritarianism and oppression (ALWAYS NEGATIVE)",
				"Violence against civilians (ALWAYS NEGATIVE)",
				"Exploitation of vulnerable groups (ALWAYS NEGATIVE)",
				"Environmental destruction harming human welfare (ALWAYS NEGATIVE)",
			},
		},
		Democratic: types.IndicatorPrinciple{
			Description: "Transparency, accountability, and citizen empowerment",
			PositiveIndicators: []string{
				"Increased transparency and access to information",
				"Strengthened democratic institutions and processes",
				"Citizen participation in decision-making",
				"Accountability mechanisms for power holders",
				"Free press and freedom of expression",
				"Rule of law and independent judiciary",
			},
			NegativeIndicators: []string{
				"Censorship and information control (ALWAYS NEGATIVE)",
				"Concentration of power without accountability (ALWAYS NEGATIVE)",
				"Suppression of dissent or opposition (ALWAYS NEGATIVE)",
				"Corruption undermining public trust (ALWAYS NEGATIVE)",
				"Voter suppression or electoral fraud (ALWAYS NEGATIVE)",
				"Erosion of checks and balances (ALWAYS NEGATIVE)",
			},
		},
	},
	ProhibitedPositiveFramings: []string{
		"Authoritarianism presented as 'stability'",
		"Human rights violations as 'cultural differences'",
		"Discrimination as 'traditional values'",
		"Censorship as 'protecting social harmony'",
		"Exploitation as 'economic opportunity'",
		"Environmental destruction as 'development'",
	},
}

// mandatoryNegatives are outcomes every perspective scores negatively.
var mandatoryNegatives = []string{
	"Human rights violations",
	"Discrimination and persecution",
	"Authoritarianism and oppression",
	"Violence against civilians",
	"Corruption and abuse of power",
}

// Framework returns the shared ethical framework. Callers must treat the
// result as read-only.
func Framework() *types.EthicalFramework {
	return &framework
}

// MandatoryNegatives returns a fresh copy of the fixed mandatory-negative
// list, so a perspective owning it cannot disturb other projects.
func MandatoryNegatives() []string {
	out := make([]string, len(mandatoryNegatives))
	copy(out, mandatoryNegatives)
	return out
}

// Pillar is a one-line restatement of a principle used in generated documents.
type Pillar struct {
	Name    string
	Summary string
}

// Pillars returns the three principles in their fixed order with the short
// summaries documents print in compliance sections.
func Pillars() []Pillar {
	return []Pillar{
		{Name: "Positivistic", Summary: "Evidence-based, verifiable facts"},
		{Name: "Humanistic", Summary: "Human welfare and dignity prioritized"},
		{Name: "Democratic", Summary: "Transparency and accountability valued"},
	}
}
