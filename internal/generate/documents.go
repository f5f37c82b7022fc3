// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"github.com/pdiddy/investigator/pkg/types"
)

// TimePeriod is one explorer's slice as listed in topic.json.
type TimePeriod struct {
	Name        string          `json:"name"`
	DateRange   types.DateRange `json:"dateRange"`
	Description string          `json:"description"`
}

// Topic is the content of config/topic.json: the investigation parameters
// plus one time period per explorer.
type Topic struct {
	Topic           string                  `json:"topic"`
	Purpose         string                  `json:"purpose"`
	Type            types.InvestigationType `json:"type"`
	Keywords        []string                `json:"keywords"`
	GeographicScope string                  `json:"geographicScope"`
	Languages       []string                `json:"languages"`
	TimePeriods     []TimePeriod            `json:"timePeriods"`
}

// TopicDocument projects cfg onto the topic.json schema.
func TopicDocument(cfg *types.Config) Topic {
	inv := cfg.Investigation
	periods := make([]TimePeriod, 0, len(cfg.Agents.Explorers))
	for _, a := range cfg.Agents.Explorers {
		periods = append(periods, TimePeriod{
			Name:        a.Name,
			DateRange:   a.DateRange,
			Description: a.Description,
		})
	}
	return Topic{
		Topic:           inv.Topic,
		Purpose:         inv.Purpose,
		Type:            inv.Type,
		Keywords:        inv.Keywords,
		GeographicScope: inv.GeographicScope,
		Languages:       []string{"en"},
		TimePeriods:     periods,
	}
}

// Scoring constants for sentiment-rules.json.
const (
	ScoreMin            = -10
	ScoreMax            = 10
	positiveWeight      = 2
	negativeWeight      = -2
	criticalIndicators  = 3
	categoryCritical    = "critical"
	categoryImportant   = "important"
	categoryAlwaysNeg   = "always-negative"
	alwaysNegativeNote  = "NEVER frame these positively regardless of context"
	scoringScaleSummary = "-10 (very harmful to human welfare) to +10 (very beneficial to human welfare)"
)

// contextualFactors are weighed when scoring any article.
var contextualFactors = []string{
	"Scope of impact (local, national, international)",
	"Number of people affected",
	"Timeframe (immediate vs long-term)",
	"Reversibility of changes",
	"Impact on vulnerable populations",
	"Democratic process quality",
	"Transparency and accountability",
}

// Criterion is one weighted sentiment indicator.
type Criterion struct {
	Indicator string `json:"indicator"`
	Weight    int    `json:"weight"`
	Category  string `json:"category"`
	Note      string `json:"note,omitempty"`
}

// Criteria splits indicators by sign.
type Criteria struct {
	Positive []Criterion `json:"positive"`
	Negative []Criterion `json:"negative"`
}

// ScoringScale bounds article scores.
type ScoringScale struct {
	Range       [2]int `json:"range"`
	Description string `json:"description"`
}

// PerspectiveView is the perspective without its attached framework.
type PerspectiveView struct {
	Type        types.PerspectiveType `json:"type"`
	Description string                `json:"description"`
	Focus       string                `json:"focus"`
}

// ValidationView is the subset of validation requirements scoring uses.
type ValidationView struct {
	EvidenceStandard      types.ValidationLevel `json:"evidenceStandard"`
	MinimumSources        int                   `json:"minimumSources"`
	RequirePrimarySources bool                  `json:"requirePrimarySources"`
	FlagPropaganda        bool                  `json:"flagPropaganda"`
}

// Rules is the content of config/sentiment-rules.json.
type Rules struct {
	Description            string                  `json:"description"`
	EthicalFramework       *types.EthicalFramework `json:"ethicalFramework"`
	ScoringScale           ScoringScale            `json:"scoringScale"`
	Perspective            PerspectiveView         `json:"perspective"`
	Criteria               Criteria                `json:"criteria"`
	MandatoryNegatives     []string                `json:"mandatoryNegatives"`
	ProhibitedFramings     []string                `json:"prohibitedFramings"`
	ContextualFactors      []string                `json:"contextualFactors"`
	ValidationRequirements ValidationView          `json:"validationRequirements"`
}

// SentimentRules derives the scoring document from the perspective's
// framework and the validation policy. Humanistic positive indicators weigh
// +2 (the first three critical, the rest important); every humanistic
// negative indicator weighs -2 and may never be framed positively.
func SentimentRules(cfg *types.Config) Rules {
	fw := cfg.Perspective.EthicalFramework
	var humanistic types.IndicatorPrinciple
	var prohibited []string
	if fw != nil {
		humanistic = fw.ImmutablePrinciples.Humanistic
		prohibited = fw.ProhibitedPositiveFramings
	}

	positive := make([]Criterion, 0, len(humanistic.PositiveIndicators))
	for i, ind := range humanistic.PositiveIndicators {
		category := categoryImportant
		if i < criticalIndicators {
			category = categoryCritical
		}
		positive = append(positive, Criterion{Indicator: ind, Weight: positiveWeight, Category: category})
	}
	negative := make([]Criterion, 0, len(humanistic.NegativeIndicators))
	for _, ind := range humanistic.NegativeIndicators {
		negative = append(negative, Criterion{
			Indicator: ind,
			Weight:    negativeWeight,
			Category:  categoryAlwaysNeg,
			Note:      alwaysNegativeNote,
		})
	}

	req := cfg.Validation.Requirements
	return Rules{
		Description:      "Sentiment scoring rules from " + cfg.Perspective.Description + " perspective",
		EthicalFramework: fw,
		ScoringScale: ScoringScale{
			Range:       [2]int{ScoreMin, ScoreMax},
			Description: scoringScaleSummary,
		},
		Perspective: PerspectiveView{
			Type:        cfg.Perspective.Type,
			Description: cfg.Perspective.Description,
			Focus:       cfg.Perspective.Focus,
		},
		Criteria:           Criteria{Positive: positive, Negative: negative},
		MandatoryNegatives: cfg.Perspective.MandatoryNegatives,
		ProhibitedFramings: prohibited,
		ContextualFactors:  contextualFactors,
		ValidationRequirements: ValidationView{
			EvidenceStandard:      cfg.Validation.Level,
			MinimumSources:        req.MinimumSourcesPerClaim,
			RequirePrimarySources: req.RequirePrimarySources,
			FlagPropaganda:        req.DetectPropaganda,
		},
	}
}
