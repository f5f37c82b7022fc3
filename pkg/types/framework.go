// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PositivisticPrinciple holds the evidence rules of the framework.
type PositivisticPrinciple struct {
	Description string   `json:"description" yaml:"description"`
	Rules       []string `json:"rules" yaml:"rules"`
}

// IndicatorPrinciple is a principle expressed as lists of outcomes that
// always score positively or negatively.
type IndicatorPrinciple struct {
	Description        string   `json:"description" yaml:"description"`
	PositiveIndicators []string `json:"positiveIndicators" yaml:"positive_indicators"`
	NegativeIndicators []string `json:"negativeIndicators" yaml:"negative_indicators"`
}

// Principles groups the three normative pillars.
type Principles struct {
	Positivistic PositivisticPrinciple `json:"positivistic" yaml:"positivistic"`
	Humanistic   IndicatorPrinciple    `json:"humanistic" yaml:"humanistic"`
	Democratic   IndicatorPrinciple    `json:"democratic" yaml:"democratic"`
}

// EthicalFramework is the versioned normative policy attached to every
// perspective. There is exactly one value per process; see package ethics.
type EthicalFramework struct {
	Name                       string     `json:"name" yaml:"name"`
	Version                    string     `json:"version" yaml:"version"`
	ImmutablePrinciples        Principles `json:"immutablePrinciples" yaml:"immutable_principles"`
	ProhibitedPositiveFramings []string   `json:"prohibitedPositiveFramings" yaml:"prohibited_positive_framings"`
}
