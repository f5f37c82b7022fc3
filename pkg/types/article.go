// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Credibility is the tier a downstream assessor assigns to a source.
type Credibility string

const (
	CredibilityVerified     Credibility = "verified"
	CredibilityCredible     Credibility = "credible"
	CredibilityQuestionable Credibility = "questionable"
)

// Verification lists corroborating sources and any misinformation flags.
type Verification struct {
	Sources []string `json:"sources" yaml:"sources"`
	Flags   []string `json:"flags" yaml:"flags"`
}

// Article is one line of data/raw/<agent>/articles.jsonl. Explorers produce
// these outside this tool; the type defines the format the scout documents
// ask for.
type Article struct {
	Title        string       `json:"title" yaml:"title"`
	Source       string       `json:"source" yaml:"source"`
	URL          string       `json:"url" yaml:"url"`
	Date         string       `json:"date" yaml:"date"` // YYYY-MM-DD
	Content      string       `json:"content" yaml:"content"`
	Author       string       `json:"author" yaml:"author"`
	Type         string       `json:"type" yaml:"type"`
	Credibility  Credibility  `json:"credibility" yaml:"credibility"`
	Verification Verification `json:"verification" yaml:"verification"`
}
