// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// InvestigationType classifies the time orientation of an investigation.
type InvestigationType string

const (
	TypeCurrent    InvestigationType = "current"
	TypeHistorical InvestigationType = "historical"
	TypeMixed      InvestigationType = "mixed"
)

// Investigation holds the topic-level parameters of a project.
type Investigation struct {
	// Topic is the subject under investigation (e.g. "European migration policy").
	Topic string `json:"topic" yaml:"topic"`

	// Purpose states what the investigation should establish.
	Purpose string `json:"purpose" yaml:"purpose"`

	// Type is current, historical, or mixed. Unrecognized answers resolve to mixed.
	Type InvestigationType `json:"type" yaml:"type"`

	// Keywords are search terms, split from a comma-separated answer.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// GeographicScope bounds where sources should be relevant (e.g. "Global").
	GeographicScope string `json:"geographicScope" yaml:"geographic_scope"`
}

// DateRange is a free-form period boundary pair. Values are not parsed;
// "2023-01-01", "6 months ago" and "now" are all accepted.
type DateRange struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// TargetArticles sets how many sources an explorer should collect.
type TargetArticles struct {
	Min   int `json:"min" yaml:"min"`
	Ideal int `json:"ideal" yaml:"ideal"`
}

// Fixed collection targets for every explorer agent.
const (
	DefaultMinArticles   = 10
	DefaultIdealArticles = 25
)

// ExplorerAgent is one time-period slice of the investigation. Each agent
// gets its own instruction document and raw-data directory keyed by Name.
type ExplorerAgent struct {
	// ID is "scout-" followed by a slug of Name.
	ID string `json:"id" yaml:"id"`

	// Name labels the period and is used verbatim as a path segment.
	Name string `json:"name" yaml:"name"`

	DateRange   DateRange `json:"dateRange" yaml:"date_range"`
	Description string    `json:"description" yaml:"description"`

	TargetArticles TargetArticles `json:"targetArticles" yaml:"target_articles"`
}

// Agents groups the agent declarations of a project.
type Agents struct {
	Explorers []ExplorerAgent `json:"explorers" yaml:"explorers"`
}

// PerspectiveType identifies the evaluative lens applied during analysis.
type PerspectiveType string

const (
	PerspectiveGeneralCitizen PerspectiveType = "general-citizen"
	PerspectiveSpecificGroup  PerspectiveType = "specific-group"
	PerspectiveEnvironmental  PerspectiveType = "environmental"
	PerspectiveDemocratic     PerspectiveType = "democratic"
	PerspectiveCustom         PerspectiveType = "custom"
)

// Perspective describes whose welfare and which values guide analysis.
// EthicalFramework always points at the shared process-wide policy.
type Perspective struct {
	Type        PerspectiveType `json:"type" yaml:"type"`
	Description string          `json:"description" yaml:"description"`
	Focus       string          `json:"focus" yaml:"focus"`

	EthicalFramework   *EthicalFramework `json:"ethicalFramework" yaml:"ethical_framework"`
	MandatoryNegatives []string          `json:"mandatoryNegatives" yaml:"mandatory_negatives"`
}

// ValidationLevel is the rigor tier for source validation.
type ValidationLevel string

const (
	LevelStandard ValidationLevel = "standard"
	LevelHigh     ValidationLevel = "high"
	LevelMaximum  ValidationLevel = "maximum"
)

// ValidationRequirements are derived entirely from a ValidationLevel.
// See RequirementsFor.
type ValidationRequirements struct {
	MinimumSourcesPerClaim      int  `json:"minimumSourcesPerClaim" yaml:"minimum_sources_per_claim"`
	RequirePrimarySources       bool `json:"requirePrimarySources" yaml:"require_primary_sources"`
	CrossReferenceControversial bool `json:"crossReferenceControversial" yaml:"cross_reference_controversial"`
	FlagBiasedLanguage          bool `json:"flagBiasedLanguage" yaml:"flag_biased_language"`
	DetectPropaganda            bool `json:"detectPropaganda" yaml:"detect_propaganda"`
}

// RequirementsFor returns the requirements implied by level. Maximum needs
// three sources per claim, everything else two. Only standard relaxes the
// primary-source and biased-language checks, and only maximum enables
// propaganda detection.
func RequirementsFor(level ValidationLevel) ValidationRequirements {
	minSources := 2
	if level == LevelMaximum {
		minSources = 3
	}
	return ValidationRequirements{
		MinimumSourcesPerClaim:      minSources,
		RequirePrimarySources:       level != LevelStandard,
		CrossReferenceControversial: true,
		FlagBiasedLanguage:          level != LevelStandard,
		DetectPropaganda:            level == LevelMaximum,
	}
}

// DefaultCredibleSources is the fixed set of sources explorers prioritize.
var DefaultCredibleSources = []string{
	"Reuters", "Associated Press", "BBC", "The Guardian",
	"Financial Times", "The New York Times", "Le Monde",
	"EU institutions", "UN agencies", "Academic journals",
	"Government official sources", "NGO reports",
}

// ValidationPolicy configures source credibility checks.
type ValidationPolicy struct {
	Level           ValidationLevel        `json:"level" yaml:"level"`
	CredibleSources []string               `json:"credibleSources" yaml:"credible_sources"`
	FlaggedSources  []string               `json:"flaggedSources" yaml:"flagged_sources"`
	Requirements    ValidationRequirements `json:"requirements" yaml:"requirements"`
}

// NewValidationPolicy builds a policy for level with the default credible
// sources and the given flagged sources. A nil flagged list becomes empty so
// it serializes as [].
func NewValidationPolicy(level ValidationLevel, flagged []string) ValidationPolicy {
	if flagged == nil {
		flagged = []string{}
	}
	credible := make([]string, len(DefaultCredibleSources))
	copy(credible, DefaultCredibleSources)
	return ValidationPolicy{
		Level:           level,
		CredibleSources: credible,
		FlaggedSources:  flagged,
		Requirements:    RequirementsFor(level),
	}
}

// DefaultExportFormats lists the report formats every project declares.
var DefaultExportFormats = []string{"html", "markdown", "json"}

// OutputSpec locates the generated project.
type OutputSpec struct {
	// ProjectName is the directory name of the project.
	ProjectName string `json:"projectName" yaml:"project_name"`

	// ProjectRoot is the absolute path of the project directory.
	ProjectRoot string `json:"projectRoot" yaml:"project_root"`

	GenerateDashboard bool     `json:"generateDashboard" yaml:"generate_dashboard"`
	GenerateReport    bool     `json:"generateReport" yaml:"generate_report"`
	ExportFormats     []string `json:"exportFormats" yaml:"export_formats"`
}

// Config is the complete configuration of one investigation project. It is
// assembled by the collector and read, never modified, by the generator.
type Config struct {
	Investigation Investigation    `json:"investigation" yaml:"investigation"`
	Agents        Agents           `json:"agents" yaml:"agents"`
	Perspective   Perspective      `json:"perspective" yaml:"perspective"`
	Validation    ValidationPolicy `json:"validation" yaml:"validation"`
	Output        OutputSpec       `json:"output" yaml:"output"`
}

// Settings holds the CLI's own configuration, read through viper from
// investigator.yaml and INVESTIGATOR_* environment variables.
type Settings struct {
	// OutputDir is the directory new projects are created in (default: cwd).
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// HistoryDB is the SQLite database recording generated projects.
	HistoryDB string `json:"history_db" yaml:"history_db" mapstructure:"history_db"`

	// LogLevel is the minimum level written to stderr (debug, info, warn, error).
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}
