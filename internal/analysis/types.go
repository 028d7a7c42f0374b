package analysis

import (
	"time"

	"cvreview-backend/internal/analysis/features"
	"cvreview-backend/internal/analysis/genai"
	"cvreview-backend/internal/analysis/keywords"
	"cvreview-backend/internal/analysis/recommend"
	"cvreview-backend/internal/analysis/scoring"
	"cvreview-backend/internal/analysis/structure"
)

// Input is a single analysis request.
type Input struct {
	Text              string `json:"text"`
	JobDescription    string `json:"jobDescription,omitempty"`
	IncludeStructure  bool   `json:"includeStructure"`
	IncludeGenerative bool   `json:"includeGenerative"`
}

// ToolsUsed records which analysis paths actually ran.
type ToolsUsed struct {
	Tagger     bool `json:"tagger"`
	Pattern    bool `json:"pattern"`
	Generative bool `json:"generative"`
}

// Metadata describes how a result was produced.
type Metadata struct {
	ElapsedSeconds float64   `json:"elapsedSeconds"`
	Timestamp      time.Time `json:"timestamp"`
	ToolsUsed      ToolsUsed `json:"toolsUsed"`
}

// GenerativeResult bundles the four model assessments. Each carries its
// own status so a partial failure never hides the rest.
type GenerativeResult struct {
	Structure    genai.StructureAssessment `json:"structure"`
	Feedback     genai.Feedback            `json:"feedback"`
	Keywords     genai.KeywordInsight      `json:"keywords"`
	Improvements genai.Improvements        `json:"improvements"`
}

// Result is the full comprehensive analysis.
type Result struct {
	Quantification  features.Quantification    `json:"quantification"`
	ActionVerbs     features.ActionVerbs       `json:"actionVerbs"`
	Structure       *structure.Result          `json:"structure,omitempty"`
	Keywords        *keywords.Result           `json:"keywords,omitempty"`
	Generative      *GenerativeResult          `json:"generative,omitempty"`
	Scores          scoring.Breakdown          `json:"scores"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Metadata        Metadata                   `json:"metadata"`
}

// Summary is the lightweight quick-check result.
type Summary struct {
	Score          float64                 `json:"score"`
	Level          string                  `json:"level"`
	Quantification features.Quantification `json:"quantification"`
	ActionVerbs    features.ActionVerbs    `json:"actionVerbs"`
	Metadata       Metadata                `json:"metadata"`
}

// ToolHealth is one tool's state: configured says its collaborator was
// wired in, available says the wiring actually works.
type ToolHealth struct {
	Available  bool `json:"available"`
	Configured bool `json:"configured"`
}

// Health reports per-tool availability.
type Health struct {
	Status string                `json:"status"`
	Tools  map[string]ToolHealth `json:"tools"`
}
