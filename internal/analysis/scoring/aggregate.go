// Package scoring combines the individual analysis scores into the
// composite resume score and its qualitative level.
package scoring

import (
	"math"

	"cvreview-backend/internal/shared/telemetry"
)

// Composite weights. They sum to 1; absent components contribute zero
// rather than redistributing weight.
const (
	WeightQuantification = 0.25
	WeightVerbs          = 0.20
	WeightStructure      = 0.30
	WeightKeywords       = 0.25
)

// Breakdown carries the four sub-scores and the weighted overall score,
// all on a 0..100 scale.
type Breakdown struct {
	Quantification float64 `json:"quantification"`
	ActionVerbs    float64 `json:"actionVerbs"`
	Structure      float64 `json:"structure"`
	Keywords       float64 `json:"keywords"`
	Overall        float64 `json:"overall"`
	Level          string  `json:"level"`
}

// Aggregate builds the composite breakdown. quant and verbs arrive in
// [0,1] from the feature extractor; structureScore is already 0..100 and
// keywordScore is in [0,1]. Nil pointers mean the component did not run.
func Aggregate(quant, verbs float64, structureScore, keywordScore *float64) Breakdown {
	b := Breakdown{
		Quantification: coerce("quantification", quant*100),
		ActionVerbs:    coerce("actionVerbs", verbs*100),
	}
	if structureScore != nil {
		b.Structure = coerce("structure", *structureScore)
	}
	if keywordScore != nil {
		b.Keywords = coerce("keywords", *keywordScore*100)
	}

	overall := b.Quantification*WeightQuantification +
		b.ActionVerbs*WeightVerbs +
		b.Structure*WeightStructure +
		b.Keywords*WeightKeywords
	b.Overall = round1(overall)
	b.Level = Level(b.Overall)
	return b
}

// QuickScore is the lightweight two-component score used by the summary
// endpoint: 60% quantification, 40% action verbs, on 0..100.
func QuickScore(quant, verbs float64) float64 {
	q := coerce("quantification", quant*100)
	v := coerce("actionVerbs", verbs*100)
	return round1(q*0.6 + v*0.4)
}

// Level maps a 0..100 score to its qualitative band.
func Level(score float64) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 80:
		return "very_good"
	case score >= 70:
		return "good"
	case score >= 60:
		return "fair"
	case score >= 50:
		return "below_average"
	default:
		return "needs_improvement"
	}
}

// coerce clamps a sub-score to [0,100] and replaces NaN/Inf with zero,
// logging when it had to intervene.
func coerce(name string, v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		telemetry.Warn("scoring.coerced", map[string]any{"component": name, "value": "non-finite"})
		return 0
	}
	if v < 0 {
		telemetry.Warn("scoring.coerced", map[string]any{"component": name, "value": v})
		return 0
	}
	if v > 100 {
		telemetry.Warn("scoring.coerced", map[string]any{"component": name, "value": v})
		return 100
	}
	return round1(v)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
