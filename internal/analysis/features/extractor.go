// Package features detects quantified achievements and action-verb usage in
// résumé text. It prefers a linguistic tagger when one is available and falls
// back to pattern matching otherwise; a tagger failure on a single call
// degrades that call only.
package features

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"cvreview-backend/internal/nlptag"
	"cvreview-backend/internal/shared/telemetry"
)

// Method records which analysis path produced a result.
type Method string

const (
	MethodTagger  Method = "tagger"
	MethodPattern Method = "pattern"
	MethodNone    Method = "none"
)

// Quantification holds detected numeric evidence and its score.
type Quantification struct {
	Numbers     []string `json:"numbers"`
	Percentages []string `json:"percentages"`
	Currency    []string `json:"currency"`
	Quantities  []string `json:"quantities"`
	Ranges      []string `json:"ranges"`
	Ratios      []string `json:"ratios"`
	Years       []string `json:"years"`
	Score       float64  `json:"score"`
	Method      Method   `json:"method"`
}

// ActionVerbs holds detected verbs and their score.
type ActionVerbs struct {
	AllVerbs  []string            `json:"allVerbs"`
	Action    []string            `json:"actionVerbs"`
	VerbForms map[string][]string `json:"verbForms,omitempty"`
	Score     float64             `json:"score"`
	Method    Method              `json:"method"`
}

// Extractor runs quantification and action-verb detection.
type Extractor struct {
	tagger nlptag.Tagger
}

// NewExtractor constructs an Extractor. A nil tagger selects the pattern
// fallback for every call.
func NewExtractor(tagger nlptag.Tagger) *Extractor {
	return &Extractor{tagger: tagger}
}

// TaggerAvailable reports whether the linguistic tagger is wired.
func (e *Extractor) TaggerAvailable() bool {
	return e != nil && e.tagger != nil
}

var (
	numberRe     = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
	percentRe    = regexp.MustCompile(`\b\d+(?:\.\d+)?%`)
	currencyRe   = regexp.MustCompile(`(?:R\$|\$|€|USD|EUR)\s*\d+(?:[.,]\d{3})*(?:[.,]\d{2})?`)
	rangeRe      = regexp.MustCompile(`\d+\s*[-–]\s*\d+`)
	ratioRe      = regexp.MustCompile(`\d+:\d+`)
	yearRe       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	quantityRe   = regexp.MustCompile(`\b(\d+)\s+([a-zA-ZÀ-ÿ]+)\b`)
	verbEndingRe = regexp.MustCompile(`\b[\p{L}]{3,}(?:ei|ou|iu|amos|aram|eram|ava|avam|ando|endo|indo)\b`)
)

// DetectQuantification finds numeric evidence in text.
func (e *Extractor) DetectQuantification(text string) Quantification {
	if strings.TrimSpace(text) == "" {
		return Quantification{Method: MethodNone}
	}

	if e.TaggerAvailable() {
		result, err := e.quantificationWithTagger(text)
		if err == nil {
			return result
		}
		telemetry.Warn("features.tagger_fallback", map[string]any{
			"analysis": "quantification",
			"error":    err.Error(),
		})
	}
	return e.quantificationWithPatterns(text)
}

func (e *Extractor) quantificationWithTagger(text string) (Quantification, error) {
	tokens, err := e.tagger.Tag(text)
	if err != nil {
		return Quantification{}, fmt.Errorf("tag: %w", err)
	}

	q := Quantification{Method: MethodTagger}
	for i, tok := range tokens {
		if ratioRe.MatchString(tok.Text) {
			q.Ratios = append(q.Ratios, tok.Text)
			continue
		}
		if rangeRe.MatchString(tok.Text) {
			q.Ranges = append(q.Ranges, tok.Text)
			continue
		}
		if !tok.LikeNum {
			if strings.ContainsAny(tok.Text, "$€") {
				q.Currency = append(q.Currency, tok.Text)
			}
			continue
		}

		switch {
		case strings.Contains(tok.Text, "%"):
			q.Percentages = append(q.Percentages, tok.Text)
		case hasCurrencyMarker(tok.Text) || prevIsCurrencyMarker(tokens, i):
			q.Currency = append(q.Currency, tok.Text)
		default:
			q.Numbers = append(q.Numbers, tok.Text)
		}

		if year, ok := asYear(tok.Text); ok {
			q.Years = append(q.Years, year)
		}
		if i+1 < len(tokens) && tokens[i+1].IsAlpha {
			q.Quantities = append(q.Quantities, tok.Text+" "+tokens[i+1].Text)
		}
		// Separated range/ratio written as three tokens: "10 - 20", "4 : 1",
		// "10 a 20".
		if i+2 < len(tokens) && tokens[i+2].LikeNum {
			switch tokens[i+1].Text {
			case "-", "–", "a", "até":
				q.Ranges = append(q.Ranges, tok.Text+"-"+tokens[i+2].Text)
			case ":":
				q.Ratios = append(q.Ratios, tok.Text+":"+tokens[i+2].Text)
			}
		}
	}

	q.Score = quantificationScore(
		len(q.Numbers), len(q.Percentages), len(q.Currency),
		len(q.Quantities), len(q.Ranges), len(q.Ratios), len(q.Years),
	)
	return q, nil
}

func (e *Extractor) quantificationWithPatterns(text string) Quantification {
	q := Quantification{
		Numbers:     numberRe.FindAllString(text, -1),
		Percentages: percentRe.FindAllString(text, -1),
		Currency:    currencyRe.FindAllString(text, -1),
		Ranges:      rangeRe.FindAllString(text, -1),
		Ratios:      ratioRe.FindAllString(text, -1),
		Years:       yearRe.FindAllString(text, -1),
		Method:      MethodPattern,
	}
	for _, m := range quantityRe.FindAllStringSubmatch(text, -1) {
		q.Quantities = append(q.Quantities, m[1]+" "+m[2])
	}

	q.Score = quantificationScore(
		len(q.Numbers), len(q.Percentages), len(q.Currency),
		len(q.Quantities), len(q.Ranges), len(q.Ratios), len(q.Years),
	)
	return q
}

// DetectActionVerbs finds verbs and classifies the curated action subset.
func (e *Extractor) DetectActionVerbs(text string) ActionVerbs {
	if strings.TrimSpace(text) == "" {
		return ActionVerbs{Method: MethodNone}
	}

	if e.TaggerAvailable() {
		result, err := e.verbsWithTagger(text)
		if err == nil {
			return result
		}
		telemetry.Warn("features.tagger_fallback", map[string]any{
			"analysis": "action_verbs",
			"error":    err.Error(),
		})
	}
	return e.verbsWithPatterns(text)
}

func (e *Extractor) verbsWithTagger(text string) (ActionVerbs, error) {
	tokens, err := e.tagger.Tag(text)
	if err != nil {
		return ActionVerbs{}, fmt.Errorf("tag: %w", err)
	}

	v := ActionVerbs{
		VerbForms: make(map[string][]string),
		Method:    MethodTagger,
	}
	for _, tok := range tokens {
		if tok.POS != nlptag.POSVerb {
			continue
		}
		lemma := strings.ToLower(tok.Lemma)
		v.AllVerbs = append(v.AllVerbs, tok.Text)
		if actionLemmas[lemma] {
			v.Action = append(v.Action, tok.Text)
		}
		v.VerbForms[lemma] = append(v.VerbForms[lemma], tok.Text)
	}
	if len(v.VerbForms) == 0 {
		v.VerbForms = nil
	}

	v.Score = verbScore(len(v.Action), len(v.AllVerbs))
	return v, nil
}

func (e *Extractor) verbsWithPatterns(text string) ActionVerbs {
	lower := strings.ToLower(text)
	v := ActionVerbs{Method: MethodPattern}

	for _, form := range actionForms {
		if strings.Contains(lower, form) {
			v.Action = append(v.Action, form)
		}
	}

	seen := make(map[string]bool)
	for _, match := range verbEndingRe.FindAllString(lower, -1) {
		if !seen[match] {
			seen[match] = true
			v.AllVerbs = append(v.AllVerbs, match)
		}
	}
	for _, form := range v.Action {
		if !seen[form] {
			seen[form] = true
			v.AllVerbs = append(v.AllVerbs, form)
		}
	}

	v.Score = verbScore(len(v.Action), len(v.AllVerbs))
	return v
}

// quantificationScore combines raw hit volume with a diversity bonus for each
// evidence category that matched at least once.
func quantificationScore(counts ...int) float64 {
	total := 0
	categories := 0
	for _, c := range counts {
		total += c
		if c > 0 {
			categories++
		}
	}
	base := math.Min(float64(total)*0.15, 0.8)
	score := math.Min(base+float64(categories)*0.1, 1.0)
	return round3(score)
}

// verbScore is the action-verb ratio plus a diversity bonus for overall verb
// usage.
func verbScore(actionCount, totalCount int) float64 {
	if totalCount == 0 {
		return 0
	}
	ratio := float64(actionCount) / float64(totalCount)
	bonus := math.Min(float64(totalCount)*0.05, 0.3)
	return round3(math.Min(ratio+bonus, 1.0))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func hasCurrencyMarker(text string) bool {
	return strings.ContainsAny(text, "$€") || strings.Contains(text, "USD") || strings.Contains(text, "EUR")
}

func prevIsCurrencyMarker(tokens []nlptag.Token, i int) bool {
	if i == 0 {
		return false
	}
	return hasCurrencyMarker(tokens[i-1].Text)
}

func asYear(text string) (string, bool) {
	if len(text) != 4 {
		return "", false
	}
	year, err := strconv.Atoi(text)
	if err != nil || year < 1900 || year > 2030 {
		return "", false
	}
	return text, true
}
