// Package analysis coordinates the individual resume analyzers into
// comprehensive and quick results. Tool failures degrade the result
// instead of failing the request: the only error a caller sees is empty
// input.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"cvreview-backend/internal/analysis/features"
	"cvreview-backend/internal/analysis/genai"
	"cvreview-backend/internal/analysis/keywords"
	"cvreview-backend/internal/analysis/recommend"
	"cvreview-backend/internal/analysis/scoring"
	"cvreview-backend/internal/analysis/structure"
	"cvreview-backend/internal/shared/telemetry"
)

// ErrEmptyInput is returned when the resume text is blank.
var ErrEmptyInput = errors.New("analysis: empty resume text")

// Orchestrator wires the extractors, the local analyzers and the
// generative client together.
type Orchestrator struct {
	extractor *features.Extractor
	gen       *genai.Client
}

// New builds an orchestrator. gen may be a client around a nil completer;
// generative calls will then report unavailable.
func New(extractor *features.Extractor, gen *genai.Client) *Orchestrator {
	return &Orchestrator{extractor: extractor, gen: gen}
}

// AnalyzeComprehensive runs every requested analyzer concurrently and
// joins their results into one scored report. Individual tool failures
// surface inside the result, never as an error.
func (o *Orchestrator) AnalyzeComprehensive(ctx context.Context, in Input) (Result, error) {
	if strings.TrimSpace(in.Text) == "" {
		return Result{}, ErrEmptyInput
	}
	start := time.Now()

	var res Result
	withJD := strings.TrimSpace(in.JobDescription) != ""
	useGen := in.IncludeGenerative && o.gen.Available()

	// Feature extraction is cheap and feeds the improvement prompt, so
	// it runs before the concurrent stages.
	res.Quantification = o.extractor.DetectQuantification(in.Text)
	res.ActionVerbs = o.extractor.DetectActionVerbs(in.Text)

	g, gctx := errgroup.WithContext(ctx)
	if in.IncludeStructure {
		g.Go(func() error {
			st, err := structure.Analyze(in.Text)
			if err != nil {
				telemetry.Warn("analysis.structure_failed", map[string]any{"error": err.Error()})
				return nil
			}
			res.Structure = &st
			return nil
		})
	}
	if withJD {
		g.Go(func() error {
			kw := keywords.Match(in.Text, in.JobDescription)
			res.Keywords = &kw
			return nil
		})
	}
	if in.IncludeGenerative && !useGen {
		// Requested but no provider: every call is marked unavailable.
		res.Generative = &GenerativeResult{
			Structure:    genai.StructureAssessment{Status: genai.StatusUnavailable},
			Feedback:     genai.Feedback{Status: genai.StatusUnavailable},
			Keywords:     genai.KeywordInsight{Status: genai.StatusUnavailable},
			Improvements: genai.Improvements{Status: genai.StatusUnavailable},
		}
	}
	if useGen {
		gen := &GenerativeResult{}
		res.Generative = gen
		g.Go(func() error {
			gen.Structure = o.gen.AssessStructure(gctx, in.Text)
			return nil
		})
		prior := priorSummary(res.Quantification, res.ActionVerbs)
		g.Go(func() error {
			gen.Feedback = o.gen.GenerateFeedback(gctx, in.Text, in.JobDescription)
			return nil
		})
		g.Go(func() error {
			gen.Improvements = o.gen.SuggestImprovements(gctx, in.Text, prior)
			return nil
		})
		if withJD {
			g.Go(func() error {
				gen.Keywords = o.gen.MatchKeywords(gctx, in.Text, in.JobDescription)
				return nil
			})
		} else {
			gen.Keywords = genai.KeywordInsight{Status: genai.StatusUnavailable}
		}
	}
	// Workers only record results; the group is a join barrier.
	_ = g.Wait()

	var structScore, keywordScore *float64
	if res.Structure != nil {
		structScore = &res.Structure.Score
	}
	if res.Keywords != nil {
		keywordScore = &res.Keywords.Score
	}
	res.Scores = scoring.Aggregate(res.Quantification.Score, res.ActionVerbs.Score, structScore, keywordScore)
	res.Recommendations = recommend.Generate(res.Scores)
	res.Metadata = o.metadata(start, res.Quantification.Method, res.ActionVerbs.Method, generativeRan(res.Generative))
	return res, nil
}

// QuickSummary runs only the feature extractor and the two-component
// quick score.
func (o *Orchestrator) QuickSummary(ctx context.Context, text string) (Summary, error) {
	if strings.TrimSpace(text) == "" {
		return Summary{}, ErrEmptyInput
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	start := time.Now()

	quant := o.extractor.DetectQuantification(text)
	verbs := o.extractor.DetectActionVerbs(text)
	score := scoring.QuickScore(quant.Score, verbs.Score)
	return Summary{
		Score:          score,
		Level:          scoring.Level(score),
		Quantification: quant,
		ActionVerbs:    verbs,
		Metadata:       o.metadata(start, quant.Method, verbs.Method, false),
	}, nil
}

// HealthCheck reports which analysis tools are currently usable. The
// pattern path has no external dependency and is always up. Both flags
// are fixed at construction: a tool is configured when its collaborator
// was wired in, and available only if that wiring succeeded.
func (o *Orchestrator) HealthCheck() Health {
	tagger := o.extractor.TaggerAvailable()
	return Health{
		Status: "ok",
		Tools: map[string]ToolHealth{
			"tagger":     {Available: tagger, Configured: tagger},
			"pattern":    {Available: true, Configured: true},
			"generative": {Available: o.gen.Available(), Configured: o.gen.Configured()},
		},
	}
}

func (o *Orchestrator) metadata(start time.Time, quantMethod, verbMethod features.Method, generative bool) Metadata {
	return Metadata{
		ElapsedSeconds: time.Since(start).Seconds(),
		Timestamp:      time.Now().UTC(),
		ToolsUsed: ToolsUsed{
			Tagger:     quantMethod == features.MethodTagger || verbMethod == features.MethodTagger,
			Pattern:    quantMethod == features.MethodPattern || verbMethod == features.MethodPattern,
			Generative: generative,
		},
	}
}

// priorSummary condenses the local feature results for the improvement
// prompt.
func priorSummary(q features.Quantification, v features.ActionVerbs) string {
	return fmt.Sprintf(
		"quantificação: score %.3f (%d números, %d percentuais); verbos de ação: score %.3f (%d de %d verbos)",
		q.Score, len(q.Numbers), len(q.Percentages),
		v.Score, len(v.Action), len(v.AllVerbs),
	)
}

// generativeRan reports whether at least one generative call completed.
func generativeRan(gen *GenerativeResult) bool {
	if gen == nil {
		return false
	}
	for _, s := range []genai.Status{gen.Structure.Status, gen.Feedback.Status, gen.Keywords.Status, gen.Improvements.Status} {
		if s == genai.StatusOK || s == genai.StatusMalformed {
			return true
		}
	}
	return false
}
