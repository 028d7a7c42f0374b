// Package genai produces qualitative resume feedback through a language
// model. Every call degrades to a marked result instead of failing: a
// missing provider yields unavailable, an unparseable reply yields
// malformed with the raw text attached.
package genai

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"cvreview-backend/internal/llm"
	"cvreview-backend/internal/shared/telemetry"
)

var (
	//go:embed prompts/structure.txt
	structurePrompt string
	//go:embed prompts/feedback.txt
	feedbackPrompt string
	//go:embed prompts/feedback_jd.txt
	feedbackJDPrompt string
	//go:embed prompts/keywords.txt
	keywordsPrompt string
	//go:embed prompts/improvements.txt
	improvementsPrompt string
)

const (
	defaultCallTimeout = 60 * time.Second

	// maxSuggestions bounds the improvement list regardless of how
	// talkative the model is.
	maxSuggestions = 5
)

// Client runs the four generative assessments against a completer.
type Client struct {
	completer llm.Completer
	timeout   time.Duration
}

// NewClient wraps a completer. A nil completer produces a client whose
// calls all report unavailable.
func NewClient(completer llm.Completer, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &Client{completer: completer, timeout: timeout}
}

// Available reports whether a provider was configured. It is fixed at
// construction time.
func (c *Client) Available() bool {
	return c != nil && c.completer != nil
}

// Configured reports whether provider settings were supplied at
// construction. Availability never flips after that, so a configured
// client is also available.
func (c *Client) Configured() bool {
	return c.Available()
}

// AssessStructure asks the model for a structural assessment of the resume.
func (c *Client) AssessStructure(ctx context.Context, cvText string) StructureAssessment {
	var out StructureAssessment
	out.Status, out.Raw = c.call(ctx, "structure", fmt.Sprintf(structurePrompt, cvText), &out.Payload)
	return out
}

// GenerateFeedback asks the model for an overall qualitative review.
// When a job description is given the review is framed against it.
func (c *Client) GenerateFeedback(ctx context.Context, cvText, jobDescription string) Feedback {
	var out Feedback
	prompt := fmt.Sprintf(feedbackPrompt, cvText)
	if jobDescription != "" {
		prompt = fmt.Sprintf(feedbackJDPrompt, jobDescription, cvText)
	}
	out.Status, out.Raw = c.call(ctx, "feedback", prompt, &out.Payload)
	return out
}

// MatchKeywords asks the model to compare the resume against the job
// description.
func (c *Client) MatchKeywords(ctx context.Context, cvText, jobDescription string) KeywordInsight {
	var out KeywordInsight
	out.Status, out.Raw = c.call(ctx, "keywords", fmt.Sprintf(keywordsPrompt, cvText, jobDescription), &out.Payload)
	return out
}

// SuggestImprovements asks the model for prioritized improvement ideas
// grounded on the earlier analysis results. At most five suggestions are
// kept.
func (c *Client) SuggestImprovements(ctx context.Context, cvText, priorAnalysis string) Improvements {
	var out Improvements
	out.Status, out.Raw = c.call(ctx, "improvements", fmt.Sprintf(improvementsPrompt, priorAnalysis, cvText), &out.Payload)
	if len(out.Payload.Suggestions) > maxSuggestions {
		out.Payload.Suggestions = out.Payload.Suggestions[:maxSuggestions]
	}
	return out
}

// call runs one completion with the per-call timeout and decodes the
// reply into payload. It never returns an error: failures map onto the
// unavailable and malformed statuses.
func (c *Client) call(ctx context.Context, name, prompt string, payload any) (Status, string) {
	if !c.Available() {
		return StatusUnavailable, ""
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.completer.Complete(ctx, prompt)
	if err != nil {
		telemetry.Warn("genai.call_failed", map[string]any{"call": name, "error": err.Error()})
		return StatusUnavailable, ""
	}
	if err := decodeJSON(raw, payload); err != nil {
		telemetry.Warn("genai.malformed_reply", map[string]any{"call": name, "error": err.Error()})
		return StatusMalformed, raw
	}
	return StatusOK, ""
}
