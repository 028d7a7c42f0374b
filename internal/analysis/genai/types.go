package genai

// Status marks how a generative call ended.
type Status string

const (
	StatusOK          Status = "ok"
	StatusUnavailable Status = "unavailable"
	StatusMalformed   Status = "malformed"
)

// StructureAssessment is the model's view of the document structure.
type StructureAssessment struct {
	Status  Status                  `json:"status"`
	Payload StructureAssessmentBody `json:"payload,omitempty"`
	Raw     string                  `json:"raw,omitempty"`
}

// StructureAssessmentBody carries one dimension score per aspect, each
// in [0,100].
type StructureAssessmentBody struct {
	Organization    float64  `json:"organizacao"`
	Clarity         float64  `json:"clareza"`
	SectionCoverage float64  `json:"secoes_essenciais"`
	Presentation    float64  `json:"apresentacao"`
	Professionalism float64  `json:"profissionalismo"`
	Strengths       []string `json:"pontos_fortes"`
	Weaknesses      []string `json:"areas_melhoria"`
	OverallScore    float64  `json:"score_geral"`
}

// Feedback is the model's qualitative review.
type Feedback struct {
	Status  Status       `json:"status"`
	Payload FeedbackBody `json:"payload,omitempty"`
	Raw     string       `json:"raw,omitempty"`
}

type FeedbackBody struct {
	Strengths   []string `json:"pontos_fortes"`
	Weaknesses  []string `json:"pontos_fracos"`
	Suggestions []string `json:"sugestoes"`
}

// KeywordInsight is the model's keyword comparison against the job
// description.
type KeywordInsight struct {
	Status  Status             `json:"status"`
	Payload KeywordInsightBody `json:"payload,omitempty"`
	Raw     string             `json:"raw,omitempty"`
}

// KeywordInsightBody mirrors the local keyword matcher: Score is in
// [0,1].
type KeywordInsightBody struct {
	Score           float64  `json:"score"`
	Found           []string `json:"palavras_chave_encontradas"`
	Missing         []string `json:"palavras_chave_faltantes"`
	Recommendations []string `json:"recomendacoes"`
}

// Improvements is the model's prioritized suggestion list, capped at
// five entries.
type Improvements struct {
	Status  Status           `json:"status"`
	Payload ImprovementsBody `json:"payload,omitempty"`
	Raw     string           `json:"raw,omitempty"`
}

type ImprovementsBody struct {
	Suggestions []Suggestion `json:"sugestoes"`
}

type Suggestion struct {
	Area       string `json:"area"`
	Suggestion string `json:"sugestao"`
	Priority   string `json:"prioridade"`
}
