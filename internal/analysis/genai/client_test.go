package genai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type stubCompleter struct {
	reply string
	err   error
	seen  string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.seen = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestAvailable(t *testing.T) {
	if NewClient(nil, 0).Available() {
		t.Error("nil completer should not be available")
	}
	if !NewClient(&stubCompleter{}, 0).Available() {
		t.Error("configured completer should be available")
	}
	if NewClient(nil, 0).Configured() {
		t.Error("nil completer should not be configured")
	}
}

func TestAssessStructureParsesFencedJSON(t *testing.T) {
	stub := &stubCompleter{reply: "```json\n" +
		`{"organizacao": 80, "clareza": 75, "secoes_essenciais": 90, "apresentacao": 70, "profissionalismo": 85, "pontos_fortes": ["clareza"], "areas_melhoria": ["formatação"], "score_geral": 80}` +
		"\n```"}
	c := NewClient(stub, time.Second)

	out := c.AssessStructure(context.Background(), "currículo")
	if out.Status != StatusOK {
		t.Fatalf("status = %q, want ok (raw %q)", out.Status, out.Raw)
	}
	p := out.Payload
	if p.Organization != 80 || p.Clarity != 75 || p.SectionCoverage != 90 ||
		p.Presentation != 70 || p.Professionalism != 85 || p.OverallScore != 80 {
		t.Errorf("payload = %+v", p)
	}
	if len(p.Strengths) != 1 || len(p.Weaknesses) != 1 {
		t.Errorf("lists = %+v / %+v", p.Strengths, p.Weaknesses)
	}
	if !strings.Contains(stub.seen, "currículo") {
		t.Error("prompt missing resume text")
	}
}

func TestGenerateFeedbackParsesAllLists(t *testing.T) {
	stub := &stubCompleter{reply: `{"pontos_fortes": ["go"], "pontos_fracos": ["curto"], "sugestoes": ["detalhar projetos"]}`}
	c := NewClient(stub, time.Second)

	out := c.GenerateFeedback(context.Background(), "texto", "")
	if out.Status != StatusOK {
		t.Fatalf("status = %q", out.Status)
	}
	if len(out.Payload.Strengths) != 1 || len(out.Payload.Weaknesses) != 1 || len(out.Payload.Suggestions) != 1 {
		t.Errorf("payload = %+v", out.Payload)
	}
	if strings.Contains(stub.seen, "Descrição da vaga") {
		t.Error("prompt should not mention a job description when none is given")
	}
}

func TestGenerateFeedbackUsesJobDescription(t *testing.T) {
	stub := &stubCompleter{reply: `{"pontos_fortes": [], "pontos_fracos": [], "sugestoes": []}`}
	c := NewClient(stub, time.Second)

	out := c.GenerateFeedback(context.Background(), "meu cv", "vaga kotlin")
	if out.Status != StatusOK {
		t.Fatalf("status = %q", out.Status)
	}
	if !strings.Contains(stub.seen, "vaga kotlin") || !strings.Contains(stub.seen, "meu cv") {
		t.Errorf("prompt = %q", stub.seen)
	}
}

func TestSuggestImprovementsCapsAtFive(t *testing.T) {
	items := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		items = append(items, `{"area": "geral", "sugestao": "melhorar", "prioridade": "alta"}`)
	}
	stub := &stubCompleter{reply: `{"sugestoes": [` + strings.Join(items, ",") + `]}`}
	c := NewClient(stub, time.Second)

	out := c.SuggestImprovements(context.Background(), "texto", "quantificação: score 0.4")
	if out.Status != StatusOK {
		t.Fatalf("status = %q", out.Status)
	}
	if len(out.Payload.Suggestions) != 5 {
		t.Errorf("suggestions = %d, want 5", len(out.Payload.Suggestions))
	}
	if !strings.Contains(stub.seen, "quantificação: score 0.4") {
		t.Error("prompt missing prior analysis summary")
	}
}

func TestCallMarksMalformed(t *testing.T) {
	stub := &stubCompleter{reply: "```json\n{\"pontos_fortes\": \"trunca"}
	c := NewClient(stub, time.Second)

	out := c.GenerateFeedback(context.Background(), "texto", "")
	if out.Status != StatusMalformed {
		t.Fatalf("status = %q, want malformed", out.Status)
	}
	if out.Raw == "" {
		t.Error("malformed result should keep the raw reply")
	}
}

func TestCallMarksUnavailableOnError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("boom")}
	c := NewClient(stub, time.Second)

	out := c.SuggestImprovements(context.Background(), "texto", "")
	if out.Status != StatusUnavailable {
		t.Fatalf("status = %q, want unavailable", out.Status)
	}
}

func TestCallUnavailableWithoutProvider(t *testing.T) {
	c := NewClient(nil, time.Second)
	out := c.MatchKeywords(context.Background(), "cv", "vaga")
	if out.Status != StatusUnavailable {
		t.Fatalf("status = %q, want unavailable", out.Status)
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct{ in, want string }{
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"{\"a\":1}", "{\"a\":1}"},
		{"  \n", ""},
	}
	for _, tc := range cases {
		if got := stripFences(tc.in); got != tc.want {
			t.Errorf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMatchKeywordsPromptCarriesBothTexts(t *testing.T) {
	stub := &stubCompleter{reply: `{"score": 0.5, "palavras_chave_encontradas": ["go"], "palavras_chave_faltantes": ["kafka"], "recomendacoes": ["citar kafka"]}`}
	c := NewClient(stub, time.Second)

	out := c.MatchKeywords(context.Background(), "meu cv", "vaga go")
	if out.Status != StatusOK {
		t.Fatalf("status = %q", out.Status)
	}
	if out.Payload.Score != 0.5 || len(out.Payload.Found) != 1 || len(out.Payload.Missing) != 1 || len(out.Payload.Recommendations) != 1 {
		t.Errorf("payload = %+v", out.Payload)
	}
	if !strings.Contains(stub.seen, "meu cv") || !strings.Contains(stub.seen, "vaga go") {
		t.Errorf("prompt = %q", stub.seen)
	}
}
