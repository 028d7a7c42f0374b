// Package recommend derives deterministic improvement suggestions from a
// score breakdown.
package recommend

import "cvreview-backend/internal/analysis/scoring"

// Recommendation is a single actionable suggestion for the candidate.
type Recommendation struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Action   string `json:"action"`
	Order    int    `json:"order"`
}

const maxRecommendations = 5

type rule struct {
	applies func(scoring.Breakdown) bool
	rec     Recommendation
}

// rules is evaluated in order; earlier rules outrank later ones when the
// cap is hit.
var rules = []rule{
	{
		applies: func(b scoring.Breakdown) bool { return b.Quantification < 60 },
		rec: Recommendation{
			ID:       "QUANT_LOW",
			Category: "metrics",
			Severity: "warning",
			Message:  "Seu currículo tem poucos resultados quantificados.",
			Action:   "Adicione números, percentuais e valores aos seus resultados (ex: \"aumentei as vendas em 30%\").",
		},
	},
	{
		applies: func(b scoring.Breakdown) bool { return b.ActionVerbs < 60 },
		rec: Recommendation{
			ID:       "VERBS_LOW",
			Category: "language",
			Severity: "warning",
			Message:  "Poucos verbos de ação foram encontrados nas descrições de experiência.",
			Action:   "Comece cada realização com um verbo de ação forte (desenvolvi, liderei, otimizei, implementei).",
		},
	},
	{
		applies: func(b scoring.Breakdown) bool { return b.Structure < 70 },
		rec: Recommendation{
			ID:       "STRUCTURE_LOW",
			Category: "structure",
			Severity: "warning",
			Message:  "A organização do documento pode ser melhorada.",
			Action:   "Separe o currículo em seções claras: contato, resumo, experiência, formação, habilidades e idiomas.",
		},
	},
	{
		applies: func(b scoring.Breakdown) bool { return b.Keywords < 70 },
		rec: Recommendation{
			ID:       "KEYWORDS_LOW",
			Category: "keywords",
			Severity: "warning",
			Message:  "O currículo cobre poucas palavras-chave da vaga.",
			Action:   "Incorpore os termos da descrição da vaga nas seções de habilidades e experiência.",
		},
	},
	{
		applies: func(b scoring.Breakdown) bool { return b.Overall < 70 },
		rec: Recommendation{
			ID:       "OVERALL_LOW",
			Category: "general",
			Severity: "critical",
			Message:  "A pontuação geral indica espaço para melhorias significativas.",
			Action:   "Faça uma revisão geral priorizando resultados mensuráveis e alinhamento com a vaga desejada.",
		},
	},
}

// affirmation is returned when no rule fires.
var affirmation = Recommendation{
	ID:       "WELL_DONE",
	Category: "general",
	Severity: "info",
	Message:  "Seu currículo está bem estruturado e quantificado.",
	Action:   "Continue mantendo os resultados atualizados e adaptando as palavras-chave a cada vaga.",
	Order:    1,
}

// Generate evaluates the rule table against the breakdown and returns at
// most five recommendations, ordered by rule priority. A breakdown that
// trips no rule gets a single positive affirmation.
func Generate(b scoring.Breakdown) []Recommendation {
	out := make([]Recommendation, 0, maxRecommendations)
	for _, r := range rules {
		if !r.applies(b) {
			continue
		}
		rec := r.rec
		rec.Order = len(out) + 1
		out = append(out, rec)
		if len(out) == maxRecommendations {
			break
		}
	}
	if len(out) == 0 {
		return []Recommendation{affirmation}
	}
	return out
}
