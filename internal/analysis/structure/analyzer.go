// Package structure inspects how a resume is organized: which canonical
// sections are present, formatting habits, and overall length.
package structure

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ErrEmptyText is returned when there is no content to analyze.
var ErrEmptyText = errors.New("structure: empty text")

// sectionKeywords maps each canonical resume section to the headings that
// identify it. Matching is case-insensitive on whole lines.
var sectionKeywords = map[string][]string{
	"contato":      {"contato", "telefone", "email", "e-mail", "endereço", "linkedin"},
	"resumo":       {"resumo", "objetivo", "perfil", "apresentação", "sobre"},
	"experiencia":  {"experiência", "experiencia", "profissional", "trabalho", "emprego", "carreira"},
	"educacao":     {"educação", "educacao", "formação", "formacao", "acadêmica", "academica", "escolaridade"},
	"habilidades":  {"habilidades", "competências", "competencias", "skills", "conhecimentos", "tecnologias"},
	"projetos":     {"projetos", "portfólio", "portfolio", "trabalhos realizados"},
	"idiomas":      {"idiomas", "línguas", "linguas", "languages"},
	"certificacao": {"certificações", "certificacoes", "certificados", "cursos"},
}

// Section records where a canonical section was detected.
type Section struct {
	Name       string  `json:"name"`
	Line       int     `json:"line"`
	Heading    string  `json:"heading"`
	Confidence float64 `json:"confidence"`
}

// Formatting aggregates character-level counters over the whole text.
type Formatting struct {
	UpperCase    int `json:"upperCase"`
	LowerCase    int `json:"lowerCase"`
	Digits       int `json:"digits"`
	Punctuation  int `json:"punctuation"`
	LineBreaks   int `json:"lineBreaks"`
	DoubleSpaces int `json:"doubleSpaces"`
}

// Length summarizes document size.
type Length struct {
	Characters        int     `json:"characters"`
	Words             int     `json:"words"`
	Lines             int     `json:"lines"`
	Paragraphs        int     `json:"paragraphs"`
	WordsPerLine      float64 `json:"wordsPerLine"`
	WordsPerParagraph float64 `json:"wordsPerParagraph"`
}

// Result is the full structural report. Score is in [0,100].
type Result struct {
	Sections     []Section  `json:"sections"`
	Missing      []string   `json:"missing"`
	Formatting   Formatting `json:"formatting"`
	Length       Length     `json:"length"`
	SectionScore float64    `json:"sectionScore"`
	FormatScore  float64    `json:"formatScore"`
	LengthScore  float64    `json:"lengthScore"`
	Score        float64    `json:"score"`
}

// sectionOrder fixes iteration order so results are deterministic.
var sectionOrder = []string{
	"contato", "resumo", "experiencia", "educacao",
	"habilidades", "projetos", "idiomas", "certificacao",
}

// Analyze builds the structural report for text. Empty or whitespace-only
// input is an error rather than a zero score.
func Analyze(text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyText
	}

	lines := strings.Split(text, "\n")
	res := Result{
		Sections: []Section{},
		Missing:  []string{},
	}

	detected := map[string]Section{}
	for i, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		if lower == "" {
			continue
		}
		for _, name := range sectionOrder {
			if _, ok := detected[name]; ok {
				continue
			}
			for _, kw := range sectionKeywords[name] {
				if strings.Contains(lower, kw) {
					detected[name] = Section{
						Name:       name,
						Line:       i + 1,
						Heading:    strings.TrimSpace(line),
						Confidence: 0.8,
					}
					break
				}
			}
		}
	}
	for _, name := range sectionOrder {
		if s, ok := detected[name]; ok {
			res.Sections = append(res.Sections, s)
		} else {
			res.Missing = append(res.Missing, name)
		}
	}

	res.Formatting = countFormatting(text)
	res.Length = measure(text, lines)

	res.SectionScore = round1(float64(len(res.Sections)) / float64(len(sectionOrder)) * 100)
	res.FormatScore = formatScore(res.Formatting)
	res.LengthScore = lengthScore(res.Length)
	res.Score = round1((res.SectionScore + res.FormatScore + res.LengthScore) / 3)
	return res, nil
}

func countFormatting(text string) Formatting {
	var f Formatting
	for _, r := range text {
		switch {
		case unicode.IsUpper(r):
			f.UpperCase++
		case unicode.IsLower(r):
			f.LowerCase++
		case unicode.IsDigit(r):
			f.Digits++
		case unicode.IsPunct(r):
			f.Punctuation++
		case r == '\n':
			f.LineBreaks++
		}
	}
	// A run of any length counts once, no matter how wide.
	f.DoubleSpaces = len(spaceRunRe.FindAllStringIndex(text, -1))
	return f
}

var spaceRunRe = regexp.MustCompile("  +")

func measure(text string, lines []string) Length {
	paragraphs := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}
	words := len(strings.Fields(text))
	return Length{
		Characters:        len([]rune(text)),
		Words:             words,
		Lines:             len(lines),
		Paragraphs:        paragraphs,
		WordsPerLine:      round1(float64(words) / math.Max(float64(len(lines)), 1)),
		WordsPerParagraph: round1(float64(words) / math.Max(float64(paragraphs), 1)),
	}
}

func formatScore(f Formatting) float64 {
	score := 100.0
	if f.DoubleSpaces > 5 {
		score -= 20
	}
	if f.LineBreaks < 10 {
		score -= 30
	}
	return clamp100(score)
}

func lengthScore(l Length) float64 {
	score := 100.0
	if l.Words < 100 {
		score -= 40
	}
	if l.Words > 1000 {
		score -= 20
	}
	return clamp100(score)
}

func clamp100(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
