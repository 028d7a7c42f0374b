// Package nlptag provides a lightweight linguistic tagger for Portuguese
// résumé text. It produces tokens with lemma and part-of-speech information
// comparable to what a full NLP model would emit, backed by a built-in verb
// lexicon and suffix heuristics.
package nlptag

import (
	"errors"
	"strings"
	"unicode"
)

// Token is a single annotated token.
type Token struct {
	Text    string
	Lemma   string
	POS     string
	LikeNum bool
	IsAlpha bool
}

// Part-of-speech tags emitted by the tagger.
const (
	POSVerb  = "VERB"
	POSNum   = "NUM"
	POSOther = "X"
)

// Tagger annotates raw text with token-level linguistic information.
type Tagger interface {
	Tag(text string) ([]Token, error)
}

// RuleTagger implements Tagger with a verb lexicon and suffix rules.
type RuleTagger struct {
	forms map[string]string
}

// NewRuleTagger builds a RuleTagger from the embedded lexicon.
func NewRuleTagger() (*RuleTagger, error) {
	if len(verbForms) == 0 {
		return nil, errors.New("nlptag: verb lexicon is empty")
	}
	return &RuleTagger{forms: verbForms}, nil
}

// Tag splits text into tokens and annotates each one.
func (t *RuleTagger) Tag(text string) ([]Token, error) {
	raw := splitTokens(text)
	out := make([]Token, 0, len(raw))
	for _, word := range raw {
		out = append(out, t.classify(word))
	}
	return out, nil
}

func (t *RuleTagger) classify(word string) Token {
	tok := Token{
		Text:    word,
		LikeNum: looksNumeric(word),
		IsAlpha: isAlpha(word),
	}
	lower := strings.ToLower(word)

	switch {
	case tok.LikeNum:
		tok.POS = POSNum
		tok.Lemma = lower
	case t.isKnownVerb(lower):
		tok.POS = POSVerb
		tok.Lemma = t.lemma(lower)
	case looksLikeVerb(lower):
		tok.POS = POSVerb
		tok.Lemma = heuristicLemma(lower)
	default:
		tok.POS = POSOther
		tok.Lemma = lower
	}
	return tok
}

func (t *RuleTagger) isKnownVerb(lower string) bool {
	_, ok := t.forms[lower]
	return ok
}

func (t *RuleTagger) lemma(lower string) string {
	if lemma, ok := t.forms[lower]; ok {
		return lemma
	}
	return lower
}

// splitTokens breaks text on whitespace, then peels leading and trailing
// punctuation while keeping numeric decorations ("%", "R$", "1.000,00")
// attached to their token.
func splitTokens(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		trimmed := trimPunct(f)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func trimPunct(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		if r == '%' || r == '$' || r == '€' {
			return false
		}
		return unicode.IsPunct(r) && r != '-'
	})
}

func looksNumeric(word string) bool {
	stripped := strings.TrimLeft(word, "R$€ ")
	stripped = strings.TrimRight(stripped, "%")
	if stripped == "" {
		return false
	}
	hasDigit := false
	for _, r := range stripped {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == '.' || r == ',' || r == ':' || r == '-':
		default:
			return false
		}
	}
	return hasDigit
}

func isAlpha(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// looksLikeVerb applies Portuguese suffix heuristics for tokens outside the
// lexicon. It deliberately requires a minimum length to avoid tagging short
// function words.
func looksLikeVerb(lower string) bool {
	if len(lower) < 5 || !isAlpha(lower) {
		return false
	}
	suffixes := []string{"ar", "er", "ir", "ei", "ou", "iu", "ando", "endo", "indo", "ado", "ido", "amos", "aram", "eram", "ava", "avam"}
	for _, s := range suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

// heuristicLemma maps a conjugated form back to a plausible infinitive.
func heuristicLemma(lower string) string {
	switch {
	case strings.HasSuffix(lower, "ar"), strings.HasSuffix(lower, "er"), strings.HasSuffix(lower, "ir"):
		return lower
	case strings.HasSuffix(lower, "ei"):
		return lower[:len(lower)-2] + "ar"
	case strings.HasSuffix(lower, "ou"):
		return lower[:len(lower)-2] + "ar"
	case strings.HasSuffix(lower, "iu"):
		return lower[:len(lower)-2] + "ir"
	case strings.HasSuffix(lower, "ando"):
		return lower[:len(lower)-4] + "ar"
	case strings.HasSuffix(lower, "endo"):
		return lower[:len(lower)-4] + "er"
	case strings.HasSuffix(lower, "indo"):
		return lower[:len(lower)-4] + "ir"
	case strings.HasSuffix(lower, "ado"):
		return lower[:len(lower)-3] + "ar"
	case strings.HasSuffix(lower, "ido"):
		return lower[:len(lower)-3] + "er"
	default:
		return lower
	}
}
