// Package keywords compares a job description's vocabulary against a
// resume and reports which terms are covered.
package keywords

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var wordRe = regexp.MustCompile(`\pL[\pL\pN]{2,}`)

// Result reports job-description keyword coverage. Score is the fraction
// of keywords found, in [0,1].
type Result struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
	Total   int      `json:"total"`
	Score   float64  `json:"score"`
}

// Match extracts the keyword universe from jobDescription (words of three
// or more characters, stop words removed) and checks each one against the
// resume text by substring containment. Empty inputs yield a zero result.
func Match(cvText, jobDescription string) Result {
	universe := Keywords(jobDescription)
	if len(universe) == 0 || strings.TrimSpace(cvText) == "" {
		return Result{Found: []string{}, Missing: universe, Total: len(universe)}
	}

	lowerCV := strings.ToLower(cvText)
	found := make([]string, 0, len(universe))
	missing := make([]string, 0)
	for _, kw := range universe {
		if strings.Contains(lowerCV, kw) {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := float64(len(found)) / float64(len(universe))
	return Result{
		Found:   found,
		Missing: missing,
		Total:   len(universe),
		Score:   math.Round(score*1000) / 1000,
	}
}

// Keywords returns the deduplicated, sorted keyword universe of text.
func Keywords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if stopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
