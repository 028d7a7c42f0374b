package keywords

import "testing"

func TestMatchFindsOverlap(t *testing.T) {
	cv := "Desenvolvedor Python com experiência em Docker e PostgreSQL."
	jd := "Procuramos desenvolvedor Python com Docker, Kubernetes e AWS."

	res := Match(cv, jd)
	if res.Total == 0 {
		t.Fatal("expected non-empty keyword universe")
	}
	wantFound := map[string]bool{"python": true, "docker": true, "desenvolvedor": true}
	for _, f := range res.Found {
		delete(wantFound, f)
	}
	if len(wantFound) != 0 {
		t.Errorf("missing expected found keywords: %v", wantFound)
	}
	for _, m := range res.Missing {
		if m == "python" || m == "docker" {
			t.Errorf("keyword %q reported missing", m)
		}
	}
	if res.Score <= 0 || res.Score > 1 {
		t.Errorf("score out of range: %v", res.Score)
	}
	if len(res.Found)+len(res.Missing) != res.Total {
		t.Errorf("found+missing = %d, total = %d", len(res.Found)+len(res.Missing), res.Total)
	}
}

func TestMatchNoOverlap(t *testing.T) {
	cv := "Chef de cozinha."
	jd := "Engenheiro aeroespacial especializado em propulsão."

	res := Match(cv, jd)
	if res.Score != 0 {
		t.Errorf("score = %v, want 0", res.Score)
	}
	if len(res.Found) != 0 {
		t.Errorf("found = %v, want empty", res.Found)
	}
	if len(res.Missing) != res.Total {
		t.Errorf("missing = %d, total = %d", len(res.Missing), res.Total)
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	for _, tc := range []struct{ cv, jd string }{
		{"", ""},
		{"texto", ""},
		{"", "vaga python"},
	} {
		res := Match(tc.cv, tc.jd)
		if res.Score != 0 || len(res.Found) != 0 {
			t.Errorf("Match(%q, %q) = %+v, want zero result", tc.cv, tc.jd, res)
		}
	}
}

func TestKeywordsFiltersStopwordsAndShortWords(t *testing.T) {
	out := Keywords("o desenvolvedor que tem experiência com Go e APIs")
	for _, w := range out {
		if len([]rune(w)) < 3 {
			t.Errorf("short word leaked: %q", w)
		}
		if stopwords[w] {
			t.Errorf("stopword leaked: %q", w)
		}
	}
	has := func(w string) bool {
		for _, o := range out {
			if o == w {
				return true
			}
		}
		return false
	}
	if !has("desenvolvedor") || !has("experiência") || !has("apis") {
		t.Errorf("keywords = %v", out)
	}
}
