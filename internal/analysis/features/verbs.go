package features

// actionLemmas is the curated set of résumé action verbs, keyed by infinitive.
var actionLemmas = map[string]bool{
	"desenvolver":   true,
	"implementar":   true,
	"criar":         true,
	"construir":     true,
	"liderar":       true,
	"gerenciar":     true,
	"otimizar":      true,
	"melhorar":      true,
	"aumentar":      true,
	"reduzir":       true,
	"analisar":      true,
	"resolver":      true,
	"coordenar":     true,
	"supervisionar": true,
	"treinar":       true,
	"mentorar":      true,
	"planejar":      true,
	"executar":      true,
	"monitorar":     true,
	"avaliar":       true,
	"testar":        true,
	"deployar":      true,
	"configurar":    true,
	"manter":        true,
}

// actionForms lists surface forms matched directly against lowercased text on
// the pattern fallback path: infinitives plus first-person preterite forms.
var actionForms = []string{
	"desenvolver", "implementar", "criar", "construir", "liderar", "gerenciar",
	"otimizar", "melhorar", "aumentar", "reduzir", "analisar", "resolver",
	"coordenar", "supervisionar", "treinar", "mentorar", "planejar", "executar",
	"monitorar", "avaliar", "testar", "deployar", "configurar", "manter",
	"desenvolvi", "implementei", "criei", "construi", "liderei", "gerenciei",
	"otimizei", "melhorei", "aumentei", "reduzi", "analisei", "resolvi",
	"coordenei", "supervisionei", "treinei", "mentorei", "planejei", "executei",
	"monitorei", "avaliei", "testei", "deployei", "configurei", "mantive",
}
