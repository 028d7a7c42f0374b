package nlptag

// verbForms maps surface forms to their infinitive lemma. It covers the
// résumé action verbs in infinitive, first/third person preterite and a few
// frequent auxiliary verbs.
var verbForms = map[string]string{
	// desenvolver
	"desenvolver": "desenvolver", "desenvolvi": "desenvolver", "desenvolveu": "desenvolver", "desenvolvendo": "desenvolver",
	// implementar
	"implementar": "implementar", "implementei": "implementar", "implementou": "implementar", "implementando": "implementar",
	// criar
	"criar": "criar", "criei": "criar", "criou": "criar", "criando": "criar",
	// construir
	"construir": "construir", "construi": "construir", "construiu": "construir", "construindo": "construir",
	// liderar
	"liderar": "liderar", "liderei": "liderar", "liderou": "liderar", "liderando": "liderar",
	// gerenciar
	"gerenciar": "gerenciar", "gerenciei": "gerenciar", "gerenciou": "gerenciar", "gerenciando": "gerenciar",
	// otimizar
	"otimizar": "otimizar", "otimizei": "otimizar", "otimizou": "otimizar", "otimizando": "otimizar",
	// melhorar
	"melhorar": "melhorar", "melhorei": "melhorar", "melhorou": "melhorar", "melhorando": "melhorar",
	// aumentar
	"aumentar": "aumentar", "aumentei": "aumentar", "aumentou": "aumentar", "aumentando": "aumentar",
	// reduzir
	"reduzir": "reduzir", "reduzi": "reduzir", "reduziu": "reduzir", "reduzindo": "reduzir",
	// analisar
	"analisar": "analisar", "analisei": "analisar", "analisou": "analisar", "analisando": "analisar",
	// resolver
	"resolver": "resolver", "resolvi": "resolver", "resolveu": "resolver", "resolvendo": "resolver",
	// coordenar
	"coordenar": "coordenar", "coordenei": "coordenar", "coordenou": "coordenar", "coordenando": "coordenar",
	// supervisionar
	"supervisionar": "supervisionar", "supervisionei": "supervisionar", "supervisionou": "supervisionar",
	// treinar
	"treinar": "treinar", "treinei": "treinar", "treinou": "treinar",
	// mentorar
	"mentorar": "mentorar", "mentorei": "mentorar", "mentorou": "mentorar",
	// planejar
	"planejar": "planejar", "planejei": "planejar", "planejou": "planejar",
	// executar
	"executar": "executar", "executei": "executar", "executou": "executar",
	// monitorar
	"monitorar": "monitorar", "monitorei": "monitorar", "monitorou": "monitorar",
	// avaliar
	"avaliar": "avaliar", "avaliei": "avaliar", "avaliou": "avaliar",
	// testar
	"testar": "testar", "testei": "testar", "testou": "testar",
	// deployar
	"deployar": "deployar", "deployei": "deployar", "deployou": "deployar",
	// configurar
	"configurar": "configurar", "configurei": "configurar", "configurou": "configurar",
	// manter
	"manter": "manter", "mantive": "manter", "manteve": "manter", "mantendo": "manter",
	// frequent non-action verbs, kept so the "all verbs" bucket is realistic
	"trabalhar": "trabalhar", "trabalhei": "trabalhar", "trabalhou": "trabalhar",
	"atuar": "atuar", "atuei": "atuar", "atuou": "atuar",
	"participar": "participar", "participei": "participar", "participou": "participar",
	"realizar": "realizar", "realizei": "realizar", "realizou": "realizar",
	"utilizar": "utilizar", "utilizei": "utilizar", "utilizou": "utilizar",
	"estudar": "estudar", "estudei": "estudar", "estudou": "estudar",
	"concluir": "concluir", "conclui": "concluir", "concluiu": "concluir",
}
