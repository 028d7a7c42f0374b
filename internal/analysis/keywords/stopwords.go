package keywords

// stopwords is the Portuguese function-word set removed from the keyword
// universe before matching.
var stopwords = map[string]bool{}

func init() {
	words := []string{
		"com", "para", "que", "uma", "por", "mais", "como", "mas", "foi", "ele",
		"das", "tem", "seu", "sua", "ser", "quando", "muito", "nos",
		"está", "também", "pelo", "pela", "até", "isso", "ela",
		"entre", "era", "depois", "sem", "mesmo", "aos", "ter", "seus", "suas",
		"minha", "têm", "você", "dessa", "nela",
		"porque", "essa", "num", "nem", "meu", "minhas", "numa", "pelos",
		"elas", "havia", "seja", "qual", "nós", "lhe", "deles", "essas", "esses",
		"pelas", "este", "dele", "vocês", "vos", "lhes", "meus",
		"teu", "tua", "teus", "tuas", "nosso", "nossa", "nossos", "nossas", "dela",
		"delas", "esta", "estes", "estas", "aquele", "aquela", "aqueles", "aquelas",
		"isto", "aquilo", "estou", "estamos", "estão", "estive", "esteve",
		"estivemos", "estiveram", "estava", "estávamos", "estavam", "estivera",
		"estivéramos", "esteja", "estejamos", "estejam", "estivesse", "estivéssemos",
		"estivessem", "estiver", "estivermos", "estiverem", "hei", "havemos",
		"hão", "houve", "houvemos", "houveram", "houvera", "houvéramos", "haja",
		"hajamos", "hajam", "houvesse", "houvéssemos", "houvessem", "houver",
		"houvermos", "houverem", "houverei", "houverá", "houveremos", "houverão",
		"houveria", "houveríamos", "houveriam", "sou", "somos", "são",
		"éramos", "eram", "fui", "fomos", "foram", "fora", "fôramos",
		"sejamos", "sejam", "fosse", "fôssemos", "fossem", "for",
		"formos", "forem", "serei", "será", "seremos", "serão", "seria",
		"seríamos", "seriam", "tenho", "temos", "tinha",
		"tínhamos", "tinham", "tive", "teve", "tivemos", "tiveram", "tivera",
		"tivéramos", "tenha", "tenhamos", "tenham", "tivesse", "tivéssemos",
		"tivessem", "tiver", "tivermos", "tiverem", "terei", "terá", "teremos",
		"terão", "teria", "teríamos", "teriam",
	}
	for _, w := range words {
		stopwords[w] = true
	}
}
