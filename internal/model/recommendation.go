package model

type PrecoReferencia struct {
	Loja  string `json:"loja"`
	Preco string `json:"preco"`
}

type Recommendation struct {
	Nome             string            `json:"nome"`
	Beneficios       []string          `json:"beneficios"`
	NotaEstimada     float64           `json:"nota_estimada,omitempty"`
	PrecosReferencia []PrecoReferencia `json:"precos_referencia,omitempty"`
}

type Retailer struct {
	Nome string `json:"nome"`
	URL  string `json:"url"`
	Logo string `json:"logo,omitempty"`
}
