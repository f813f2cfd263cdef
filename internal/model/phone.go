package model

const (
	TierEntrada              = "Entrada"
	TierIntermediario        = "Intermediário"
	TierIntermediarioPremium = "Intermediário Premium"
	TierPremium              = "Premium"
	TierSuperPremium         = "Super Premium"
)

// PriceTiers lists the catalog tiers from cheapest to most expensive.
var PriceTiers = []string{
	TierEntrada,
	TierIntermediario,
	TierIntermediarioPremium,
	TierPremium,
	TierSuperPremium,
}

const (
	FocoCamera         = "câmera"
	FocoBateria        = "bateria"
	FocoDesempenho     = "desempenho"
	FocoCustoBeneficio = "custo-benefício"
	FocoDesign         = "design"
	FocoTela           = "tela"
)

var FeatureFocos = []string{
	FocoCamera,
	FocoBateria,
	FocoDesempenho,
	FocoCustoBeneficio,
	FocoDesign,
	FocoTela,
}

type Especificacoes struct {
	Tela        string `json:"tela"`
	BateriaMah  int    `json:"bateria_mah"`
	CameraMP    int    `json:"camera_mp"`
	RAMGB       int    `json:"ram_gb"`
	Processador string `json:"processador"`
}

type Phone struct {
	NomeCompleto    string             `json:"nome_completo"`
	Modelo          string             `json:"modelo"`
	Imagem          string             `json:"imagem"`
	Especificacoes  Especificacoes     `json:"especificacoes"`
	PrecoMedio      float64            `json:"preco_medio"`
	CategoriaPreco  string             `json:"categoria_preco"`
	LinksAfiliados  map[string]string  `json:"links_afiliados"`
	Avaliacao       float64            `json:"avaliacao"`
	CustoBeneficio  float64            `json:"custo_beneficio"`
	Notas           map[string]float64 `json:"notas"`
	PontosPositivos []string           `json:"pontos_positivos"`
	PontosNegativos []string           `json:"pontos_negativos"`
	PerfilIdeal     string             `json:"perfil_ideal"`
	Ativo           bool               `json:"ativo"`
}
