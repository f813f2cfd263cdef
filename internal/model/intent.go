package model

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

const MaxFocos = 3

type Intent struct {
	CategoriaPreco string
	Focos          []string
}

func (i Intent) Empty() bool {
	return i.CategoriaPreco == "" && len(i.Focos) == 0
}

// CacheKey is stable under focus ordering: intents with the same tier and
// the same set of focos always produce the same key.
func (i Intent) CacheKey() string {
	focos := append([]string(nil), i.Focos...)
	sort.Strings(focos)
	sum := sha256.Sum256([]byte(i.CategoriaPreco + "|" + strings.Join(focos, ",")))
	return "consulta:" + hex.EncodeToString(sum[:16])
}

var tierAliases = map[string]string{
	"entrada":               TierEntrada,
	"intermediário":         TierIntermediario,
	"intermediario":         TierIntermediario,
	"intermediário premium": TierIntermediarioPremium,
	"intermediario premium": TierIntermediarioPremium,
	"premium":               TierPremium,
	"super premium":         TierSuperPremium,
}

// NormalizeTier maps a model-produced tier string onto the catalog
// vocabulary. Unknown values normalize to the empty string.
func NormalizeTier(raw string) string {
	return tierAliases[strings.ToLower(strings.TrimSpace(raw))]
}

var focoAliases = map[string]string{
	"câmera":          FocoCamera,
	"camera":          FocoCamera,
	"bateria":         FocoBateria,
	"desempenho":      FocoDesempenho,
	"custo-benefício": FocoCustoBeneficio,
	"custo-beneficio": FocoCustoBeneficio,
	"custo benefício": FocoCustoBeneficio,
	"custo beneficio": FocoCustoBeneficio,
	"design":          FocoDesign,
	"tela":            FocoTela,
}

// NormalizeFoco maps a model-produced focus tag onto the fixed vocabulary.
// Unknown values normalize to the empty string.
func NormalizeFoco(raw string) string {
	return focoAliases[strings.ToLower(strings.TrimSpace(raw))]
}
