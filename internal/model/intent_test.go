package model

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestIntentEmpty(t *testing.T) {
	assert.Equal(t, true, Intent{}.Empty())
	assert.Equal(t, false, Intent{CategoriaPreco: TierEntrada}.Empty())
	assert.Equal(t, false, Intent{Focos: []string{FocoTela}}.Empty())
}

func TestCacheKeyIgnoresFocusOrder(t *testing.T) {
	a := Intent{CategoriaPreco: TierPremium, Focos: []string{FocoCamera, FocoBateria, FocoTela}}
	b := Intent{CategoriaPreco: TierPremium, Focos: []string{FocoTela, FocoCamera, FocoBateria}}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
}

func TestCacheKeySeparatesDifferentIntents(t *testing.T) {
	a := Intent{CategoriaPreco: TierPremium, Focos: []string{FocoCamera}}
	b := Intent{CategoriaPreco: TierEntrada, Focos: []string{FocoCamera}}
	c := Intent{CategoriaPreco: TierPremium, Focos: []string{FocoBateria}}

	assert.NotEqual(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())

	// keys do not leak the raw intent
	assert.NotEqual(t, a.CacheKey(), "consulta:"+TierPremium+"|"+FocoCamera)
}

func TestNormalizeTier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"exact", "Premium", TierPremium},
		{"lowercase", "premium", TierPremium},
		{"accented", "Intermediário", TierIntermediario},
		{"unaccented", "intermediario", TierIntermediario},
		{"two words", "intermediario premium", TierIntermediarioPremium},
		{"padded", "  Super Premium  ", TierSuperPremium},
		{"unknown", "barato", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTier(tt.in))
		})
	}
}

func TestNormalizeFoco(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"exact", "câmera", FocoCamera},
		{"unaccented", "camera", FocoCamera},
		{"uppercase", "BATERIA", FocoBateria},
		{"hyphenless", "custo beneficio", FocoCustoBeneficio},
		{"unknown", "5g", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeFoco(tt.in))
		})
	}
}
