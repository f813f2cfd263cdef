package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
)

const catalogJSON = `[
	{
		"nome_completo": "Samsung Galaxy S24",
		"modelo": "SM-S921",
		"categoria_preco": "Premium",
		"preco_medio": 3899.0,
		"avaliacao": 4.6,
		"custo_beneficio": 7.8,
		"notas": {"camera_principal": 9.2, "bateria": 8.0, "desempenho": 9.0, "tela": 9.3, "design": 8.8},
		"ativo": true
	},
	{
		"nome_completo": "Motorola Moto G84",
		"modelo": "XT2347",
		"categoria_preco": "Intermediário",
		"preco_medio": 1399.0,
		"avaliacao": 4.4,
		"custo_beneficio": 9.1,
		"notas": {"camera_principal": 7.5, "bateria": 8.9, "desempenho": 7.2, "tela": 8.1, "design": 7.8},
		"ativo": true
	}
]`

const retailersJSON = `{
	"ancoras": [{"nome": "Amazon BR", "url": "https://amazon.com.br"}],
	"rotativas": [
		{"nome": "Magalu", "url": "https://magazineluiza.com.br"},
		{"nome": "Casas Bahia", "url": "https://casasbahia.com.br"},
		{"nome": "KaBuM!", "url": "https://kabum.com.br"}
	]
}`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	store, err := Load(
		writeFixture(t, "celulares.json", catalogJSON),
		writeFixture(t, "lojas.json", retailersJSON),
	)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, "Samsung Galaxy S24", store.Phones()[0].NomeCompleto)
	assert.Equal(t, "Premium", store.Phones()[0].CategoriaPreco)
	assert.Equal(t, 9.2, store.Phones()[0].Notas["camera_principal"])
	assert.Equal(t, 1, len(store.Anchors()))
	assert.Equal(t, 3, len(store.Rotating()))
	assert.Equal(t, "Amazon BR", store.Anchors()[0].Nome)
}

func TestLoadMissingCatalog(t *testing.T) {
	_, err := Load(
		filepath.Join(t.TempDir(), "nao-existe.json"),
		writeFixture(t, "lojas.json", retailersJSON),
	)

	assert.NotEqual(t, nil, err)
}

func TestLoadInvalidCatalogJSON(t *testing.T) {
	_, err := Load(
		writeFixture(t, "celulares.json", `{"não": "é uma lista"`),
		writeFixture(t, "lojas.json", retailersJSON),
	)

	assert.NotEqual(t, nil, err)
}

func TestLoadEmptyCatalog(t *testing.T) {
	_, err := Load(
		writeFixture(t, "celulares.json", `[]`),
		writeFixture(t, "lojas.json", retailersJSON),
	)

	assert.NotEqual(t, nil, err)
}

func TestLoadMissingRetailers(t *testing.T) {
	_, err := Load(
		writeFixture(t, "celulares.json", catalogJSON),
		filepath.Join(t.TempDir(), "nao-existe.json"),
	)

	assert.NotEqual(t, nil, err)
}

func TestLoadEmptyRetailerLists(t *testing.T) {
	store, err := Load(
		writeFixture(t, "celulares.json", catalogJSON),
		writeFixture(t, "lojas.json", `{"ancoras": [], "rotativas": []}`),
	)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(store.Anchors()))
	assert.Equal(t, 0, len(store.Rotating()))
}
