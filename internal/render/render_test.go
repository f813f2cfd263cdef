package render

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/eme-collab/consultor-inteligente-api/internal/model"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("building renderer: %v", err)
	}
	return r
}

func TestRenderFullDocument(t *testing.T) {
	doc := Document{
		Recomendacoes: []model.Recommendation{
			{
				Nome:         "Samsung Galaxy S24",
				Beneficios:   []string{"Câmera excelente em pouca luz", "Tamanho compacto", "Sete anos de atualizações"},
				NotaEstimada: 9.1,
				PrecosReferencia: []model.PrecoReferencia{
					{Loja: "Amazon BR", Preco: "R$ 3.899,00"},
					{Loja: "Magalu", Preco: "R$ 3.999,00"},
				},
			},
			{
				Nome:       "Motorola Moto G84",
				Beneficios: []string{"Bateria para o dia todo", "Preço justo"},
			},
		},
		Lojas: []model.Retailer{
			{Nome: "Amazon BR", URL: "https://amazon.com.br"},
			{Nome: "KaBuM!", URL: "https://kabum.com.br"},
		},
	}

	got, err := newRenderer(t).Render(doc)

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(got, "<strong>Samsung Galaxy S24</strong>"))
	assert.Equal(t, true, strings.Contains(got, "<strong>Motorola Moto G84</strong>"))
	assert.Equal(t, true, strings.Contains(got, "<li>Câmera excelente em pouca luz</li>"))
	assert.Equal(t, true, strings.Contains(got, "nota 9.1"))
	assert.Equal(t, true, strings.Contains(got, "Amazon BR: R$ 3.899,00"))
	assert.Equal(t, true, strings.Contains(got, `<a href="https://kabum.com.br"`))

	// best-to-worst presentation order
	first := strings.Index(got, "Samsung Galaxy S24")
	second := strings.Index(got, "Motorola Moto G84")
	assert.Equal(t, true, first >= 0 && second > first)
	assert.Equal(t, true, strings.Index(got, "1º") < strings.Index(got, "2º"))
}

func TestRenderEmptyDocument(t *testing.T) {
	got, err := newRenderer(t).Render(Document{})

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(got, "consulta-resultado"))
	assert.Equal(t, false, strings.Contains(got, "recomendacao\""))
	assert.Equal(t, false, strings.Contains(got, "Onde comprar"))
}

func TestRenderDegradesWithoutOptionalFields(t *testing.T) {
	doc := Document{
		Recomendacoes: []model.Recommendation{
			{Nome: "Xiaomi Redmi Note 13"},
		},
	}

	got, err := newRenderer(t).Render(doc)

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(got, "<strong>Xiaomi Redmi Note 13</strong>"))
	assert.Equal(t, false, strings.Contains(got, "<ul>"))
	assert.Equal(t, false, strings.Contains(got, "nota "))
	assert.Equal(t, false, strings.Contains(got, "Preços de referência"))
}

func TestRenderEscapesUntrustedText(t *testing.T) {
	doc := Document{
		Recomendacoes: []model.Recommendation{
			{Nome: "<script>alert(1)</script>", Beneficios: []string{"a & b"}},
		},
	}

	got, err := newRenderer(t).Render(doc)

	assert.Equal(t, nil, err)
	assert.Equal(t, false, strings.Contains(got, "<script>"))
	assert.Equal(t, true, strings.Contains(got, "&lt;script&gt;"))
	assert.Equal(t, true, strings.Contains(got, "a &amp; b"))
}
