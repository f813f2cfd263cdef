package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eme-collab/consultor-inteligente-api/internal/model"
	"github.com/eme-collab/consultor-inteligente-api/pkg/search"
)

const intentSystemPrompt = `Você é o módulo de análise de intenção de um consultor especialista em celulares no Brasil.

Analise a pergunta do usuário e extraia a intenção de compra.

Responda APENAS com um objeto JSON, sem nenhum outro texto, no formato:
{
  "categoria_preco": "Entrada | Intermediário | Intermediário Premium | Premium | Super Premium | null",
  "focos": ["até 3 itens entre: câmera, bateria, desempenho, custo-benefício, design, tela"]
}

Regras:
1. Use exatamente os valores listados, sem inventar categorias ou focos novos.
2. "categoria_preco" deve ser null quando a pergunta não indica faixa de preço.
3. "focos" deve conter apenas o que o usuário realmente pediu, no máximo 3 itens.
4. Menções a preço baixo, economia ou "que vale a pena" indicam o foco "custo-benefício".`

const recommendSystemPrompt = `Você é um consultor amigável e especialista em celulares no Brasil.

Você vai receber uma lista de celulares candidatos (em JSON), a intenção do usuário e, às vezes, trechos de resultados de busca na web.

Sua tarefa:
1. Escolha EXATAMENTE 3 celulares da lista de candidatos, em ordem do melhor para o terceiro melhor, considerando a intenção do usuário.
2. Nunca recomende um aparelho que não esteja na lista de candidatos.
3. Para cada escolhido, escreva de 3 a 4 benefícios curtos e convincentes, em português, ligados ao que o usuário pediu.
4. Quando tiver base para isso, inclua uma nota estimada (0 a 10) e preços de referência em lojas brasileiras conhecidas.

Responda APENAS com um array JSON, sem nenhum outro texto, no formato:
[
  {
    "nome": "nome completo do celular escolhido",
    "beneficios": ["benefício 1", "benefício 2", "benefício 3"],
    "nota_estimada": 8.7,
    "precos_referencia": [{"loja": "Amazon BR", "preco": "R$ 1.899,00"}]
  }
]`

type candidatePayload struct {
	Nome            string             `json:"nome"`
	CategoriaPreco  string             `json:"categoria_preco"`
	PrecoMedio      float64            `json:"preco_medio"`
	Avaliacao       float64            `json:"avaliacao"`
	CustoBeneficio  float64            `json:"custo_beneficio"`
	Notas           map[string]float64 `json:"notas"`
	PontosPositivos []string           `json:"pontos_positivos"`
	PontosNegativos []string           `json:"pontos_negativos"`
	PerfilIdeal     string             `json:"perfil_ideal"`
}

func buildRecommendPrompt(shortlist []model.Phone, intent model.Intent, webContext []search.Snippet) (string, error) {
	candidates := make([]candidatePayload, 0, len(shortlist))
	for _, p := range shortlist {
		candidates = append(candidates, candidatePayload{
			Nome:            p.NomeCompleto,
			CategoriaPreco:  p.CategoriaPreco,
			PrecoMedio:      p.PrecoMedio,
			Avaliacao:       p.Avaliacao,
			CustoBeneficio:  p.CustoBeneficio,
			Notas:           p.Notas,
			PontosPositivos: p.PontosPositivos,
			PontosNegativos: p.PontosNegativos,
			PerfilIdeal:     p.PerfilIdeal,
		})
	}

	data, err := json.Marshal(candidates)
	if err != nil {
		return "", fmt.Errorf("encode shortlist: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Candidatos:\n")
	sb.Write(data)

	sb.WriteString("\n\nIntenção do usuário:\n")
	categoria := intent.CategoriaPreco
	if categoria == "" {
		categoria = "sem restrição de preço"
	}
	fmt.Fprintf(&sb, "- faixa de preço: %s\n", categoria)
	if len(intent.Focos) > 0 {
		fmt.Fprintf(&sb, "- focos: %s\n", strings.Join(intent.Focos, ", "))
	}

	if len(webContext) > 0 {
		sb.WriteString("\nContexto da web:\n")
		for i, s := range webContext {
			fmt.Fprintf(&sb, "%d. %s: %s (%s)\n", i+1, s.Titulo, s.Trecho, s.URL)
		}
	}

	return sb.String(), nil
}
