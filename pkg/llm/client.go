package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/eme-collab/consultor-inteligente-api/internal/model"
	"github.com/eme-collab/consultor-inteligente-api/pkg/search"
)

const maxRecommendations = 3

type IntentExtractor interface {
	ExtractIntent(ctx context.Context, query string) (model.Intent, error)
}

type Synthesizer interface {
	Recommend(ctx context.Context, shortlist []model.Phone, intent model.Intent, webContext []search.Snippet) ([]model.Recommendation, error)
}

// parseIntent turns a raw model reply into a sanitized intent. Replies that
// do not contain valid JSON produce an empty intent, never an error.
func parseIntent(content string) model.Intent {
	var parsed struct {
		CategoriaPreco string   `json:"categoria_preco"`
		Focos          []string `json:"focos"`
	}

	if err := json.Unmarshal([]byte(ExtractJSON(content)), &parsed); err != nil {
		return model.Intent{}
	}

	intent := model.Intent{CategoriaPreco: model.NormalizeTier(parsed.CategoriaPreco)}

	seen := make(map[string]bool, len(parsed.Focos))
	for _, raw := range parsed.Focos {
		foco := model.NormalizeFoco(raw)
		if foco == "" || seen[foco] {
			continue
		}
		seen[foco] = true
		intent.Focos = append(intent.Focos, foco)
		if len(intent.Focos) == model.MaxFocos {
			break
		}
	}

	return intent
}

// parseRecommendations turns a raw model reply into recommendations, keeping
// only entries that name a phone from the shortlist. Unparseable replies
// produce an empty result, never an error.
func parseRecommendations(content string, shortlist []model.Phone) []model.Recommendation {
	var parsed []model.Recommendation
	if err := json.Unmarshal([]byte(ExtractJSON(content)), &parsed); err != nil {
		return nil
	}

	allowed := make(map[string]bool, len(shortlist))
	for _, p := range shortlist {
		allowed[normalizeName(p.NomeCompleto)] = true
	}

	var recs []model.Recommendation
	for _, r := range parsed {
		if !allowed[normalizeName(r.Nome)] {
			continue
		}
		recs = append(recs, r)
		if len(recs) == maxRecommendations {
			break
		}
	}

	return recs
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
