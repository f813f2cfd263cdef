package recommend

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/eme-collab/consultor-inteligente-api/internal/model"
)

const (
	scoredPoolSize = 7
	shortlistSize  = 5
	fallbackSize   = 10
)

// Ranker selects a bounded candidate shortlist from the catalog: exact
// price-tier filtering, weighted-sum scoring over the requested focos and a
// randomized draw among the near-top candidates so similar intents do not
// always surface an identical list.
type Ranker struct {
	mu    sync.Mutex
	rng   *rand.Rand
	score func(model.Phone, []string) float64
}

// NewRanker builds a ranker around its own random source. Seed 0 derives the
// seed from the clock; any other value makes sampling reproducible.
func NewRanker(seed int64) *Ranker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Ranker{
		rng:   rand.New(rand.NewSource(seed)),
		score: featureScore,
	}
}

func (r *Ranker) Shortlist(intent model.Intent, phones []model.Phone) []model.Phone {
	candidates := make([]model.Phone, 0, len(phones))
	for _, p := range phones {
		if !p.Ativo {
			continue
		}
		if intent.CategoriaPreco != "" && p.CategoriaPreco != intent.CategoriaPreco {
			continue
		}
		candidates = append(candidates, p)
	}

	// Without focos there is nothing to score: the first candidates in
	// catalog order are the shortlist.
	if len(intent.Focos) == 0 || len(candidates) == 0 {
		if len(candidates) > fallbackSize {
			candidates = candidates[:fallbackSize]
		}
		return candidates
	}

	scores := make([]float64, len(candidates))
	for i, p := range candidates {
		scores[i] = r.score(p, intent.Focos)
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if len(order) > scoredPoolSize {
		order = order[:scoredPoolSize]
	}
	if len(order) > shortlistSize {
		order = r.sample(order, shortlistSize)
	}

	shortlist := make([]model.Phone, 0, len(order))
	for _, idx := range order {
		shortlist = append(shortlist, candidates[idx])
	}
	return shortlist
}

// sample draws n entries from the pool without replacement, keeping the
// pool's (score-descending) order in the result.
func (r *Ranker) sample(pool []int, n int) []int {
	r.mu.Lock()
	perm := r.rng.Perm(len(pool))
	r.mu.Unlock()

	keep := make(map[int]bool, n)
	for _, i := range perm[:n] {
		keep[i] = true
	}

	out := make([]int, 0, n)
	for i, v := range pool {
		if keep[i] {
			out = append(out, v)
		}
	}
	return out
}

var focoNotaKeys = map[string]string{
	model.FocoCamera:     "camera_principal",
	model.FocoBateria:    "bateria",
	model.FocoDesempenho: "desempenho",
	model.FocoTela:       "tela",
	model.FocoDesign:     "design",
}

// featureScore sums the phone's quality ratings over the requested focos.
// Cost-benefit lives on the phone itself, not in the notas map; unknown
// focos and missing ratings contribute zero.
func featureScore(p model.Phone, focos []string) float64 {
	var total float64
	for _, foco := range focos {
		if foco == model.FocoCustoBeneficio {
			total += p.CustoBeneficio
			continue
		}
		key, ok := focoNotaKeys[foco]
		if !ok {
			continue
		}
		total += p.Notas[key]
	}
	return total
}
