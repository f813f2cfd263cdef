package recommend

import (
	"math/rand"
	"sync"
	"time"

	"github.com/eme-collab/consultor-inteligente-api/internal/model"
)

const rotatingPicks = 2

// RetailerSelector picks the partner stores shown under a recommendation:
// one anchor plus two rotating stores, shuffled.
type RetailerSelector struct {
	mu       sync.Mutex
	rng      *rand.Rand
	anchors  []model.Retailer
	rotating []model.Retailer
}

func NewRetailerSelector(anchors, rotating []model.Retailer, seed int64) *RetailerSelector {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RetailerSelector{
		rng:      rand.New(rand.NewSource(seed)),
		anchors:  anchors,
		rotating: rotating,
	}
}

func (s *RetailerSelector) Select() []model.Retailer {
	s.mu.Lock()
	defer s.mu.Unlock()

	var picks []model.Retailer
	if len(s.anchors) > 0 {
		picks = append(picks, s.anchors[s.rng.Intn(len(s.anchors))])
	}

	count := rotatingPicks
	if len(s.rotating) < count {
		count = len(s.rotating)
	}
	for _, i := range s.rng.Perm(len(s.rotating))[:count] {
		picks = append(picks, s.rotating[i])
	}

	s.rng.Shuffle(len(picks), func(a, b int) {
		picks[a], picks[b] = picks[b], picks[a]
	})

	return picks
}
