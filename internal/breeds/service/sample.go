package service

import (
	"math/rand"

	"dogbreed-service/internal/breeds/catalog"
	"dogbreed-service/internal/breeds/model"
)

const DefaultVarietyPool = 10

// Sample picks k entries of an already ranked slice uniformly at random without replacement and
// returns them highest score first. The generator is local to the call, so equal seeds give equal
// picks regardless of concurrent callers.
func Sample(ranked []model.ScoredRecord, k int, seed int64) []model.ScoredRecord {
	if k <= 0 {
		return []model.ScoredRecord{}
	}
	if k >= len(ranked) {
		return TopK(ranked, len(ranked), byScore)
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // variety sampling, not security
	idx := rng.Perm(len(ranked))[:k]

	picked := make([]model.ScoredRecord, 0, k)
	for i := range ranked {
		for _, j := range idx {
			if i == j {
				picked = append(picked, ranked[i])
				break
			}
		}
	}
	return TopK(picked, k, byScore)
}

// RecommendVaried ranks deterministically, keeps the best pool candidates and samples k of them.
func RecommendVaried(cat *catalog.Catalog, p model.Profile, k, pool int, seed int64) []model.ScoredRecord {
	if pool < k {
		pool = k
	}
	picked := Sample(TopK(ScoreAll(cat, p), pool, byScore), k, seed)
	for i := range picked {
		picked[i].Reasons = Reasons(picked[i].Record, p)
	}
	return picked
}
