package service

import (
	"sort"

	"dogbreed-service/internal/breeds/catalog"
	"dogbreed-service/internal/breeds/model"
)

const (
	DefaultRecommendK   = 3
	DefaultPopularCount = 5
)

// TopK returns the k items with the highest key, highest first. Equal keys keep input order.
// The input slice is not modified; k <= 0 yields an empty result.
func TopK[T any](items []T, k int, key func(T) float64) []T {
	if k <= 0 {
		return []T{}
	}
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return key(sorted[i]) > key(sorted[j]) })
	if k < len(sorted) {
		sorted = sorted[:k]
	}
	return sorted
}

func byScore(s model.ScoredRecord) float64 { return float64(s.Score) }

// Recommend returns the k best-scoring records for p with their reasons.
func Recommend(cat *catalog.Catalog, p model.Profile, k int) []model.ScoredRecord {
	top := TopK(ScoreAll(cat, p), k, byScore)
	for i := range top {
		top[i].Reasons = Reasons(top[i].Record, p)
	}
	return top
}

// TopPopularity lists the n most popular records, most popular first.
func TopPopularity(cat *catalog.Catalog, n int) []model.PopularEntry {
	all := make([]*model.BreedRecord, 0, cat.Len())
	for _, r := range cat.All() {
		all = append(all, r)
	}
	top := TopK(all, n, func(r *model.BreedRecord) float64 { return r.PopularityScore })

	out := make([]model.PopularEntry, len(top))
	for i, r := range top {
		out[i] = model.PopularEntry{Rank: i + 1, Record: r, Popularity: r.PopularityScore}
	}
	return out
}

// Reasons explains a recommendation from the record's attributes:
// quiet breeds suit apartments; beginners get trainability, otherwise grooming ease or activity fit.
func Reasons(r *model.BreedRecord, p model.Profile) []model.Reason {
	var out []model.Reason
	if r.BarkingLevel <= 2 && p.Apartment() {
		out = append(out, model.ReasonApartment)
	}
	switch {
	case p.IsBeginner && r.EffectiveTrainability() >= 4:
		out = append(out, model.ReasonTrainable)
	case r.SheddingLevel <= 2:
		out = append(out, model.ReasonLowShedding)
	default:
		out = append(out, model.ReasonActivityFit)
	}
	return out
}
