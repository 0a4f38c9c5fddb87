package service

import (
	"dogbreed-service/internal/breeds/catalog"
	"dogbreed-service/internal/breeds/model"
)

// Scoring weights. The formula is a flat sum; no term depends on another.
const (
	baseScore            = 100
	apartmentBarkCut     = 30 // apartment and barking_level >= 4
	apartmentLargeCut    = 25 // apartment and large size
	barkingWeight        = 10 // per barking level when barking is a concern
	sheddingWeight       = 10 // per shedding level when shedding is a concern
	energyMismatchCut    = 15 // per level of |energy - target|, always applied
	beginnerTrainBonus   = 10 // beginner and trainability >= 4
	beginnerTrainPenalty = 20 // beginner and trainability <= 2
)

// Score computes the raw, unclamped match score of one record for a profile.
func Score(r *model.BreedRecord, p model.Profile) int {
	score := baseScore

	if p.Apartment() {
		if r.BarkingLevel >= 4 {
			score -= apartmentBarkCut
		}
		if r.IsLarge() {
			score -= apartmentLargeCut
		}
	}
	if p.ConcernBarking {
		score -= r.BarkingLevel * barkingWeight
	}
	if p.ConcernShedding {
		score -= r.SheddingLevel * sheddingWeight
	}

	diff := r.EnergyLevel - p.TargetEnergy()
	if diff < 0 {
		diff = -diff
	}
	score -= diff * energyMismatchCut

	if p.IsBeginner {
		switch t := r.EffectiveTrainability(); {
		case t >= 4:
			score += beginnerTrainBonus
		case t <= 2:
			score -= beginnerTrainPenalty
		}
	}
	return score
}

// ScoreAll scores every record in catalog order.
func ScoreAll(cat *catalog.Catalog, p model.Profile) []model.ScoredRecord {
	out := make([]model.ScoredRecord, 0, cat.Len())
	for _, r := range cat.All() {
		out = append(out, model.ScoredRecord{Record: r, Score: Score(r, p)})
	}
	return out
}
