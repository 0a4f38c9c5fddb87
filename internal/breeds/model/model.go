package model

import "strings"

// DefaultTrainability is used when a record carries no usable trainability score.
const DefaultTrainability = 3

// BreedRecord is one catalog row. Records are immutable once the catalog is built.
type BreedRecord struct {
	NameKo            string  `json:"name_ko"`
	NameEn            string  `json:"name_en"`
	SizeType          string  `json:"size_type"`
	EnergyLevel       int     `json:"energy_level"`
	SheddingLevel     int     `json:"shedding_level"`
	BarkingLevel      int     `json:"barking_level"`
	Trainability      *int    `json:"trainability,omitempty"` // nil when the source had no usable value
	PopularityScore   float64 `json:"popularity_score"`
	AvgLifeExpectancy float64 `json:"avg_life_expectancy"`
	AvgWeight         float64 `json:"avg_weight"`
	Summary           string  `json:"summary"`
	History           string  `json:"history"`
	ThumbnailURL      string  `json:"thumbnail_url"`
}

// EffectiveTrainability returns Trainability or DefaultTrainability when absent.
func (b *BreedRecord) EffectiveTrainability() int {
	if b.Trainability == nil {
		return DefaultTrainability
	}
	return *b.Trainability
}

var largeSizes = map[string]struct{}{
	"대형": {}, "초대형": {}, "large": {}, "giant": {},
}

// IsLarge reports whether SizeType denotes a large breed.
func (b *BreedRecord) IsLarge() bool {
	_, ok := largeSizes[strings.ToLower(strings.TrimSpace(b.SizeType))]
	return ok
}

// Profile describes the caller's living environment and preferences.
type Profile struct {
	LivingSpace     string `json:"living_space"`
	ActivityLevel   string `json:"activity_level"`
	ConcernShedding bool   `json:"concern_shedding"`
	ConcernBarking  bool   `json:"concern_barking"`
	IsBeginner      bool   `json:"is_beginner"`
}

var apartmentLike = map[string]struct{}{
	"apartment": {}, "아파트": {}, "빌라": {}, "villa": {},
	"officetel": {}, "오피스텔": {}, "studio": {}, "원룸": {},
}

// Apartment reports whether LivingSpace is apartment-like. Anything else counts as a house.
func (p Profile) Apartment() bool {
	_, ok := apartmentLike[strings.ToLower(strings.TrimSpace(p.LivingSpace))]
	return ok
}

// TargetEnergy maps ActivityLevel onto the 1..5 energy scale: low→2, high→5, otherwise 3.
func (p Profile) TargetEnergy() int {
	switch strings.ToLower(strings.TrimSpace(p.ActivityLevel)) {
	case "low", "낮음":
		return 2
	case "high", "높음":
		return 5
	default:
		return 3
	}
}

// DefaultProfile mirrors the defaults of the recommendation tool.
func DefaultProfile() Profile {
	return Profile{LivingSpace: "apartment", ActivityLevel: "moderate"}
}

// AliasEntry maps an informal nickname onto a canonical name_ko.
type AliasEntry struct {
	Nickname  string `json:"nickname"`
	Canonical string `json:"canonical"`
}
