package model

import "fmt"

type MatchKind int

const (
	MatchNotFound MatchKind = iota
	MatchFound
	MatchSuggestion
)

func (k MatchKind) String() string {
	switch k {
	case MatchFound:
		return "found"
	case MatchSuggestion:
		return "suggestion"
	default:
		return "not_found"
	}
}

func (k MatchKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *MatchKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "found":
		*k = MatchFound
	case "suggestion":
		*k = MatchSuggestion
	case "not_found":
		*k = MatchNotFound
	default:
		return fmt.Errorf("unknown match kind %q", string(b))
	}
	return nil
}

// MatchResult is the outcome of resolving one query.
type MatchResult struct {
	Query      string       `json:"query"`
	Kind       MatchKind    `json:"kind"`
	Record     *BreedRecord `json:"record,omitempty"`     // set when Kind == MatchFound
	Suggestion string       `json:"suggestion,omitempty"` // set when Kind == MatchSuggestion
}

func (m MatchResult) Found() bool { return m.Kind == MatchFound }

type Reason string

const (
	ReasonApartment   Reason = "apartment_friendly"
	ReasonTrainable   Reason = "easy_to_train"
	ReasonLowShedding Reason = "easy_grooming"
	ReasonActivityFit Reason = "activity_fit"
)

// ScoredRecord pairs a record with its raw match score for one request.
type ScoredRecord struct {
	Record  *BreedRecord `json:"record"`
	Score   int          `json:"score"`
	Reasons []Reason     `json:"reasons,omitempty"`
}

// DisplayScore clamps Score into [0,100].
func (s ScoredRecord) DisplayScore() int {
	return max(0, min(100, s.Score))
}

type PopularEntry struct {
	Rank       int          `json:"rank"`
	Record     *BreedRecord `json:"record"`
	Popularity float64      `json:"popularity"`
}

type AxisValue struct {
	Axis   string `json:"axis"`
	Value1 string `json:"value1"`
	Value2 string `json:"value2"`
}

// Comparison of two resolved records. Better* point at Record1 or Record2.
type Comparison struct {
	Record1            *BreedRecord `json:"record1"`
	Record2            *BreedRecord `json:"record2"`
	Axes               []AxisValue  `json:"axes"`
	BetterTrainability *BreedRecord `json:"better_trainability"`
	BetterGrooming     *BreedRecord `json:"better_grooming"`
}
