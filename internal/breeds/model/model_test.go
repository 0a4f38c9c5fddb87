package model

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Apartment(t *testing.T) {
	for _, s := range []string{"apartment", " Apartment ", "아파트", "빌라", "원룸", "officetel"} {
		assert.True(t, Profile{LivingSpace: s}.Apartment(), s)
	}
	for _, s := range []string{"house", "단독주택", ""} {
		assert.False(t, Profile{LivingSpace: s}.Apartment(), s)
	}
}

func TestProfile_TargetEnergy(t *testing.T) {
	assert.Equal(t, 2, Profile{ActivityLevel: "low"}.TargetEnergy())
	assert.Equal(t, 2, Profile{ActivityLevel: "낮음"}.TargetEnergy())
	assert.Equal(t, 5, Profile{ActivityLevel: "HIGH"}.TargetEnergy())
	assert.Equal(t, 3, Profile{ActivityLevel: "moderate"}.TargetEnergy())
	assert.Equal(t, 3, Profile{}.TargetEnergy())
}

func TestBreedRecord_Helpers(t *testing.T) {
	r := BreedRecord{SizeType: "대형"}
	assert.True(t, r.IsLarge())
	assert.Equal(t, DefaultTrainability, r.EffectiveTrainability())

	v := 5
	r = BreedRecord{SizeType: "소형", Trainability: &v}
	assert.False(t, r.IsLarge())
	assert.Equal(t, 5, r.EffectiveTrainability())
}

func TestMatchKind_Text(t *testing.T) {
	b, err := json.Marshal(MatchResult{Query: "x", Kind: MatchSuggestion, Suggestion: "y"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"query":"x","kind":"suggestion","suggestion":"y"}`, string(b))

	var k MatchKind
	require.NoError(t, k.UnmarshalText([]byte("found")))
	assert.Equal(t, MatchFound, k)
	assert.Error(t, k.UnmarshalText([]byte("maybe")))
}

func TestDisplayScore(t *testing.T) {
	assert.Equal(t, 0, ScoredRecord{Score: -40}.DisplayScore())
	assert.Equal(t, 55, ScoredRecord{Score: 55}.DisplayScore())
	assert.Equal(t, 100, ScoredRecord{Score: 110}.DisplayScore())
}
