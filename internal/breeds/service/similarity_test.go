package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	assert.Equal(t, 1.0, ratio("", ""))
	assert.Equal(t, 1.0, ratio("비글", "비글"))
	assert.Equal(t, 0.0, ratio("abc", ""))
	assert.InDelta(t, 0.75, ratio("abcd", "bcde"), 1e-9)
	assert.InDelta(t, 0.5, ratio("푸듬", "푸들"), 1e-9)
	assert.Equal(t, ratio("beagel", "beagle"), ratio("beagle", "beagel"))
}

func TestDamerauLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"ca", "ac", 1},
		{"kitten", "sitting", 3},
		{"비글", "비굴", 1},
		{"리트리버", "리트리버", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, damerauLevenshtein(c.a, c.b), c.a+"/"+c.b)
	}
}
