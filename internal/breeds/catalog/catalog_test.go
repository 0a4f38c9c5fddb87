package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"dogbreed-service/internal/breeds/model"
)

func TestNew_CopiesRecords(t *testing.T) {
	tr := 4
	src := []model.BreedRecord{{NameKo: "푸들", NameEn: "Poodle", Trainability: &tr}}
	c := New(src)

	src[0].NameKo = "changed"
	tr = 1
	assert.Equal(t, "푸들", c.At(0).NameKo)
	assert.Equal(t, 4, c.At(0).EffectiveTrainability())
}

func TestCatalog_NilAndEmpty(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	for range c.All() {
		t.Fatal("nil catalog yielded a row")
	}
	assert.Equal(t, 0, Empty().Len())
}

func TestCatalog_AllKeepsOrder(t *testing.T) {
	c := New([]model.BreedRecord{
		{NameKo: "비글", NameEn: "Beagle"},
		{NameKo: "푸들", NameEn: "Poodle"},
		{NameKo: "시추", NameEn: "Shih Tzu"},
	})
	var names []string
	for i, r := range c.All() {
		assert.Same(t, c.At(i), r)
		names = append(names, r.NameEn)
	}
	assert.Equal(t, []string{"Beagle", "Poodle", "Shih Tzu"}, names)
}

func TestSearchKeys_Normalized(t *testing.T) {
	decomposed := norm.NFD.String("비글")
	require.NotEqual(t, "비글", decomposed)

	c := New([]model.BreedRecord{{NameKo: decomposed, NameEn: "  BEAGLE "}})
	ko, en := c.SearchKeys(0)
	assert.Equal(t, "비글", ko)
	assert.Equal(t, "beagle", en)
	assert.Equal(t, decomposed, c.At(0).NameKo, "display name untouched")
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "golden retriever", NormalizeKey("  Golden Retriever\t"))
	assert.Equal(t, "", NormalizeKey("   "))
}
