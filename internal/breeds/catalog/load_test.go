package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogbreed-service/internal/fileio"
)

const breedsCSV = `name_ko,name_en,size_type,energy_level,shedding_level,barking_level,trainability,popularity_score,avg_life_expectancy,avg_weight,summary,history,thumbnail_url
비글,Beagle,소형,4,3,4,2,88,13,"11,5",호기심 많은 사냥개,영국 원산,https://img/beagle.jpg
푸들,Poodle,소형,4,1,3,5,95,14,3.0,영리한 견종,독일 원산,https://img/poodle.jpg
골든 리트리버,Golden Retriever,대형,4,5,2,,97,11,30,온순함,스코틀랜드 원산,https://img/golden.jpg
,Nameless,소형,1,1,1,1,1,1,1,,,
진돗개,Jindo,중형,high,2,3,abc,80,14,18,충직함,한국 원산,https://img/jindo.jpg
`

func TestFromMaps(t *testing.T) {
	rows, err := fileio.ReadAnyMaps(strings.NewReader(breedsCSV), "breeds.csv", fileio.Options{})
	require.NoError(t, err)

	c, rep := FromMaps(rows)
	require.Equal(t, 4, c.Len())
	assert.Equal(t, 5, rep.Rows)
	assert.Equal(t, 4, rep.Loaded)
	assert.Equal(t, 1, rep.Skipped)
	assert.NotEmpty(t, rep.Warnings)

	beagle := c.At(0)
	assert.Equal(t, "Beagle", beagle.NameEn)
	assert.Equal(t, 4, beagle.BarkingLevel)
	assert.Equal(t, 2, beagle.EffectiveTrainability())
	assert.InDelta(t, 11.5, beagle.AvgWeight, 1e-9)
	assert.Equal(t, "https://img/beagle.jpg", beagle.ThumbnailURL)

	golden := c.At(2)
	assert.Nil(t, golden.Trainability)
	assert.Equal(t, 3, golden.EffectiveTrainability())
	assert.True(t, golden.IsLarge())

	jindo := c.At(3)
	assert.Equal(t, 3, jindo.EnergyLevel, "non-numeric rating falls back to 3")
	assert.Nil(t, jindo.Trainability)
}

func TestFromMaps_LocalizedHeaders(t *testing.T) {
	rows := []map[string]string{{
		"견종명": "말티즈", "영문명": "Maltese", "크기": "소형",
		"활동량": "3", "털빠짐": "1", "짖음": "4", "훈련 난이도": "3", "인기도": "90",
	}}
	c, _ := FromMaps(rows)
	require.Equal(t, 1, c.Len())
	r := c.At(0)
	assert.Equal(t, "말티즈", r.NameKo)
	assert.Equal(t, "Maltese", r.NameEn)
	assert.Equal(t, 4, r.BarkingLevel)
	assert.Equal(t, 3, r.EffectiveTrainability())
	assert.InDelta(t, 90, r.PopularityScore, 1e-9)
}

func TestFromMaps_Empty(t *testing.T) {
	c, rep := FromMaps(nil)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, rep.Rows)
}

func TestLoad_MissingFileIsEmptyCatalog(t *testing.T) {
	c, rep, err := Load(filepath.Join(t.TempDir(), "breeds.csv"), fileio.Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Len(t, rep.Warnings, 1)
}

func TestLoad_UnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breeds.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	c, _, err := Load(path, fileio.Options{})
	assert.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestLoad_CSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breeds.csv")
	require.NoError(t, os.WriteFile(path, []byte(breedsCSV), 0o644))
	c, rep, err := Load(path, fileio.Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, path, rep.Source)
}
