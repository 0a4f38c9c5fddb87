package fileio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickHeader_FillsBlanks(t *testing.T) {
	h := pickHeader([][]string{{"name_ko", " ", "name_en"}}, 1)
	assert.Equal(t, []string{"name_ko", "Column 2", "name_en"}, h)
}

func TestPickHeader_OutOfRangeFallsBackToFirstRow(t *testing.T) {
	h := pickHeader([][]string{{"a"}, {"b"}}, 9)
	assert.Equal(t, []string{"a"}, h)
}

func TestRowsToMaps_ShortRowsAndBlanks(t *testing.T) {
	rows := [][]string{
		{"a", "b"},
		{"1"},
		{"", "  "},
		{"3", "4"},
	}
	out := rowsToMaps(rows, []string{"a", "b"}, 1)
	assert.Equal(t, []map[string]string{
		{"a": "1", "b": ""},
		{"a": "3", "b": "4"},
	}, out)
}
