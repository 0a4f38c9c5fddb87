// Package catalog holds the immutable breed catalog, the nickname table and their loaders.
package catalog

import (
	"iter"
	"strings"

	"golang.org/x/text/unicode/norm"

	"dogbreed-service/internal/breeds/model"
)

// Catalog is an immutable, ordered set of breed records. Row order is the load order and
// decides ties everywhere ("first match wins"). A nil *Catalog behaves as an empty one.
type Catalog struct {
	records []model.BreedRecord
	keys    []nameKeys
}

type nameKeys struct{ ko, en string }

// New copies records into a new catalog.
func New(records []model.BreedRecord) *Catalog {
	c := &Catalog{
		records: make([]model.BreedRecord, len(records)),
		keys:    make([]nameKeys, len(records)),
	}
	for i, r := range records {
		if r.Trainability != nil {
			v := *r.Trainability
			r.Trainability = &v
		}
		c.records[i] = r
		c.keys[i] = nameKeys{ko: NormalizeKey(r.NameKo), en: NormalizeKey(r.NameEn)}
	}
	return c
}

// Empty returns a catalog with no records.
func Empty() *Catalog { return &Catalog{} }

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// At returns the record at row i. Callers must not modify it.
func (c *Catalog) At(i int) *model.BreedRecord { return &c.records[i] }

// All iterates rows in catalog order.
func (c *Catalog) All() iter.Seq2[int, *model.BreedRecord] {
	return func(yield func(int, *model.BreedRecord) bool) {
		for i := 0; i < c.Len(); i++ {
			if !yield(i, &c.records[i]) {
				return
			}
		}
	}
}

// SearchKeys returns the normalized Korean and English names of row i.
func (c *Catalog) SearchKeys(i int) (ko, en string) {
	k := c.keys[i]
	return k.ko, k.en
}

// NormalizeKey is the single normalization used for names, nicknames and queries:
// NFC composition (decomposed Hangul from some clipboards/filesystems), lowercase, trimmed.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}
