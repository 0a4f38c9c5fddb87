// Package service is the matching and recommendation engine. Every function here is a pure read
// of the catalog and alias table it is given.
package service

import (
	"strings"

	"dogbreed-service/internal/breeds/catalog"
	"dogbreed-service/internal/breeds/model"
)

// SuggestionCutoff is the minimum similarity for a "did you mean" suggestion.
const SuggestionCutoff = 0.5

// Resolve turns a free-text query into a record, a suggestion or not-found:
// nickname substitution, then the first record whose Korean or English name contains the query,
// then the most similar name as a suggestion.
func Resolve(cat *catalog.Catalog, aliases catalog.AliasTable, query string) model.MatchResult {
	res := model.MatchResult{Query: query}
	q := substitute(aliases, query)
	if q == "" || cat.Len() == 0 {
		return res
	}
	if i, ok := findDirect(cat, q); ok {
		res.Kind, res.Record = model.MatchFound, cat.At(i)
		return res
	}
	if name, ok := suggest(cat, q); ok {
		res.Kind, res.Suggestion = model.MatchSuggestion, name
	}
	return res
}

// ResolveDirect is Resolve without the similarity fallback.
func ResolveDirect(cat *catalog.Catalog, aliases catalog.AliasTable, query string) (*model.BreedRecord, bool) {
	q := substitute(aliases, query)
	if q == "" {
		return nil, false
	}
	i, ok := findDirect(cat, q)
	if !ok {
		return nil, false
	}
	return cat.At(i), true
}

func substitute(aliases catalog.AliasTable, query string) string {
	q := catalog.NormalizeKey(query)
	if canonical, ok := aliases.Lookup(q); ok {
		q = catalog.NormalizeKey(canonical)
	}
	return q
}

// findDirect returns the first row whose name contains q. Ambiguous queries resolve by row order.
func findDirect(cat *catalog.Catalog, q string) (int, bool) {
	for i := range cat.All() {
		ko, en := cat.SearchKeys(i)
		if strings.Contains(ko, q) || strings.Contains(en, q) {
			return i, true
		}
	}
	return 0, false
}

// suggest scores q against every Korean name, then every English name. Equal ratios prefer the
// smaller edit distance, then the earlier candidate.
func suggest(cat *catalog.Catalog, q string) (string, bool) {
	var (
		best      string
		bestRatio = -1.0
		bestDist  int
	)
	consider := func(key, display string) {
		if key == "" {
			return
		}
		r := ratio(q, key)
		if r < bestRatio {
			return
		}
		d := damerauLevenshtein(q, key)
		if r > bestRatio || d < bestDist {
			best, bestRatio, bestDist = display, r, d
		}
	}
	for i, rec := range cat.All() {
		ko, _ := cat.SearchKeys(i)
		consider(ko, rec.NameKo)
	}
	for i, rec := range cat.All() {
		_, en := cat.SearchKeys(i)
		consider(en, rec.NameEn)
	}
	if bestRatio < SuggestionCutoff {
		return "", false
	}
	return best, true
}
