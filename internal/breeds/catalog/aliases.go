package catalog

import (
	"sort"

	"dogbreed-service/internal/breeds/model"
)

// DefaultAliases are the built-in nicknames. Targets are name_ko values.
func DefaultAliases() map[string]string {
	return map[string]string{
		"인절미":  "골든 리트리버",
		"소시지독": "닥스훈트",
		"사자개":  "차우차우",
		"천사견":  "골든 리트리버",
		"악마견":  "비글",
		"지랄견":  "비글",
		"백구":   "진돗개",
	}
}

// AliasTable is a read-only nickname -> canonical name mapping keyed by NormalizeKey.
type AliasTable struct {
	m map[string]string
}

// NewAliasTable merges the given maps in order; later maps override earlier ones.
// Blank keys or targets are ignored.
func NewAliasTable(sources ...map[string]string) AliasTable {
	m := make(map[string]string)
	for _, src := range sources {
		for k, v := range src {
			nk := NormalizeKey(k)
			if nk == "" || NormalizeKey(v) == "" {
				continue
			}
			m[nk] = v
		}
	}
	return AliasTable{m: m}
}

// Lookup expects an already normalized key.
func (a AliasTable) Lookup(key string) (string, bool) {
	v, ok := a.m[key]
	return v, ok
}

func (a AliasTable) Len() int { return len(a.m) }

// Entries lists the table sorted by nickname.
func (a AliasTable) Entries() []model.AliasEntry {
	out := make([]model.AliasEntry, 0, len(a.m))
	for k, v := range a.m {
		out = append(out, model.AliasEntry{Nickname: k, Canonical: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nickname < out[j].Nickname })
	return out
}
