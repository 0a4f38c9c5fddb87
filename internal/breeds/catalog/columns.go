package catalog

import (
	"regexp"
	"strings"
)

type field int

const (
	fNameKo field = iota
	fNameEn
	fSize
	fEnergy
	fShedding
	fBarking
	fTrainability
	fPopularity
	fLife
	fWeight
	fSummary
	fHistory
	fThumbnail
	numFields
)

// Accepted header spellings per field, "|"-separated; the first one is canonical.
var fieldHeaders = [numFields]string{
	fNameKo:       "name_ko|견종명|이름|한글명",
	fNameEn:       "name_en|영문명|english name",
	fSize:         "size_type|크기|size",
	fEnergy:       "energy_level|활동량|energy",
	fShedding:     "shedding_level|털빠짐|shedding",
	fBarking:      "barking_level|짖음|barking",
	fTrainability: "trainability|훈련|지능",
	fPopularity:   "popularity_score|인기도|popularity",
	fLife:         "avg_life_expectancy|수명|life expectancy",
	fWeight:       "avg_weight|체중|weight",
	fSummary:      "summary|요약",
	fHistory:      "history|유래|역사",
	fThumbnail:    "thumbnail_url|이미지|thumbnail|image_url",
}

var rxNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey: lowercase, separators collapsed to single spaces.
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = rxNonWord.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveColumns maps each field onto an actual header. Exact spellings win, then normalized
// equality, then the longest containment match. Each header serves at most one field.
func resolveColumns(headers []string) [numFields]string {
	var out [numFields]string
	taken := make(map[string]bool, len(headers))

	normed := make(map[string]string, len(headers))
	for _, h := range headers {
		normed[h] = normHeaderKey(h)
	}

	// exact, then normalized equality, across all fields before any fuzzy pass
	for pass := 0; pass < 2; pass++ {
		for f := field(0); f < numFields; f++ {
			if out[f] != "" {
				continue
			}
			for _, alt := range strings.Split(fieldHeaders[f], "|") {
				for _, h := range headers {
					if taken[h] {
						continue
					}
					if (pass == 0 && h == alt) || (pass == 1 && normed[h] == normHeaderKey(alt)) {
						out[f], taken[h] = h, true
						break
					}
				}
				if out[f] != "" {
					break
				}
			}
		}
	}

	for f := field(0); f < numFields; f++ {
		if out[f] != "" {
			continue
		}
		best, bestScore := "", 0
		for _, alt := range strings.Split(fieldHeaders[f], "|") {
			na := normHeaderKey(alt)
			for _, h := range headers {
				if taken[h] || na == "" {
					continue
				}
				if strings.Contains(normed[h], na) && len(na) > bestScore {
					best, bestScore = h, len(na)
				}
			}
		}
		if best != "" {
			out[f], taken[best] = best, true
		}
	}
	return out
}
