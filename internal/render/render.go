// Package render turns engine results into Korean markdown for chat clients and the CLI.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"dogbreed-service/internal/breeds/model"
)

const historyRunes = 300

const (
	MsgEmptyCatalog    = "데이터베이스가 비어있습니다."
	MsgCompareNotFound = "비교할 견종을 찾을 수 없습니다."
	MsgNoPopularity    = "데이터 없음"
)

// Stars draws a 1..5 rating as filled and empty stars, or "N/A" outside that range.
func Stars(level int) string {
	if level < 1 || level > 5 {
		return "N/A"
	}
	return strings.Repeat("★", level) + strings.Repeat("☆", 5-level)
}

// TrainabilityLabel describes a trainability score in words.
func TrainabilityLabel(t int) string {
	switch {
	case t >= 5:
		return "천재형 (훈련이 매우 쉬움)"
	case t == 4:
		return "우등생 (잘 배움)"
	case t == 3:
		return "보통 (반복 학습 필요)"
	case t == 2:
		return "노력형 (인내심 필요)"
	default:
		return "자유로운 영혼 (훈련 어려움)"
	}
}

func reasonText(r model.Reason) string {
	switch r {
	case model.ReasonApartment:
		return "아파트 생활에 적합하고"
	case model.ReasonTrainable:
		return "지능이 높아 초보자도 훈련하기 쉽습니다."
	case model.ReasonLowShedding:
		return "털 관리가 편합니다."
	default:
		return "활동 성향이 잘 맞습니다."
	}
}

// ReasonSentence joins reasons into one sentence.
func ReasonSentence(rs []model.Reason) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = reasonText(r)
	}
	return strings.Join(parts, " ")
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// Search renders a resolution result: a breed card, a did-you-mean hint or a miss.
func Search(res model.MatchResult) string {
	switch res.Kind {
	case model.MatchFound:
		return Breed(res.Record)
	case model.MatchSuggestion:
		return fmt.Sprintf("'%s'에 대한 검색 결과가 없습니다. 혹시 **'%s'**를 찾으시는 건가요?", res.Query, res.Suggestion)
	default:
		return fmt.Sprintf("'%s'에 대한 검색 결과가 없습니다.", res.Query)
	}
}

// Breed renders the full information card of one record.
func Breed(r *model.BreedRecord) string {
	var b strings.Builder
	t := r.EffectiveTrainability()

	fmt.Fprintf(&b, "### [견종 정보] %s (%s)\n\n", r.NameKo, r.NameEn)
	if r.ThumbnailURL != "" {
		fmt.Fprintf(&b, "![Image](%s)\n\n", r.ThumbnailURL)
	}
	fmt.Fprintf(&b, "* **크기:** %s\n", r.SizeType)
	fmt.Fprintf(&b, "* **수명:** %s년 / **체중:** %skg\n", num(r.AvgLifeExpectancy), num(r.AvgWeight))
	fmt.Fprintf(&b, "* **인기도:** %s점\n\n", num(r.PopularityScore))

	b.WriteString("#### [특성 지표]\n")
	fmt.Fprintf(&b, "* **[지능/훈련]:** %s (%s)\n", Stars(t), TrainabilityLabel(t))
	fmt.Fprintf(&b, "* **[활동량]:** %s (%d/5)\n", Stars(r.EnergyLevel), r.EnergyLevel)
	fmt.Fprintf(&b, "* **[털빠짐]:** %s (%d/5)\n", Stars(r.SheddingLevel), r.SheddingLevel)
	fmt.Fprintf(&b, "* **[짖음]:** %s (%d/5)\n\n", Stars(r.BarkingLevel), r.BarkingLevel)

	if r.Summary != "" {
		fmt.Fprintf(&b, "#### [요약]\n%s\n\n", r.Summary)
	}
	if r.History != "" {
		fmt.Fprintf(&b, "#### [유래]\n%s\n", truncate(r.History, historyRunes))
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Recommendations renders ranked picks under a header echoing the profile.
func Recommendations(p model.Profile, picks []model.ScoredRecord) string {
	var b strings.Builder
	beginner := "X"
	if p.IsBeginner {
		beginner = "O"
	}
	fmt.Fprintf(&b, "### [추천 결과] 당신을 위한 맞춤 반려견 TOP %d\n", len(picks))
	fmt.Fprintf(&b, "*환경: %s / 활동: %s / 초보자: %s*\n\n", p.LivingSpace, p.ActivityLevel, beginner)

	for _, s := range picks {
		r := s.Record
		fmt.Fprintf(&b, "#### - %s (적합도: %d점)\n", r.NameKo, s.DisplayScore())
		fmt.Fprintf(&b, "- **훈련 난이도:** %s\n", Stars(r.EffectiveTrainability()))
		fmt.Fprintf(&b, "- **특징:** %s\n", r.Summary)
		fmt.Fprintf(&b, "- **추천 이유:** %s\n", ReasonSentence(s.Reasons))
		if r.ThumbnailURL != "" {
			fmt.Fprintf(&b, "![thumb](%s)\n", r.ThumbnailURL)
		}
		b.WriteString("\n")
	}
	return b.String()
}

var axisLabels = map[string]string{
	"size":         "크기",
	"trainability": "지능(훈련)",
	"energy":       "활동량",
	"shedding":     "털빠짐",
	"barking":      "짖음",
}

// Comparison renders a side-by-side table with the two derived tips.
func Comparison(c model.Comparison) string {
	var b strings.Builder
	n1, n2 := c.Record1.NameKo, c.Record2.NameKo

	fmt.Fprintf(&b, "### [비교 분석]: %s vs %s\n\n", n1, n2)
	fmt.Fprintf(&b, "| 특징 | %s | %s |\n", n1, n2)
	b.WriteString("| :--- | :---: | :---: |\n")
	for _, a := range c.Axes {
		v1, v2 := a.Value1, a.Value2
		if a.Axis != "size" {
			v1, v2 = starsOf(v1), starsOf(v2)
		}
		label := axisLabels[a.Axis]
		if label == "" {
			label = a.Axis
		}
		fmt.Fprintf(&b, "| **%s** | %s | %s |\n", label, v1, v2)
	}

	b.WriteString("\n**[참고 팁]:**\n")
	fmt.Fprintf(&b, "- 훈련이 더 쉬운 개는 **%s**입니다.\n", c.BetterTrainability.NameKo)
	fmt.Fprintf(&b, "- 털 관리가 더 편한 개는 **%s**입니다.\n", c.BetterGrooming.NameKo)
	return b.String()
}

func starsOf(v string) string {
	n, err := strconv.Atoi(v)
	if err != nil {
		return "N/A"
	}
	return Stars(n)
}

// Popularity renders a numbered popularity list; count is the requested size.
func Popularity(count int, entries []model.PopularEntry) string {
	if len(entries) == 0 {
		return MsgNoPopularity
	}
	var b strings.Builder
	fmt.Fprintf(&b, "### [인기 순위] 인기 강아지 TOP %d\n\n", count)
	for _, e := range entries {
		fmt.Fprintf(&b, "%d. **%s** - %s점\n", e.Rank, e.Record.NameKo, num(e.Popularity))
	}
	return b.String()
}
