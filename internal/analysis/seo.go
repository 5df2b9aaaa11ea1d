package analysis

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/types"
)

const (
	// maxKeywords caps the final keyword list.
	maxKeywords = 10
	// nerInputLimit caps the text sent for entity extraction.
	nerInputLimit = 500
	// entityConfidenceFloor filters low-confidence entity spans.
	entityConfidenceFloor = 0.8
)

// stopWords is the fixed Vietnamese stop-word set excluded from the density map.
var stopWords = map[string]bool{
	"là": true, "và": true, "của": true, "có": true, "với": true,
	"các": true, "những": true, "tại": true, "trong": true, "cho": true,
	"được": true, "rất": true, "này": true,
}

var punctuationRe = regexp.MustCompile("[.,/#!$%^&*;:{}=\\-_`~()]")

// AnalyzeSEOKeywords builds a keyword-frequency profile of title+content and
// unions the top frequent tokens with AI-extracted location/organization
// entities. Entity extraction failure degrades to frequency-only keywords.
func AnalyzeSEOKeywords(ctx context.Context, extractor EntityExtractor, title, content string) *types.SEOKeywordResult {
	fullText := strings.ToLower(title + " " + content)
	words := strings.Fields(punctuationRe.ReplaceAllString(fullText, ""))

	density := make(map[string]int)
	var order []string // first-seen order, the tie-break for ranking
	for _, w := range words {
		if stopWords[w] || utf8.RuneCountInString(w) <= 2 {
			continue
		}
		if _, seen := density[w]; !seen {
			order = append(order, w)
		}
		density[w]++
	}

	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return density[ranked[i]] > density[ranked[j]]
	})
	if len(ranked) > maxKeywords {
		ranked = ranked[:maxKeywords]
	}

	var aiKeywords []string
	if extractor != nil {
		if entities, err := extractor.ExtractEntities(ctx, firstRunes(content, nerInputLimit)); err == nil {
			seen := make(map[string]bool)
			for _, e := range entities {
				if (e.EntityGroup == "LOC" || e.EntityGroup == "ORG") && e.Score > entityConfidenceFloor && !seen[e.Word] {
					seen[e.Word] = true
					aiKeywords = append(aiKeywords, e.Word)
				}
			}
		}
	}

	// Frequency-ranked items take priority by insertion order.
	keywords := []string{}
	seen := make(map[string]bool)
	for _, k := range append(append([]string{}, ranked...), aiKeywords...) {
		if seen[k] {
			continue
		}
		seen[k] = true
		keywords = append(keywords, k)
		if len(keywords) == maxKeywords {
			break
		}
	}

	recommendations := []string{}
	hasAction := false
	for _, k := range keywords {
		if strings.Contains(k, "bán") || strings.Contains(k, "thuê") {
			hasAction = true
			break
		}
	}
	if !hasAction {
		recommendations = append(recommendations, "Thêm từ khóa hành động: 'Bán', 'Cho thuê', 'Sang nhượng'.")
	}
	if len(aiKeywords) == 0 {
		recommendations = append(recommendations, "Bổ sung tên dự án hoặc địa danh cụ thể để SEO Local tốt hơn.")
	}

	return &types.SEOKeywordResult{
		Keywords:        keywords,
		Density:         density,
		Recommendations: recommendations,
	}
}
