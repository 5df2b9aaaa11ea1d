package analysis

import (
	"context"
	"unicode/utf8"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/types"
)

const (
	// qualityDefaultScore is used when the sentiment service is unreachable.
	qualityDefaultScore = 70
	// sentimentInputLimit caps the classified text; BERT-family models
	// truncate past 512 tokens anyway.
	sentimentInputLimit = 512
	// shortContentLimit is the rune count under which copy is penalized.
	shortContentLimit   = 100
	shortContentPenalty = 10
)

// CheckContentQuality maps a star-rating sentiment classification onto a
// 0-100 quality score, augmented with local length heuristics. A failed
// remote call leaves the default score in place; the analyzer never fails.
func CheckContentQuality(ctx context.Context, classifier SentimentClassifier, content string) *types.ContentQualityResult {
	score := qualityDefaultScore
	issues := []string{}
	suggestions := []string{}

	classes, err := classifier.ClassifySentiment(ctx, firstRunes(content, sentimentInputLimit))
	if err == nil && len(classes) > 0 {
		top := classes[0]
		for _, c := range classes[1:] {
			if c.Score > top.Score {
				top = c
			}
		}

		// Labels look like "5 stars"; the leading digit is the star count.
		if stars := leadingDigit(top.Label); stars > 0 {
			score = stars * 20
		}

		if score < 60 {
			issues = append(issues, "Giọng văn chưa đủ hấp dẫn hoặc mang tính tiêu cực.")
			suggestions = append(suggestions, "Sử dụng nhiều từ ngữ tích cực, mạnh mẽ hơn (Tuyệt phẩm, Duy nhất, Đẳng cấp).")
		} else if score >= 80 {
			issues = append(issues, "Nội dung tích cực, thu hút.")
			suggestions = append(suggestions, "Duy trì giọng văn đầy năng lượng này.")
		}
	} else {
		issues = append(issues, "Không thể kết nối AI phân tích cảm xúc.")
	}

	if utf8.RuneCountInString(content) < shortContentLimit {
		score -= shortContentPenalty
		issues = append(issues, "Nội dung quá ngắn, khó SEO.")
		suggestions = append(suggestions, "Viết thêm chi tiết về tiện ích và vị trí.")
	}

	return &types.ContentQualityResult{
		Score:       score,
		Issues:      issues,
		Suggestions: suggestions,
	}
}

// leadingDigit returns the numeric value of the first byte of s if it is a
// decimal digit, else 0.
func leadingDigit(s string) int {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0
	}
	return int(s[0] - '0')
}
