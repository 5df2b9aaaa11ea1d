package analysis

import (
	"math"
	"regexp"
	"strings"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/types"
)

const (
	// longSentenceLimit is the average words-per-sentence threshold above
	// which copy reads poorly on a phone screen.
	longSentenceLimit = 20
	// minWordCount is the word count below which copy is flagged as thin.
	minWordCount = 50
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// ImproveReadability scores the text on a Flesch-like 0-100 scale from
// average sentence length. It is a pure function of its input; service
// reachability probing lives in the pipeline, not here.
func ImproveReadability(text string) *types.ReadabilityResult {
	sentences := 0
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	words := len(strings.Fields(text))

	divisor := sentences
	if divisor == 0 {
		divisor = 1
	}
	avgWordsPerSentence := float64(words) / float64(divisor)

	score := 100 - avgWordsPerSentence*1.5
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	issues := []string{}
	improvements := []string{}

	if avgWordsPerSentence > longSentenceLimit {
		issues = append(issues, "Câu văn quá dài (trung bình > 20 từ).")
		improvements = append(improvements, "Tách nhỏ các câu để người đọc dễ nắm bắt thông tin trên điện thoại.")
	}

	if words < minWordCount {
		issues = append(issues, "Nội dung quá ngắn.")
		improvements = append(improvements, "Bổ sung thêm mô tả để tăng thời gian on-site của khách hàng.")
	} else {
		improvements = append(improvements, "Độ dài bài viết khá tốt.")
	}

	return &types.ReadabilityResult{
		Score:        int(math.Round(score)),
		Issues:       issues,
		Improvements: improvements,
	}
}
