package analysis

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/types"
)

// typoEntry pairs a common misspelling with its canonical form. Entries where
// both sides match (e.g. "sổ đỏ") act as guards: they normalize casing via
// replacement but never report an error.
type typoEntry struct {
	typo      string
	canonical string
}

// commonTypos lists known Vietnamese real-estate misspellings. Order matters:
// errors are reported per entry in this order, matches first-to-last within
// each entry.
var commonTypos = []typoEntry{
	{"xổ hồng", "sổ hồng"},
	{"sổ đỏ", "sổ đỏ"},
	{"trung cư", "chung cư"},
	{"dự áng", "dự án"},
	{"bắc đảo", "bắc đảo"},
	{"mặc tiền", "mặt tiền"},
	{"liên hẹ", "liên hệ"},
	{"chính chủ", "chính chủ"},
}

// DetectAndFixErrors finds known misspellings in the text and produces a
// corrected version. It is purely local: no remote model contributes to the
// output. Positions are byte offsets into the original text.
func DetectAndFixErrors(text string) *types.ErrorDetectionResult {
	errors := []types.TypoError{}
	correctedText := text

	for _, entry := range commonTypos {
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(entry.typo))

		for _, loc := range re.FindAllStringIndex(text, -1) {
			match := text[loc[0]:loc[1]]
			if strings.ToLower(match) != entry.canonical {
				errors = append(errors, types.TypoError{
					Position:   loc[0],
					Original:   match,
					Suggestion: entry.canonical,
				})
			}
		}

		correctedText = re.ReplaceAllString(correctedText, entry.canonical)
	}

	return &types.ErrorDetectionResult{
		Errors:        errors,
		CorrectedText: sentenceCase(correctedText),
	}
}

// sentenceCase upper-cases the first letter of each ". "-delimited fragment.
func sentenceCase(text string) string {
	fragments := strings.Split(text, ". ")
	for i, fragment := range fragments {
		runes := []rune(fragment)
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
			fragments[i] = string(runes)
		}
	}
	return strings.Join(fragments, ". ")
}
