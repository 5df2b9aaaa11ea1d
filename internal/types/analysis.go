package types

// ContentQualityResult scores the persuasive quality of the generated copy.
// Score is 0-100, derived from a remote sentiment classification plus local
// length heuristics.
type ContentQualityResult struct {
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// SEOKeywordResult holds keyword-frequency analysis of the generated copy.
// Keywords is capped at 10 entries; Density maps every counted token to its
// occurrence count.
type SEOKeywordResult struct {
	Keywords        []string       `json:"keywords"`
	Density         map[string]int `json:"density"`
	Recommendations []string       `json:"recommendations"`
}

// TypoError is one detected misspelling. Position is the byte offset of the
// match in the original text.
type TypoError struct {
	Position   int    `json:"position"`
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
}

// ErrorDetectionResult lists detected typos and the fully corrected text.
type ErrorDetectionResult struct {
	Errors        []TypoError `json:"errors"`
	CorrectedText string      `json:"correctedText"`
}

// ReadabilityResult scores how easy the copy is to read on a 0-100 scale.
type ReadabilityResult struct {
	Score        int      `json:"score"`
	Issues       []string `json:"issues"`
	Improvements []string `json:"improvements"`
}

// HFAnalysisResult aggregates the four analyzer facets. Each facet is
// independently nilable; a nil facet means that analyzer did not produce a
// result for this submission.
type HFAnalysisResult struct {
	Quality     *ContentQualityResult `json:"quality"`
	SEO         *SEOKeywordResult     `json:"seo"`
	Grammar     *ErrorDetectionResult `json:"grammar"`
	Readability *ReadabilityResult    `json:"readability"`
}
