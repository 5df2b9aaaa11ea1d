package types

// StrategyTitle is a hook title tagged with the marketing strategy it embodies
// (price-first, urgency, luxury, ...).
type StrategyTitle struct {
	Strategy string `json:"strategy"`
	Title    string `json:"title"`
}

// BestTemplate is the model's pick of the strongest complete posting template.
type BestTemplate struct {
	Rationale    string `json:"rationale"`
	FinalContent string `json:"finalContent"`
}

// GeneratedContent is the structured output of one generation call.
// Field names mirror the JSON shape the model is instructed to return.
// Created once per submission and never mutated afterwards.
type GeneratedContent struct {
	MarketAnalysis  []string        `json:"marketAnalysis"`
	HookTitles      []StrategyTitle `json:"hookTitles"`
	TitleErrors     []string        `json:"titleErrors"`
	FBContent       string          `json:"fbContent"`
	Keywords        []string        `json:"keywords"`
	MetaDescription string          `json:"metaDescription"`
	HotDescription  string          `json:"hotDescription"`
	BestTemplate    BestTemplate    `json:"bestTemplate"`
	PostingSteps    []string        `json:"postingSteps"`
}

// PrimaryTitle returns the title of the first hook title, or "" when the
// model returned none. It is the title fed into the analysis phase.
func (g *GeneratedContent) PrimaryTitle() string {
	if len(g.HookTitles) == 0 {
		return ""
	}
	return g.HookTitles[0].Title
}
