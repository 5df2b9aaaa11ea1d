// Package generation turns a property record into structured listing content
// via the generative-model client.
package generation

import (
	"github.com/google/generative-ai-go/genai"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/prompts"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/types"
)

// BuildPrompt renders the property record into the listing-generation
// instruction prompt. All eight fields are embedded verbatim.
func BuildPrompt(data *types.PropertyData) string {
	template := prompts.MustGet("generation.json", "listing-content")
	return prompts.Format(template, map[string]string{
		"Type":      data.Type,
		"Area":      data.Area,
		"Price":     data.Price,
		"Location":  data.Location,
		"Project":   data.Project,
		"Amenities": data.Amenities,
		"Legal":     data.Legal,
		"Contact":   data.Contact,
	})
}

// ResponseSchema declares the exact GeneratedContent shape to the model.
// The schema is advisory: the model is trusted to honor it, and the parsed
// reply is separately validated before use.
func ResponseSchema() *genai.Schema {
	stringArray := &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"marketAnalysis": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Phân tích chiến lược đăng tin từ batdongsan.com.vn",
			},
			"hookTitles": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"strategy": {Type: genai.TypeString, Description: "Tên chiến lược (VD: Price-First)"},
						"title":    {Type: genai.TypeString, Description: "Tiêu đề tương ứng"},
					},
					Required: []string{"strategy", "title"},
				},
				Description: "10 biến thể tiêu đề theo 10 chiến lược khác nhau",
			},
			"titleErrors":     stringArray,
			"fbContent":       {Type: genai.TypeString},
			"keywords":        stringArray,
			"metaDescription": {Type: genai.TypeString},
			"hotDescription":  {Type: genai.TypeString},
			"bestTemplate": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"rationale":    {Type: genai.TypeString},
					"finalContent": {Type: genai.TypeString},
				},
				Required: []string{"rationale", "finalContent"},
			},
			"postingSteps": stringArray,
		},
		Required: []string{
			"marketAnalysis",
			"hookTitles",
			"titleErrors",
			"fbContent",
			"keywords",
			"metaDescription",
			"hotDescription",
			"bestTemplate",
			"postingSteps",
		},
	}
}
