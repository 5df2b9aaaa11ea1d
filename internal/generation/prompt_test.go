package generation

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/types"
)

func TestBuildPromptEmbedsAllFields(t *testing.T) {
	data := &types.PropertyData{
		Type:      "Căn hộ",
		Area:      "75m2",
		Price:     "3.2 tỷ",
		Location:  "Quận 7, TP.HCM",
		Project:   "Sunrise City",
		Amenities: "Hồ bơi, gym",
		Legal:     "Sổ hồng",
		Contact:   "0901234567",
	}

	prompt := BuildPrompt(data)

	assert.Contains(t, prompt, "Loại hình: Căn hộ")
	assert.Contains(t, prompt, "Diện tích: 75m2")
	assert.Contains(t, prompt, "Giá: 3.2 tỷ")
	assert.Contains(t, prompt, "Vị trí: Quận 7, TP.HCM")
	assert.Contains(t, prompt, "Dự án: Sunrise City")
	assert.Contains(t, prompt, "Tiện ích: Hồ bơi, gym")
	assert.Contains(t, prompt, "Pháp lý: Sổ hồng")
	assert.Contains(t, prompt, "Liên hệ: 0901234567")
}

func TestBuildPromptDoesNotLeavePlaceholders(t *testing.T) {
	prompt := BuildPrompt(&types.PropertyData{Type: "Nhà phố", Price: "5 tỷ", Location: "Hà Nội"})
	assert.NotContains(t, prompt, "{{.")
}

func TestResponseSchemaShape(t *testing.T) {
	schema := ResponseSchema()

	require.Equal(t, genai.TypeObject, schema.Type)
	assert.ElementsMatch(t, []string{
		"marketAnalysis", "hookTitles", "titleErrors", "fbContent", "keywords",
		"metaDescription", "hotDescription", "bestTemplate", "postingSteps",
	}, schema.Required)

	hookTitles := schema.Properties["hookTitles"]
	require.NotNil(t, hookTitles)
	require.Equal(t, genai.TypeArray, hookTitles.Type)
	assert.ElementsMatch(t, []string{"strategy", "title"}, hookTitles.Items.Required)

	bestTemplate := schema.Properties["bestTemplate"]
	require.NotNil(t, bestTemplate)
	assert.ElementsMatch(t, []string{"rationale", "finalContent"}, bestTemplate.Required)
}
