package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetListingContentPrompt(t *testing.T) {
	prompt, err := Get("generation.json", "listing-content")
	require.NoError(t, err)

	assert.Contains(t, prompt, "{{.Type}}")
	assert.Contains(t, prompt, "{{.Contact}}")
	assert.Contains(t, prompt, "hookTitles")
	assert.Contains(t, prompt, "Price-First")
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Get("generation.json", "does-not-exist")
	assert.Error(t, err)
}

func TestGetUnknownFile(t *testing.T) {
	_, err := Get("missing.json", "listing-content")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		expected string
	}{
		{
			name:     "single placeholder",
			template: "Loại hình: {{.Type}}",
			data:     map[string]string{"Type": "Căn hộ"},
			expected: "Loại hình: Căn hộ",
		},
		{
			name:     "repeated placeholder",
			template: "{{.X}} và {{.X}}",
			data:     map[string]string{"X": "nhà"},
			expected: "nhà và nhà",
		},
		{
			name:     "missing key left intact",
			template: "Giá: {{.Price}}",
			data:     map[string]string{"Type": "Nhà phố"},
			expected: "Giá: {{.Price}}",
		},
		{
			name:     "empty value",
			template: "Dự án: {{.Project}}",
			data:     map[string]string{"Project": ""},
			expected: "Dự án: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.template, tt.data))
		})
	}
}

func TestMustGetPanicsOnMissingPrompt(t *testing.T) {
	assert.Panics(t, func() { MustGet("generation.json", "nope") })
}
