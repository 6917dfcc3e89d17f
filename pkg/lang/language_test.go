package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		input string
		want  Language
	}{
		{"en", English},
		{"zh", ChineseSimplified},
		{"zh-tw", ChineseTraditional},
		{"ja", Japanese},
		{"ko", Korean},
		{"", English},
		{"fr", English},
		{"EN", English},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseLanguage(tc.input))
		})
	}
}

func TestLanguage_DisplayName(t *testing.T) {
	assert.Equal(t, "English", English.DisplayName())
	assert.Equal(t, "日本語", Japanese.DisplayName())

	// Unknown codes fall back to the raw code
	assert.Equal(t, "xx", Language("xx").DisplayName())
}

func TestLanguage_IsValid(t *testing.T) {
	assert.True(t, Korean.IsValid())
	assert.False(t, Language("de").IsValid())
}
