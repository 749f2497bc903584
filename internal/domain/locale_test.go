package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocale(t *testing.T) {
	cases := []struct {
		locale     string
		wantLang   string
		wantPrompt string
	}{
		{"", "", ""},
		{"auto", "", ""},
		{"en-US", "en", ""},
		{"EN-us", "en", ""},
		{"de", "de", ""},
		{"ru-RU", "ru", ""},
		{"-US", "", ""},
		{"zh", "zh", SimplifiedChinesePrompt},
		{"zh-CN", "zh", SimplifiedChinesePrompt},
		{"zh-SG", "zh", SimplifiedChinesePrompt},
		{"zh-TW", "zh", ""},
		{"zh-HK", "zh", ""},
		{"zh-Hant", "zh", ""},
		{"ZH-HANT-TW", "zh", ""},
	}

	for _, tc := range cases {
		lang, prompt := NormalizeLocale(tc.locale)
		assert.Equal(t, tc.wantLang, lang, "locale %q", tc.locale)
		assert.Equal(t, tc.wantPrompt, prompt, "locale %q", tc.locale)
	}
}
