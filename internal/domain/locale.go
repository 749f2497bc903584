package domain

import "strings"

// SimplifiedChinesePrompt steers Whisper toward Simplified script. The model
// does not distinguish script variants of the same spoken language, so a short
// prompt in the desired script is the only lever.
const SimplifiedChinesePrompt = "以下是普通话的句子。"

// NormalizeLocale maps a BCP-47-style hint ("zh-CN", "en-US", "auto", "") to
// the effective ISO 639-1 code passed to the model plus an optional
// script-biasing prompt. An empty returned code means auto-detect.
//
// For Chinese the original locale decides the script: tw/hk/hant anywhere in
// it means Traditional (no prompt); everything else, including plain "zh",
// gets the Simplified prompt.
func NormalizeLocale(locale string) (lang, prompt string) {
	if locale == "" || locale == "auto" {
		return "", ""
	}

	lower := strings.ToLower(locale)

	lang = lower
	if i := strings.Index(lower, "-"); i >= 0 {
		lang = lower[:i]
	}
	if lang == "" {
		return "", ""
	}

	if lang == "zh" {
		traditional := strings.Contains(lower, "tw") ||
			strings.Contains(lower, "hk") ||
			strings.Contains(lower, "hant")
		if !traditional {
			prompt = SimplifiedChinesePrompt
		}
	}

	return lang, prompt
}
