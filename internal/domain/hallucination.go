package domain

import (
	"regexp"
	"strings"
)

// Whisper invents these on silence/noise: subtitle attributions, "thanks for
// watching" outros, and runs of music symbols. Markers are matched as
// case-insensitive substrings; the music pattern must cover the whole text.
var hallucinationMarkers = []string{
	"字幕",
	"索兰娅",
	"amara.org",
	"請不吝點讚",
	"订阅转发",
	"謝謝觀看",
	"感谢收看",
	"thanks for watching",
	"subscribe",
}

var musicOnlyRe = regexp.MustCompile(`^[♪♫🎵🎶\s]+$`)

// FilterHallucinations returns text unchanged unless it matches a known
// hallucination, in which case it returns "".
func FilterHallucinations(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	for _, marker := range hallucinationMarkers {
		if strings.Contains(lower, marker) {
			return ""
		}
	}

	if musicOnlyRe.MatchString(text) {
		return ""
	}

	return text
}
