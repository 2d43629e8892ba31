package service

import "strings"

// BrainrotKeywords are matched case-insensitively anywhere in the text.
var BrainrotKeywords = []string{"skibidi", "rizz", "gyat", "sigma", "ohio", "fanum tax", "griddy"}

// IsFlagged reports whether text contains any brainrot keyword.
func IsFlagged(text string) bool {
	_, ok := FlaggedTerm(text)
	return ok
}

// FlaggedTerm returns the first keyword found in text.
func FlaggedTerm(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, keyword := range BrainrotKeywords {
		if strings.Contains(lower, keyword) {
			return keyword, true
		}
	}
	return "", false
}
