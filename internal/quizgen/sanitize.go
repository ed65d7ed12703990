package quizgen

import (
	"regexp"
	"strings"
)

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

var codeFence = regexp.MustCompile("(?m)^\\s*```[a-zA-Z]*\\s*$")

// Sanitize extracts the most likely JSON literal from a raw model response.
// The result may still fail to parse.
func Sanitize(raw string) string {
	cleaned := stripLeadingThink(raw)
	cleaned = codeFence.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if first := strings.Index(cleaned, "{"); first > 0 {
		cleaned = cleaned[first:]
	}
	if last := strings.LastIndex(cleaned, "}"); last != -1 && last < len(cleaned)-1 {
		cleaned = cleaned[:last+1]
	}
	return cleaned
}

// stripLeadingThink removes reasoning blocks that open before the first '{'.
// Tags inside the JSON itself are question text and stay untouched.
func stripLeadingThink(s string) string {
	for {
		open := strings.Index(s, thinkOpen)
		if open == -1 {
			return s
		}
		if brace := strings.Index(s, "{"); brace != -1 && brace < open {
			return s
		}
		end := strings.Index(s[open+len(thinkOpen):], thinkClose)
		if end == -1 {
			return s
		}
		s = s[:open] + s[open+len(thinkOpen)+end+len(thinkClose):]
	}
}
