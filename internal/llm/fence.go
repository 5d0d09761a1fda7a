package llm

import (
	"regexp"
	"strings"
)

// fenceRe matches a whole response wrapped in a markdown code fence,
// optionally tagged with a language hint (```json).
var fenceRe = regexp.MustCompile("(?s)^```(\\w*)?\\s*\\n?(.*?)\\n?\\s*```$")

// StripCodeFence trims surrounding whitespace and removes a code fence
// wrapping the entire text. Text without a fence is returned trimmed.
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	m := fenceRe.FindStringSubmatch(s)
	if m == nil || m[2] == "" {
		return s
	}
	return strings.TrimSpace(m[2])
}
