// Package sanitize cleans untrusted text before it becomes a field label, help
// text or choice label. Field rendering inserts those values verbatim, so
// callers that accept them from users or schema authors run them through one
// of these policies first.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy

	inlineOnce   sync.Once
	inlinePolicy *bluemonday.Policy
)

// StrictText removes every tag and escapes what is left, producing plain text
// safe to place in markup.
func StrictText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(strictSanitizer().Sanitize(trimmed))
}

// InlineMarkup keeps a small set of inline elements (emphasis, code and links
// with standard URL schemes) and strips the rest.
func InlineMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(inlineSanitizer().Sanitize(trimmed))
}

// Value sanitises submitted values before they are redisplayed. It is
// StrictText without trimming, so what the user typed round-trips.
func Value(raw string) string {
	if raw == "" {
		return ""
	}
	return strictSanitizer().Sanitize(raw)
}

func strictSanitizer() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

func inlineSanitizer() *bluemonday.Policy {
	inlineOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("b", "i", "em", "strong", "code")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		inlinePolicy = policy
	})
	return inlinePolicy
}
