// Package lang holds the local language guess used when a provider does not
// report the source language.
package lang

import (
	"strings"

	"rubick-translator/internal/domain"
)

// IsChinese reports whether text contains a CJK ideograph in U+3400..U+9FBF.
func IsChinese(text string) bool {
	return strings.IndexFunc(text, func(r rune) bool { return r >= 0x3400 && r <= 0x9FBF }) >= 0
}

// Guess returns "zh" for Chinese-script text and "en" otherwise.
func Guess(text string) string {
	if IsChinese(text) {
		return "zh"
	}
	return "en"
}

// DefaultTarget picks the opposite side of the zh/en pair.
func DefaultTarget(text string) string {
	if IsChinese(text) {
		return "en"
	}
	return "zh"
}

// ResolveDetected returns the first non-empty candidate, then the explicit
// source when it is not auto, then the heuristic guess.
func ResolveDetected(source, text string, candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	if source != "" && source != domain.SourceAuto {
		return source
	}
	return Guess(text)
}
