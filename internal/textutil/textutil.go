package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// ArabicBlock is the Unicode Arabic block, U+0600 through U+06FF.
var ArabicBlock = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0600, Hi: 0x06FF, Stride: 1}},
}

// ContainsArabic checks if a string contains any character from the Arabic block.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(ArabicBlock, r) {
			return true
		}
	}
	return false
}

// CountArabic returns the number of Arabic block characters in s.
func CountArabic(s string) int {
	n := 0
	for _, r := range s {
		if unicode.Is(ArabicBlock, r) {
			n++
		}
	}
	return n
}

// RemoveArabic deletes every Arabic block character from s.
func RemoveArabic(s string) string {
	out, _, err := transform.String(runes.Remove(runes.In(ArabicBlock)), s)
	if err != nil {
		return s
	}
	return out
}

// Hash computes a SHA-256 hex hash of a string.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Truncate shortens a string to maxLen runes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
