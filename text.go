package cetd

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// CountGraphemes returns the number of Unicode grapheme clusters
// (user-perceived characters) in text. This is the character count the
// density formula is defined over: not bytes, not code points.
func CountGraphemes(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// CountCodePoints returns the number of Unicode code points in text.
// Kept alongside CountGraphemes for debugging density discrepancies on
// pages heavy with combining sequences or emoji.
func CountCodePoints(text string) int {
	return len([]rune(text))
}

// NormalizeText applies Unicode NFC normalization to text and collapses
// all runs of whitespace into single spaces, trimming the ends.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(norm.NFC.String(text)), " ")
}

// JoinFragments joins text fragments with single spaces and normalizes
// the result.
func JoinFragments(fragments []string) string {
	return NormalizeText(strings.Join(fragments, " "))
}

// PrimaryScript returns a coarse guess at the dominant script of text:
// "Han", "Cyrillic" or "Latin". Useful when tuning density output for CJK
// pages, where per-grapheme information density differs from Latin text.
func PrimaryScript(text string) string {
	var latin, cjk, cyrillic int
	for _, r := range text {
		switch {
		case r < 0x80 || (r >= 0xC0 && r <= 0xFF):
			latin++
		case r >= 0x3000 && r <= 0x9FFF:
			cjk++
		case r >= 0x0400 && r <= 0x04FF:
			cyrillic++
		}
	}
	switch {
	case cjk > latin && cjk > cyrillic:
		return "Han"
	case cyrillic > latin && cyrillic > cjk:
		return "Cyrillic"
	default:
		return "Latin"
	}
}
