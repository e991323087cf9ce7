package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDescription_VenueSuffix(t *testing.T) {
	text := "ACME STORE\n123 Main St\nTOTAL: $10.00"
	assert.Equal(t, "ACME STORE", ExtractDescription(text))
}

func TestExtractDescription_FirstMatchingLineWins(t *testing.T) {
	// Top-to-bottom scan order: the first matchable line wins even when a
	// later line would also match.
	text := "WALMART SUPERCENTER\nACME STORE\nTOTAL: $10.00"
	assert.Equal(t, "WALMART SUPERCENTER", ExtractDescription(text))
}

func TestExtractDescription_ReceiptSuffix(t *testing.T) {
	text := "--- BIGMART RECEIPT ---"
	assert.Equal(t, "BIGMART", ExtractDescription(text))
}

func TestExtractDescription_LowercaseLineUppercasedForMatching(t *testing.T) {
	// Matching happens on the upper-cased line.
	text := "corner cafe\nthanks for visiting"
	assert.Equal(t, "CORNER CAFE", ExtractDescription(text))
}

func TestExtractDescription_ShortLinesSkipped(t *testing.T) {
	text := "ab\nXYZ MARKET"
	assert.Equal(t, "XYZ MARKET", ExtractDescription(text))
}

func TestExtractDescription_FallbackLine(t *testing.T) {
	// No line survives the merchant patterns (leading dashes defeat the
	// anchored alternatives); the first digit-free line under 100 chars
	// is used instead.
	text := "- a plain lowercase header -\n- item 2.99 -"
	assert.Equal(t, "- a plain lowercase header -", ExtractDescription(text))
}

func TestExtractDescription_FallbackSkipsTotalAndDigits(t *testing.T) {
	text := "- TOTAL due today -\n- item costs 2.99 -\n- thanks for shopping -"
	assert.Equal(t, "- thanks for shopping -", ExtractDescription(text))
}

func TestExtractDescription_FallbackTruncatedToFifty(t *testing.T) {
	long := "- " + strings.Repeat("x", 78)
	assert.Len(t, long, 80)

	got := ExtractDescription(long)
	assert.Len(t, got, 50)
	assert.Equal(t, long[:50], got)
}

func TestExtractDescription_PlaceholderWhenNothingUsable(t *testing.T) {
	assert.Equal(t, "Receipt Upload", ExtractDescription("12 34\n99"))
}

func TestExtractDescription_NeverExceedsFifty(t *testing.T) {
	text := strings.Repeat("A", 80) // matches the bare upper-case run pattern
	assert.LessOrEqual(t, len(ExtractDescription(text)), 50)
}
