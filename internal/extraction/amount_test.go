package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAmount_MaxWins(t *testing.T) {
	text := "WALMART STORE\nSubtotal $40.00\nTOTAL: $45.67\n"

	amount := ExtractAmount(text)
	assert.Equal(t, "45.67", amount.StringFixed(2))
}

func TestExtractAmount_MaxAcrossLineItems(t *testing.T) {
	// The tagged total is not preferred; the maximum across every match is.
	text := "ITEM A 12.99\nITEM B 99.99\nTOTAL: 50.00\n"

	amount := ExtractAmount(text)
	assert.Equal(t, "99.99", amount.StringFixed(2))
}

func TestExtractAmount_ThousandsSeparators(t *testing.T) {
	amount := ExtractAmount("GRAND TOTAL $1,234.56")
	assert.Equal(t, "1234.56", amount.StringFixed(2))
}

func TestExtractAmount_CaseInsensitivePrefixes(t *testing.T) {
	amount := ExtractAmount("total: $12.50")
	assert.Equal(t, "12.50", amount.StringFixed(2))
}

func TestExtractAmount_RequiresTwoFractionDigits(t *testing.T) {
	// 12.5 and 12 do not match any alternative.
	amount := ExtractAmount("TOTAL 12.5 or 12")
	assert.True(t, amount.IsZero())
}

func TestExtractAmount_NoAmount(t *testing.T) {
	amount := ExtractAmount("just words, no figures at all")
	assert.True(t, amount.IsZero())
}

func TestExtractAmount_EmptyText(t *testing.T) {
	assert.True(t, ExtractAmount("").IsZero())
}
