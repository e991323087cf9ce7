package extraction

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExtractAmount scans the whole text for money figures and returns the
// largest one found. Receipts list many numbers (line items, subtotal,
// tax, tip); the total is typically the largest, so the maximum is used
// as a proxy for it. Returns zero when no parseable amount exists, which
// callers treat as "no transaction detected".
func ExtractAmount(text string) decimal.Decimal {
	maxAmount := decimal.Zero

	for _, match := range amountPattern.FindAllStringSubmatch(strings.ToUpper(text), -1) {
		for _, group := range match[1:] {
			if group == "" {
				continue
			}
			amount, err := decimal.NewFromString(strings.ReplaceAll(group, ",", ""))
			if err != nil {
				continue // unparsable group, not fatal
			}
			if amount.GreaterThan(maxAmount) {
				maxAmount = amount
			}
		}
	}

	return maxAmount
}
