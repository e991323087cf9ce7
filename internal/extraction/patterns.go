package extraction

import "regexp"

// Compiled once at init and never mutated, so concurrent extraction calls
// can share them without coordination.
var (
	// amountPattern matches money figures on receipt text. The text is
	// upper-cased before matching, so TOTAL/AMOUNT prefixes need only one
	// case. All alternatives require exactly two fractional digits.
	amountPattern = regexp.MustCompile(
		`\$?([0-9]{1,3}(?:,[0-9]{3})*\.[0-9]{2})|` + // $1,234.56 or 1,234.56
			`\$?([0-9]+\.[0-9]{2})|` + // $123.45 or 123.45
			`TOTAL\s*:?\s*\$?([0-9]+\.[0-9]{2})|` + // TOTAL: $123.45
			`AMOUNT\s*:?\s*\$?([0-9]+\.[0-9]{2})`, // AMOUNT: $123.45
	)

	// datePattern recognizes three layouts; which group set is populated
	// tells the date extractor how to order the fields.
	datePattern = regexp.MustCompile(
		`(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})|` + // MM/DD/YYYY or MM-DD-YYYY
			`(\d{4})[/-](\d{1,2})[/-](\d{1,2})|` + // YYYY/MM/DD or YYYY-MM-DD
			`(\d{1,2})\s+(\w{3})\s+(\d{2,4})`, // DD MMM YYYY
	)

	// merchantPattern is applied to single upper-cased lines.
	merchantPattern = regexp.MustCompile(
		`^([A-Z][A-Z\s&.]+(?:STORE|SHOP|MARKET|SUPERMARKET|RESTAURANT|CAFE|PHARMACY|GAS|STATION))|` +
			`^([A-Z][A-Z\s&.]+)|` +
			`([A-Z][A-Z\s&.]+)\s+RECEIPT|` +
			`([A-Z][A-Z\s&.]+)\s+INVOICE`,
	)
)
