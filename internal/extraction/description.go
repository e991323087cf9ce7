package extraction

import "strings"

const (
	// FallbackDescription is used when no merchant-like line exists.
	FallbackDescription = "Receipt Upload"

	maxDescriptionLen = 50
)

// ExtractDescription scans the text line by line for a merchant name.
// First pass: the first line matching the merchant patterns wins, in scan
// order, not the best-scoring one. Second pass: the first short line with
// no digits and no TOTAL/AMOUNT marker. Always returns a non-empty string
// of at most 50 characters.
func ExtractDescription(text string) string {
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 3 {
			continue
		}
		m := merchantPattern.FindStringSubmatch(strings.ToUpper(line))
		if m == nil {
			continue
		}
		for _, group := range m[1:] {
			if g := strings.TrimSpace(group); g != "" {
				return truncate(g)
			}
		}
	}

	// Fallback: first line that plausibly is a merchant name. The checks
	// run against the original line, before upper-casing.
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 3 || len(line) >= 100 {
			continue
		}
		if strings.ContainsAny(line, "0123456789") {
			continue
		}
		if strings.Contains(line, "TOTAL") || strings.Contains(line, "AMOUNT") {
			continue
		}
		return truncate(line)
	}

	return FallbackDescription
}

func truncate(s string) string {
	if len(s) > maxDescriptionLen {
		return s[:maxDescriptionLen]
	}
	return s
}
