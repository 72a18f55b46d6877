package labs

import (
	"regexp"
	"strconv"
	"strings"
)

// NormalizeText prepares raw report text for pattern matching. Lowercasing keeps
// the pattern table free of case variants; trimming drops OCR edge whitespace.
func NormalizeText(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// firstMatch tries the ordered candidate patterns and returns the first capture
// that parses as a float. A pattern that matches but whose number token does not
// parse (OCR garbage inside the token) is skipped, never surfaced as an error.
func firstMatch(text string, patterns []*regexp.Regexp) (float64, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		v, err := parseNumber(m[1])
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

// parseNumber strips thousands separators before parsing, so "1,50,000" and
// "7,800" both come through as plain floats.
func parseNumber(token string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(token, ",", ""), 64)
}

// extractBloodPressure returns systolic and diastolic readings from the first
// matching pressure pattern. Both are present or both are absent.
func extractBloodPressure(text string) (systolic, diastolic float64, ok bool) {
	for _, re := range bloodPressurePatterns {
		m := re.FindStringSubmatch(text)
		if len(m) != 3 {
			continue
		}
		s, errS := parseNumber(m[1])
		d, errD := parseNumber(m[2])
		if errS != nil || errD != nil {
			continue
		}
		return s, d, true
	}
	return 0, 0, false
}
