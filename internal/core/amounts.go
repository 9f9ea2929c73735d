package core

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	amountJunkRe  = regexp.MustCompile(`[^0-9.,\-]`)
	floatPrefixRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)
)

// ParseAmount coerces currency-formatted text ("€3,000", "€250") into a
// number. Everything but digits, commas, dots and minus signs is stripped,
// commas are treated as thousands separators and dropped, and whatever is
// left is parsed; any failure yields 0. A lossy heuristic, reproduced
// exactly so existing sheets keep producing the same prices.
func ParseAmount(s string) float64 {
	s = amountJunkRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

// floatPrefix parses the leading numeric prefix of s ("20", "20.5", "20%"
// all give 20...), returning 0 when no number starts the string. Matches how
// the VAT rate field has always been read.
func floatPrefix(s string) float64 {
	m := floatPrefixRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return n
}
