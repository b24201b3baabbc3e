package pricing

import (
	"math"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

var (
	numberCleaner     = strings.NewReplacer("$", "", "%", "", " ", "", "\u00a0", "")
	thousandsGrouping = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d*)?$`)
	decimalComma      = regexp.MustCompile(`^[+-]?\d*,\d{1,2}$`)
)

// ParseAmount converts user typed text into a number. Currency and percent
// signs are ignored. Commas group thousands ("1,000", "1,234,567.50"); a
// single comma followed by one or two digits is a decimal separator ("5,5").
// Anything that is not a finite number becomes 0.
func ParseAmount(s string) float64 {
	s = numberCleaner.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") {
		switch {
		case thousandsGrouping.MatchString(s):
			s = strings.ReplaceAll(s, ",", "")
		case decimalComma.MatchString(s):
			s = strings.Replace(s, ",", ".", 1)
		default:
			return 0
		}
	}
	v, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseCount converts user typed text into a non-negative whole number.
func ParseCount(s string) int {
	v := ParseAmount(s)
	if v <= 0 || v > math.MaxInt32 {
		return 0
	}
	return int(v)
}

// ParseFlag accepts the usual spellings of true, including "si".
func ParseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "si", "sí", "yes", "on", "y", "s":
		return true
	}
	return cast.ToBool(strings.TrimSpace(s))
}
