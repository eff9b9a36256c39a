package dataset

import (
	"strconv"
	"strings"
)

// ParseNumber parses a measure cell tolerantly: it accepts plain floats,
// thousands separators, and comma-decimal locales. The decimal separator is
// auto-detected per value; whichever of ',' '.' or space is not the decimal
// separator is stripped as grouping.
func ParseNumber(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, "\u00a0", " ")

	cpos := strings.LastIndex(raw, ",")
	dpos := strings.LastIndex(raw, ".")
	dec := '.'
	switch {
	case cpos >= 0 && dpos >= 0:
		if cpos > dpos {
			dec = ','
		}
	case cpos >= 0:
		// A lone comma followed by exactly three digits reads as grouping
		// ("1,200"); anything else reads as a decimal comma ("3,5").
		if len(raw)-cpos-1 != 3 {
			dec = ','
		}
	}
	for _, sep := range []rune{',', '.', ' '} {
		if sep != dec {
			raw = strings.ReplaceAll(raw, string(sep), "")
		}
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
