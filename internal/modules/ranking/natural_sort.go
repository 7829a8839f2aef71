package ranking

import "strings"

// naturalLess compares two vendor names numeric-aware: each name splits into
// alternating non-digit/digit runs, digit runs compare as integers, text
// runs compare lexically. "ABC2" therefore sorts before "ABC10".
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		ra, restA, aNum := nextRun(a)
		rb, restB, bNum := nextRun(b)
		if aNum && bNum {
			if c := compareNumericRuns(ra, rb); c != 0 {
				return c < 0
			}
		} else if ra != rb {
			return ra < rb
		}
		a, b = restA, restB
	}
	return a == "" && b != ""
}

// nextRun splits off the leading run of digits or non-digits.
func nextRun(s string) (run, rest string, numeric bool) {
	numeric = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == numeric {
		i++
	}
	return s[:i], s[i:], numeric
}

// compareNumericRuns compares digit runs as integers without parsing, so
// arbitrarily long runs cannot overflow: strip leading zeros, then shorter
// means smaller, equal lengths compare lexically.
func compareNumericRuns(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
