package numwords

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount with Indian digit grouping, e.g.
// 1234567.5 -> "12,34,567.5". Grouping is 3 digits for the last group and 2
// for every group above it.
func FormatCurrency(d decimal.Decimal) string {
	s := d.String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	grouped := groupIndian(intPart)
	if neg {
		grouped = "-" + grouped
	}
	if fracPart != "" {
		grouped += "." + fracPart
	}
	return grouped
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
