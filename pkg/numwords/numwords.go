// Package numwords converts monetary amounts to their textual form for
// printed receipts, using the Indian numbering system (thousand, lakh,
// crore).
package numwords

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// upToHundred spells 0..99; returns "" for 0.
func upToHundred(n int64) string {
	switch {
	case n < 20:
		return ones[n]
	case n%10 == 0:
		return tens[n/10]
	default:
		return tens[n/10] + " " + ones[n%10]
	}
}

// upToThousand spells 0..999; returns "" for 0.
func upToThousand(n int64) string {
	if n < 100 {
		return upToHundred(n)
	}
	s := ones[n/100] + " Hundred"
	if rest := n % 100; rest > 0 {
		s += " " + upToHundred(rest)
	}
	return s
}

// Integer spells a non-negative integer in the Indian numbering system.
// Zero reads "Zero".
func Integer(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + Integer(-n)
	}

	var parts []string
	appendPart := func(v int64, unit string) {
		if v > 0 {
			parts = append(parts, upToHundred(v)+" "+unit)
		}
	}

	// The crore count can itself exceed 99, so it recurses through the
	// whole grouping again ("One Hundred Crore", "One Crore Crore", ...).
	if crore := n / 10000000; crore > 0 {
		parts = append(parts, Integer(crore)+" Crore")
	}
	n %= 10000000
	appendPart(n/100000, "Lakh")
	n %= 100000
	appendPart(n/1000, "Thousand")
	n %= 1000
	if n > 0 {
		parts = append(parts, upToThousand(n))
	}

	return strings.Join(parts, " ")
}

// Amount spells a monetary amount as "<taka> Taka [and <poisha> Poisha] Only".
func Amount(amount decimal.Decimal) string {
	taka := amount.IntPart()
	poisha := amount.Sub(decimal.NewFromInt(taka)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	s := Integer(taka) + " Taka"
	if poisha > 0 {
		s += " and " + Integer(poisha) + " Poisha"
	}
	return s + " Only"
}
