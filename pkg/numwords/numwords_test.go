package numwords

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInteger(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "Zero"},
		{7, "Seven"},
		{13, "Thirteen"},
		{40, "Forty"},
		{99, "Ninety Nine"},
		{100, "One Hundred"},
		{205, "Two Hundred Five"},
		{999, "Nine Hundred Ninety Nine"},
		{3000, "Three Thousand"},
		{10500, "Ten Thousand Five Hundred"},
		{100000, "One Lakh"},
		{2350000, "Twenty Three Lakh Fifty Thousand"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
		{1000000000, "One Hundred Crore"},
		{9876543210, "Nine Hundred Eighty Seven Crore Sixty Five Lakh Forty Three Thousand Two Hundred Ten"},
		{100000000000000, "One Crore Crore"},
		{-42, "Minus Forty Two"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Integer(c.n), "n=%d", c.n)
	}
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "Three Thousand Taka Only", Amount(decimal.NewFromInt(3000)))
	assert.Equal(t, "Zero Taka Only", Amount(decimal.Zero))
	assert.Equal(t, "Ten Taka and Fifty Poisha Only", Amount(decimal.RequireFromString("10.50")))
	assert.Equal(t, "One Lakh Taka Only", Amount(decimal.NewFromInt(100000)))
	assert.Equal(t, "One Hundred Crore Taka Only", Amount(decimal.NewFromInt(1_000_000_000)))
}
