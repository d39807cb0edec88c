package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234.56", "₹1,234.56"},
		{"1000", "₹1,000.00"},
		{"0.99", "₹0.99"},
		{"0", "₹0.00"},
		{"1234567.89", "₹12,34,567.89"},
		{"1000000", "₹10,00,000.00"},
		{"123456789", "₹12,34,56,789.00"},
		{"999.999", "₹1,000.00"},
		{"-1234.5", "-₹1,234.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(amount(tt.in)), tt.in)
	}
}

func TestFormat_Nil(t *testing.T) {
	assert.Equal(t, "-", Format(nil))
	assert.Equal(t, "-", FormatNull(decimal.NullDecimal{}))
}

func TestFormatNull(t *testing.T) {
	assert.Equal(t, "₹2,847.00", FormatNull(decimal.NewNullDecimal(decimal.NewFromInt(2847))))
}

func TestGroupIndian(t *testing.T) {
	assert.Equal(t, "1", groupIndian("1"))
	assert.Equal(t, "123", groupIndian("123"))
	assert.Equal(t, "1,234", groupIndian("1234"))
	assert.Equal(t, "12,345", groupIndian("12345"))
	assert.Equal(t, "1,23,456", groupIndian("123456"))
}
