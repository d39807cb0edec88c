// Package currency formats rupee amounts the way the dashboard displays them:
// two decimals, Indian digit grouping (12,34,567.89) and an optional ₹ symbol.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	Symbol = "₹"
	Empty  = "-"
)

// Format renders amount as INR, e.g. ₹12,34,567.89. A nil amount renders as "-".
func Format(amount *decimal.Decimal) string {
	if amount == nil {
		return Empty
	}
	return format(*amount, Symbol)
}

// FormatNull renders a nullable amount, "-" when it is not set.
func FormatNull(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return Empty
	}
	return format(amount.Decimal, Symbol)
}

func format(amount decimal.Decimal, symbol string) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	b.WriteString(groupIndian(intPart))
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// groupIndian inserts separators after the last three digits, then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}
