package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
)

// The API serves and accepts monetary values as decimal strings. All
// arithmetic runs on shopspring decimals; floats are never involved so a
// malformed input can only surface as an error, not as NaN.

// parseDecimal parses a decimal string coming from the API or the form.
// Empty and non-numeric values are rejected.
func parseDecimal(value string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(value))
}

// lineSubtotal computes unit price x quantity.
func lineSubtotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// lineTax computes the VAT amount for one line: subtotal x rate/100.
// Only the final tax figure is ever rounded.
func lineTax(unitPrice decimal.Decimal, vatRate decimal.Decimal, quantity int) decimal.Decimal {
	return lineSubtotal(unitPrice, quantity).Mul(vatRate.Div(oneHundred))
}

// formatAmount renders a monetary amount with exactly two decimal places,
// rounding half away from zero.
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

var oneHundred = decimal.NewFromInt(100)
