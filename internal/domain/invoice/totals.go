package invoice

import (
	"github.com/shopspring/decimal"
)

// Totals holds the live display figures for an in-progress form, each
// formatted with two decimal places.
type Totals struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// ComputeTotals folds the active form lines into subtotal, tax and total.
//
// The tax figure sums the catalog's precomputed unit tax per line rather than
// re-deriving it from the VAT rate. This is a deliberately separate path from
// the payload builder, which computes tax from user-entered values: the two
// read different sources of truth and must stay independent.
func ComputeTotals(lines []FormLine) (Totals, error) {
	subtotal := decimal.Zero
	tax := decimal.Zero

	for _, line := range lines {
		unitPrice, err := parseDecimal(line.Product.UnitPrice)
		if err != nil {
			return Totals{}, NewValidationError(line.Product.ID, "unit_price", "must be a decimal string")
		}
		unitTax, err := parseDecimal(line.Product.UnitTax)
		if err != nil {
			return Totals{}, NewValidationError(line.Product.ID, "unit_tax", "must be a decimal string")
		}

		quantity := decimal.NewFromInt(int64(line.Quantity))
		subtotal = subtotal.Add(unitPrice.Mul(quantity))
		tax = tax.Add(unitTax.Mul(quantity))
	}

	return Totals{
		Subtotal: formatAmount(subtotal),
		Tax:      formatAmount(tax),
		Total:    formatAmount(subtotal.Add(tax)),
	}, nil
}
