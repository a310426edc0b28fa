package product

// Product represents a catalog product as served by the invoicing API.
// Monetary fields are decimal strings exactly as the API emits them; they are
// parsed only at computation time so that malformed values surface as
// validation errors instead of silent zeros.
type Product struct {
	ID                  int    `json:"id"`
	Label               string `json:"label"`
	Unit                string `json:"unit"`
	VATRate             string `json:"vat_rate"`
	UnitPrice           string `json:"unit_price"`
	UnitPriceWithoutTax string `json:"unit_price_without_tax"`
	UnitTax             string `json:"unit_tax"`
}
