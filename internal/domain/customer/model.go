package customer

import "fmt"

// Customer represents a billable customer as served by the invoicing API.
// The reference is immutable once selected on a form; only its ID is ever
// sent back to the server.
type Customer struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Address     string `json:"address"`
	ZipCode     string `json:"zip_code"`
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}
