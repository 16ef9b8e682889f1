package domain

import (
	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// Product is the catalog snapshot referenced by an order line.
type Product struct {
	ID       string
	Title    string
	ImageURL string
	Price    decimal.Decimal
}

type OrderItem struct {
	ID        uuid.UUID
	ProductID string
	Title     string
	ImageURL  string
	Quantity  int
	Price     decimal.Decimal
}

func (i OrderItem) LineTotal() (decimal.Decimal, error) {
	qty, err := decimal.New(int64(i.Quantity), 0)
	if err != nil {
		return decimal.Zero, err
	}
	return i.Price.Mul(qty)
}

type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}
