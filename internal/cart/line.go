package cart

import "github.com/shopspring/decimal"

// Line is one item's chosen quantity in a session cart. The id matches
// the originating catalog item and is the de-duplication key; the price
// is captured at first add and never re-synced with the catalog.
type Line struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// LineTotal returns price multiplied by quantity.
func (l Line) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
