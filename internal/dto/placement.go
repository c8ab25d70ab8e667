package dto

import "foodapp/internal/domain"

// PricedLine is one order line with the unit price it was charged at.
type PricedLine struct {
	MenuItemID string
	Quantity   int
	UnitPrice  float64
}

type PlacementResult struct {
	OrderID string
	Order   domain.PlacedOrder
	Lines   []PricedLine
}
