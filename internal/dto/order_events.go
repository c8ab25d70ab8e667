package dto

import "time"

const EventOrderPlaced = "order.placed"

// OrderPlacedEvent is published once an order has been stored.
type OrderPlacedEvent struct {
	Type       string           `json:"type"`
	OrderID    string           `json:"orderId"`
	Customer   string           `json:"customer"`
	Status     string           `json:"status"`
	Total      float64          `json:"total"`
	Items      []OrderEventItem `json:"items"`
	OccurredAt time.Time        `json:"occurredAt"`
}

type OrderEventItem struct {
	MenuItemID string  `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}
