package domain

import "time"

const OrderCollection = "order"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type OrderItem struct {
	MenuItemID string `json:"menu_item_id" bson:"menu_item_id" validate:"required" jsonschema:"title=Menu Item Id,description=Referenced menu item id as string"`
	Quantity   int    `json:"quantity" bson:"quantity" validate:"gte=1" jsonschema:"title=Quantity,description=Quantity ordered,minimum=1"`
}

// Order is the order as placed by a customer. It carries no total: totals
// are computed from current menu prices, never accepted from the client.
type Order struct {
	CustomerName    string      `json:"customer_name" bson:"customer_name" validate:"required" jsonschema:"title=Customer Name,description=Customer full name,minLength=1"`
	CustomerPhone   string      `json:"customer_phone" bson:"customer_phone" validate:"required" jsonschema:"title=Customer Phone,description=Contact phone,minLength=1"`
	CustomerAddress string      `json:"customer_address" bson:"customer_address" validate:"required" jsonschema:"title=Customer Address,description=Delivery address,minLength=1"`
	Items           []OrderItem `json:"items" bson:"items" validate:"required,min=1,dive" jsonschema:"title=Items,description=List of items in the order,minItems=1"`
	Notes           *string     `json:"notes,omitempty" bson:"notes,omitempty" jsonschema:"title=Notes,description=Special instructions"`
	Status          string      `json:"status,omitempty" bson:"status,omitempty" jsonschema:"title=Status,description=Order status: pending/confirmed/delivered/cancelled,default=pending"`
}

func (o *Order) ApplyDefaults() {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
}

// PlacedOrder is the persisted order document.
type PlacedOrder struct {
	Order     `bson:",inline"`
	Total     float64   `json:"total" bson:"total"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// OrderReceipt is what the caller gets back after placing an order.
type OrderReceipt struct {
	ID     string  `json:"id"`
	Total  float64 `json:"total"`
	Status string  `json:"status"`
}
