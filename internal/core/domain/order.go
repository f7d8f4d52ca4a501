package domain

import "time"

// OrderItem is one purchased line within an order.
type OrderItem struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order references the purchasing user and carries its line items.
// Total is derived from the items at creation time and stored denormalized.
type Order struct {
	ID     string      `json:"id"`
	UserID string      `json:"user"`
	Items  []OrderItem `json:"items"`
	Total  float64     `json:"total"`
	Date   time.Time   `json:"date"`
}
