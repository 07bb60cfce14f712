package domain

import "time"

// Order status values as stored by the shop database. Only completed
// orders count towards revenue.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order represents a customer order with its line items. Orders are
// immutable once created and owned by the order store.
type Order struct {
	ID        string           `json:"id"`
	OrderDate time.Time        `json:"orderDate"`
	Total     float64          `json:"total"`
	Status    string           `json:"status"`
	Items     []*OrderLineItem `json:"items"`
}

// OrderLineItem links an order to a product. Subtotal is persisted as
// quantity * price; the aggregation math relies on that invariant.
type OrderLineItem struct {
	ID        string   `json:"id"`
	OrderID   string   `json:"orderId"`
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Subtotal  float64  `json:"subtotal"`
	Product   *Product `json:"product,omitempty"`
}

// Product is referenced, never owned, by line items.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
