package models

import "time"

// CartLine is one (user, product, quantity) row. At most one line exists per
// (user, product) pair; adding an already-present product merges quantities.
type CartLine struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ProductID int       `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartView is the read model for GET /cart. Line totals are computed against
// the product's current price, never a price remembered at add time.
type CartView struct {
	Items      []CartViewItem `json:"items"`
	TotalPrice float64        `json:"total_price"`
	Skipped    int            `json:"skipped,omitempty"`
}

type CartViewItem struct {
	LineID      int     `json:"line_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"line_total"`
}
