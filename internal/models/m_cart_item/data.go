package m_cart_item

import "time"

// Data represents the database model for the cart_items table.
type Data struct {
	SaleID           string
	CartItemID       string
	ItemID           int64
	ItemCount        int64
	ItemDiscountPerc float64
	ItemDiscountNum  float64
	ItemTotal        float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
