package m_cart_item

// Field name constants for the cart_items table. The table is interleaved in
// sales, keyed (sale_id, cart_item_id).
const (
	TableName = "cart_items"

	SaleID           = "sale_id"
	CartItemID       = "cart_item_id"
	ItemID           = "item_id"
	ItemCount        = "item_count"
	ItemDiscountPerc = "item_discount_perc"
	ItemDiscountNum  = "item_discount_num"
	ItemTotal        = "item_total"
	CreatedAt        = "created_at"
	UpdatedAt        = "updated_at"
)
