package m_item

// Field name constants for the items table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "items"

	ItemID    = "item_id"
	ItemName  = "item_name"
	ItemPrice = "item_price"
	ItemStock = "item_stock"
	CreatedAt = "created_at"
	UpdatedAt = "updated_at"
)
