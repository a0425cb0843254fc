package m_cart_item

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the cart_items table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a cart line.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			SaleID,
			CartItemID,
			ItemID,
			ItemCount,
			ItemDiscountPerc,
			ItemDiscountNum,
			ItemTotal,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.SaleID,
			data.CartItemID,
			data.ItemID,
			data.ItemCount,
			data.ItemDiscountPerc,
			data.ItemDiscountNum,
			data.ItemTotal,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific cart line fields.
// The updates map should contain field names as keys and new values.
func (m *Model) UpdateMut(saleID, cartItemID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	// Always update the UpdatedAt timestamp
	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+2)
	values := make([]interface{}, 0, len(updates)+2)

	// Add the full key first
	columns = append(columns, SaleID, CartItemID)
	values = append(values, saleID, cartItemID)

	// Add all update fields
	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a Spanner mutation for deleting a cart line.
func (m *Model) DeleteMut(saleID, cartItemID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{saleID, cartItemID})
}
