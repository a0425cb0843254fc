package m_item

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the items table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an item. A plain Insert
// is used so a second insert with the same barcode fails instead of clobbering
// the existing row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			ItemID,
			ItemName,
			ItemPrice,
			ItemStock,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.ItemID,
			data.ItemName,
			data.ItemPrice,
			data.ItemStock,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific item fields.
// The updates map should contain field names as keys and new values.
func (m *Model) UpdateMut(itemID int64, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	// Always update the UpdatedAt timestamp
	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	// Add item ID first
	columns = append(columns, ItemID)
	values = append(values, itemID)

	// Add all update fields
	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a Spanner mutation for deleting an item (hard delete).
func (m *Model) DeleteMut(itemID int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{itemID})
}
