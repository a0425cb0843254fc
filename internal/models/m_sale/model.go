package m_sale

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the sales table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a sale. A plain Insert is
// used so id collisions surface as AlreadyExists and the caller can retry with
// a fresh id.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			SaleID,
			SaleDate,
			CustomerName,
			TotalDiscountPerc,
			TotalDiscountNum,
			TotalAmount,
			PaymentMethod,
			PaymentInfo,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.SaleID,
			data.SaleDate,
			data.CustomerName,
			data.TotalDiscountPerc,
			data.TotalDiscountNum,
			data.TotalAmount,
			data.PaymentMethod,
			data.PaymentInfo,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific sale fields.
// The updates map should contain field names as keys and new values.
func (m *Model) UpdateMut(saleID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	// Always update the UpdatedAt timestamp
	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	// Add sale ID first
	columns = append(columns, SaleID)
	values = append(values, saleID)

	// Add all update fields
	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a Spanner mutation for deleting a sale. Cart lines are
// interleaved in the sale row, so this cascades to them.
func (m *Model) DeleteMut(saleID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{saleID})
}
