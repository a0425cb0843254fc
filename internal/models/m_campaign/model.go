package m_campaign

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the campaigns table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a campaign rule.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			CampID,
			ItemID,
			MinQuan,
			DiscType,
			DiscVal,
			CreatedAt,
		},
		[]interface{}{
			data.CampID,
			data.ItemID,
			data.MinQuan,
			data.DiscType,
			data.DiscVal,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a campaign rule.
func (m *Model) DeleteMut(campID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{campID})
}
