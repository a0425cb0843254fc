package list_available_items

import (
	"context"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
)

// Query handles the list available items query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list available items query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves the catalog items that can currently be sold (stock on
// hand greater than zero).
func (q *Query) Execute(ctx context.Context) ([]*contracts.ItemDTO, error) {
	return q.readModel.ListAvailableItems(ctx)
}
