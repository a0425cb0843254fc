package search_items

import (
	"context"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
)

// Request contains substring filters for the catalog search. Empty fields
// don't constrain the result; filled fields combine with AND.
type Request struct {
	ID    string
	Name  string
	Price string
	Stock string
}

// Query handles the search items query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new search items query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves catalog items matching the typed filters. Every field is
// a substring match, including the numeric ones, so "99" finds prices like
// 19.99 as well as 99.00.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ItemDTO, error) {
	filter := &contracts.ItemFilter{
		ID:    req.ID,
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	}

	return q.readModel.SearchItems(ctx, filter)
}
