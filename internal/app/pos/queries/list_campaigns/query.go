package list_campaigns

import (
	"context"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
)

// Query handles the list campaigns query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list campaigns query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves all campaign rules, grouped by item in the result order.
func (q *Query) Execute(ctx context.Context) ([]*contracts.CampaignDTO, error) {
	return q.readModel.ListCampaigns(ctx)
}
