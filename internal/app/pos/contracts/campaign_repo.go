package contracts

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
)

// CampaignRepository defines the interface for campaign rule persistence.
type CampaignRepository interface {
	// InsertMut creates a mutation for inserting a campaign rule
	InsertMut(rule *domain.CampaignRule) *spanner.Mutation

	// DeleteMut creates a mutation for deleting a campaign rule
	DeleteMut(campID string) *spanner.Mutation

	// Exists checks if a campaign rule exists
	Exists(ctx context.Context, campID string) (bool, error)

	// RulesForItem retrieves the rules targeting one barcode
	RulesForItem(ctx context.Context, itemID int64) ([]*domain.CampaignRule, error)

	// RulesForItemsForUpdate retrieves the rules targeting the given barcodes
	// inside a read-write transaction, grouped by barcode
	RulesForItemsForUpdate(ctx context.Context, txn *spanner.ReadWriteTransaction, itemIDs []int64) (map[int64][]*domain.CampaignRule, error)
}
