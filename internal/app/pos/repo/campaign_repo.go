package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/models/m_campaign"
	"github.com/light-bringer/pos-service/internal/pkg/query"
)

// CampaignRepo implements CampaignRepository for Spanner.
type CampaignRepo struct {
	client *spanner.Client
	model  *m_campaign.Model
}

// NewCampaignRepo creates a new CampaignRepo.
func NewCampaignRepo(client *spanner.Client) contracts.CampaignRepository {
	return &CampaignRepo{
		client: client,
		model:  m_campaign.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a campaign rule.
func (r *CampaignRepo) InsertMut(rule *domain.CampaignRule) *spanner.Mutation {
	return r.model.InsertMut(&m_campaign.Data{
		CampID:   rule.ID(),
		ItemID:   rule.ItemID(),
		MinQuan:  rule.MinQuantity(),
		DiscType: string(rule.Kind()),
		DiscVal:  rule.Value(),
	})
}

// DeleteMut creates a mutation for deleting a campaign rule.
func (r *CampaignRepo) DeleteMut(campID string) *spanner.Mutation {
	return r.model.DeleteMut(campID)
}

// Exists checks if a campaign rule exists.
func (r *CampaignRepo) Exists(ctx context.Context, campID string) (bool, error) {
	row, err := r.client.Single().ReadRow(ctx, m_campaign.TableName, spanner.Key{campID}, []string{m_campaign.CampID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, wrapStore("failed to check campaign existence", err)
	}
	return row != nil, nil
}

// RulesForItem retrieves the rules targeting one barcode.
func (r *CampaignRepo) RulesForItem(ctx context.Context, itemID int64) ([]*domain.CampaignRule, error) {
	stmt := query.From(m_campaign.TableName).
		Select(
			m_campaign.CampID,
			m_campaign.ItemID,
			m_campaign.MinQuan,
			m_campaign.DiscType,
			m_campaign.DiscVal,
		).
		Where(query.Eq(m_campaign.ItemID, itemID)).
		OrderBy(m_campaign.MinQuan, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var rules []*domain.CampaignRule
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStore("failed to read campaign rules", err)
		}

		rule, err := scanRule(row)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// RulesForItemsForUpdate retrieves the rules targeting the given barcodes
// inside a read-write transaction, grouped by barcode.
func (r *CampaignRepo) RulesForItemsForUpdate(ctx context.Context, txn *spanner.ReadWriteTransaction, itemIDs []int64) (map[int64][]*domain.CampaignRule, error) {
	grouped := make(map[int64][]*domain.CampaignRule, len(itemIDs))
	if len(itemIDs) == 0 {
		return grouped, nil
	}

	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT %s, %s, %s, %s, %s FROM %s WHERE %s IN UNNEST(@ids)",
			m_campaign.CampID,
			m_campaign.ItemID,
			m_campaign.MinQuan,
			m_campaign.DiscType,
			m_campaign.DiscVal,
			m_campaign.TableName,
			m_campaign.ItemID,
		),
		Params: map[string]interface{}{"ids": itemIDs},
	}

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStore("failed to read campaign rules", err)
		}

		rule, err := scanRule(row)
		if err != nil {
			return nil, err
		}
		grouped[rule.ItemID()] = append(grouped[rule.ItemID()], rule)
	}

	return grouped, nil
}

func scanRule(row *spanner.Row) (*domain.CampaignRule, error) {
	var (
		campID        string
		itemID        int64
		minQuantity   int64
		discountKind  string
		discountValue float64
	)
	if err := row.Columns(&campID, &itemID, &minQuantity, &discountKind, &discountValue); err != nil {
		return nil, fmt.Errorf("failed to parse campaign rule: %w", err)
	}
	return domain.ReconstructCampaignRule(campID, itemID, minQuantity, domain.DiscountKind(discountKind), discountValue), nil
}
