package create_campaign

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// Request contains the operator's raw input for a new campaign rule.
type Request struct {
	ItemID      string
	MinQuantity string
	Kind        string
	Value       string
}

// Interactor handles the create campaign use case.
type Interactor struct {
	repo       contracts.CampaignRepository
	itemRepo   contracts.ItemRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
}

// NewInteractor creates a new create campaign interactor.
func NewInteractor(
	repo contracts.CampaignRepository,
	itemRepo contracts.ItemRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		repo:       repo,
		itemRepo:   itemRepo,
		outboxRepo: outboxRepo,
		committer:  committer,
	}
}

// Execute creates a campaign rule for an existing catalog item. Open sales
// pick the rule up on their next repricing; nothing is recomputed eagerly.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	// 1. Parse operator input
	itemID, err := strconv.ParseInt(req.ItemID, 10, 64)
	if err != nil || itemID < 0 {
		return "", domain.ErrInvalidItemID
	}

	minQuantity, err := strconv.ParseInt(req.MinQuantity, 10, 64)
	if err != nil {
		return "", domain.ErrInvalidCampaignRule
	}

	value, err := strconv.ParseFloat(req.Value, 64)
	if err != nil {
		return "", domain.ErrInvalidCampaignRule
	}

	// 2. The rule must target a real item
	exists, err := i.itemRepo.Exists(ctx, itemID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrItemNotFound
	}

	// 3. Create domain object
	rule, err := domain.NewCampaignRule(uuid.New().String(), itemID, minQuantity, domain.DiscountKind(req.Kind), value)
	if err != nil {
		return "", err
	}

	// 4. Two rules at the same quantity would shadow each other; reject the
	// second so operators fix the existing rule instead
	existing, err := i.repo.RulesForItem(ctx, itemID)
	if err != nil {
		return "", err
	}
	for _, r := range existing {
		if r.MinQuantity() == rule.MinQuantity() {
			return "", domain.ErrDuplicateCampaignTier
		}
	}

	// 5. Create commit plan
	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(rule))

	event := &domain.CampaignCreatedEvent{
		CampaignID:  rule.ID(),
		ItemID:      rule.ItemID(),
		MinQuantity: rule.MinQuantity(),
		Kind:        string(rule.Kind()),
		Value:       rule.Value(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to serialize event: %w", err)
	}
	plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload))))

	// 6. Apply plan
	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return rule.ID(), nil
}
