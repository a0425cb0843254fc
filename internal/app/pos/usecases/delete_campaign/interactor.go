package delete_campaign

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/pkg/clock"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// Request identifies the campaign rule to delete.
type Request struct {
	CampID string
}

// Interactor handles the delete campaign use case.
type Interactor struct {
	repo       contracts.CampaignRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new delete campaign interactor.
func NewInteractor(
	repo contracts.CampaignRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute deletes a campaign rule. Lines discounted under the rule keep their
// stored values until their sale is repriced again.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	exists, err := i.repo.Exists(ctx, req.CampID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrCampaignNotFound
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(req.CampID))

	event := &domain.CampaignDeletedEvent{
		CampaignID: req.CampID,
		DeletedAt:  i.clock.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload))))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
