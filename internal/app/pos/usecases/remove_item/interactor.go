package remove_item

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/pkg/clock"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// Request identifies the catalog item to delete.
type Request struct {
	ID string
}

// Interactor handles the remove item use case.
type Interactor struct {
	repo       contracts.ItemRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new remove item interactor.
func NewInteractor(
	repo contracts.ItemRepository,
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

// Execute hard-deletes a catalog item. Cart lines referencing the barcode are
// left in place: they keep their stored totals, stop qualifying for campaign
// repricing, and show up as dangling in the cart view.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	id, err := strconv.ParseInt(req.ID, 10, 64)
	if err != nil || id < 0 {
		return domain.ErrInvalidItemID
	}

	exists, err := i.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrItemNotFound
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(id))

	event := &domain.ItemRemovedEvent{
		ItemID:    id,
		RemovedAt: i.clock.Now(),
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
