package update_item

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// Request contains the operator's raw input for a catalog edit. All three
// editable fields are submitted together, the way the edit form sends them.
type Request struct {
	ID    string
	Name  string
	Price string
	Stock string
}

// Interactor handles the update item use case.
type Interactor struct {
	repo       contracts.ItemRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
}

// NewInteractor creates a new update item interactor.
func NewInteractor(
	repo contracts.ItemRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
	}
}

// Execute edits a catalog item's name, price and stock. Only fields that
// actually changed end up in the update mutation; a no-op edit commits
// nothing.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Parse operator input
	id, err := strconv.ParseInt(req.ID, 10, 64)
	if err != nil || id < 0 {
		return domain.ErrInvalidItemID
	}

	price, err := domain.NewMoneyFromString(req.Price)
	if err != nil {
		return domain.ErrInvalidPrice
	}

	stock, err := strconv.ParseInt(req.Stock, 10, 64)
	if err != nil {
		return domain.ErrInvalidStock
	}

	// 2. Load aggregate
	item, err := i.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// 3. Apply domain changes
	if err := item.SetName(req.Name); err != nil {
		return err
	}
	if err := item.SetPrice(price); err != nil {
		return err
	}
	if err := item.SetStock(stock); err != nil {
		return err
	}

	// 4. Create commit plan
	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(item))

	// 5. Add outbox events
	for _, event := range item.DomainEvents() {
		payload, err := i.serializeEvent(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.EnrichEvent(event, payload)
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	// 6. Apply plan
	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// serializeEvent converts a domain event to JSON payload.
func (i *Interactor) serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
