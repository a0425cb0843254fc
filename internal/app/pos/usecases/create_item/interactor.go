package create_item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/light-bringer/pos-service/internal/app/pos/contracts"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/pkg/clock"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// Request contains the operator's raw input for a new catalog item. Fields
// arrive as text from the register form; parsing and validation happen here.
type Request struct {
	ID    string
	Name  string
	Price string
	Stock string
}

// Interactor handles the create item use case.
type Interactor struct {
	repo       contracts.ItemRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new create item interactor.
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

// Execute creates a new catalog item following the Golden Mutation Pattern.
// The barcode is the primary key, so entering an existing one fails with
// ErrDuplicateItem instead of overwriting the row.
func (i *Interactor) Execute(ctx context.Context, req *Request) (int64, error) {
	// 1. Parse operator input
	id, err := strconv.ParseInt(req.ID, 10, 64)
	if err != nil || id < 0 {
		return 0, domain.ErrInvalidItemID
	}

	price, err := domain.NewMoneyFromString(req.Price)
	if err != nil {
		return 0, domain.ErrInvalidPrice
	}

	stock, err := strconv.ParseInt(req.Stock, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidStock
	}

	// 2. Create domain aggregate
	item, err := domain.NewItem(id, req.Name, price, stock, i.clock)
	if err != nil {
		return 0, err
	}

	// 3. Create commit plan
	plan := committer.NewPlan()

	// 4. Add repository mutation
	plan.Add(i.repo.InsertMut(item))

	// 5. Add outbox events
	for _, event := range item.DomainEvents() {
		payload, err := i.serializeEvent(event)
		if err != nil {
			return 0, fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.EnrichEvent(event, payload)
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	// 6. Apply plan (usecase applies, not handler)
	if err := i.committer.Apply(ctx, plan); err != nil {
		if errors.Is(err, committer.ErrAlreadyExists) {
			return 0, domain.ErrDuplicateItem
		}
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return item.ID(), nil
}

// serializeEvent converts a domain event to JSON payload.
func (i *Interactor) serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
