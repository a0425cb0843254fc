package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/app/pos/queries/get_cart"
	"github.com/light-bringer/pos-service/internal/app/pos/queries/get_sale"
	"github.com/light-bringer/pos-service/internal/app/pos/queries/list_available_items"
	"github.com/light-bringer/pos-service/internal/app/pos/queries/list_campaigns"
	"github.com/light-bringer/pos-service/internal/app/pos/queries/list_events"
	"github.com/light-bringer/pos-service/internal/app/pos/queries/list_onhold_sales"
	"github.com/light-bringer/pos-service/internal/app/pos/queries/list_sales"
	"github.com/light-bringer/pos-service/internal/app/pos/queries/search_items"
	"github.com/light-bringer/pos-service/internal/app/pos/repo"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/add_to_cart"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/cancel_sale"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/create_campaign"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/create_item"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/delete_campaign"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/finalize_sale"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/hold_sale"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/remove_item"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/remove_line"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/reprice_sale"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/resume_sale"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/start_sale"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/update_item"
	"github.com/light-bringer/pos-service/internal/pkg/clock"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// ServiceOptions holds all dependencies for the application. Use cases and
// queries are exposed directly; register UIs call them in process.
type ServiceOptions struct {
	SpannerClient *spanner.Client

	// Catalog
	CreateItem *create_item.Interactor
	UpdateItem *update_item.Interactor
	RemoveItem *remove_item.Interactor

	// Campaigns
	CreateCampaign *create_campaign.Interactor
	DeleteCampaign *delete_campaign.Interactor

	// Sales
	StartSale    *start_sale.Interactor
	AddToCart    *add_to_cart.Interactor
	RemoveLine   *remove_line.Interactor
	HoldSale     *hold_sale.Interactor
	ResumeSale   *resume_sale.Interactor
	FinalizeSale *finalize_sale.Interactor
	CancelSale   *cancel_sale.Interactor
	RepriceSale  *reprice_sale.Interactor

	// Queries
	ListAvailableItems *list_available_items.Query
	SearchItems        *search_items.Query
	ListSales          *list_sales.Query
	ListOnHoldSales    *list_onhold_sales.Query
	GetSale            *get_sale.Query
	GetCart            *get_cart.Query
	ListCampaigns      *list_campaigns.Query
	ListEvents         *list_events.Query
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)
	calc := domain.NewPricingCalculator()
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	// 3. Create repositories
	itemRepo := repo.NewItemRepo(spannerClient, clk)
	saleRepo := repo.NewSaleRepo(spannerClient, clk)
	campaignRepo := repo.NewCampaignRepo(spannerClient)
	outboxRepo := repo.NewOutboxRepo(spannerClient)
	readModel := repo.NewReadModel(spannerClient)
	eventsReadModel := repo.NewEventsReadModel(spannerClient)

	// 4. Create command use cases (write operations)
	repriceSale := reprice_sale.NewInteractor(saleRepo, itemRepo, campaignRepo, outboxRepo, comm, calc)

	return &ServiceOptions{
		SpannerClient: spannerClient,

		CreateItem: create_item.NewInteractor(itemRepo, outboxRepo, comm, clk),
		UpdateItem: update_item.NewInteractor(itemRepo, outboxRepo, comm),
		RemoveItem: remove_item.NewInteractor(itemRepo, outboxRepo, comm, clk),

		CreateCampaign: create_campaign.NewInteractor(campaignRepo, itemRepo, outboxRepo, comm),
		DeleteCampaign: delete_campaign.NewInteractor(campaignRepo, outboxRepo, comm, clk),

		StartSale:    start_sale.NewInteractor(saleRepo, outboxRepo, comm, clk, rnd),
		AddToCart:    add_to_cart.NewInteractor(saleRepo, itemRepo, outboxRepo, comm),
		RemoveLine:   remove_line.NewInteractor(saleRepo, outboxRepo, comm),
		HoldSale:     hold_sale.NewInteractor(saleRepo, outboxRepo, comm),
		ResumeSale:   resume_sale.NewInteractor(saleRepo, outboxRepo, comm),
		FinalizeSale: finalize_sale.NewInteractor(saleRepo, outboxRepo, comm),
		CancelSale:   cancel_sale.NewInteractor(saleRepo, itemRepo, outboxRepo, comm),
		RepriceSale:  repriceSale,

		// 5. Create query use cases (read operations)
		ListAvailableItems: list_available_items.NewQuery(readModel),
		SearchItems:        search_items.NewQuery(readModel),
		ListSales:          list_sales.NewQuery(readModel),
		ListOnHoldSales:    list_onhold_sales.NewQuery(readModel),
		GetSale:            get_sale.NewQuery(readModel),
		GetCart:            get_cart.NewQuery(readModel, repriceSale),
		ListCampaigns:      list_campaigns.NewQuery(readModel),
		ListEvents:         list_events.NewQuery(eventsReadModel),
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
