package e2e

import (
	"context"
	"math/rand"
	"testing"

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
	"github.com/light-bringer/pos-service/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	CreateItem     *create_item.Interactor
	UpdateItem     *update_item.Interactor
	RemoveItem     *remove_item.Interactor
	CreateCampaign *create_campaign.Interactor
	DeleteCampaign *delete_campaign.Interactor
	StartSale      *start_sale.Interactor
	AddToCart      *add_to_cart.Interactor
	RemoveLine     *remove_line.Interactor
	RepriceSale    *reprice_sale.Interactor
	HoldSale       *hold_sale.Interactor
	ResumeSale     *resume_sale.Interactor
	FinalizeSale   *finalize_sale.Interactor
	CancelSale     *cancel_sale.Interactor

	// Queries
	ListAvailableItems *list_available_items.Query
	SearchItems        *search_items.Query
	ListSales          *list_sales.Query
	ListOnHoldSales    *list_onhold_sales.Query
	GetSale            *get_sale.Query
	GetCart            *get_cart.Query
	ListCampaigns      *list_campaigns.Query
	ListEvents         *list_events.Query

	// Infrastructure
	Clock  clock.Clock
	Client *spanner.Client
}

func buildServices(client *spanner.Client, clk clock.Clock) *Services {
	comm := committer.NewCommitter(client)
	calc := domain.NewPricingCalculator()
	// Seeded so colliding sale ids reproduce instead of flaking.
	rnd := rand.New(rand.NewSource(42))

	itemRepo := repo.NewItemRepo(client, clk)
	saleRepo := repo.NewSaleRepo(client, clk)
	campaignRepo := repo.NewCampaignRepo(client)
	outboxRepo := repo.NewOutboxRepo(client)
	readModel := repo.NewReadModel(client)
	eventsReadModel := repo.NewEventsReadModel(client)

	repriceSale := reprice_sale.NewInteractor(saleRepo, itemRepo, campaignRepo, outboxRepo, comm, calc)

	return &Services{
		CreateItem:     create_item.NewInteractor(itemRepo, outboxRepo, comm, clk),
		UpdateItem:     update_item.NewInteractor(itemRepo, outboxRepo, comm),
		RemoveItem:     remove_item.NewInteractor(itemRepo, outboxRepo, comm, clk),
		CreateCampaign: create_campaign.NewInteractor(campaignRepo, itemRepo, outboxRepo, comm),
		DeleteCampaign: delete_campaign.NewInteractor(campaignRepo, outboxRepo, comm, clk),
		StartSale:      start_sale.NewInteractor(saleRepo, outboxRepo, comm, clk, rnd),
		AddToCart:      add_to_cart.NewInteractor(saleRepo, itemRepo, outboxRepo, comm),
		RemoveLine:     remove_line.NewInteractor(saleRepo, outboxRepo, comm),
		RepriceSale:    repriceSale,
		HoldSale:       hold_sale.NewInteractor(saleRepo, outboxRepo, comm),
		ResumeSale:     resume_sale.NewInteractor(saleRepo, outboxRepo, comm),
		FinalizeSale:   finalize_sale.NewInteractor(saleRepo, outboxRepo, comm),
		CancelSale:     cancel_sale.NewInteractor(saleRepo, itemRepo, outboxRepo, comm),

		ListAvailableItems: list_available_items.NewQuery(readModel),
		SearchItems:        search_items.NewQuery(readModel),
		ListSales:          list_sales.NewQuery(readModel),
		ListOnHoldSales:    list_onhold_sales.NewQuery(readModel),
		GetSale:            get_sale.NewQuery(readModel),
		GetCart:            get_cart.NewQuery(readModel, repriceSale),
		ListCampaigns:      list_campaigns.NewQuery(readModel),
		ListEvents:         list_events.NewQuery(eventsReadModel),

		Clock:  clk,
		Client: client,
	}
}

// setupTest initializes all dependencies for E2E testing.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)
	return buildServices(client, clock.NewRealClock()), cleanup
}

// setupTestWithMockClock initializes services with a controllable mock clock.
func setupTestWithMockClock(t *testing.T) (*Services, *clock.MockClock, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)
	mockClock := testutil.NewMockClock()
	return buildServices(client, mockClock), mockClock, cleanup
}

// ctx returns a context for testing.
func ctx() context.Context {
	return context.Background()
}
