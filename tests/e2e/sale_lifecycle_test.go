package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/app/pos/queries/get_cart"
	"github.com/light-bringer/pos-service/internal/app/pos/queries/get_sale"
	"github.com/light-bringer/pos-service/internal/app/pos/queries/list_sales"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/add_to_cart"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/finalize_sale"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/hold_sale"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/resume_sale"
	"github.com/light-bringer/pos-service/tests/testutil"
)

// TestSaleWithCampaignDiscount walks the canonical register flow: a 100.00
// item with 5 on hand and a 10% discount from 3 units.
func TestSaleWithCampaignDiscount(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	createItem(t, services, 100001, "Espresso Beans", "100", 5)
	createCampaign(t, services, 100001, 3, "percent", "10")

	saleID := startSale(t, services, "Ada")
	assert.LessOrEqual(t, len(saleID), 15)
	testutil.AssertOutboxEvent(t, services.Client, "sale.started")

	// Add 3 units: campaign kicks in at the cart view.
	addToCart(t, services, saleID, 100001, 3)

	cart, err := services.GetCart.Execute(ctx(), &get_cart.Request{SaleID: saleID})
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(3), cart.Lines[0].Count)
	assert.Equal(t, 10.0, cart.Lines[0].DiscountPerc)
	assert.Equal(t, 30.0, cart.Lines[0].DiscountNum)
	assert.Equal(t, 270.0, cart.Lines[0].Total)
	assert.Equal(t, 270.0, cart.Sale.TotalAmount)
	assert.Equal(t, 30.0, cart.Sale.TotalDiscountNum)

	stock := testutil.GetItemByID(t, services.Client, 100001)
	assert.Equal(t, int64(2), stock.ItemStock)

	// Add 2 more: merges into the same line, takes the last of the stock.
	addToCart(t, services, saleID, 100001, 2)

	cart, err = services.GetCart.Execute(ctx(), &get_cart.Request{SaleID: saleID})
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(5), cart.Lines[0].Count)
	assert.Equal(t, 450.0, cart.Lines[0].Total)
	assert.Equal(t, 450.0, cart.Sale.TotalAmount)

	stock = testutil.GetItemByID(t, services.Client, 100001)
	assert.Equal(t, int64(0), stock.ItemStock)

	// The shelf is empty now.
	err = services.AddToCart.Execute(ctx(), &add_to_cart.Request{
		SaleID: saleID,
		ItemID: "100001",
		Count:  "1",
	})
	assert.ErrorIs(t, err, domain.ErrOutOfStock)

	stock = testutil.GetItemByID(t, services.Client, 100001)
	assert.Equal(t, int64(0), stock.ItemStock, "failed add must not touch stock")
}

func TestHoldAndResumeSale(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	createItem(t, services, 100001, "Mug", "9.90", 25)
	saleID := startSale(t, services, "Ada")
	addToCart(t, services, saleID, 100001, 2)

	err := services.HoldSale.Execute(ctx(), &hold_sale.Request{SaleID: saleID})
	require.NoError(t, err)
	testutil.AssertOutboxEvent(t, services.Client, "sale.held")

	held, err := services.ListOnHoldSales.Execute(ctx())
	require.NoError(t, err)
	require.Len(t, held, 1)
	assert.Equal(t, saleID, held[0].SaleID)
	assert.True(t, held[0].OnHold)

	err = services.ResumeSale.Execute(ctx(), &resume_sale.Request{SaleID: saleID})
	require.NoError(t, err)
	testutil.AssertOutboxEvent(t, services.Client, "sale.resumed")

	// The cart survived the hold untouched.
	cart, err := services.GetCart.Execute(ctx(), &get_cart.Request{SaleID: saleID})
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(2), cart.Lines[0].Count)
}

func TestFinalizeSale(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	createItem(t, services, 100001, "Mug", "10", 25)

	t.Run("cash", func(t *testing.T) {
		saleID := startSale(t, services, "Ada")
		addToCart(t, services, saleID, 100001, 2)

		err := services.FinalizeSale.Execute(ctx(), &finalize_sale.Request{
			SaleID: saleID,
			Method: "cash",
		})
		require.NoError(t, err)
		testutil.AssertOutboxEvent(t, services.Client, "sale.finalized")

		sale, err := services.GetSale.Execute(ctx(), &get_sale.Request{SaleID: saleID})
		require.NoError(t, err)
		assert.Equal(t, "cash", sale.PaymentMethod)
		assert.False(t, sale.OnHold)

		// Settled sales stay out of the on-hold list.
		held, err := services.ListOnHoldSales.Execute(ctx())
		require.NoError(t, err)
		for _, h := range held {
			assert.NotEqual(t, saleID, h.SaleID)
		}
	})

	t.Run("bank transfer keeps the reference", func(t *testing.T) {
		saleID := startSale(t, services, "Grace")
		addToCart(t, services, saleID, 100001, 1)

		err := services.FinalizeSale.Execute(ctx(), &finalize_sale.Request{
			SaleID:    saleID,
			Method:    "bank-transfer",
			Reference: "G. Hopper",
		})
		require.NoError(t, err)

		sale, err := services.GetSale.Execute(ctx(), &get_sale.Request{SaleID: saleID})
		require.NoError(t, err)
		assert.Equal(t, "bank-transfer", sale.PaymentMethod)
		assert.Equal(t, "G. Hopper", sale.PaymentInfo)
	})

	t.Run("in-progress is rejected", func(t *testing.T) {
		saleID := startSale(t, services, "")

		err := services.FinalizeSale.Execute(ctx(), &finalize_sale.Request{
			SaleID: saleID,
			Method: "in-progress",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)
	})
}

func TestListSales(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	createItem(t, services, 100001, "Mug", "10", 25)

	adaID := startSale(t, services, "Ada Lovelace")
	startSale(t, services, "Grace Hopper")

	t.Run("no filter returns all", func(t *testing.T) {
		sales, err := services.ListSales.Execute(ctx(), &list_sales.Request{})
		require.NoError(t, err)
		assert.Len(t, sales, 2)
	})

	t.Run("customer substring", func(t *testing.T) {
		sales, err := services.ListSales.Execute(ctx(), &list_sales.Request{Customer: "Lovel"})
		require.NoError(t, err)
		require.Len(t, sales, 1)
		assert.Equal(t, adaID, sales[0].SaleID)
	})
}

// TestGetSaleDoesNotReprice pins the receipt semantics: a settled sale shows
// its stored totals even after the catalog price changed.
func TestGetSaleDoesNotReprice(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	createItem(t, services, 100001, "Mug", "10", 25)
	saleID := startSale(t, services, "Ada")
	addToCart(t, services, saleID, 100001, 2)

	// Settle the totals via the cart view, then finalize.
	_, err := services.GetCart.Execute(ctx(), &get_cart.Request{SaleID: saleID})
	require.NoError(t, err)
	require.NoError(t, services.FinalizeSale.Execute(ctx(), &finalize_sale.Request{
		SaleID: saleID,
		Method: "cash",
	}))

	// Price doubles after settlement.
	updateItemPrice(t, services, 100001, "Mug", "20", 23)

	sale, err := services.GetSale.Execute(ctx(), &get_sale.Request{SaleID: saleID})
	require.NoError(t, err)
	assert.Equal(t, 20.0, sale.TotalAmount, "receipt keeps the settled total")
}
