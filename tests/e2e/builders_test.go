package e2e

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pos-service/internal/app/pos/usecases/add_to_cart"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/create_campaign"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/create_item"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/start_sale"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/update_item"
)

// createItem registers a catalog item through the use case layer.
func createItem(t *testing.T, services *Services, id int64, name string, price string, stock int64) {
	t.Helper()

	_, err := services.CreateItem.Execute(ctx(), &create_item.Request{
		ID:    strconv.FormatInt(id, 10),
		Name:  name,
		Price: price,
		Stock: strconv.FormatInt(stock, 10),
	})
	require.NoError(t, err, "failed to create item %d", id)
}

// createCampaign registers a campaign rule and returns its id.
func createCampaign(t *testing.T, services *Services, itemID, minQuantity int64, kind string, value string) string {
	t.Helper()

	campID, err := services.CreateCampaign.Execute(ctx(), &create_campaign.Request{
		ItemID:      strconv.FormatInt(itemID, 10),
		MinQuantity: strconv.FormatInt(minQuantity, 10),
		Kind:        kind,
		Value:       value,
	})
	require.NoError(t, err, "failed to create campaign for item %d", itemID)

	return campID
}

// updateItemPrice edits a catalog item through the use case layer.
func updateItemPrice(t *testing.T, services *Services, id int64, name string, price string, stock int64) {
	t.Helper()

	err := services.UpdateItem.Execute(ctx(), &update_item.Request{
		ID:    strconv.FormatInt(id, 10),
		Name:  name,
		Price: price,
		Stock: strconv.FormatInt(stock, 10),
	})
	require.NoError(t, err, "failed to update item %d", id)
}

// startSale opens a sale and returns its generated id.
func startSale(t *testing.T, services *Services, customerName string) string {
	t.Helper()

	saleID, err := services.StartSale.Execute(ctx(), &start_sale.Request{
		CustomerName: customerName,
	})
	require.NoError(t, err, "failed to start sale")

	return saleID
}

// addToCart adds a quantity of an item to a sale's cart.
func addToCart(t *testing.T, services *Services, saleID string, itemID, count int64) {
	t.Helper()

	err := services.AddToCart.Execute(ctx(), &add_to_cart.Request{
		SaleID: saleID,
		ItemID: strconv.FormatInt(itemID, 10),
		Count:  strconv.FormatInt(count, 10),
	})
	require.NoError(t, err, "failed to add item %d to sale %s", itemID, saleID)
}
