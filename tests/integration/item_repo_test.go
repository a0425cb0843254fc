//go:build integration

package integration

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/app/pos/repo"
	"github.com/light-bringer/pos-service/internal/pkg/clock"
	"github.com/light-bringer/pos-service/tests/testutil"
)

func TestItemRepository_InsertAndGet(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	clk := clock.NewRealClock()
	repository := repo.NewItemRepo(client, clk)

	item, err := domain.NewItem(100001, "Espresso Beans", domain.NewMoneyFromFloat64(24.90), 40, clk)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(item)})
	require.NoError(t, err)

	loaded, err := repository.GetByID(ctx, 100001)
	require.NoError(t, err)

	assert.Equal(t, int64(100001), loaded.ID())
	assert.Equal(t, "Espresso Beans", loaded.Name())
	assert.Equal(t, 24.90, loaded.Price().Float64())
	assert.Equal(t, int64(40), loaded.Stock())
	assert.False(t, loaded.Changes().HasChanges())
}

func TestItemRepository_DuplicateInsertFails(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	clk := clock.NewRealClock()
	repository := repo.NewItemRepo(client, clk)
	testutil.CreateTestItem(t, client, 100001, "Mug", 9.90, 25)

	item, err := domain.NewItem(100001, "Other Mug", domain.NewMoneyFromFloat64(5), 1, clk)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(item)})
	assert.Error(t, err, "second insert with the same barcode must fail")
}

func TestItemRepository_UpdateMut(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	clk := clock.NewRealClock()
	repository := repo.NewItemRepo(client, clk)
	testutil.CreateTestItem(t, client, 100001, "Mug", 9.90, 25)

	ctx := context.Background()

	t.Run("clean item yields no mutation", func(t *testing.T) {
		item, err := repository.GetByID(ctx, 100001)
		require.NoError(t, err)

		assert.Nil(t, repository.UpdateMut(item))
	})

	t.Run("only dirty fields are written", func(t *testing.T) {
		item, err := repository.GetByID(ctx, 100001)
		require.NoError(t, err)
		require.NoError(t, item.SetPrice(domain.NewMoneyFromFloat64(11.90)))

		_, err = client.Apply(ctx, []*spanner.Mutation{repository.UpdateMut(item)})
		require.NoError(t, err)

		data := testutil.GetItemByID(t, client, 100001)
		assert.Equal(t, 11.90, data.ItemPrice)
		assert.Equal(t, "Mug", data.ItemName)
		assert.Equal(t, int64(25), data.ItemStock)
	})
}

func TestItemRepository_DeleteMut(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	clk := clock.NewRealClock()
	repository := repo.NewItemRepo(client, clk)
	testutil.CreateTestItem(t, client, 100001, "Mug", 9.90, 25)

	ctx := context.Background()
	_, err := client.Apply(ctx, []*spanner.Mutation{repository.DeleteMut(100001)})
	require.NoError(t, err)

	_, err = repository.GetByID(ctx, 100001)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestItemRepository_Exists(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	clk := clock.NewRealClock()
	repository := repo.NewItemRepo(client, clk)
	testutil.CreateTestItem(t, client, 100001, "Mug", 9.90, 25)

	ctx := context.Background()

	exists, err := repository.Exists(ctx, 100001)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repository.Exists(ctx, 999999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestItemRepository_PricesForUpdate(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	clk := clock.NewRealClock()
	repository := repo.NewItemRepo(client, clk)
	testutil.CreateTestItem(t, client, 100001, "Beans", 24.90, 40)
	testutil.CreateTestItem(t, client, 100002, "Mug", 9.90, 25)

	ctx := context.Background()
	_, err := client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		// 999999 is absent from the catalog and must be absent from the map.
		prices, err := repository.PricesForUpdate(ctx, txn, []int64{100001, 100002, 999999})
		require.NoError(t, err)

		require.Len(t, prices, 2)
		assert.Equal(t, 24.90, prices[100001].Float64())
		assert.Equal(t, 9.90, prices[100002].Float64())
		return nil
	})
	require.NoError(t, err)
}
