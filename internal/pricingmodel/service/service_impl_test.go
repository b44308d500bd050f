package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/fleetrate/internal/config"
	"github.com/smallbiznis/fleetrate/internal/migration"
	"github.com/smallbiznis/fleetrate/internal/pricingmodel/domain"
	"github.com/smallbiznis/fleetrate/internal/pricingmodel/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newTestService(t *testing.T, dsn string) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migration.RunDDL(db))

	svc := &Service{
		db:       db,
		log:      zaptest.NewLogger(t),
		repo:     repository.Provide(),
		defaults: config.NewDefaultPricingHolderFromItems(config.DefaultPriceList()),
	}
	return svc, db
}

func TestCreatePricingModel(t *testing.T) {
	svc, db := newTestService(t, "file:catalog_create?mode=memory&cache=shared")
	ctx := context.Background()

	t.Run("RequiresName", func(t *testing.T) {
		_, err := svc.Create(ctx, "")
		assert.ErrorIs(t, err, domain.ErrNameRequired)

		_, err = svc.Create(ctx, "   ")
		assert.ErrorIs(t, err, domain.ErrNameRequired)
	})

	t.Run("ReturnsFreshID", func(t *testing.T) {
		id, err := svc.Create(ctx, "Standard")
		assert.NoError(t, err)
		assert.Len(t, id, 36)
	})

	t.Run("DuplicateNameConflicts", func(t *testing.T) {
		_, err := svc.Create(ctx, "Standard")
		assert.ErrorIs(t, err, domain.ErrModelExists)

		var count int64
		require.NoError(t, db.Raw(`SELECT COUNT(*) FROM pricingmodels WHERE name = ?`, "Standard").Scan(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestUpdatePricingModel(t *testing.T) {
	svc, _ := newTestService(t, "file:catalog_update?mode=memory&cache=shared")
	ctx := context.Background()

	idA, err := svc.Create(ctx, "Tier A")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Tier B")
	require.NoError(t, err)

	t.Run("RequiresIDAndName", func(t *testing.T) {
		_, err := svc.Update(ctx, "", "Renamed")
		assert.ErrorIs(t, err, domain.ErrNameIDRequired)

		_, err = svc.Update(ctx, idA, "")
		assert.ErrorIs(t, err, domain.ErrNameIDRequired)
	})

	t.Run("RenamesModel", func(t *testing.T) {
		updated, err := svc.Update(ctx, idA, "Super Value Option")
		assert.NoError(t, err)
		assert.Equal(t, idA, updated)

		model, err := svc.GetByID(ctx, idA)
		require.NoError(t, err)
		assert.Equal(t, "Super Value Option", model.Name)
	})

	t.Run("TakenNameConflicts", func(t *testing.T) {
		_, err := svc.Update(ctx, idA, "Tier B")
		assert.ErrorIs(t, err, domain.ErrModelExists)
	})

	t.Run("OwnNameConflictsToo", func(t *testing.T) {
		// The conflict check is unscoped by id, so a model cannot be
		// renamed to the name it already holds.
		_, err := svc.Update(ctx, idA, "Super Value Option")
		assert.ErrorIs(t, err, domain.ErrModelExists)
	})

	t.Run("LeavesPricesUntouched", func(t *testing.T) {
		_, err := svc.AddPrice(ctx, idA, domain.AddPriceRequest{Name: "5min", Price: 1, Value: 5})
		require.NoError(t, err)

		_, err = svc.Update(ctx, idA, "Another Name")
		require.NoError(t, err)

		pricing, err := svc.GetPrices(ctx, idA)
		require.NoError(t, err)
		assert.Len(t, pricing, 1)
	})
}

func TestGetPricingModelByID(t *testing.T) {
	svc, _ := newTestService(t, "file:catalog_get?mode=memory&cache=shared")
	ctx := context.Background()

	t.Run("RequiresID", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "")
		assert.ErrorIs(t, err, domain.ErrIDRequired)
	})

	t.Run("UnknownIDIsNotFound", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "b5e7c1de-12f1-4a8e-93a2-0b2f0ec21b10")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("FreshModelHasEmptyPricing", func(t *testing.T) {
		id, err := svc.Create(ctx, "Fresh")
		require.NoError(t, err)

		model, err := svc.GetByID(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, model.Pricing)
		assert.Len(t, model.Pricing, 0)
	})
}

func TestGetPrices(t *testing.T) {
	svc, _ := newTestService(t, "file:catalog_prices?mode=memory&cache=shared")
	ctx := context.Background()

	t.Run("RequiresID", func(t *testing.T) {
		_, err := svc.GetPrices(ctx, "")
		assert.ErrorIs(t, err, domain.ErrIDRequired)
	})

	t.Run("UnknownModelYieldsEmptyList", func(t *testing.T) {
		// No existence check at this layer: List and GetByID reuse it.
		pricing, err := svc.GetPrices(ctx, "0a4c3c63-7b6d-4d13-9c1a-55e2b9a7a001")
		assert.NoError(t, err)
		assert.Len(t, pricing, 0)
	})
}

func TestAddPrice(t *testing.T) {
	svc, _ := newTestService(t, "file:catalog_addprice?mode=memory&cache=shared")
	ctx := context.Background()

	id, err := svc.Create(ctx, "Metered")
	require.NoError(t, err)

	t.Run("RequiresModelIDThenName", func(t *testing.T) {
		_, err := svc.AddPrice(ctx, "", domain.AddPriceRequest{Name: "5min"})
		assert.ErrorIs(t, err, domain.ErrIDRequired)

		_, err = svc.AddPrice(ctx, id, domain.AddPriceRequest{})
		assert.ErrorIs(t, err, domain.ErrPriceNameRequired)
	})

	t.Run("MissingAmountsDefaultToZero", func(t *testing.T) {
		priceID, err := svc.AddPrice(ctx, id, domain.AddPriceRequest{Name: "free"})
		require.NoError(t, err)

		pricing, err := svc.GetPrices(ctx, id)
		require.NoError(t, err)
		require.Len(t, pricing, 1)
		assert.Equal(t, priceID, pricing[0].ID)
		assert.Equal(t, 0, pricing[0].Price)
		assert.Equal(t, 0, pricing[0].Value)
	})

	t.Run("DuplicateNameConflicts", func(t *testing.T) {
		_, err := svc.AddPrice(ctx, id, domain.AddPriceRequest{Name: "free", Price: 2, Value: 10})
		assert.ErrorIs(t, err, domain.ErrPriceExists)
	})

	t.Run("DifferentNameSucceeds", func(t *testing.T) {
		_, err := svc.AddPrice(ctx, id, domain.AddPriceRequest{Name: "5min", Price: 1, Value: 5})
		assert.NoError(t, err)
	})
}

func TestRemovePrice(t *testing.T) {
	svc, _ := newTestService(t, "file:catalog_removeprice?mode=memory&cache=shared")
	ctx := context.Background()

	modelA, err := svc.Create(ctx, "Model A")
	require.NoError(t, err)
	modelB, err := svc.Create(ctx, "Model B")
	require.NoError(t, err)
	priceID, err := svc.AddPrice(ctx, modelA, domain.AddPriceRequest{Name: "5min", Price: 1, Value: 5})
	require.NoError(t, err)

	t.Run("RequiresBothIDs", func(t *testing.T) {
		_, err := svc.RemovePrice(ctx, modelA, "")
		assert.ErrorIs(t, err, domain.ErrPriceAndIDRequired)

		_, err = svc.RemovePrice(ctx, "", priceID)
		assert.ErrorIs(t, err, domain.ErrPriceAndIDRequired)
	})

	t.Run("WrongPairingIsFalseNotError", func(t *testing.T) {
		removed, err := svc.RemovePrice(ctx, modelB, priceID)
		assert.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("DeletionIsIdempotent", func(t *testing.T) {
		removed, err := svc.RemovePrice(ctx, modelA, priceID)
		assert.NoError(t, err)
		assert.True(t, removed)

		removed, err = svc.RemovePrice(ctx, modelA, priceID)
		assert.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestList(t *testing.T) {
	svc, _ := newTestService(t, "file:catalog_list?mode=memory&cache=shared")
	ctx := context.Background()

	t.Run("EmptyStoreYieldsDefaultOnly", func(t *testing.T) {
		result, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Contains(t, result, "default_pricing")
	})

	t.Run("ModelsAreKeyedByIDWithNestedPricing", func(t *testing.T) {
		id, err := svc.Create(ctx, "Listed")
		require.NoError(t, err)
		_, err = svc.AddPrice(ctx, id, domain.AddPriceRequest{Name: "10min", Price: 2, Value: 10})
		require.NoError(t, err)

		result, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, result, 2)

		entry, ok := result[id].(domain.Model)
		require.True(t, ok)
		assert.Equal(t, "Listed", entry.Name)
		require.Len(t, entry.Pricing, 1)
		assert.Equal(t, "10min", entry.Pricing[0].Name)
	})
}

func TestCatalogScenario(t *testing.T) {
	svc, _ := newTestService(t, "file:catalog_scenario?mode=memory&cache=shared")
	ctx := context.Background()

	id, err := svc.Create(ctx, "Tier A")
	require.NoError(t, err)

	priceID, err := svc.AddPrice(ctx, id, domain.AddPriceRequest{Name: "5min", Price: 1, Value: 5})
	require.NoError(t, err)

	model, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, model.ID)
	assert.Equal(t, "Tier A", model.Name)
	require.Len(t, model.Pricing, 1)
	assert.Equal(t, priceID, model.Pricing[0].ID)
	assert.Equal(t, 1, model.Pricing[0].Price)
	assert.Equal(t, "5min", model.Pricing[0].Name)
	assert.Equal(t, 5, model.Pricing[0].Value)

	removed, err := svc.RemovePrice(ctx, id, priceID)
	require.NoError(t, err)
	assert.True(t, removed)

	model, err = svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Len(t, model.Pricing, 0)
}
