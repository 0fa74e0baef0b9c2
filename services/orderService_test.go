package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytayachi/magasin-api/initializers"
	"github.com/ytayachi/magasin-api/models"
	"github.com/ytayachi/magasin-api/services"
	"github.com/ytayachi/magasin-api/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A fresh connection would get a fresh in-memory database, keep a
	// single one for the whole test.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, initializers.SyncDatabase(db))
	return store.New(db)
}

func seedProduct(t *testing.T, st *store.Store, ref string, price float64) *models.Product {
	t.Helper()
	product := &models.Product{Reference: ref, Name: "Product " + ref, Price: price, Stock: 100, Category: "Beverages"}
	require.NoError(t, st.CreateProduct(product))
	return product
}

func TestOrderServiceCreate(t *testing.T) {
	t.Run("snapshots the product price onto the item", func(t *testing.T) {
		st := newTestStore(t)
		seedProduct(t, st, "P1", 10.0)
		svc := services.NewOrderService(st, services.NewNotifier(""))

		order := &models.Order{
			CustomerName: "Sami",
			Items:        []models.OrderItem{{Ref: "P1", Quantity: 2}},
		}
		require.NoError(t, svc.Create(order))

		assert.Equal(t, "Pending", order.Status)
		assert.Equal(t, 10.0, order.Items[0].Price)
		assert.Equal(t, 20.0, order.TotalAmount)

		// A later product price change must not alter the stored
		// snapshot or the recomputed total.
		product, err := st.ProductByRef("P1")
		require.NoError(t, err)
		product.Price = 99.0
		require.NoError(t, st.SaveProduct(product))

		reloaded, err := st.OrderByID(order.ID)
		require.NoError(t, err)
		assert.Equal(t, 10.0, reloaded.Items[0].Price)
		assert.Equal(t, 20.0, reloaded.TotalAmount)
	})

	t.Run("keeps an explicitly supplied item price", func(t *testing.T) {
		st := newTestStore(t)
		seedProduct(t, st, "P1", 10.0)
		svc := services.NewOrderService(st, services.NewNotifier(""))

		order := &models.Order{
			CustomerName: "Sami",
			Items:        []models.OrderItem{{Ref: "P1", Quantity: 3, Price: 8.0}},
		}
		require.NoError(t, svc.Create(order))

		assert.Equal(t, 8.0, order.Items[0].Price)
		assert.Equal(t, 24.0, order.TotalAmount)
	})

	t.Run("fails without persisting when a product ref is unknown", func(t *testing.T) {
		st := newTestStore(t)
		svc := services.NewOrderService(st, services.NewNotifier(""))

		order := &models.Order{
			CustomerName: "Sami",
			Items:        []models.OrderItem{{Ref: "NOPE", Quantity: 1}},
		}
		err := svc.Create(order)
		require.Error(t, err)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Contains(t, err.Error(), `"NOPE"`)

		orders, err := st.Orders(nil)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("rejects missing customer name", func(t *testing.T) {
		st := newTestStore(t)
		seedProduct(t, st, "P1", 10.0)
		svc := services.NewOrderService(st, services.NewNotifier(""))

		err := svc.Create(&models.Order{Items: []models.OrderItem{{Ref: "P1", Quantity: 1}}})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("rejects an empty item list", func(t *testing.T) {
		st := newTestStore(t)
		svc := services.NewOrderService(st, services.NewNotifier(""))

		err := svc.Create(&models.Order{CustomerName: "Sami"})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("rejects a quantity below one", func(t *testing.T) {
		st := newTestStore(t)
		seedProduct(t, st, "P1", 10.0)
		svc := services.NewOrderService(st, services.NewNotifier(""))

		err := svc.Create(&models.Order{
			CustomerName: "Sami",
			Items:        []models.OrderItem{{Ref: "P1", Quantity: 0}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("rejects a status outside the order vocabulary", func(t *testing.T) {
		st := newTestStore(t)
		seedProduct(t, st, "P1", 10.0)
		svc := services.NewOrderService(st, services.NewNotifier(""))

		err := svc.Create(&models.Order{
			CustomerName: "Sami",
			Status:       "Archived",
			Items:        []models.OrderItem{{Ref: "P1", Quantity: 1}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidStatus)
	})
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	t.Run("persists a valid status and notifies", func(t *testing.T) {
		st := newTestStore(t)
		seedProduct(t, st, "P1", 10.0)

		recorder := newWebhookRecorder()
		server := newRecorderServer(t, recorder)
		svc := services.NewOrderService(st, services.NewNotifier(server.URL))

		order := &models.Order{CustomerName: "Sami", Items: []models.OrderItem{{Ref: "P1", Quantity: 1}}}
		require.NoError(t, svc.Create(order))

		updated, err := svc.UpdateStatus(order.ID, "Shipped")
		require.NoError(t, err)
		assert.Equal(t, "Shipped", updated.Status)

		require.Eventually(t, func() bool { return recorder.count() == 1 }, time.Second, 10*time.Millisecond)
		assert.Equal(t, "order_status_changed", recorder.payload(0)["event"])
	})

	t.Run("rejects an invalid status and leaves the order unmodified", func(t *testing.T) {
		st := newTestStore(t)
		seedProduct(t, st, "P1", 10.0)
		svc := services.NewOrderService(st, services.NewNotifier(""))

		order := &models.Order{CustomerName: "Sami", Items: []models.OrderItem{{Ref: "P1", Quantity: 1}}}
		require.NoError(t, svc.Create(order))

		_, err := svc.UpdateStatus(order.ID, "Archived")
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidStatus)

		reloaded, err := st.OrderByID(order.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pending", reloaded.Status)
	})

	t.Run("returns not found for an unknown order", func(t *testing.T) {
		st := newTestStore(t)
		svc := services.NewOrderService(st, services.NewNotifier(""))

		_, err := svc.UpdateStatus(42, "Shipped")
		require.Error(t, err)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestOrderServiceUpdate(t *testing.T) {
	t.Run("replacing items recomputes the total", func(t *testing.T) {
		st := newTestStore(t)
		seedProduct(t, st, "P1", 10.0)
		seedProduct(t, st, "P2", 4.0)
		svc := services.NewOrderService(st, services.NewNotifier(""))

		order := &models.Order{CustomerName: "Sami", Items: []models.OrderItem{{Ref: "P1", Quantity: 2}}}
		require.NoError(t, svc.Create(order))
		require.Equal(t, 20.0, order.TotalAmount)

		updated, err := svc.Update(order.ID, services.OrderUpdate{
			Items: []models.OrderItem{{Ref: "P2", Quantity: 3}},
		})
		require.NoError(t, err)
		assert.Equal(t, 12.0, updated.TotalAmount)

		reloaded, err := st.OrderByID(order.ID)
		require.NoError(t, err)
		require.Len(t, reloaded.Items, 1)
		assert.Equal(t, "P2", reloaded.Items[0].Ref)
		assert.Equal(t, 12.0, reloaded.TotalAmount)
	})

	t.Run("updates scalar fields without touching items", func(t *testing.T) {
		st := newTestStore(t)
		seedProduct(t, st, "P1", 10.0)
		svc := services.NewOrderService(st, services.NewNotifier(""))

		order := &models.Order{CustomerName: "Sami", Items: []models.OrderItem{{Ref: "P1", Quantity: 2}}}
		require.NoError(t, svc.Create(order))

		address := "12 Rue de Carthage"
		updated, err := svc.Update(order.ID, services.OrderUpdate{ShippingAddress: &address})
		require.NoError(t, err)
		assert.Equal(t, address, updated.ShippingAddress)

		reloaded, err := st.OrderByID(order.ID)
		require.NoError(t, err)
		require.Len(t, reloaded.Items, 1)
		assert.Equal(t, 20.0, reloaded.TotalAmount)
	})

	t.Run("rejects replacement items with an unknown ref", func(t *testing.T) {
		st := newTestStore(t)
		seedProduct(t, st, "P1", 10.0)
		svc := services.NewOrderService(st, services.NewNotifier(""))

		order := &models.Order{CustomerName: "Sami", Items: []models.OrderItem{{Ref: "P1", Quantity: 2}}}
		require.NoError(t, svc.Create(order))

		_, err := svc.Update(order.ID, services.OrderUpdate{
			Items: []models.OrderItem{{Ref: "NOPE", Quantity: 1}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		reloaded, err := st.OrderByID(order.ID)
		require.NoError(t, err)
		require.Len(t, reloaded.Items, 1)
		assert.Equal(t, "P1", reloaded.Items[0].Ref)
	})
}
