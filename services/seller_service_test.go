package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sellerFixture struct {
	svc         *SellerService
	orderSvc    *OrderService
	seller      uint
	otherSeller uint
	customer    uint
}

func newSellerFixture(t *testing.T) *sellerFixture {
	t.Helper()

	db := newTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	return &sellerFixture{
		svc:         NewSellerService(repository.NewProductRepository(db), orderRepo),
		orderSvc:    NewOrderService(db, orderRepo),
		seller:      seedUser(t, db, "seller", entity.RoleSeller).ID,
		otherSeller: seedUser(t, db, "other-seller", entity.RoleSeller).ID,
		customer:    seedUser(t, db, "customer", entity.RoleCustomer).ID,
	}
}

func TestProductCRUD(t *testing.T) {
	t.Run("should create with defaults and read back", func(t *testing.T) {
		f := newSellerFixture(t)

		p, err := f.svc.AddProduct(f.seller, ProductIn{Name: "Tea 250g", SKU: "TEA-250", Price: 120})
		require.NoError(t, err)
		assert.Equal(t, "pcs", p.Unit)
		assert.True(t, p.IsActive)

		got, err := f.svc.ProductByID(f.seller, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Tea 250g", got.Name)
	})

	t.Run("should conflict on a duplicate sku", func(t *testing.T) {
		f := newSellerFixture(t)

		_, err := f.svc.AddProduct(f.seller, ProductIn{Name: "Tea", SKU: "TEA-250", Price: 120})
		require.NoError(t, err)
		_, err = f.svc.AddProduct(f.seller, ProductIn{Name: "Tea again", SKU: "TEA-250", Price: 130})
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("should scope reads and writes by seller", func(t *testing.T) {
		f := newSellerFixture(t)

		p, err := f.svc.AddProduct(f.seller, ProductIn{Name: "Tea", SKU: "TEA-250", Price: 120})
		require.NoError(t, err)

		_, err = f.svc.ProductByID(f.otherSeller, p.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)

		_, err = f.svc.UpdateProduct(f.otherSeller, p.ID, map[string]any{"price": 99.0})
		assert.ErrorIs(t, err, apperr.ErrNotFound)

		err = f.svc.DeleteProduct(f.otherSeller, p.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("should update and delete own products", func(t *testing.T) {
		f := newSellerFixture(t)

		p, err := f.svc.AddProduct(f.seller, ProductIn{Name: "Tea", SKU: "TEA-250", Price: 120})
		require.NoError(t, err)

		updated, err := f.svc.UpdateProduct(f.seller, p.ID, map[string]any{"price": 99.0, "is_active": false})
		require.NoError(t, err)
		assert.Equal(t, 99.0, updated.Price)
		assert.False(t, updated.IsActive)

		require.NoError(t, f.svc.DeleteProduct(f.seller, p.ID))
		_, err = f.svc.ProductByID(f.seller, p.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestSellerDashboard(t *testing.T) {
	t.Run("should count orders and products", func(t *testing.T) {
		f := newSellerFixture(t)

		_, err := f.svc.AddProduct(f.seller, ProductIn{Name: "Tea", SKU: "TEA-250", Price: 120})
		require.NoError(t, err)
		inactive, err := f.svc.AddProduct(f.seller, ProductIn{Name: "Old", SKU: "OLD-1", Price: 10})
		require.NoError(t, err)
		_, err = f.svc.UpdateProduct(f.seller, inactive.ID, map[string]any{"is_active": false})
		require.NoError(t, err)

		order, err := f.orderSvc.PlaceOrder(f.customer, f.seller,
			[]OrderItemIn{{ProductID: 1, Price: 10, Quantity: 1}}, "", nil)
		require.NoError(t, err)
		_, err = f.orderSvc.PlaceOrder(f.customer, f.seller,
			[]OrderItemIn{{ProductID: 1, Price: 10, Quantity: 1}}, "", nil)
		require.NoError(t, err)

		_, err = f.orderSvc.ChangeStatus(f.seller, order.ID, entity.OrderDelivered)
		require.NoError(t, err)

		summary, err := f.svc.Dashboard(f.seller)
		require.NoError(t, err)
		assert.EqualValues(t, 2, summary.TotalOrders)
		assert.EqualValues(t, 1, summary.PendingOrders)
		assert.EqualValues(t, 1, summary.DeliveredOrders)
		assert.EqualValues(t, 2, summary.TotalProducts)
		assert.EqualValues(t, 1, summary.ActiveProducts)
	})
}
