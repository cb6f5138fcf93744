package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (*OrderService, *entityIDs) {
	t.Helper()

	db := newTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db))

	customer := seedUser(t, db, "customer", entity.RoleCustomer)
	seller := seedUser(t, db, "seller", entity.RoleSeller)
	other := seedUser(t, db, "other-seller", entity.RoleSeller)

	return svc, &entityIDs{customer: customer.ID, seller: seller.ID, otherSeller: other.ID}
}

type entityIDs struct {
	customer    uint
	seller      uint
	otherSeller uint
}

func TestPlaceOrder(t *testing.T) {
	t.Run("should compute total from supplied prices and persist one row per item", func(t *testing.T) {
		svc, ids := newOrderService(t)

		items := []OrderItemIn{
			{ProductID: 1, Price: 200, Quantity: 3},
			{ProductID: 2, Price: 50, Quantity: 1},
		}
		order, err := svc.PlaceOrder(ids.customer, ids.seller, items, "12 Main St", nil)
		require.NoError(t, err)

		assert.Equal(t, 650.0, order.TotalAmount)
		assert.Equal(t, entity.OrderPending, order.Status)
		assert.Len(t, order.Items, 2)

		count, err := svc.Repo.CountItems(order.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)

		for _, it := range order.Items {
			assert.Equal(t, entity.ItemAccepted, it.ItemStatus)
		}
	})

	t.Run("should reject empty items", func(t *testing.T) {
		svc, ids := newOrderService(t)

		_, err := svc.PlaceOrder(ids.customer, ids.seller, nil, "", nil)
		assert.ErrorIs(t, err, apperr.ErrInvalid)
	})

	t.Run("should reject an item without productId", func(t *testing.T) {
		svc, ids := newOrderService(t)

		_, err := svc.PlaceOrder(ids.customer, ids.seller, []OrderItemIn{{Price: 10, Quantity: 1}}, "", nil)
		assert.ErrorIs(t, err, apperr.ErrInvalid)
	})

	t.Run("should record the salesman on secondary sales", func(t *testing.T) {
		svc, ids := newOrderService(t)

		salesmanID := uint(42)
		order, err := svc.PlaceOrder(ids.customer, ids.seller,
			[]OrderItemIn{{ProductID: 1, Price: 10, Quantity: 1}}, "", &salesmanID)
		require.NoError(t, err)
		require.NotNil(t, order.CreatedBySalesmanID)
		assert.Equal(t, salesmanID, *order.CreatedBySalesmanID)
	})
}

func TestChangeStatus(t *testing.T) {
	t.Run("should update any of the seven statuses", func(t *testing.T) {
		svc, ids := newOrderService(t)

		order, err := svc.PlaceOrder(ids.customer, ids.seller,
			[]OrderItemIn{{ProductID: 1, Price: 10, Quantity: 1}}, "", nil)
		require.NoError(t, err)

		updated, err := svc.ChangeStatus(ids.seller, order.ID, entity.OrderAccepted)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderAccepted, updated.Status)

		stored, err := svc.Repo.GetOrder(order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderAccepted, stored.Status)
	})

	t.Run("should allow any-to-any transitions", func(t *testing.T) {
		svc, ids := newOrderService(t)

		order, err := svc.PlaceOrder(ids.customer, ids.seller,
			[]OrderItemIn{{ProductID: 1, Price: 10, Quantity: 1}}, "", nil)
		require.NoError(t, err)

		_, err = svc.ChangeStatus(ids.seller, order.ID, entity.OrderDelivered)
		require.NoError(t, err)

		// no transition graph: delivered back to pending is accepted
		updated, err := svc.ChangeStatus(ids.seller, order.ID, entity.OrderPending)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderPending, updated.Status)
	})

	t.Run("should fail not found when the seller does not own the order", func(t *testing.T) {
		svc, ids := newOrderService(t)

		order, err := svc.PlaceOrder(ids.customer, ids.seller,
			[]OrderItemIn{{ProductID: 1, Price: 10, Quantity: 1}}, "", nil)
		require.NoError(t, err)

		_, err = svc.ChangeStatus(ids.otherSeller, order.ID, entity.OrderAccepted)
		assert.ErrorIs(t, err, apperr.ErrNotFound)

		stored, err := svc.Repo.GetOrder(order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderPending, stored.Status)
	})
}

func TestUpdateItemStatus(t *testing.T) {
	placeOne := func(t *testing.T, svc *OrderService, ids *entityIDs) *entity.Order {
		order, err := svc.PlaceOrder(ids.customer, ids.seller,
			[]OrderItemIn{{ProductID: 1, Price: 10, Quantity: 2}}, "", nil)
		require.NoError(t, err)
		return order
	}

	t.Run("should mark an item unavailable", func(t *testing.T) {
		svc, ids := newOrderService(t)
		order := placeOne(t, svc, ids)

		item, err := svc.UpdateItemStatus(ids.seller, order.ID, order.Items[0].ID, entity.ItemUnavailable)
		require.NoError(t, err)
		assert.Equal(t, entity.ItemUnavailable, item.ItemStatus)
	})

	t.Run("should fail not found for an unknown item", func(t *testing.T) {
		svc, ids := newOrderService(t)
		order := placeOne(t, svc, ids)

		_, err := svc.UpdateItemStatus(ids.seller, order.ID, 9999, entity.ItemUnavailable)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("should fail forbidden when the seller does not own the parent order", func(t *testing.T) {
		svc, ids := newOrderService(t)
		order := placeOne(t, svc, ids)

		_, err := svc.UpdateItemStatus(ids.otherSeller, order.ID, order.Items[0].ID, entity.ItemUnavailable)
		assert.ErrorIs(t, err, apperr.ErrForbidden)

		// item must be untouched
		stored, err := svc.Repo.GetItemInOrder(order.Items[0].ID, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ItemAccepted, stored.ItemStatus)
	})
}

func TestSellerProjections(t *testing.T) {
	t.Run("should scope order detail by seller", func(t *testing.T) {
		svc, ids := newOrderService(t)

		order, err := svc.PlaceOrder(ids.customer, ids.seller,
			[]OrderItemIn{{ProductID: 1, Price: 10, Quantity: 1}}, "", nil)
		require.NoError(t, err)

		detail, err := svc.SellerOrderDetail(ids.seller, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, detail.ID)
		assert.Len(t, detail.Items, 1)

		_, err = svc.SellerOrderDetail(ids.otherSeller, order.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("should list newest first for the seller", func(t *testing.T) {
		svc, ids := newOrderService(t)

		first, err := svc.PlaceOrder(ids.customer, ids.seller,
			[]OrderItemIn{{ProductID: 1, Price: 10, Quantity: 1}}, "", nil)
		require.NoError(t, err)
		second, err := svc.PlaceOrder(ids.customer, ids.seller,
			[]OrderItemIn{{ProductID: 2, Price: 20, Quantity: 1}}, "", nil)
		require.NoError(t, err)

		orders, err := svc.SellerOrders(ids.seller)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, second.ID, orders[0].ID)
		assert.Equal(t, first.ID, orders[1].ID)
	})
}
