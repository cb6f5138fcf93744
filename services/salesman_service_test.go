package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type salesmanFixture struct {
	svc      *SalesmanService
	orderSvc *OrderService
	salesman uint
	seller   uint
	customer uint
}

func newSalesmanFixture(t *testing.T) *salesmanFixture {
	t.Helper()

	db := newTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	return &salesmanFixture{
		svc:      NewSalesmanService(repository.NewSalesmanRepository(db), orderRepo),
		orderSvc: NewOrderService(db, orderRepo),
		salesman: seedUser(t, db, "salesman", entity.RoleSalesman).ID,
		seller:   seedUser(t, db, "seller", entity.RoleSeller).ID,
		customer: seedUser(t, db, "customer", entity.RoleCustomer).ID,
	}
}

func TestAttendance(t *testing.T) {
	t.Run("should check in once per day", func(t *testing.T) {
		f := newSalesmanFixture(t)

		record, err := f.svc.CheckIn(f.salesman)
		require.NoError(t, err)
		assert.NotNil(t, record.CheckInTime)
		assert.Nil(t, record.CheckOutTime)

		_, err = f.svc.CheckIn(f.salesman)
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("should check out after check in", func(t *testing.T) {
		f := newSalesmanFixture(t)

		_, err := f.svc.CheckIn(f.salesman)
		require.NoError(t, err)

		record, err := f.svc.CheckOut(f.salesman)
		require.NoError(t, err)
		assert.NotNil(t, record.CheckOutTime)

		_, err = f.svc.CheckOut(f.salesman)
		assert.ErrorIs(t, err, apperr.ErrInvalid)
	})

	t.Run("should reject check out without check in", func(t *testing.T) {
		f := newSalesmanFixture(t)

		_, err := f.svc.CheckOut(f.salesman)
		assert.ErrorIs(t, err, apperr.ErrInvalid)
	})
}

func TestBeatsAndVisits(t *testing.T) {
	t.Run("should assign and list beats", func(t *testing.T) {
		f := newSalesmanFixture(t)

		beat, err := f.svc.AssignBeat(f.salesman, "SG Highway", "Ahmedabad", "380015", "West Zone")
		require.NoError(t, err)
		assert.Equal(t, "SG Highway", beat.Area)

		_, err = f.svc.AssignBeat(f.salesman, "", "", "", "")
		assert.ErrorIs(t, err, apperr.ErrInvalid)

		beats, err := f.svc.Beats(f.salesman)
		require.NoError(t, err)
		assert.Len(t, beats, 1)
	})

	t.Run("should log visits against a seller", func(t *testing.T) {
		f := newSalesmanFixture(t)

		_, err := f.svc.LogVisit(f.salesman, 0, nil, "", "")
		assert.ErrorIs(t, err, apperr.ErrInvalid)

		visit, err := f.svc.LogVisit(f.salesman, f.seller, nil, "stock low", "wants credit terms")
		require.NoError(t, err)
		assert.Equal(t, f.seller, visit.SellerID)

		visits, err := f.svc.Visits(f.salesman)
		require.NoError(t, err)
		require.Len(t, visits, 1)
		assert.Equal(t, "seller", visits[0].Seller.Name)
	})
}

func TestSalesmanDashboard(t *testing.T) {
	t.Run("should aggregate visits, stores and secondary sales", func(t *testing.T) {
		f := newSalesmanFixture(t)

		_, err := f.svc.LogVisit(f.salesman, f.seller, nil, "", "")
		require.NoError(t, err)
		_, err = f.svc.LogVisit(f.salesman, f.seller, nil, "", "")
		require.NoError(t, err)

		_, err = f.orderSvc.PlaceOrder(f.customer, f.seller,
			[]OrderItemIn{{ProductID: 1, Price: 10, Quantity: 1}}, "", &f.salesman)
		require.NoError(t, err)

		_, err = f.svc.CheckIn(f.salesman)
		require.NoError(t, err)

		summary, err := f.svc.Dashboard(f.salesman)
		require.NoError(t, err)
		assert.EqualValues(t, 2, summary.TotalVisits)
		assert.EqualValues(t, 1, summary.TotalStoresCovered)
		assert.EqualValues(t, 1, summary.TotalOrders)
		assert.True(t, summary.AttendanceMarked)
		assert.NotNil(t, summary.CheckInTime)
	})

	t.Run("should report unmarked attendance", func(t *testing.T) {
		f := newSalesmanFixture(t)

		summary, err := f.svc.Dashboard(f.salesman)
		require.NoError(t, err)
		assert.False(t, summary.AttendanceMarked)
		assert.Nil(t, summary.CheckInTime)
	})
}
