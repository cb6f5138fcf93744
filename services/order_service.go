package services

import (
	"errors"
	"fmt"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

// OrderService owns the order lifecycle: placement, seller status changes,
// per-item availability, and the role-scoped projections.
type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ProductID uint    `json:"productId" binding:"required"`
	Price     float64 `json:"price" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

// ----- Place -----

// PlaceOrder creates the order and its line items in one transaction.
// TotalAmount is the sum of the caller-supplied price x quantity; prices are
// trusted as given, there is no re-pricing against the catalog.
// createdBySalesmanID is non-nil only for secondary sales.
func (s *OrderService) PlaceOrder(customerID, sellerID uint, items []OrderItemIn, address string, createdBySalesmanID *uint) (*entity.Order, error) {
	if sellerID == 0 || len(items) == 0 {
		return nil, fmt.Errorf("%w: seller and products are required", apperr.ErrInvalid)
	}
	for _, it := range items {
		if it.ProductID == 0 || it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: each product needs productId, price and quantity", apperr.ErrInvalid)
		}
	}

	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	order := entity.Order{
		CustomerID:          customerID,
		SellerID:            sellerID,
		Status:              entity.OrderPending,
		TotalAmount:         total,
		Address:             address,
		CreatedBySalesmanID: createdBySalesmanID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, it := range items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				Price:      it.Price,
				ItemStatus: entity.ItemAccepted,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ----- Seller status changes -----

// ChangeStatus sets any of the seven order statuses. Ownership is enforced by
// the scoped lookup; there is deliberately no transition-graph check, any
// status is reachable from any other.
func (s *OrderService) ChangeStatus(sellerID, orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	order, err := s.Repo.GetOrderForSeller(sellerID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", apperr.ErrNotFound)
		}
		return nil, err
	}

	if err := s.Repo.UpdateStatus(s.DB, order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// UpdateItemStatus marks a line item accepted/unavailable. The item is loaded
// before the ownership check on purpose; keep that ordering.
func (s *OrderService) UpdateItemStatus(sellerID, orderID, itemID uint, status entity.ItemStatus) (*entity.OrderItem, error) {
	item, err := s.Repo.GetItemInOrder(itemID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order item", apperr.ErrNotFound)
		}
		return nil, err
	}

	if _, err := s.Repo.GetOrderForSeller(sellerID, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: you are not authorized for this order", apperr.ErrForbidden)
		}
		return nil, err
	}

	if err := s.Repo.UpdateItemStatus(item.ID, status); err != nil {
		return nil, err
	}
	item.ItemStatus = status
	return item, nil
}

// ----- Projections -----

func (s *OrderService) SellerOrders(sellerID uint) ([]entity.Order, error) {
	return s.Repo.ListOrdersForSeller(sellerID)
}

func (s *OrderService) SellerOrderDetail(sellerID, orderID uint) (*entity.Order, error) {
	order, err := s.Repo.GetOrderDetailForSeller(sellerID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", apperr.ErrNotFound)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) CustomerOrders(customerID uint) ([]entity.Order, error) {
	return s.Repo.ListOrdersForCustomer(customerID)
}
