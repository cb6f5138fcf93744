package services

import (
	"errors"
	"fmt"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

// DeliveryService binds delivery agents to orders and keeps the order status
// in sync with terminal delivery events.
type DeliveryService struct {
	DB        *gorm.DB
	Repo      *repository.DeliveryRepository
	OrderRepo *repository.OrderRepository
	UserRepo  *repository.UserRepository
}

func NewDeliveryService(
	db *gorm.DB,
	repo *repository.DeliveryRepository,
	orderRepo *repository.OrderRepository,
	userRepo *repository.UserRepository,
) *DeliveryService {
	return &DeliveryService{DB: db, Repo: repo, OrderRepo: orderRepo, UserRepo: userRepo}
}

// Assign binds a delivery agent to an order. The delivery insert and the
// order status flip to inDelivery happen in one transaction; the unique index
// on order_id is the race-free arbiter for double assignment.
func (s *DeliveryService) Assign(orderID, deliveryBoyID uint) (*entity.Delivery, error) {
	if _, err := s.OrderRepo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", apperr.ErrNotFound)
		}
		return nil, err
	}

	boy, err := s.UserRepo.FindByID(deliveryBoyID)
	if err != nil || boy.Role != entity.RoleDelivery {
		return nil, fmt.Errorf("%w: invalid delivery boy", apperr.ErrInvalid)
	}

	delivery := entity.Delivery{
		OrderID:       orderID,
		DeliveryBoyID: deliveryBoyID,
		Status:        entity.DeliveryAssigned,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &delivery); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: delivery already assigned for this order", apperr.ErrConflict)
			}
			return err
		}
		return s.OrderRepo.UpdateStatus(tx, orderID, entity.OrderInDelivery)
	})
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

// UpdateStatus moves the delivery through its lifecycle. Ownership is the
// scoped lookup (id + deliveryBoyId). Reaching delivered also forces the
// parent order to delivered in the same transaction. The accepted input set
// excludes "returned"; controllers validate before calling.
func (s *DeliveryService) UpdateStatus(deliveryID, deliveryBoyID uint, status entity.DeliveryStatus) (*entity.Delivery, error) {
	delivery, err := s.Repo.GetForBoy(deliveryID, deliveryBoyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: delivery not found or not assigned to you", apperr.ErrNotFound)
		}
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateStatus(tx, delivery.ID, status); err != nil {
			return err
		}
		if status == entity.DeliveryDelivered {
			return s.OrderRepo.UpdateStatus(tx, delivery.OrderID, entity.OrderDelivered)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	delivery.Status = status
	return delivery, nil
}

// AttachProof stores the uploaded proof artifact and forces the delivery to
// delivered regardless of its prior state. This is a separate terminal path
// from UpdateStatus and skips its accepted-status validation.
func (s *DeliveryService) AttachProof(deliveryID uint, path string) (*entity.Delivery, error) {
	delivery, err := s.Repo.GetByID(deliveryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: delivery", apperr.ErrNotFound)
		}
		return nil, err
	}

	delivery.ProofImage = path
	delivery.Status = entity.DeliveryDelivered

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Save(tx, delivery); err != nil {
			return err
		}
		return s.OrderRepo.UpdateStatus(tx, delivery.OrderID, entity.OrderDelivered)
	})
	if err != nil {
		return nil, err
	}
	return delivery, nil
}

func (s *DeliveryService) ListForBoy(deliveryBoyID uint) ([]entity.Delivery, error) {
	return s.Repo.ListForBoy(deliveryBoyID)
}
