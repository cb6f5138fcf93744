package services

import (
	"fmt"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
)

// CustomerService covers the customer-facing reads and complaints.
type CustomerService struct {
	UserRepo      *repository.UserRepository
	ComplaintRepo *repository.ComplaintRepository
}

func NewCustomerService(userRepo *repository.UserRepository, complaintRepo *repository.ComplaintRepository) *CustomerService {
	return &CustomerService{UserRepo: userRepo, ComplaintRepo: complaintRepo}
}

// NearbySellers filters seller accounts by exact city/area/pincode match.
// Despite the name there is no proximity logic.
func (s *CustomerService) NearbySellers(city, area, pincode string) ([]entity.User, error) {
	return s.UserRepo.FindSellers(city, area, pincode)
}

func (s *CustomerService) RaiseComplaint(customerID, orderID uint, description, image string) (*entity.Complaint, error) {
	if orderID == 0 || description == "" {
		return nil, fmt.Errorf("%w: order ID and description required", apperr.ErrInvalid)
	}
	complaint := &entity.Complaint{
		CustomerID:  customerID,
		OrderID:     orderID,
		Description: description,
		Image:       image,
		Status:      entity.ComplaintOpen,
	}
	if err := s.ComplaintRepo.Create(complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

func (s *CustomerService) Complaints(customerID uint) ([]entity.Complaint, error) {
	return s.ComplaintRepo.ListForCustomer(customerID)
}
