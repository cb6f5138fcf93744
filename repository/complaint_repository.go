package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ComplaintRepository struct {
	DB *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{DB: db}
}

func (r *ComplaintRepository) Create(c *entity.Complaint) error {
	return r.DB.Create(c).Error
}

func (r *ComplaintRepository) ListForCustomer(customerID uint) ([]entity.Complaint, error) {
	var complaints []entity.Complaint
	err := r.DB.Where("customer_id = ?", customerID).
		Preload("Order").
		Order("id DESC").
		Find(&complaints).Error
	return complaints, err
}
