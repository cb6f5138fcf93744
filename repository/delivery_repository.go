package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type DeliveryRepository struct {
	DB *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

// Create inserts the delivery row. The unique index on order_id decides the
// winner when two assignments race; losers get gorm.ErrDuplicatedKey.
func (r *DeliveryRepository) Create(tx *gorm.DB, d *entity.Delivery) error {
	return tx.Create(d).Error
}

func (r *DeliveryRepository) GetByID(deliveryID uint) (*entity.Delivery, error) {
	var d entity.Delivery
	if err := r.DB.First(&d, deliveryID).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// GetForBoy scopes the lookup by the bound delivery agent.
func (r *DeliveryRepository) GetForBoy(deliveryID, deliveryBoyID uint) (*entity.Delivery, error) {
	var d entity.Delivery
	if err := r.DB.Where("id = ? AND delivery_boy_id = ?", deliveryID, deliveryBoyID).
		First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) UpdateStatus(tx *gorm.DB, deliveryID uint, status entity.DeliveryStatus) error {
	return tx.Model(&entity.Delivery{}).Where("id = ?", deliveryID).
		Update("status", status).Error
}

func (r *DeliveryRepository) Save(tx *gorm.DB, d *entity.Delivery) error {
	return tx.Save(d).Error
}

func (r *DeliveryRepository) ListForBoy(deliveryBoyID uint) ([]entity.Delivery, error) {
	var deliveries []entity.Delivery
	err := r.DB.Where("delivery_boy_id = ?", deliveryBoyID).
		Preload("Order", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, status, address, total_amount, customer_id, seller_id")
		}).
		Preload("Order.Customer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email")
		}).
		Preload("Order.Seller", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email")
		}).
		Order("id DESC").
		Find(&deliveries).Error
	return deliveries, err
}

func (r *DeliveryRepository) CountForOrder(orderID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Delivery{}).Where("order_id = ?", orderID).Count(&cnt).Error
	return cnt, err
}
