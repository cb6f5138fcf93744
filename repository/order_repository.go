package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderForSeller is the scoped lookup: the ownership predicate is part of
// the query, a miss means not-found-or-not-yours.
func (r *OrderRepository) GetOrderForSeller(sellerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND seller_id = ?", orderID, sellerID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderDetailForSeller(sellerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND seller_id = ?", orderID, sellerID).
		Preload("Customer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email")
		}).
		Preload("Items.Product", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, price")
		}).
		Preload("Items").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrdersForSeller(sellerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("seller_id = ?", sellerID).
		Preload("Customer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email")
		}).
		Preload("Items.Product", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, price")
		}).
		Preload("Items").
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListOrdersForCustomer(customerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("customer_id = ?", customerID).
		Preload("Seller", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email, mobile")
		}).
		Preload("Delivery.DeliveryBoy", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email, mobile")
		}).
		Preload("Delivery").
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status entity.OrderStatus) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) GetItemInOrder(itemID, orderID uint) (*entity.OrderItem, error) {
	var item entity.OrderItem
	if err := r.DB.Where("id = ? AND order_id = ?", itemID, orderID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrderRepository) UpdateItemStatus(itemID uint, status entity.ItemStatus) error {
	return r.DB.Model(&entity.OrderItem{}).Where("id = ?", itemID).
		Update("item_status", status).Error
}

func (r *OrderRepository) CountItems(orderID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.OrderItem{}).Where("order_id = ?", orderID).Count(&cnt).Error
	return cnt, err
}

// ---------------- Dashboard counts ----------------

func (r *OrderRepository) CountForSeller(sellerID uint, status *entity.OrderStatus) (int64, error) {
	q := r.DB.Model(&entity.Order{}).Where("seller_id = ?", sellerID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var cnt int64
	err := q.Count(&cnt).Error
	return cnt, err
}

func (r *OrderRepository) CountBySalesman(salesmanID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("created_by_salesman_id = ?", salesmanID).Count(&cnt).Error
	return cnt, err
}
