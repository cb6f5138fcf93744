package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `gorm:"not null" json:"quantity"`

	// Price is snapshotted at order time, not live-priced from the catalog.
	Price      float64    `gorm:"not null" json:"price"`
	ItemStatus ItemStatus `gorm:"not null;default:accepted" json:"itemStatus"`

	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"product,omitempty"`
}
