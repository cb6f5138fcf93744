package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Status OrderStatus `gorm:"not null;default:pending" json:"status"`

	// TotalAmount is fixed at creation time (sum of item price x quantity)
	// and never recomputed afterwards.
	TotalAmount float64 `gorm:"not null" json:"totalAmount"`
	Address     string  `json:"address"`

	CustomerID uint `gorm:"not null" json:"customerId"`
	Customer   User `json:"customer,omitempty"`

	SellerID uint `gorm:"not null" json:"sellerId"`
	Seller   User `json:"seller,omitempty"`

	// set only when a salesman places the order on a customer's behalf
	CreatedBySalesmanID *uint `json:"createdBySalesmanId,omitempty"`

	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Delivery *Delivery   `gorm:"foreignKey:OrderID" json:"delivery,omitempty"`
}
