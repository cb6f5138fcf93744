package entity

import (
	"gorm.io/gorm"
)

const (
	ComplaintOpen     = "open"
	ComplaintResolved = "resolved"
)

type Complaint struct {
	gorm.Model
	Description string `gorm:"not null" json:"description"`
	Image       string `json:"image,omitempty"`
	Status      string `gorm:"not null;default:open" json:"status"`

	CustomerID uint `gorm:"not null" json:"customerId"`
	Customer   User `gorm:"foreignKey:CustomerID" json:"-"`

	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `json:"order,omitempty"`
}
