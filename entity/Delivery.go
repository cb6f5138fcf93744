package entity

import (
	"gorm.io/gorm"
)

type Delivery struct {
	gorm.Model
	Status DeliveryStatus `gorm:"not null;default:assigned" json:"status"`

	// optional path of the uploaded proof-of-delivery artifact
	ProofImage string `json:"proofImage,omitempty"`

	// one delivery per order; the unique index makes the insert the arbiter
	// when two assignments race
	OrderID uint  `gorm:"not null;uniqueIndex" json:"orderId"`
	Order   Order `json:"order,omitempty"`

	DeliveryBoyID uint `gorm:"not null" json:"deliveryBoyId"`
	DeliveryBoy   User `gorm:"foreignKey:DeliveryBoyID" json:"deliveryBoy,omitempty"`
}
