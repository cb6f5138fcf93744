package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	SKU         string  `gorm:"uniqueIndex;not null" json:"sku"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
	Unit        string  `gorm:"default:pcs" json:"unit"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`

	SellerID uint `gorm:"not null" json:"sellerId"`
	Seller   User `json:"-"`
}
