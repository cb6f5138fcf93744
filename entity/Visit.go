package entity

import (
	"time"

	"gorm.io/gorm"
)

// Visit is a field visit logged by a salesman against a seller's store.
type Visit struct {
	gorm.Model
	VisitDate time.Time `gorm:"not null" json:"visitDate"`
	Remarks   string    `json:"remarks"`
	Feedback  string    `json:"feedback"`

	SalesmanID uint `gorm:"not null" json:"salesmanId"`
	Salesman   User `gorm:"foreignKey:SalesmanID" json:"salesman,omitempty"`

	SellerID uint `gorm:"not null" json:"sellerId"`
	Seller   User `gorm:"foreignKey:SellerID" json:"seller,omitempty"`

	BeatID *uint `json:"beatId,omitempty"`
	Beat   *Beat `json:"beat,omitempty"`
}
