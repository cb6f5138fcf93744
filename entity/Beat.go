package entity

import (
	"gorm.io/gorm"
)

// Beat is a named sales territory assigned to a salesman.
type Beat struct {
	gorm.Model
	Area     string `gorm:"not null" json:"area"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
	BeatName string `json:"beatName"`

	SalesmanID uint `gorm:"not null" json:"salesmanId"`
	Salesman   User `gorm:"foreignKey:SalesmanID" json:"-"`
}
