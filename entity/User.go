package entity

import (
	"gorm.io/gorm"
)

const (
	RoleSeller   = "seller"
	RoleDelivery = "delivery"
	RoleSalesman = "salesman"
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// ValidRole reports whether r is one of the known account roles.
func ValidRole(r string) bool {
	switch r {
	case RoleSeller, RoleDelivery, RoleSalesman, RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"`

	// address fields for exact-match filtering
	City    string `json:"city"`
	Area    string `json:"area"`
	Pincode string `json:"pincode"`
	Mobile  string `json:"mobile"`

	// Relations — preload only where an endpoint needs them
	Products       []Product  `gorm:"foreignKey:SellerID" json:"products,omitempty"`
	CustomerOrders []Order    `gorm:"foreignKey:CustomerID" json:"-"`
	SellerOrders   []Order    `gorm:"foreignKey:SellerID" json:"-"`
	Deliveries     []Delivery `gorm:"foreignKey:DeliveryBoyID" json:"-"`
}
