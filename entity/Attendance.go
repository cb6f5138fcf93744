package entity

import (
	"time"

	"gorm.io/gorm"
)

// Attendance is one check-in/check-out record per salesman per day. The
// composite unique index makes the check-in insert the arbiter when two
// check-ins race.
type Attendance struct {
	gorm.Model
	Date string `gorm:"not null;uniqueIndex:idx_attendance_salesman_date" json:"date"` // YYYY-MM-DD

	CheckInTime  *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`

	SalesmanID uint `gorm:"not null;uniqueIndex:idx_attendance_salesman_date" json:"salesmanId"`
	Salesman   User `gorm:"foreignKey:SalesmanID" json:"salesman,omitempty"`
}
