package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

// SalesmanRepository covers the field-ops ledger: beats, visits, attendance.
type SalesmanRepository struct {
	DB *gorm.DB
}

func NewSalesmanRepository(db *gorm.DB) *SalesmanRepository {
	return &SalesmanRepository{DB: db}
}

// ---------------- Beats ----------------

func (r *SalesmanRepository) CreateBeat(b *entity.Beat) error {
	return r.DB.Create(b).Error
}

func (r *SalesmanRepository) ListBeats(salesmanID uint) ([]entity.Beat, error) {
	var beats []entity.Beat
	err := r.DB.Where("salesman_id = ?", salesmanID).Order("id DESC").Find(&beats).Error
	return beats, err
}

// ---------------- Attendance ----------------

// CreateAttendance inserts the day's record; the (salesman_id, date) unique
// index rejects a second check-in with gorm.ErrDuplicatedKey.
func (r *SalesmanRepository) CreateAttendance(a *entity.Attendance) error {
	return r.DB.Create(a).Error
}

func (r *SalesmanRepository) GetAttendance(salesmanID uint, date string) (*entity.Attendance, error) {
	var a entity.Attendance
	if err := r.DB.Where("salesman_id = ? AND date = ?", salesmanID, date).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *SalesmanRepository) SaveAttendance(a *entity.Attendance) error {
	return r.DB.Save(a).Error
}

func (r *SalesmanRepository) ListAllAttendance() ([]entity.Attendance, error) {
	var records []entity.Attendance
	err := r.DB.Preload("Salesman", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, email")
	}).Order("date DESC").Find(&records).Error
	return records, err
}

// ---------------- Visits ----------------

func (r *SalesmanRepository) CreateVisit(v *entity.Visit) error {
	return r.DB.Create(v).Error
}

func (r *SalesmanRepository) ListVisits(salesmanID uint) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := r.DB.Where("salesman_id = ?", salesmanID).
		Preload("Beat").
		Preload("Seller", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email, city, pincode")
		}).
		Order("visit_date DESC").
		Find(&visits).Error
	return visits, err
}

func (r *SalesmanRepository) ListAllVisits() ([]entity.Visit, error) {
	var visits []entity.Visit
	err := r.DB.
		Preload("Salesman", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email")
		}).
		Preload("Seller", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email")
		}).
		Preload("Beat").
		Order("visit_date DESC").
		Find(&visits).Error
	return visits, err
}

func (r *SalesmanRepository) CountVisits(salesmanID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Visit{}).Where("salesman_id = ?", salesmanID).Count(&cnt).Error
	return cnt, err
}

func (r *SalesmanRepository) CountDistinctSellersVisited(salesmanID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Visit{}).
		Where("salesman_id = ?", salesmanID).
		Distinct("seller_id").
		Count(&cnt).Error
	return cnt, err
}
