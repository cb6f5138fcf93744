package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&cnt).Error
	return cnt, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindSellers lists seller accounts filtered by exact city/area/pincode match,
// with their catalog included.
func (r *UserRepository) FindSellers(city, area, pincode string) ([]entity.User, error) {
	q := r.DB.Where("role = ?", entity.RoleSeller)
	if city != "" {
		q = q.Where("city = ?", city)
	}
	if area != "" {
		q = q.Where("area = ?", area)
	}
	if pincode != "" {
		q = q.Where("pincode = ?", pincode)
	}

	var sellers []entity.User
	err := q.Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, seller_id, name, price, stock, is_active")
	}).Find(&sellers).Error
	return sellers, err
}
