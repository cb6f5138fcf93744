package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) ListForSeller(sellerID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("seller_id = ?", sellerID).Order("id DESC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) GetForSeller(sellerID, productID uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Where("id = ? AND seller_id = ?", productID, sellerID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Update(p *entity.Product, updates map[string]any) error {
	return r.DB.Model(p).Updates(updates).Error
}

func (r *ProductRepository) Delete(p *entity.Product) error {
	return r.DB.Delete(p).Error
}

func (r *ProductRepository) CountForSeller(sellerID uint, onlyActive bool) (int64, error) {
	q := r.DB.Model(&entity.Product{}).Where("seller_id = ?", sellerID)
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	var cnt int64
	err := q.Count(&cnt).Error
	return cnt, err
}
