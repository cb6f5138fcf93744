package services

import (
	"errors"
	"fmt"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

// SellerService covers the seller-owned catalog and the seller dashboard.
type SellerService struct {
	Repo      *repository.ProductRepository
	OrderRepo *repository.OrderRepository
}

func NewSellerService(repo *repository.ProductRepository, orderRepo *repository.OrderRepository) *SellerService {
	return &SellerService{Repo: repo, OrderRepo: orderRepo}
}

type ProductIn struct {
	Name        string  `json:"name" binding:"required"`
	SKU         string  `json:"sku" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Stock       int     `json:"stock"`
	Unit        string  `json:"unit"`
}

func (s *SellerService) AddProduct(sellerID uint, in ProductIn) (*entity.Product, error) {
	unit := in.Unit
	if unit == "" {
		unit = "pcs"
	}
	p := &entity.Product{
		SellerID:    sellerID,
		Name:        in.Name,
		SKU:         in.SKU,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Unit:        unit,
		IsActive:    true,
	}
	if err := s.Repo.Create(p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: sku already exists", apperr.ErrConflict)
		}
		return nil, err
	}
	return p, nil
}

func (s *SellerService) Products(sellerID uint) ([]entity.Product, error) {
	return s.Repo.ListForSeller(sellerID)
}

func (s *SellerService) ProductByID(sellerID, productID uint) (*entity.Product, error) {
	p, err := s.Repo.GetForSeller(sellerID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product", apperr.ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (s *SellerService) UpdateProduct(sellerID, productID uint, updates map[string]any) (*entity.Product, error) {
	p, err := s.ProductByID(sellerID, productID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Update(p, updates); err != nil {
		return nil, err
	}
	return s.ProductByID(sellerID, productID)
}

func (s *SellerService) DeleteProduct(sellerID, productID uint) error {
	p, err := s.ProductByID(sellerID, productID)
	if err != nil {
		return err
	}
	return s.Repo.Delete(p)
}

type SellerDashboard struct {
	TotalOrders     int64 `json:"totalOrders"`
	PendingOrders   int64 `json:"pendingOrders"`
	DeliveredOrders int64 `json:"deliveredOrders"`
	TotalProducts   int64 `json:"totalProducts"`
	ActiveProducts  int64 `json:"activeProducts"`
}

func (s *SellerService) Dashboard(sellerID uint) (*SellerDashboard, error) {
	out := &SellerDashboard{}
	var err error

	if out.TotalOrders, err = s.OrderRepo.CountForSeller(sellerID, nil); err != nil {
		return nil, err
	}
	pending := entity.OrderPending
	if out.PendingOrders, err = s.OrderRepo.CountForSeller(sellerID, &pending); err != nil {
		return nil, err
	}
	delivered := entity.OrderDelivered
	if out.DeliveredOrders, err = s.OrderRepo.CountForSeller(sellerID, &delivered); err != nil {
		return nil, err
	}
	if out.TotalProducts, err = s.Repo.CountForSeller(sellerID, false); err != nil {
		return nil, err
	}
	if out.ActiveProducts, err = s.Repo.CountForSeller(sellerID, true); err != nil {
		return nil, err
	}
	return out, nil
}
