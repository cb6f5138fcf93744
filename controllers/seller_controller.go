package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type SellerController struct {
	Service *services.SellerService
}

func NewSellerController(svc *services.SellerService) *SellerController {
	return &SellerController{Service: svc}
}

// POST /sellers/products
func (sc *SellerController) CreateProduct(c *gin.Context) {
	sellerID := utils.CurrentUserID(c)

	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := sc.Service.AddProduct(sellerID, req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, product)
}

// GET /sellers/products
func (sc *SellerController) Products(c *gin.Context) {
	sellerID := utils.CurrentUserID(c)
	products, err := sc.Service.Products(sellerID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(products), "products": products})
}

// GET /sellers/products/:id
func (sc *SellerController) ProductDetail(c *gin.Context) {
	sellerID := utils.CurrentUserID(c)
	product, err := sc.Service.ProductByID(sellerID, paramUint(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, product)
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Unit        *string  `json:"unit"`
	IsActive    *bool    `json:"isActive"`
}

// PUT /sellers/products/:id
func (sc *SellerController) UpdateProduct(c *gin.Context) {
	sellerID := utils.CurrentUserID(c)

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	product, err := sc.Service.UpdateProduct(sellerID, paramUint(c, "id"), updates)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, product)
}

// DELETE /sellers/products/:id
func (sc *SellerController) DeleteProduct(c *gin.Context) {
	sellerID := utils.CurrentUserID(c)
	if err := sc.Service.DeleteProduct(sellerID, paramUint(c, "id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "product deleted"})
}

// GET /sellers/dashboard
func (sc *SellerController) Dashboard(c *gin.Context) {
	sellerID := utils.CurrentUserID(c)
	summary, err := sc.Service.Dashboard(sellerID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}
