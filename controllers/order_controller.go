package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// OrderController is the seller-facing order surface.
type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// GET /orders
func (oc *OrderController) List(c *gin.Context) {
	sellerID := utils.CurrentUserID(c)
	orders, err := oc.Service.SellerOrders(sellerID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(orders), "orders": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	sellerID := utils.CurrentUserID(c)
	orderID := paramUint(c, "id")

	order, err := oc.Service.SellerOrderDetail(sellerID, orderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /orders/:id/status
func (oc *OrderController) ChangeStatus(c *gin.Context) {
	sellerID := utils.CurrentUserID(c)
	orderID := paramUint(c, "id")

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	status, ok := entity.ParseOrderStatus(req.Status)
	if !ok {
		resp.BadRequest(c, "invalid order status")
		return
	}

	order, err := oc.Service.ChangeStatus(sellerID, orderID, status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order status updated to " + status.String(), "order": order})
}

type ItemStatusRequest struct {
	ItemStatus string `json:"itemStatus" binding:"required"`
}

// PUT /orders/:id/item/:itemId/status
func (oc *OrderController) UpdateItemStatus(c *gin.Context) {
	sellerID := utils.CurrentUserID(c)
	orderID := paramUint(c, "id")
	itemID := paramUint(c, "itemId")

	var req ItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	status, ok := entity.ParseItemStatus(req.ItemStatus)
	if !ok {
		resp.BadRequest(c, "invalid item status")
		return
	}

	item, err := oc.Service.UpdateItemStatus(sellerID, orderID, itemID, status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item status updated", "item": item})
}

func paramUint(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(v)
}

func formUint(s string) uint {
	v, _ := strconv.ParseUint(s, 10, 64)
	return uint(v)
}
