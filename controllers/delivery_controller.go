package controllers

import (
	"path/filepath"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type DeliveryController struct {
	Service   *services.DeliveryService
	UploadDir string
}

func NewDeliveryController(svc *services.DeliveryService, uploadDir string) *DeliveryController {
	return &DeliveryController{Service: svc, UploadDir: uploadDir}
}

type AssignDeliveryRequest struct {
	OrderID       uint `json:"orderId" binding:"required"`
	DeliveryBoyID uint `json:"deliveryBoyId" binding:"required"`
}

// POST /delivery/assign (seller)
func (dc *DeliveryController) Assign(c *gin.Context) {
	var req AssignDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	delivery, err := dc.Service.Assign(req.OrderID, req.DeliveryBoyID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "delivery assigned successfully", "delivery": delivery})
}

type DeliveryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /delivery/:id/status (delivery boy)
func (dc *DeliveryController) UpdateStatus(c *gin.Context) {
	deliveryBoyID := utils.CurrentUserID(c)
	deliveryID := paramUint(c, "id")

	var req DeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	// "returned" is deliberately not updatable through this endpoint
	status, ok := entity.ParseDeliveryStatus(req.Status)
	if !ok || !status.Updatable() {
		resp.BadRequest(c, "invalid status")
		return
	}

	delivery, err := dc.Service.UpdateStatus(deliveryID, deliveryBoyID, status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "delivery status updated to " + status.String(), "delivery": delivery})
}

// POST /delivery/:id/proof (delivery boy, multipart field "proof")
func (dc *DeliveryController) UploadProof(c *gin.Context) {
	deliveryID := paramUint(c, "id")

	file, err := c.FormFile("proof")
	if err != nil {
		resp.BadRequest(c, "proof file required")
		return
	}

	path, err := utils.SaveUpload(c, file, filepath.Join(dc.UploadDir, "proofs"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	delivery, err := dc.Service.AttachProof(deliveryID, path)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "proof uploaded successfully", "delivery": delivery})
}

// GET /delivery/my (delivery boy)
func (dc *DeliveryController) MyDeliveries(c *gin.Context) {
	deliveryBoyID := utils.CurrentUserID(c)
	deliveries, err := dc.Service.ListForBoy(deliveryBoyID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(deliveries), "deliveries": deliveries})
}
