package controllers

import (
	"path/filepath"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Service      *services.CustomerService
	OrderService *services.OrderService
	UploadDir    string
}

func NewCustomerController(svc *services.CustomerService, orderSvc *services.OrderService, uploadDir string) *CustomerController {
	return &CustomerController{Service: svc, OrderService: orderSvc, UploadDir: uploadDir}
}

// GET /customers/sellers?city=&area=&pincode=
func (cc *CustomerController) NearbySellers(c *gin.Context) {
	sellers, err := cc.Service.NearbySellers(c.Query("city"), c.Query("area"), c.Query("pincode"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(sellers), "sellers": sellers})
}

type PlaceOrderRequest struct {
	SellerID uint                   `json:"sellerId" binding:"required"`
	Products []services.OrderItemIn `json:"products" binding:"required,min=1"`
	Address  string                 `json:"address"`
}

// POST /customers/orders
func (cc *CustomerController) PlaceOrder(c *gin.Context) {
	customerID := utils.CurrentUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := cc.OrderService.PlaceOrder(customerID, req.SellerID, req.Products, req.Address, nil)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "order placed successfully", "order": order})
}

// GET /customers/orders
func (cc *CustomerController) MyOrders(c *gin.Context) {
	customerID := utils.CurrentUserID(c)
	orders, err := cc.OrderService.CustomerOrders(customerID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(orders), "orders": orders})
}

// POST /customers/complaints (multipart, optional field "image")
func (cc *CustomerController) RaiseComplaint(c *gin.Context) {
	customerID := utils.CurrentUserID(c)

	orderID := uint(0)
	if v := c.PostForm("orderId"); v != "" {
		orderID = formUint(v)
	}
	description := c.PostForm("description")

	image := ""
	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveUpload(c, file, filepath.Join(cc.UploadDir, "complaints"))
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		image = path
	}

	complaint, err := cc.Service.RaiseComplaint(customerID, orderID, description, image)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "complaint raised", "complaint": complaint})
}

// GET /customers/complaints
func (cc *CustomerController) MyComplaints(c *gin.Context) {
	customerID := utils.CurrentUserID(c)
	complaints, err := cc.Service.Complaints(customerID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(complaints), "complaints": complaints})
}
