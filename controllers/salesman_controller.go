package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type SalesmanController struct {
	Service      *services.SalesmanService
	OrderService *services.OrderService
}

func NewSalesmanController(svc *services.SalesmanService, orderSvc *services.OrderService) *SalesmanController {
	return &SalesmanController{Service: svc, OrderService: orderSvc}
}

type AssignBeatRequest struct {
	SalesmanID uint   `json:"salesmanId" binding:"required"`
	Area       string `json:"area" binding:"required"`
	City       string `json:"city"`
	Pincode    string `json:"pincode"`
	BeatName   string `json:"beatName"`
}

// POST /salesman/assign-beat (admin)
func (sc *SalesmanController) AssignBeat(c *gin.Context) {
	var req AssignBeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	beat, err := sc.Service.AssignBeat(req.SalesmanID, req.Area, req.City, req.Pincode, req.BeatName)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "beat assigned successfully", "beat": beat})
}

// GET /salesman/beats
func (sc *SalesmanController) MyBeats(c *gin.Context) {
	beats, err := sc.Service.Beats(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(beats), "beats": beats})
}

// POST /salesman/attendance/checkin
func (sc *SalesmanController) CheckIn(c *gin.Context) {
	record, err := sc.Service.CheckIn(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "attendance marked", "record": record})
}

// POST /salesman/attendance/checkout
func (sc *SalesmanController) CheckOut(c *gin.Context) {
	record, err := sc.Service.CheckOut(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "checked out successfully", "record": record})
}

// GET /salesman/attendance (admin)
func (sc *SalesmanController) AllAttendance(c *gin.Context) {
	records, err := sc.Service.AllAttendance()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(records), "data": records})
}

type LogVisitRequest struct {
	SellerID uint   `json:"sellerId" binding:"required"`
	BeatID   *uint  `json:"beatId"`
	Remarks  string `json:"remarks"`
	Feedback string `json:"feedback"`
}

// POST /salesman/visits
func (sc *SalesmanController) LogVisit(c *gin.Context) {
	var req LogVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	visit, err := sc.Service.LogVisit(utils.CurrentUserID(c), req.SellerID, req.BeatID, req.Remarks, req.Feedback)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "visit logged successfully", "visit": visit})
}

// GET /salesman/visits
func (sc *SalesmanController) MyVisits(c *gin.Context) {
	visits, err := sc.Service.Visits(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(visits), "visits": visits})
}

// GET /salesman/visits/all (admin)
func (sc *SalesmanController) AllVisits(c *gin.Context) {
	visits, err := sc.Service.AllVisits()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(visits), "visits": visits})
}

type SecondaryOrderRequest struct {
	CustomerID uint                   `json:"customerId" binding:"required"`
	SellerID   uint                   `json:"sellerId" binding:"required"`
	Products   []services.OrderItemIn `json:"products" binding:"required,min=1"`
	Address    string                 `json:"address"`
}

// POST /salesman/orders — secondary sales: the salesman places the order on a
// customer's behalf.
func (sc *SalesmanController) PlaceSecondaryOrder(c *gin.Context) {
	salesmanID := utils.CurrentUserID(c)

	var req SecondaryOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := sc.OrderService.PlaceOrder(req.CustomerID, req.SellerID, req.Products, req.Address, &salesmanID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "order placed successfully", "order": order})
}

// GET /salesman/dashboard
func (sc *SalesmanController) Dashboard(c *gin.Context) {
	summary, err := sc.Service.Dashboard(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"summary": summary})
}
