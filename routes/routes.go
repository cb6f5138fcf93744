package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	productRepo := repository.NewProductRepository(db)
	salesmanRepo := repository.NewSalesmanRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	orderSvc := services.NewOrderService(db, orderRepo)
	deliverySvc := services.NewDeliveryService(db, deliveryRepo, orderRepo, userRepo)
	sellerSvc := services.NewSellerService(productRepo, orderRepo)
	salesmanSvc := services.NewSalesmanService(salesmanRepo, orderRepo)
	customerSvc := services.NewCustomerService(userRepo, complaintRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	deliveryCtrl := controllers.NewDeliveryController(deliverySvc, cfg.UploadDir)
	sellerCtrl := controllers.NewSellerController(sellerSvc)
	salesmanCtrl := controllers.NewSalesmanController(salesmanSvc, orderSvc)
	customerCtrl := controllers.NewCustomerController(customerSvc, orderSvc, cfg.UploadDir)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Customer
	customers := r.Group("/customers", auth(entity.RoleCustomer))
	{
		customers.GET("/sellers", customerCtrl.NearbySellers)
		customers.POST("/orders", customerCtrl.PlaceOrder)
		customers.GET("/orders", customerCtrl.MyOrders)
		customers.POST("/complaints", customerCtrl.RaiseComplaint)
		customers.GET("/complaints", customerCtrl.MyComplaints)
	}

	// Seller order management
	orders := r.Group("/orders", auth(entity.RoleSeller))
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id/status", orderCtrl.ChangeStatus)
		orders.PUT("/:id/item/:itemId/status", orderCtrl.UpdateItemStatus)
	}

	// Delivery
	delivery := r.Group("/delivery")
	{
		delivery.POST("/assign", auth(entity.RoleSeller), deliveryCtrl.Assign)
		delivery.PUT("/:id/status", auth(entity.RoleDelivery), deliveryCtrl.UpdateStatus)
		delivery.POST("/:id/proof", auth(entity.RoleDelivery), deliveryCtrl.UploadProof)
		delivery.GET("/my", auth(entity.RoleDelivery), deliveryCtrl.MyDeliveries)
	}

	// Seller catalog + dashboard
	sellers := r.Group("/sellers", auth(entity.RoleSeller))
	{
		sellers.POST("/products", sellerCtrl.CreateProduct)
		sellers.GET("/products", sellerCtrl.Products)
		sellers.GET("/products/:id", sellerCtrl.ProductDetail)
		sellers.PUT("/products/:id", sellerCtrl.UpdateProduct)
		sellers.DELETE("/products/:id", sellerCtrl.DeleteProduct)
		sellers.GET("/dashboard", sellerCtrl.Dashboard)
	}

	// Salesman field ops
	salesman := r.Group("/salesman")
	{
		salesman.POST("/assign-beat", auth(entity.RoleAdmin), salesmanCtrl.AssignBeat)
		salesman.GET("/beats", auth(entity.RoleSalesman), salesmanCtrl.MyBeats)
		salesman.POST("/attendance/checkin", auth(entity.RoleSalesman), salesmanCtrl.CheckIn)
		salesman.POST("/attendance/checkout", auth(entity.RoleSalesman), salesmanCtrl.CheckOut)
		salesman.GET("/attendance", auth(entity.RoleAdmin), salesmanCtrl.AllAttendance)
		salesman.POST("/visits", auth(entity.RoleSalesman), salesmanCtrl.LogVisit)
		salesman.GET("/visits", auth(entity.RoleSalesman), salesmanCtrl.MyVisits)
		salesman.GET("/visits/all", auth(entity.RoleAdmin), salesmanCtrl.AllVisits)
		salesman.POST("/orders", auth(entity.RoleSalesman), salesmanCtrl.PlaceSecondaryOrder)
		salesman.GET("/dashboard", auth(entity.RoleSalesman), salesmanCtrl.Dashboard)
	}
}
