package router

import (
	"github.com/baletrack/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler the API exposes
type Handlers struct {
	Auth          *handler.AuthHandler
	User          *handler.UserHandler
	Company       *handler.CompanyHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	Shipment      *handler.ShipmentHandler
	Container     *handler.ContainerHandler
	Bale          *handler.BaleHandler
	Assignment    *handler.AssignmentHandler
	System        *handler.SystemHandler
}

// Setup registers the full /api/v1 surface on the engine. authMiddleware
// must be the JWT middleware; it is applied to the whole group and
// configured separately to skip the public auth endpoints.
func Setup(engine *gin.Engine, h Handlers, authMiddleware gin.HandlerFunc) {
	api := engine.Group("/api/v1")
	api.Use(authMiddleware)

	// Public authentication endpoints (listed in the middleware's skip
	// paths) plus their authenticated siblings.
	auth := api.Group("/auth")
	auth.POST("/signup", h.Auth.Signup)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/me", h.Auth.GetCurrentUser)
	auth.PUT("/password", h.Auth.ChangePassword)

	// Company self-management
	companies := api.Group("/companies")
	companies.GET("/me", h.Company.GetOwn)
	companies.PUT("/me", h.Company.UpdateOwn)

	// User management (supervisor only, enforced in the service layer)
	users := api.Group("/users")
	users.POST("", h.User.Create)
	users.GET("", h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", h.User.Delete)

	// Purchase orders and their nested collections
	purchaseOrders := api.Group("/purchase-orders")
	purchaseOrders.POST("", h.PurchaseOrder.Create)
	purchaseOrders.GET("", h.PurchaseOrder.List)
	purchaseOrders.GET("/:id", h.PurchaseOrder.GetByID)
	purchaseOrders.PUT("/:id", h.PurchaseOrder.Update)
	purchaseOrders.POST("/:id/close", h.PurchaseOrder.Close)
	purchaseOrders.DELETE("/:id", h.PurchaseOrder.Delete)
	purchaseOrders.GET("/:id/grade-summary", h.PurchaseOrder.GradeSummary)
	purchaseOrders.POST("/:id/shipments", h.Shipment.Create)
	purchaseOrders.GET("/:id/shipments", h.Shipment.ListByPurchaseOrder)
	purchaseOrders.POST("/:id/assignments", h.Assignment.Grant)
	purchaseOrders.GET("/:id/assignments", h.Assignment.ListByPurchaseOrder)
	purchaseOrders.DELETE("/:id/assignments/:user_id", h.Assignment.Revoke)

	// Shipments and their containers
	shipments := api.Group("/shipments")
	shipments.GET("/:id", h.Shipment.GetByID)
	shipments.PUT("/:id", h.Shipment.Update)
	shipments.POST("/:id/depart", h.Shipment.Depart)
	shipments.POST("/:id/arrive", h.Shipment.MarkArrived)
	shipments.DELETE("/:id", h.Shipment.Delete)
	shipments.POST("/:id/containers", h.Container.Create)
	shipments.GET("/:id/containers", h.Container.ListByShipment)

	// Containers and their bales
	containers := api.Group("/containers")
	containers.GET("/:id", h.Container.GetByID)
	containers.PUT("/:id", h.Container.Update)
	containers.DELETE("/:id", h.Container.Delete)
	containers.POST("/:id/bales", h.Bale.Create)
	containers.GET("/:id/bales", h.Bale.ListByContainer)

	// Bales
	bales := api.Group("/bales")
	bales.GET("/:id", h.Bale.GetByID)
	bales.PUT("/:id", h.Bale.Reinspect)
	bales.PATCH("/:id/notes", h.Bale.UpdateNotes)
	bales.DELETE("/:id", h.Bale.Delete)

	// System
	system := api.Group("/system")
	system.GET("/info", h.System.GetSystemInfo)
	system.GET("/ping", h.System.Ping)
}

// PublicPaths lists the API paths that must bypass JWT authentication
func PublicPaths() []string {
	return []string{
		"/api/v1/auth/signup",
		"/api/v1/auth/login",
		"/api/v1/auth/refresh",
		"/api/v1/system/ping",
		"/api/v1/system/info",
	}
}
