package routes

import (
	"net/http"

	"washex/handlers"
	"washex/middleware"
	"washex/models"
	"washex/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.Default())

	RegisterHealthRoute(r)
	RegisterStaffRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterManifestRoutes(r, hb)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterStaffRoutes registers staff management and auth endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.POST("/login", hb.Staff.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.StaffAuthMiddleware())
		api.DELETE("/revoke", hb.Staff.RevokeTokenHandler)
		api.GET("/agents", hb.Staff.ListAgentsHandler)
		api.GET("/id/:id", hb.Staff.GetStaffHandler)

		// Staff administration is admin-only.
		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.POST("", hb.Staff.CreateStaffHandler)
		admin.GET("", hb.Staff.ListStaffHandler)
		admin.PATCH("/:id", hb.Staff.UpdateStaffHandler)
		admin.DELETE("/:id", hb.Staff.DeleteStaffHandler)
	}
}

// RegisterCustomerRoutes registers customer endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	api.Use(middleware.StaffAuthMiddleware())
	{
		api.POST("", hb.Customers.CreateCustomerHandler)
		api.GET("", hb.Customers.ListCustomersHandler)
		api.GET("/id/:id", hb.Customers.GetCustomerHandler)
		api.GET("/phone/:phone", hb.Customers.GetCustomerByPhoneHandler)
		api.PATCH("/:id", hb.Customers.UpdateCustomerHandler)
		api.DELETE("/:id", middleware.RequireRole(models.RoleManager), hb.Customers.DeleteCustomerHandler)
	}
}

// RegisterCatalogRoutes registers the service catalog and slot endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	api.Use(middleware.StaffAuthMiddleware())
	{
		api.GET("", hb.Catalog.ListServicesHandler)
		api.GET("/:id", hb.Catalog.GetServiceHandler)

		// Catalog changes affect pricing; managers and admins only.
		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleManager))
		admin.POST("", hb.Catalog.CreateServiceHandler)
		admin.PATCH("/:id", hb.Catalog.UpdateServiceHandler)
		admin.DELETE("/:id", hb.Catalog.DeleteServiceHandler)
	}

	slots := r.Group("/api/slots")
	slots.Use(middleware.StaffAuthMiddleware())
	slots.GET("", hb.Slots.ListSlotsHandler)
}

// RegisterOrderRoutes sets up the endpoints for the order engine.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	api.Use(middleware.StaffAuthMiddleware())
	{
		api.POST("", hb.Orders.CreateOrdersHandler)
		api.GET("", hb.Orders.ListOrdersHandler)
		api.GET("/stats", hb.Orders.OrderStatsHandler)
		api.GET("/:code", hb.Orders.GetOrderHandler)
		api.PATCH("/:code", hb.Orders.UpdateOrderHandler)
	}
}

// RegisterManifestRoutes registers manifest projection endpoints.
func RegisterManifestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/manifests")
	api.Use(middleware.StaffAuthMiddleware())
	{
		api.GET("/:kind", hb.Manifests.GetManifestRowsHandler)
		api.GET("/:kind/pdf", hb.Manifests.GetManifestPDFHandler)
	}
}
