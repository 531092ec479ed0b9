// File: washex/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"washex/config"
	"washex/cron"
	"washex/database"
	catalogRepoPkg "washex/database/repository/catalog"
	customerRepoPkg "washex/database/repository/customer"
	orderRepoPkg "washex/database/repository/order"
	slotRepoPkg "washex/database/repository/slot"
	staffRepoPkg "washex/database/repository/staff"
	"washex/handlers"
	"washex/middleware"
	"washex/routes"
	"washex/services/catalog"
	"washex/services/customer"
	"washex/services/manifest"
	"washex/services/order"
	"washex/services/staff"
	"washex/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	cron.InitReminderWorker()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	custRepo := customerRepoPkg.NewMongoCustomerRepo()
	stfRepo := staffRepoPkg.NewMongoStaffRepo()
	catRepo := catalogRepoPkg.NewMongoCatalogRepo()
	sltRepo := slotRepoPkg.NewMongoSlotRepo()
	ordRepo := orderRepoPkg.NewMongoOrderRepo()

	// services.
	customerService := &customer.DefaultCustomerService{Repo: custRepo}
	staffService := &staff.DefaultStaffService{Repo: stfRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: catRepo}

	orderService := &order.DefaultOrderService{
		CustomerRepo: custRepo,
		CatalogRepo:  catRepo,
		StaffRepo:    stfRepo,
		SlotRepo:     sltRepo,
		OrderRepo:    ordRepo,
		Reminder:     cron.NewReminderClient(),
	}

	manifestService := &manifest.DefaultManifestService{
		OrderRepo:    ordRepo,
		CustomerRepo: custRepo,
		Renderer:     manifest.NewPDFRenderer(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Orders:    handlers.NewOrderHandler(orderService, logger),
		Customers: handlers.NewCustomerHandler(customerService),
		Staff:     handlers.NewStaffHandler(staffService),
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Slots:     handlers.NewSlotHandler(sltRepo),
		Manifests: handlers.NewManifestHandler(manifestService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
