package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"aquamanager/internal/handler"
	"aquamanager/internal/migration"
	"aquamanager/internal/repository"
	"aquamanager/internal/service"
	"aquamanager/internal/ws"
	"aquamanager/pkg/config"
	"aquamanager/pkg/database"
	"aquamanager/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// 1. Config and logging
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// 2. Schema
	if cfg.AutoMigrate {
		if err := migrate(cfg.DatabaseURL, log); err != nil {
			log.Fatal("migrations failed", zap.Error(err))
		}
	}

	// 3. Database
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}

	// 4. WebSocket hub
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	wsHub := ws.NewHub(log)
	go wsHub.Run(ctx)

	// 5. Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(db)
	vendorRepo := repository.NewVendorRepo(db)
	departmentRepo := repository.NewDepartmentRepo(db)
	personRepo := repository.NewPersonRepo(db)
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	usageRepo := repository.NewUsageRepo(db)

	handlers := &handler.Handlers{
		Catalog:   handler.NewCatalogHandler(service.NewCatalogService(categoryRepo, vendorRepo, departmentRepo, wsHub)),
		Product:   handler.NewProductHandler(service.NewProductService(productRepo, vendorRepo, categoryRepo, db, wsHub, log)),
		Inventory: handler.NewInventoryHandler(service.NewInventoryService(productRepo, txRepo, db, wsHub, log)),
		Usage:     handler.NewUsageHandler(service.NewUsageService(productRepo, usageRepo, db, wsHub, log)),
		Staff:     handler.NewStaffHandler(service.NewStaffService(personRepo, departmentRepo, wsHub)),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(productRepo, txRepo)),
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "AquaManager Inventory API",
		ErrorHandler: handler.ErrorHandler(log),
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, apikey",
	}))

	// 7. Routes
	handlers.Register(app, cfg.APIKey, wsHub)

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic("server stopped", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("port", cfg.Port), zap.String("env", cfg.Env))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	stop()
	if err := app.Shutdown(); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server exited")
}

func migrate(databaseURL string, log *zap.Logger) error {
	m, err := migration.Open(databaseURL, log)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up()
}
