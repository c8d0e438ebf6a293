package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"vendorflow-backend/config"
	"vendorflow-backend/controllers"
	"vendorflow-backend/database"
	"vendorflow-backend/middlewares"
	"vendorflow-backend/repository"
	"vendorflow-backend/routes"
	"vendorflow-backend/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ---- Database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// ---- Services
	creds, err := middlewares.NewCredentials(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("admin credentials: %v", err)
	}
	files := storage.New(cfg.UploadDir)
	vendorRepo := repository.NewVendorRepository(db)

	// ---- Fiber app with global error handler + body limit
	app := fiber.New(fiber.Config{
		ErrorHandler: middlewares.ErrorHandler,
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
	})

	app.Use(logger.New())

	// ---- CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: false, // basic auth headers, not cookies
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Idempotency-Key",
	}))

	// ---- Global rate limiter (applies to all routes; tune via env)
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
	}))

	// ---- Static assets (vendor form, dashboard assets)
	app.Static("/", cfg.PublicDir)

	// ---- Routes
	routes.Register(app, routes.Deps{
		Vendors:     controllers.NewVendorController(vendorRepo, files),
		Admin:       controllers.NewAdminController(vendorRepo, cfg.PublicDir),
		AdminAuth:   middlewares.AdminAuth(creds),
		Idempotency: middlewares.Idempotency(db),
	})

	// ---- Start
	log.Println("VendorFlow API listening on port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
