// Package main is the entry point for the card payment service.
package main

import (
	"context"
	"log"
	"time"

	"cardpay/internal/config"
	"cardpay/internal/metrics"
	"cardpay/internal/repositories"
	"cardpay/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("failed to get database instance: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	// Stale cards must not survive a restart with a changed schema.
	if repositories.CacheService != nil {
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			log.Printf("failed to flush card cache: %v", err)
		}
	}

	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("failed to close database connection: %v", err)
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("failed to close cache connection: %v", err)
			}
		}
	}()

	collector := metrics.NewPrometheusCollector()
	go metrics.Serve(config.GetEnv("METRICS_ADDR", ":9100"))

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Transfers hit an external processor; rate-limit them per client.
	app.Use("/api/members/:memberNumber/cards/transfer", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("TRANSFER_RATE_LIMIT", 10),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "too many transfer requests, please try again later",
			})
		},
	}))

	routes.SetupRoutes(app, repositories.DB, collector)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
