// Package routes wires repositories, services and handlers onto the
// fiber app.
package routes

import (
	"log"

	"cardpay/internal/config"
	"cardpay/internal/gateway"
	"cardpay/internal/handlers"
	"cardpay/internal/metrics"
	"cardpay/internal/middleware"
	"cardpay/internal/notification"
	"cardpay/internal/repositories"
	"cardpay/internal/services/card"
	"cardpay/internal/services/report"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes and builds the service
// graph behind them.
func SetupRoutes(app *fiber.App, db *gorm.DB, collector metrics.Collector) {
	memberRepo := repositories.NewMemberRepository(db)
	cardRepo := repositories.NewCardRepository(db, repositories.CacheService)
	transactionRepo := repositories.NewTransactionRepository(db)

	cardService := card.NewService(
		memberRepo,
		cardRepo,
		transactionRepo,
		buildGateway(),
		buildNotifier(),
		collector,
	)
	reportService := report.NewService(cardService, transactionRepo, collector)

	cardHandler := handlers.NewCardHandler(cardService)
	reportHandler := handlers.NewReportHandler(reportService)

	app.Get("/health", handlers.HealthCheck)

	authMiddleware := middleware.NewAuthMiddleware(config.GetEnv("JWT_SECRET", "cardpay"))
	api := app.Group("/api", authMiddleware.Handler)

	members := api.Group("/members/:memberNumber", middleware.RequireMember)
	members.Get("/cards", cardHandler.GetMemberCards)
	members.Post("/cards", cardHandler.CreateCard)
	members.Post("/cards/transfer", cardHandler.Transfer)
	members.Delete("/cards/:cardNumber", cardHandler.RemoveCard)
	members.Get("/cards/:cardNumber/transactions", reportHandler.GetReport)
}

func buildGateway() gateway.Gateway {
	if key := config.GetEnv("STRIPE_SECRET_KEY", ""); key != "" {
		return gateway.NewStripeGateway(key, config.GetEnv("GATEWAY_CURRENCY", "usd"))
	}
	log.Println("STRIPE_SECRET_KEY not set, using local gateway")
	return gateway.NewLocalGateway()
}

func buildNotifier() notification.Sender {
	url := config.GetEnv("AMQP_URL", "")
	if url == "" {
		return notification.NewLogSender()
	}
	sender, err := notification.NewAMQPSender(url, config.GetEnv("AMQP_NOTIFICATION_QUEUE", "transfer_notifications"))
	if err != nil {
		log.Printf("AMQP connection failed, falling back to log notifier: %v", err)
		return notification.NewLogSender()
	}
	return sender
}
