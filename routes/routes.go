package routes

import (
	"cerocafe-backend/configs"
	"cerocafe-backend/controllers"
	"cerocafe-backend/middlewares"
	"cerocafe-backend/pkg/notify"
	"cerocafe-backend/pkg/payments"
	"cerocafe-backend/pkg/printer"
	"cerocafe-backend/repository"
	"cerocafe-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	dishRepo := repository.NewDishRepository(db)

	// Collaborators
	gateway := payments.NewClient(cfg.GatewayBaseURL, cfg.GatewayAccessToken, cfg.CollaboratorTimeout)
	kitchen := printer.NewClient(cfg.PrinterURL, cfg.CollaboratorTimeout)
	push := notify.NewClient(cfg.NotifyURL, cfg.CollaboratorTimeout)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	pointsSvc := services.NewPointsService(db, userRepo)
	orderSvc := services.NewOrderService(db, orderRepo)
	webhookSvc := services.NewWebhookService(orderSvc, gateway)
	fulfillSvc := services.NewFulfillmentService(orderSvc, kitchen)
	menuSvc := services.NewMenuService(dishRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	pointsCtrl := controllers.NewPointsController(pointsSvc, push)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(gateway)
	webhookCtrl := controllers.NewWebhookController(webhookSvc)
	fulfillCtrl := controllers.NewFulfillmentController(fulfillSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Public
	r.GET("/menu", menuCtrl.List)
	r.POST("/orders", orderCtrl.Create)
	r.POST("/payments/checkout", paymentCtrl.Checkout)

	// Gateway callback
	r.POST("/webhooks/payments", webhookCtrl.Receive)

	// Staff
	staff := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "staff", "owner"))
	{
		staff.GET("/orders", orderCtrl.List)
		staff.GET("/orders/:id", orderCtrl.Detail)
		staff.POST("/orders/:id/confirm", fulfillCtrl.Confirm)
		staff.POST("/orders/:id/print", fulfillCtrl.Reprint)
		staff.PATCH("/orders/:id/status", fulfillCtrl.Advance)

		staff.POST("/points", pointsCtrl.Apply)
		staff.GET("/points/:dni/history", pointsCtrl.History)
		staff.GET("/points/leaderboard", pointsCtrl.Leaderboard)

		staff.POST("/menu", menuCtrl.Create)
		staff.PATCH("/menu/:id", menuCtrl.Update)
	}
}
