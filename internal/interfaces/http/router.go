// Package http assembles the gin engine: middleware chain, use case
// construction and route registration.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appcatalog "klevant/internal/application/catalog"
	inventoryusecases "klevant/internal/application/inventory/usecases"
	appnotification "klevant/internal/application/notification"
	notificationusecases "klevant/internal/application/notification/usecases"
	apporder "klevant/internal/application/order"
	summaryusecases "klevant/internal/application/summary/usecases"
	ticketusecases "klevant/internal/application/ticket/usecases"
	userusecases "klevant/internal/application/user/usecases"
	"klevant/internal/infrastructure/auth"
	"klevant/internal/infrastructure/config"
	"klevant/internal/infrastructure/email"
	"klevant/internal/infrastructure/pdf"
	"klevant/internal/infrastructure/ratelimit"
	"klevant/internal/infrastructure/repository"
	authhandler "klevant/internal/interfaces/http/handlers/auth"
	cataloghandler "klevant/internal/interfaces/http/handlers/catalog"
	inventoryhandler "klevant/internal/interfaces/http/handlers/inventory"
	notificationhandler "klevant/internal/interfaces/http/handlers/notification"
	orderhandler "klevant/internal/interfaces/http/handlers/order"
	summaryhandler "klevant/internal/interfaces/http/handlers/summary"
	tickethandler "klevant/internal/interfaces/http/handlers/ticket"
	userhandler "klevant/internal/interfaces/http/handlers/user"
	"klevant/internal/interfaces/http/middleware"
	"klevant/internal/interfaces/http/routes"
	"klevant/internal/shared/db"
	"klevant/internal/shared/logger"
)

const (
	submitRateLimit  = 10
	submitRateWindow = time.Minute
)

// NewRouter builds the fully wired gin engine.
func NewRouter(cfg *config.Config, database *gorm.DB, redisClient *redis.Client, log logger.Interface) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	// Infrastructure.
	txManager := db.NewTransactionManager(database)
	jwtService := auth.NewJWTService(&cfg.Auth)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	passwords := auth.NewRandomPasswordGenerator()
	mailer := email.NewSMTPSender(&cfg.Email, log)
	renderer := pdf.NewQuotationRenderer(cfg.Company)
	limiter := ratelimit.NewRedisRateLimiter(redisClient, submitRateLimit, submitRateWindow, log)

	// Repositories.
	ticketRepo := repository.NewTicketRepository(database)
	quotationRepo := repository.NewQuotationRepository(database)
	historyRepo := repository.NewStatusHistoryRepository(database)
	productSalesRepo := repository.NewAdditionalProductRepository(database)
	userRepo := repository.NewUserRepository(database)
	notificationRepo := repository.NewNotificationRepository(database)
	assignmentRepo := repository.NewOutwardAssignmentRepository(database)
	catalogProductRepo := repository.NewProductRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	orderRepo := repository.NewOrderRepository(database)
	cartRepo := repository.NewCartRepository(database)
	summaryRepo := repository.NewSummaryRepository(database)

	// Workflow side-effect channels.
	dispatcher := appnotification.NewDispatcher(notificationRepo, mailer, log)

	// Handlers.
	ticketHandler := tickethandler.NewHandler(
		ticketusecases.NewSubmitTicketUseCase(ticketRepo, historyRepo, txManager, log),
		ticketusecases.NewAcceptTicketUseCase(ticketRepo, historyRepo, txManager, log),
		ticketusecases.NewRejectTicketUseCase(ticketRepo, historyRepo, txManager, log),
		ticketusecases.NewAssignTechnicianUseCase(ticketRepo, historyRepo, userRepo, txManager, dispatcher, log),
		ticketusecases.NewMarkResolvedUseCase(ticketRepo, historyRepo, txManager, log),
		ticketusecases.NewMarkCompletedUseCase(ticketRepo, historyRepo, txManager, log),
		ticketusecases.NewAddAdditionalProductUseCase(ticketRepo, productSalesRepo, log),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, quotationRepo, productSalesRepo, historyRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
	)
	quotationHandler := tickethandler.NewQuotationHandler(
		ticketusecases.NewCreateQuotationUseCase(ticketRepo, quotationRepo, log),
		ticketusecases.NewAcceptQuotationUseCase(quotationRepo, log),
		ticketusecases.NewRejectQuotationUseCase(quotationRepo, log),
		ticketusecases.NewRenderQuotationPDFUseCase(ticketRepo, quotationRepo, renderer, log),
	)
	authHandler := authhandler.NewHandler(
		userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log),
		userusecases.NewRefreshTokenUseCase(jwtService, log),
		userusecases.NewGetProfileUseCase(userRepo, log),
		userusecases.NewUpdateProfileUseCase(userRepo, hasher, log),
	)
	userHandler := userhandler.NewHandler(
		userusecases.NewCreateTechnicianUseCase(userRepo, hasher, passwords, mailer, log),
		userusecases.NewListTechniciansUseCase(userRepo, log),
	)
	notificationHandler := notificationhandler.NewHandler(
		notificationusecases.NewListNotificationsUseCase(notificationRepo, log),
		notificationusecases.NewMarkNotificationReadUseCase(notificationRepo, log),
	)
	inventoryHandler := inventoryhandler.NewHandler(
		inventoryusecases.NewCreateAssignmentUseCase(assignmentRepo, userRepo, log),
		inventoryusecases.NewReturnStockUseCase(assignmentRepo, log),
		inventoryusecases.NewListAssignmentsUseCase(assignmentRepo, log),
	)
	summaryHandler := summaryhandler.NewHandler(
		summaryusecases.NewGetSummaryUseCase(summaryRepo, log),
	)
	catalogHandler := cataloghandler.NewHandler(
		appcatalog.NewService(catalogProductRepo, categoryRepo, log),
	)
	orderHandler := orderhandler.NewHandler(
		apporder.NewService(orderRepo, cartRepo, catalogProductRepo, log),
	)

	engine := gin.New()
	engine.Use(
		middleware.Recovery(log),
		middleware.RequestLogger(log),
		middleware.CORS(),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authMW := middleware.Auth(jwtService)
	rateLimitMW := middleware.RateLimit(limiter)

	api := engine.Group("/api/v1")
	routes.RegisterTicketRoutes(api, ticketHandler, quotationHandler, authMW, rateLimitMW)
	routes.RegisterAuthRoutes(api, authHandler, authMW)
	routes.RegisterAdminRoutes(api, userHandler, inventoryHandler, summaryHandler, authMW)
	routes.RegisterNotificationRoutes(api, notificationHandler, authMW)
	routes.RegisterStoreRoutes(api, catalogHandler, orderHandler, authMW)

	return engine
}
