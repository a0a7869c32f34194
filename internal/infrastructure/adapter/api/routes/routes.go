package routes

import (
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Ledger *handler.LedgerHandler
	QA     *handler.QAHandler
	Health *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API. A nil auth config leaves
// the user routes open. Otherwise routes that grant credits or record payments
// need a service-role token, since the ledger does not verify payments itself.
func SetupRoutes(router *gin.Engine, handlers Handlers, auth *middleware.AuthConfig, logger coreport.Logger) {
	router.GET("/health", handlers.Health.Health)
	router.GET("/models", handlers.QA.Models)

	var serviceOnly []gin.HandlerFunc
	userRoutes := router.Group("/user/:userId")
	if auth != nil {
		userRoutes.Use(middleware.Auth(*auth, logger))
		serviceOnly = append(serviceOnly, middleware.RequireRole(auth.ServiceRole, logger))
	}
	{
		userRoutes.POST("/account", handlers.Ledger.EnsureAccount)
		userRoutes.GET("/balance", handlers.Ledger.GetBalance)
		userRoutes.GET("/profile", handlers.Ledger.GetProfile)

		userRoutes.POST("/credits/debit", handlers.Ledger.Debit)
		userRoutes.POST("/credits/credit", append(serviceOnly, handlers.Ledger.Credit)...)

		userRoutes.GET("/payments", handlers.Ledger.ListPayments)
		userRoutes.GET("/payments/:paymentId", handlers.Ledger.GetPayment)
		userRoutes.POST("/payments", append(serviceOnly, handlers.Ledger.RecordPayment)...)
		userRoutes.POST("/payments/confirm", append(serviceOnly, handlers.Ledger.ConfirmPayment)...)

		userRoutes.POST("/retrievals", handlers.QA.Retrieve)
		userRoutes.POST("/ask", handlers.QA.Ask)
		userRoutes.POST("/summaries", handlers.QA.Summarize)
		userRoutes.POST("/answers", handlers.QA.AnswerDocument)
		userRoutes.POST("/documents", handlers.QA.UploadDocument)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
