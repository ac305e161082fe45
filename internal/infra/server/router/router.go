// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Galogen4eg/budget-backend/internal/integration/entrypoint/controller"
	"github.com/Galogen4eg/budget-backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	budgetController      *controller.BudgetController
	forecastController    *controller.ForecastController
	settingsController    *controller.SettingsController
	transactionController *controller.TransactionController
	authMiddleware        *middleware.AuthMiddleware
	rateLimiter           *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	budgetController *controller.BudgetController,
	forecastController *controller.ForecastController,
	settingsController *controller.SettingsController,
	transactionController *controller.TransactionController,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		budgetController:      budgetController,
		forecastController:    forecastController,
		settingsController:    settingsController,
		transactionController: transactionController,
		authMiddleware:        authMiddleware,
		rateLimiter:           rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/health/ready", r.healthController.Ready)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	{
		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budget := v1.Group("/budget")
			budget.Use(r.authMiddleware.Authenticate())
			{
				budget.GET("/summary", r.budgetController.GetSummary)
				budget.POST("/expenses/:id/toggle-paid", r.budgetController.TogglePaid)
				budget.PUT("/reserve", r.budgetController.SetReserve)
				if r.forecastController != nil {
					budget.GET("/forecast", r.forecastController.GetForecast)
				}
			}
		}

		// Settings routes (require authentication)
		if r.settingsController != nil && r.authMiddleware != nil {
			settings := v1.Group("/settings")
			settings.Use(r.authMiddleware.Authenticate())
			{
				settings.GET("", r.settingsController.Get)
				settings.PUT("", r.settingsController.Update)
				settings.POST("/expenses", r.settingsController.CreateExpense)
				settings.PUT("/expenses/:id", r.settingsController.UpdateExpense)
				settings.DELETE("/expenses/:id", r.settingsController.DeleteExpense)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
