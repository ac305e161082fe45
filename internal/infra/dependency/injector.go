// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Galogen4eg/budget-backend/config"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/budget"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/forecast"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/override"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/reconciliation"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/reserve"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/settings"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/transaction"
	"github.com/Galogen4eg/budget-backend/internal/domain/valueobject"
	"github.com/Galogen4eg/budget-backend/internal/infra/db"
	"github.com/Galogen4eg/budget-backend/internal/infra/server/router"
	"github.com/Galogen4eg/budget-backend/internal/integration/adapters"
	"github.com/Galogen4eg/budget-backend/internal/integration/cache"
	"github.com/Galogen4eg/budget-backend/internal/integration/entrypoint/controller"
	"github.com/Galogen4eg/budget-backend/internal/integration/entrypoint/middleware"
	"github.com/Galogen4eg/budget-backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, database *db.Database, redisClient *redis.Client) *Injector {
	gormDB := database.DB()

	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(gormDB)
	settingsRepo := persistence.NewSettingsRepository(gormDB)
	overrideRepo := persistence.NewOverrideRepository(gormDB)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	summaryCache := cache.NewSummaryCache(redisClient)

	// Create the override store and engine use cases
	reserveConfig := valueobject.DefaultReserveConfig()
	overrideStore := override.NewStore(overrideRepo)

	reconcileUseCase := reconciliation.NewReconcileExpensesUseCase(reserveConfig)
	composeReserveUseCase := reserve.NewComposeReserveUseCase()
	dailyBudgetUseCase := budget.NewDailyBudgetUseCase(reserveConfig)
	getSummaryUseCase := budget.NewGetBudgetSummaryUseCase(
		settingsRepo,
		transactionRepo,
		overrideStore,
		summaryCache,
		reconcileUseCase,
		composeReserveUseCase,
		dailyBudgetUseCase,
		cfg.Budget.SummaryCacheTTL,
	)
	projectCashFlowUseCase := forecast.NewProjectCashFlowUseCase(reserveConfig)
	getForecastUseCase := forecast.NewGetForecastUseCase(settingsRepo, getSummaryUseCase, projectCashFlowUseCase)

	// Create override use cases
	togglePaidUseCase := override.NewTogglePaidUseCase(overrideStore, overrideRepo, summaryCache)
	setReserveUseCase := override.NewSetReserveUseCase(overrideStore, overrideRepo, summaryCache)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo, summaryCache)
	saveExpenseUseCase := settings.NewSaveMandatoryExpenseUseCase(settingsRepo, summaryCache)
	deleteExpenseUseCase := settings.NewDeleteMandatoryExpenseUseCase(settingsRepo, summaryCache)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, summaryCache)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		database.HealthCheck,
		func() bool { return db.RedisHealthCheck(redisClient) },
	)
	budgetController := controller.NewBudgetController(getSummaryUseCase, togglePaidUseCase, setReserveUseCase)
	forecastController := controller.NewForecastController(getForecastUseCase)
	settingsController := controller.NewSettingsController(
		getSettingsUseCase,
		updateSettingsUseCase,
		saveExpenseUseCase,
		deleteExpenseUseCase,
	)
	transactionController := controller.NewTransactionController(createTransactionUseCase, listTransactionsUseCase)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)

	// Create router
	r := router.NewRouter(
		healthController,
		budgetController,
		forecastController,
		settingsController,
		transactionController,
		authMiddleware,
		rateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     gormDB,
		Router: r,
	}
}
