// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Galogen4eg/budget-backend/internal/application/usecase/budget"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/forecast"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/override"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/reconciliation"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/reserve"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/settings"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/transaction"
	"github.com/Galogen4eg/budget-backend/internal/domain/valueobject"
	"github.com/Galogen4eg/budget-backend/internal/infra/server/router"
	"github.com/Galogen4eg/budget-backend/internal/integration/adapters"
	"github.com/Galogen4eg/budget-backend/internal/integration/cache"
	"github.com/Galogen4eg/budget-backend/internal/integration/entrypoint/controller"
	"github.com/Galogen4eg/budget-backend/internal/integration/entrypoint/middleware"
	"github.com/Galogen4eg/budget-backend/internal/integration/persistence"
	"github.com/Galogen4eg/budget-backend/internal/integration/persistence/model"
	"github.com/Galogen4eg/budget-backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-integration"

// testContext holds the state for one scenario.
type testContext struct {
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	accessToken   string
	authenticated bool
	userID        uuid.UUID
	expenseID     uuid.UUID
}

type contextKey struct{}

func getTestContext(ctx context.Context) *testContext {
	tc, _ := ctx.Value(contextKey{}).(*testContext)
	return tc
}

func setTestContext(ctx context.Context, tc *testContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up shared resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers hooks and step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		database := mock.NewDb(
			&model.TransactionModel{},
			&model.SettingsModel{},
			&model.MandatoryExpenseModel{},
			&model.ManualPaidFlagModel{},
		)
		if err := database.Reset(); err != nil {
			return ctx, err
		}
		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}

		tc := &testContext{userID: uuid.New()}
		tc.server = httptest.NewServer(buildEngine(database, redisClient))

		token, err := signAccessToken(tc.userID)
		if err != nil {
			return ctx, err
		}
		tc.accessToken = token

		return setTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		if tc := getTestContext(ctx); tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, err
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// buildEngine wires the real application stack over the mock database and
// redis, mirroring the production injector.
func buildEngine(database *mock.Db, redisClient *redis.Client) *gin.Engine {
	gormDB := database.Conn()

	transactionRepo := persistence.NewTransactionRepository(gormDB)
	settingsRepo := persistence.NewSettingsRepository(gormDB)
	overrideRepo := persistence.NewOverrideRepository(gormDB)

	tokenService := adapters.NewTokenService(testJWTSecret)
	summaryCache := cache.NewSummaryCache(redisClient)

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
		0,
	)
	projectCashFlowUseCase := forecast.NewProjectCashFlowUseCase(reserveConfig)
	getForecastUseCase := forecast.NewGetForecastUseCase(settingsRepo, getSummaryUseCase, projectCashFlowUseCase)

	togglePaidUseCase := override.NewTogglePaidUseCase(overrideStore, overrideRepo, summaryCache)
	setReserveUseCase := override.NewSetReserveUseCase(overrideStore, overrideRepo, summaryCache)

	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo, summaryCache)
	saveExpenseUseCase := settings.NewSaveMandatoryExpenseUseCase(settingsRepo, summaryCache)
	deleteExpenseUseCase := settings.NewDeleteMandatoryExpenseUseCase(settingsRepo, summaryCache)

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, summaryCache)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)

	healthController := controller.NewHealthController(
		func() bool { return true },
		func() bool { return true },
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

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		budgetController,
		forecastController,
		settingsController,
		transactionController,
		authMiddleware,
		middleware.NewRateLimiter(),
	)
	return r.Setup("test")
}

func signAccessToken(userID uuid.UUID) (string, error) {
	claims := adapters.CustomClaims{
		UserID:    userID.String(),
		Email:     "user@example.com",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
}

func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I remember the expense id from the response$`, iRememberTheExpenseID)
	ctx.Step(`^I record an income of "([^"]*)" for today$`, iRecordAnIncomeForToday)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := getTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iAmAuthenticated(ctx context.Context) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.accessToken == "" {
		return fmt.Errorf("no access token available")
	}
	tc.authenticated = true
	return nil
}

func (tc *testContext) send(method, endpoint string, body io.Reader) error {
	endpoint = strings.ReplaceAll(endpoint, "{expense_id}", tc.expenseID.String())

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.authenticated {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.send(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.send(method, endpoint, bytes.NewBufferString(body.Content))
}

func iRememberTheExpenseID(ctx context.Context) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	raw, ok := data["id"].(string)
	if !ok {
		return fmt.Errorf("response has no id field. Body: %s", string(tc.responseBody))
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return fmt.Errorf("response id is not a uuid: %w", err)
	}

	tc.expenseID = id
	return nil
}

func iRecordAnIncomeForToday(ctx context.Context, amount string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(
		`{"date": %q, "type": "income", "amount": %q}`,
		time.Now().Format(time.DateOnly),
		amount,
	)
	if err := tc.send(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(body)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("expected status 201, got %d. Body: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf(
			"expected status %d, got %d. Body: %s",
			expectedStatus, tc.response.StatusCode, string(tc.responseBody),
		)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	value, err := responseField(ctx, field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	_, err := responseField(ctx, field)
	return err
}

// responseField walks a dotted path through the response JSON. Numeric path
// segments index into arrays, so "expenses.0.is_paid" reaches the first
// expense's paid flag.
func responseField(ctx context.Context, field string) (any, error) {
	tc := getTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}

	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(field, ".") {
		switch v := current.(type) {
		case map[string]any:
			val, ok := v[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found. Body: %s", field, string(tc.responseBody))
			}
			current = val
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(v) {
				return nil, fmt.Errorf("field %q not found. Body: %s", field, string(tc.responseBody))
			}
			current = v[idx]
		default:
			return nil, fmt.Errorf("field %q not found. Body: %s", field, string(tc.responseBody))
		}
	}
	return current, nil
}
