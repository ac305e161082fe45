package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/application/usecase/forecast"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
	"github.com/Galogen4eg/budget-backend/internal/integration/entrypoint/dto"
	"github.com/Galogen4eg/budget-backend/internal/integration/entrypoint/middleware"
)

// ForecastController handles the cash-flow forecast endpoint.
type ForecastController struct {
	getForecastUseCase *forecast.GetForecastUseCase
}

// NewForecastController creates a new forecast controller instance.
func NewForecastController(getForecastUseCase *forecast.GetForecastUseCase) *ForecastController {
	return &ForecastController{
		getForecastUseCase: getForecastUseCase,
	}
}

// GetForecast handles GET /budget/forecast requests.
// Query parameters: daily_spend, income and horizon_days, all optional.
func (ctrl *ForecastController) GetForecast(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := forecast.GetForecastInput{
		UserID: userID,
		Now:    time.Now(),
	}

	if raw := c.Query("daily_spend"); raw != "" {
		spend, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid daily_spend",
				Code:  string(domainerror.ErrCodeNegativeSimulatedSpend),
			})
			return
		}
		input.DailySpend = &spend
	}

	if raw := c.Query("income"); raw != "" {
		income, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid income",
				Code:  string(domainerror.ErrCodeNegativeSimulatedIncome),
			})
			return
		}
		input.Income = &income
	}

	if raw := c.Query("horizon_days"); raw != "" {
		horizon, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid horizon_days",
				Code:  string(domainerror.ErrCodeInvalidHorizon),
			})
			return
		}
		input.HorizonDays = horizon
	}

	output, err := ctrl.getForecastUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		respondBudgetError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}
