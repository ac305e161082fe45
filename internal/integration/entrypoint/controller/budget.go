package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Galogen4eg/budget-backend/internal/application/usecase/budget"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/override"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
	"github.com/Galogen4eg/budget-backend/internal/domain/valueobject"
	"github.com/Galogen4eg/budget-backend/internal/integration/entrypoint/dto"
	"github.com/Galogen4eg/budget-backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget summary and manual override endpoints.
type BudgetController struct {
	getSummaryUseCase *budget.GetBudgetSummaryUseCase
	togglePaidUseCase *override.TogglePaidUseCase
	setReserveUseCase *override.SetReserveUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	getSummaryUseCase *budget.GetBudgetSummaryUseCase,
	togglePaidUseCase *override.TogglePaidUseCase,
	setReserveUseCase *override.SetReserveUseCase,
) *BudgetController {
	return &BudgetController{
		getSummaryUseCase: getSummaryUseCase,
		togglePaidUseCase: togglePaidUseCase,
		setReserveUseCase: setReserveUseCase,
	}
}

// GetSummary handles GET /budget/summary requests.
func (ctrl *BudgetController) GetSummary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := ctrl.getSummaryUseCase.Execute(c.Request.Context(), budget.GetBudgetSummaryInput{
		UserID: userID,
		Now:    time.Now(),
	})
	if err != nil {
		respondBudgetError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

// TogglePaid handles POST /budget/expenses/:id/toggle-paid requests.
func (ctrl *BudgetController) TogglePaid(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense id",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return
	}

	var req dto.TogglePaidRequest
	// Body is optional; an empty month key means the current month.
	_ = c.ShouldBindJSON(&req)

	monthKey := req.MonthKey
	if monthKey == "" {
		monthKey = valueobject.MonthKeyFor(time.Now()).String()
	}

	output, err := ctrl.togglePaidUseCase.Execute(c.Request.Context(), override.TogglePaidInput{
		UserID:    userID,
		ExpenseID: expenseID,
		MonthKey:  monthKey,
	})
	if err != nil {
		respondBudgetError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TogglePaidResponse{
		ExpenseID: output.ExpenseID,
		MonthKey:  output.MonthKey,
		IsPaid:    output.IsPaid,
	})
}

// SetReserve handles PUT /budget/reserve requests.
func (ctrl *BudgetController) SetReserve(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SetReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeNegativeReserve),
		})
		return
	}

	output, err := ctrl.setReserveUseCase.Execute(c.Request.Context(), override.SetReserveInput{
		UserID: userID,
		Amount: req.Amount,
	})
	if err != nil {
		respondBudgetError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SetReserveResponse{Amount: output.Amount})
}

// respondBudgetError maps budget domain errors to HTTP responses.
func respondBudgetError(c *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		status := http.StatusBadRequest
		if budgetErr.Code == domainerror.ErrCodeExpenseNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
		Code:  string(domainerror.ErrCodeBudgetInternalError),
	})
}
