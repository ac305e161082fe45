package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Galogen4eg/budget-backend/internal/application/usecase/settings"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
	"github.com/Galogen4eg/budget-backend/internal/integration/entrypoint/dto"
	"github.com/Galogen4eg/budget-backend/internal/integration/entrypoint/middleware"
)

// SettingsController handles budget settings endpoints.
type SettingsController struct {
	getSettingsUseCase    *settings.GetSettingsUseCase
	updateSettingsUseCase *settings.UpdateSettingsUseCase
	saveExpenseUseCase    *settings.SaveMandatoryExpenseUseCase
	deleteExpenseUseCase  *settings.DeleteMandatoryExpenseUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getSettingsUseCase *settings.GetSettingsUseCase,
	updateSettingsUseCase *settings.UpdateSettingsUseCase,
	saveExpenseUseCase *settings.SaveMandatoryExpenseUseCase,
	deleteExpenseUseCase *settings.DeleteMandatoryExpenseUseCase,
) *SettingsController {
	return &SettingsController{
		getSettingsUseCase:    getSettingsUseCase,
		updateSettingsUseCase: updateSettingsUseCase,
		saveExpenseUseCase:    saveExpenseUseCase,
		deleteExpenseUseCase:  deleteExpenseUseCase,
	}
}

// Get handles GET /settings requests.
func (ctrl *SettingsController) Get(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := ctrl.getSettingsUseCase.Execute(c.Request.Context(), settings.GetSettingsInput{
		UserID: userID,
	})
	if err != nil {
		respondSettingsError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SettingsResponseFromEntity(output.Settings))
}

// Update handles PUT /settings requests.
func (ctrl *SettingsController) Update(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeSettingsInternalError),
		})
		return
	}

	initialBalanceDate := time.Now().UTC()
	if req.InitialBalanceDate != "" {
		parsed, err := time.Parse(time.DateOnly, req.InitialBalanceDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid initial_balance_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeSettingsInternalError),
			})
			return
		}
		initialBalanceDate = parsed
	}

	output, err := ctrl.updateSettingsUseCase.Execute(c.Request.Context(), settings.UpdateSettingsInput{
		UserID:             userID,
		SavingsRate:        req.SavingsRate,
		SalaryDates:        req.SalaryDates,
		EnableSmartReserve: req.EnableSmartReserve,
		InitialBalance:     req.InitialBalance,
		InitialBalanceDate: initialBalanceDate,
	})
	if err != nil {
		respondSettingsError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SettingsResponseFromEntity(output.Settings))
}

// CreateExpense handles POST /settings/expenses requests.
func (ctrl *SettingsController) CreateExpense(c *gin.Context) {
	ctrl.saveExpense(c, nil)
}

// UpdateExpense handles PUT /settings/expenses/:id requests.
func (ctrl *SettingsController) UpdateExpense(c *gin.Context) {
	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense id",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return
	}
	ctrl.saveExpense(c, &expenseID)
}

func (ctrl *SettingsController) saveExpense(c *gin.Context, expenseID *uuid.UUID) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.MandatoryExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeExpenseNameRequired),
		})
		return
	}

	output, err := ctrl.saveExpenseUseCase.Execute(c.Request.Context(), settings.SaveMandatoryExpenseInput{
		UserID:   userID,
		ID:       expenseID,
		Name:     req.Name,
		Amount:   req.Amount,
		Day:      req.Day,
		Keywords: req.Keywords,
		MemberID: req.MemberID,
		Remind:   req.Remind,
	})
	if err != nil {
		respondSettingsError(c, err)
		return
	}

	status := http.StatusOK
	if expenseID == nil {
		status = http.StatusCreated
	}
	c.JSON(status, dto.MandatoryExpenseResponseFromEntity(output.Expense))
}

// DeleteExpense handles DELETE /settings/expenses/:id requests.
func (ctrl *SettingsController) DeleteExpense(c *gin.Context) {
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

	if err := ctrl.deleteExpenseUseCase.Execute(c.Request.Context(), settings.DeleteMandatoryExpenseInput{
		UserID: userID,
		ID:     expenseID,
	}); err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Mandatory expense not found",
				Code:  string(domainerror.ErrCodeExpenseNotFound),
			})
			return
		}
		respondSettingsError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondSettingsError maps settings domain errors to HTTP responses.
func respondSettingsError(c *gin.Context, err error) {
	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: settingsErr.Message,
			Code:  string(settingsErr.Code),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
		Code:  string(domainerror.ErrCodeSettingsInternalError),
	})
}
