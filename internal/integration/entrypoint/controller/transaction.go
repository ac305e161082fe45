package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Galogen4eg/budget-backend/internal/application/usecase/transaction"
	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
	"github.com/Galogen4eg/budget-backend/internal/integration/entrypoint/dto"
	"github.com/Galogen4eg/budget-backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createTransactionUseCase *transaction.CreateTransactionUseCase
	listTransactionsUseCase  *transaction.ListTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createTransactionUseCase *transaction.CreateTransactionUseCase,
	listTransactionsUseCase *transaction.ListTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		createTransactionUseCase: createTransactionUseCase,
		listTransactionsUseCase:  listTransactionsUseCase,
	}
}

// Create handles POST /transactions requests.
func (ctrl *TransactionController) Create(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeTransactionInternalError),
		})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingDate),
		})
		return
	}

	output, err := ctrl.createTransactionUseCase.Execute(c.Request.Context(), transaction.CreateTransactionInput{
		UserID:          userID,
		MemberID:        req.MemberID,
		Date:            date,
		Type:            entity.TransactionType(req.Type),
		Amount:          req.Amount,
		Category:        req.Category,
		Note:            req.Note,
		RawNote:         req.RawNote,
		LinkedExpenseID: req.LinkedExpenseID,
	})
	if err != nil {
		respondTransactionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TransactionResponseFromEntity(output.Transaction))
}

// List handles GET /transactions requests.
// Query parameters: month (YYYY-MM), type, limit and offset, all optional.
func (ctrl *TransactionController) List(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := transaction.ListTransactionsInput{
		UserID: userID,
		Limit:  parseIntQuery(c, "limit", 0),
		Offset: parseIntQuery(c, "offset", 0),
	}

	if raw := c.Query("month"); raw != "" {
		month, err := time.Parse("2006-01", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month format, expected YYYY-MM",
				Code:  string(domainerror.ErrCodeInvalidMonthKey),
			})
			return
		}
		input.Month = &month
	}

	if raw := c.Query("type"); raw != "" {
		txType := entity.TransactionType(raw)
		if txType != entity.TransactionTypeIncome && txType != entity.TransactionTypeExpense {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Type must be income or expense",
				Code:  string(domainerror.ErrCodeInvalidTransactionType),
			})
			return
		}
		input.Type = &txType
	}

	output, err := ctrl.listTransactionsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		respondTransactionError(c, err)
		return
	}

	transactions := make([]dto.TransactionResponse, 0, len(output.Transactions))
	for _, tx := range output.Transactions {
		transactions = append(transactions, dto.TransactionResponseFromEntity(tx))
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: transactions,
		Total:        output.Total,
	})
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// respondTransactionError maps transaction domain errors to HTTP responses.
func respondTransactionError(c *gin.Context, err error) {
	var txErr *domainerror.TransactionError
	if errors.As(err, &txErr) {
		status := http.StatusBadRequest
		if txErr.Code == domainerror.ErrCodeTransactionNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, dto.ErrorResponse{
			Error: txErr.Message,
			Code:  string(txErr.Code),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
		Code:  string(domainerror.ErrCodeTransactionInternalError),
	})
}
