package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/st10068763/APDS-PEO/internal/cqrs"
	"github.com/st10068763/APDS-PEO/internal/middleware"
	"github.com/st10068763/APDS-PEO/internal/models"
	"github.com/st10068763/APDS-PEO/internal/payments"
	"github.com/st10068763/APDS-PEO/internal/repository"
)

// PaymentCommander defines the write-side operations used by PaymentHandler.
type PaymentCommander interface {
	CreatePayment(ctx context.Context, cmd cqrs.CreatePaymentCommand) (*models.Transaction, error)
}

// TransactionQuerier defines the read-side operations used by PaymentHandler.
type TransactionQuerier interface {
	ListRecent(ctx context.Context, q cqrs.ListTransactionsQuery) ([]models.TransactionView, error)
}

// PaymentHandler handles payment submission and transaction history.
type PaymentHandler struct {
	commands PaymentCommander
	queries  TransactionQuerier
}

type LocalPaymentRequest struct {
	UserID        string `json:"userId" validate:"required"`
	Recipient     string `json:"recipient" validate:"required"`
	Amount        string `json:"amount" validate:"required"`
	AccountNumber string `json:"accountNumber" validate:"required,accnum"`
	Currency      string `json:"currency" validate:"required"`
}

type InternationalPaymentRequest struct {
	UserID        string `json:"userId" validate:"required"`
	Recipient     string `json:"recipient" validate:"required"`
	Amount        string `json:"amount" validate:"required"`
	AccountNumber string `json:"accountNumber" validate:"required,accnum"`
	Currency      string `json:"currency" validate:"required"`
	SwiftCode     string `json:"swiftCode" validate:"required,swift"`
}

type PaymentResponse struct {
	Message string `json:"message"`
}

func NewPaymentHandler(commands PaymentCommander, queries TransactionQuerier) *PaymentHandler {
	return &PaymentHandler{commands: commands, queries: queries}
}

func (h *PaymentHandler) LocalPayment(c *gin.Context) {
	var req LocalPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	_, err := h.commands.CreatePayment(c.Request.Context(), cqrs.CreatePaymentCommand{
		UserID:        req.UserID,
		Recipient:     req.Recipient,
		Amount:        req.Amount,
		AccountNumber: req.AccountNumber,
		Currency:      req.Currency,
	})
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, PaymentResponse{Message: "Local payment processed successfully"})
}

func (h *PaymentHandler) InternationalPayment(c *gin.Context) {
	var req InternationalPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	_, err := h.commands.CreatePayment(c.Request.Context(), cqrs.CreatePaymentCommand{
		UserID:        req.UserID,
		Recipient:     req.Recipient,
		Amount:        req.Amount,
		AccountNumber: req.AccountNumber,
		Currency:      req.Currency,
		SwiftCode:     req.SwiftCode,
		International: true,
	})
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, PaymentResponse{Message: "International payment processed successfully"})
}

func (h *PaymentHandler) ListTransactions(c *gin.Context) {
	userID := c.Param("userId")

	views, err := h.queries.ListRecent(c.Request.Context(), cqrs.ListTransactionsQuery{
		UserID: userID,
	})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Error fetching transactions")
		return
	}

	c.JSON(http.StatusOK, views)
}

func respondPaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, payments.ErrInvalidAccountNumber):
		middleware.RespondWithError(c, http.StatusBadRequest, "Account number must be 10 digits")
	case errors.Is(err, payments.ErrInvalidSwiftCode):
		middleware.RespondWithError(c, http.StatusBadRequest, "SWIFT code must be 11 characters")
	case errors.Is(err, payments.ErrInvalidAmount):
		middleware.RespondWithError(c, http.StatusBadRequest, "Amount must be a positive number")
	case errors.Is(err, repository.ErrUserNotFound):
		middleware.RespondWithError(c, http.StatusNotFound, "User not found")
	default:
		middleware.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
