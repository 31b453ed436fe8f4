package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/st10068763/APDS-PEO/internal/cqrs"
	"github.com/st10068763/APDS-PEO/internal/middleware"
	"github.com/st10068763/APDS-PEO/internal/models"
	"github.com/st10068763/APDS-PEO/internal/query"
	"github.com/st10068763/APDS-PEO/internal/repository"
	"github.com/st10068763/APDS-PEO/internal/throttle"
)

// UserCommander defines the write-side operations used by UserHandler.
type UserCommander interface {
	RegisterUser(ctx context.Context, cmd cqrs.RegisterUserCommand) (*models.User, error)
}

// AuthQuerier defines the read-side operations used by UserHandler.
type AuthQuerier interface {
	Login(ctx context.Context, cmd cqrs.LoginCommand) (*query.LoginResult, error)
}

// LoginLimiter gates the login endpoint per client address.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) error
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

// UserHandler handles registration and login.
type UserHandler struct {
	commands UserCommander
	queries  AuthQuerier
	limiter  LoginLimiter
}

type SignupRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email" validate:"omitempty,email"`
	Username      string `json:"username" validate:"required"`
	Password      string `json:"password" validate:"required"`
	AccountNumber string `json:"accountNumber"`
	IDNumber      string `json:"idNumber"`
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func NewUserHandler(commands UserCommander, queries AuthQuerier, limiter LoginLimiter) *UserHandler {
	return &UserHandler{commands: commands, queries: queries, limiter: limiter}
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, err := h.commands.RegisterUser(c.Request.Context(), cqrs.RegisterUserCommand{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Username:      req.Username,
		Password:      req.Password,
		AccountNumber: req.AccountNumber,
		IDNumber:      req.IDNumber,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			middleware.RespondWithError(c, http.StatusBadRequest, "Username already exists")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Signup failed")
		return
	}

	c.JSON(http.StatusCreated, SignupResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	clientKey := c.ClientIP()

	// The throttle gate runs before any credential work so a blocked client
	// costs no bcrypt time and leaks nothing about the account.
	if err := h.limiter.Allow(ctx, clientKey); err != nil {
		if errors.Is(err, throttle.ErrTooManyAttempts) {
			middleware.RespondWithError(c, http.StatusTooManyRequests, "Too many failed login attempts, please try again later")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	result, err := h.queries.Login(ctx, cqrs.LoginCommand{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		if errors.Is(err, query.ErrInvalidCredentials) {
			// Unknown identifier and wrong password produce the same response.
			_ = h.limiter.RecordFailure(ctx, clientKey)
			middleware.RespondWithError(c, http.StatusUnauthorized, "Authentication failed")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	_ = h.limiter.Reset(ctx, clientKey)

	c.JSON(http.StatusOK, LoginResponse{
		Message:   "Authentication successful",
		Token:     result.Token,
		UserID:    result.User.ID,
		Username:  result.User.Username,
		FirstName: result.User.FirstName,
		LastName:  result.User.LastName,
	})
}
