package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-tracker/internal/api/metrics"
	"github.com/taskforge/task-tracker/internal/core/domain"
	"github.com/taskforge/task-tracker/internal/core/ports"
)

// AuthHandler handles registration and token issuance.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username  string `json:"username"   validate:"required,min=3,max=100"`
	Email     string `json:"email"      validate:"required,min=3,max=100"`
	Password  string `json:"password"   validate:"required,min=3,max=100"`
	FirstName string `json:"first_name" validate:"required,min=3,max=100"`
	LastName  string `json:"last_name"  validate:"required,min=3,max=100"`
	Role      string `json:"role"       validate:"required,min=3,max=100"`
	// IsActive defaults to true when omitted.
	IsActive *bool `json:"is_active"`
}

// tokenRequest carries form-encoded credentials, OAuth2 password-grant style.
type tokenRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Status handles GET /auth/ — a trivial liveness check for the auth subsystem.
//
// @Summary      Auth subsystem status
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/ [get]
func (h *AuthHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"auth": "ok"})
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  isActive,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Token authenticates form credentials and returns a bearer token.
//
// @Summary      Issue an access token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("unauthorized").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
