package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/api/metrics"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

// AuthHandler serves the two public authentication endpoints.
type AuthHandler struct {
	authService ports.AuthService
	audit       ports.AuditSink
}

func NewAuthHandler(authService ports.AuthService, audit ports.AuditSink) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

// Register creates a staff account and signs the caller in.
//
// @Summary      Register a staff account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Details: []string{err.Error()}})
	}

	token, account, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		var weak *domain.WeakPasswordError
		switch {
		case errors.As(err, &weak):
			metrics.RegistrationsTotal.WithLabelValues("weak_password").Inc()
			metrics.PasswordStrengthTotal.WithLabelValues(string(domain.StrengthWeak)).Inc()
			h.publish(req.Email, domain.AuditActionRegister, domain.AuditOutcomeFailure, "weak password")
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "password is too weak", Details: weak.Notes})
		case errors.Is(err, domain.ErrDuplicateAccount):
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			h.publish(req.Email, domain.AuditActionRegister, domain.AuditOutcomeFailure, "duplicate email")
			return c.JSON(http.StatusConflict, errorResponse{Error: domain.ErrDuplicateAccount.Error()})
		case errors.Is(err, domain.ErrInvalidRole):
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrInvalidRole.Error()})
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return err
		}
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	metrics.PasswordStrengthTotal.WithLabelValues(string(domain.CheckPasswordStrength(req.Password).Level)).Inc()
	h.publish(account.Email, domain.AuditActionRegister, domain.AuditOutcomeSuccess, "")

	return c.JSON(http.StatusCreated, authResponse{Token: token, Account: toAccountView(account)})
}

// Login authenticates a staff account and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Details: []string{err.Error()}})
	}

	token, account, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			h.publish(req.Email, domain.AuditActionLogin, domain.AuditOutcomeFailure, "invalid credentials")
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: domain.ErrInvalidCredentials.Error()})
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			h.publish(req.Email, domain.AuditActionLogin, domain.AuditOutcomeFailure, "throttled")
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: domain.ErrTooManyAttempts.Error()})
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			return err
		}
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	h.publish(account.Email, domain.AuditActionLogin, domain.AuditOutcomeSuccess, "")

	return c.JSON(http.StatusOK, authResponse{Token: token, Account: toAccountView(account)})
}

func (h *AuthHandler) publish(email, action, outcome, detail string) {
	if h.audit == nil {
		return
	}
	h.audit.Publish(domain.AuthEvent{
		Email:     email,
		Action:    action,
		Outcome:   outcome,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}

func toAccountView(a *domain.Account) accountView {
	return accountView{ID: a.ID, Email: a.Email, Role: a.Role, Active: a.Active}
}
