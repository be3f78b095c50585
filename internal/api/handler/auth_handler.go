package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taxpro/office-api/internal/api/metrics"
	"github.com/taxpro/office-api/internal/core/domain"
	"github.com/taxpro/office-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type switchRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type sessionResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// Login runs the first authentication step: credentials in, OTP challenge
// out. Remote rejection with a demo match still succeeds, flagged demo_mode.
//
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  ports.LoginResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	if result.DemoMode {
		metrics.LoginAttemptsTotal.WithLabelValues("demo").Inc()
	} else {
		metrics.LoginAttemptsTotal.WithLabelValues("remote").Inc()
	}
	return c.JSON(http.StatusOK, result)
}

// VerifyOTP runs the second step and returns the established session.
//
// @Summary      Verify the emailed OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOTPRequest  true  "Email and six-digit code"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.VerifyOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOTP) || errors.Is(err, domain.ErrOTPExpired) {
			metrics.OTPVerificationsTotal.WithLabelValues("failed").Inc()
		}
		return err
	}

	metrics.OTPVerificationsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, sessionResponse{Token: result.Token, User: result.User})
}

// Session resolves the bearer token back to its user, mirroring the
// restore-on-load check a client performs at startup.
//
// @Summary      Restore the current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Restore(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Token: token, User: user})
}

// SwitchRole changes the session's role in place and returns a fresh token.
//
// @Summary      Switch the session role (demo feature)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      switchRoleRequest  true  "Target role"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/role [post]
func (h *AuthHandler) SwitchRole(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	var req switchRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.SwitchRole(c.Request().Context(), token, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Token: result.Token, User: result.User})
}

// Logout drops the session.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
