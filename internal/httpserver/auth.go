package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenmart/pos/internal/auth"
	"github.com/greenmart/pos/internal/logging"
	"github.com/greenmart/pos/internal/transport"
)

type AuthHTTP struct {
	Svc *auth.Service
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, pair, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrBadCredentials) {
			l.Warn("login_error", "status", 401, "reason", "bad credentials")
			return echo.NewHTTPError(http.StatusUnauthorized, "bad credentials")
		}
		l.Error("login_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot log in")
	}

	auth.SetTokenCookies(c, pair)

	l.Info("login_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) RegisterUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register_user")

	var req transport.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_user_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.RegisterUser(ctx, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			l.Warn("register_user_error", "status", 400, "reason", "email taken")
			return echo.NewHTTPError(http.StatusBadRequest, "email already registered")
		}
		l.Warn("register_user_error", "status", 400, "reason", err.Error())
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	l.Info("register_user_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, user)
}
