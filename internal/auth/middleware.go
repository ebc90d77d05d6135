package auth

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	AccessCookie  = "accessToken"
	RefreshCookie = "refreshToken"
)

func NewCookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func SetTokenCookies(c echo.Context, pair *TokenPair) {
	c.SetCookie(NewCookie(AccessCookie, pair.Access, time.Now().Add(AccessTokenTTL)))
	c.SetCookie(NewCookie(RefreshCookie, pair.Refresh, time.Now().Add(RefreshTokenTTL)))
}

// Middleware authenticates from the access cookie, rotating through the
// refresh cookie when the access token has expired.
type Middleware struct {
	Svc *Service
}

func (m *Middleware) authenticate(c echo.Context) (jwt.MapClaims, error) {
	if ck, err := c.Cookie(AccessCookie); err == nil {
		if claims, err := ValidateAccess(ck.Value, m.Svc.JWTSecret); err == nil {
			return claims, nil
		}
	}

	rf, err := c.Cookie(RefreshCookie)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}

	pair, _, err := m.Svc.Rotate(rf.Value)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}
	SetTokenCookies(c, pair)

	claims, err := ValidateAccess(pair.Access, m.Svc.JWTSecret)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}
	return claims, nil
}

func setUserContext(c echo.Context, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(float64); ok {
		c.Set("user_id", uint(sub))
	}
	if role, ok := claims["role"].(string); ok {
		c.Set("role", role)
	}
}

func (m *Middleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.authenticate(c)
		if err != nil {
			return err
		}
		setUserContext(c, claims)
		return next(c)
	}
}

func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.authenticate(c)
		if err != nil {
			return err
		}
		if role, _ := claims["role"].(string); role != RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
		}
		setUserContext(c, claims)
		return next(c)
	}
}
