package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/carparts/carparts-api/internal/metrics"
)

// ContextKeyEmail is the echo.Context key holding the verified email claim.
const ContextKeyEmail = "email"

// VerifyToken validates the bearer JWT and injects its email claim into the
// context. A missing Authorization header is 401; any token that fails
// signature, algorithm, expiry or claim checks is 403.
func VerifyToken(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(bearerToken(authHeader), claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(jwtSecret), nil
			},
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
				jwt.WithExpirationRequired(),
			)
			if err != nil || !tkn.Valid {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			email, _ := claims["email"].(string)
			if email == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			c.Set(ContextKeyEmail, email)
			return next(c)
		}
	}
}

// bearerToken returns the credential of a "Bearer <token>" header, or "" when
// the header uses another scheme.
func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Email returns the email injected by VerifyToken, or "".
func Email(c echo.Context) string {
	email, _ := c.Get(ContextKeyEmail).(string)
	return email
}
