package middleware

import (
	"context"
	"github.com/labstack/echo/v4"

	"github.com/carparts/carparts-api/internal/core/domain"
	"github.com/carparts/carparts-api/internal/metrics"
)

// AdminChecker resolves whether an email belongs to an admin. Unknown users
// must be reported as (false, nil).
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// VerifyAdmin lets the request through only when the caller verified by
// VerifyToken has the admin role, and fails with domain.ErrForbidden
// otherwise. It must be chained after VerifyToken.
func VerifyAdmin(checker AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := Email(c)
			if email == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("not_admin").Inc()
				return domain.ErrForbidden
			}

			isAdmin, err := checker.IsAdmin(c.Request().Context(), email)
			if err != nil {
				return err
			}
			if !isAdmin {
				metrics.AuthRejectionsTotal.WithLabelValues("not_admin").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
