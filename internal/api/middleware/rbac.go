package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ptcoach/personal-trainer/internal/api/metrics"
	"github.com/ptcoach/personal-trainer/internal/core/domain"
)

// RBAC lets a staff request through only when the role set by Auth is one of
// allowedRoles. Rejections are counted per role and route.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; ok {
				return next(c)
			}
			metrics.AccessDeniedTotal.WithLabelValues(roleLabel(role), c.Path()).Inc()
			return c.JSON(http.StatusForbidden, map[string]string{"error": domain.ErrForbidden.Error()})
		}
	}
}

// roleLabel keeps the metric label set bounded to the known staff roles.
func roleLabel(role string) string {
	switch role {
	case domain.RoleAdmin, domain.RoleTrainer:
		return role
	}
	return "other"
}
