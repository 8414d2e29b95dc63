package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
)

// staffClaims is the identity the Auth middleware stores on the context.
type staffClaims struct {
	UserID   string
	Username string
	Role     string
}

// ctxClaims extracts the auth claims injected by the Auth middleware and
// fails fast before any service call:
//   - role must be a known staff role (presence proves the middleware ran).
//   - user_id must be non-empty; without it the token is unusable.
func ctxClaims(c echo.Context) (staffClaims, error) {
	var sc staffClaims
	sc.Role, _ = c.Get("role").(string)
	if sc.Role != domain.RoleAdmin && sc.Role != domain.RoleTrainer {
		return staffClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	sc.UserID, _ = c.Get("user_id").(string)
	if sc.UserID == "" {
		return staffClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}
	sc.Username, _ = c.Get("username").(string)
	return sc, nil
}
