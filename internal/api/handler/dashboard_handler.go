package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the single-page dashboard. Requests for existing
// files under dir are served as is; every other path under /dashboard falls
// back to index.html so client-side routes resolve.
type DashboardHandler struct {
	dir string
}

func NewDashboardHandler(dir string) *DashboardHandler {
	return &DashboardHandler{dir: dir}
}

// Serve handles GET /dashboard and GET /dashboard/*.
func (h *DashboardHandler) Serve(c echo.Context) error {
	rel := strings.TrimPrefix(path.Clean("/"+c.Param("*")), "/")
	if rel != "" {
		candidate := filepath.Join(h.dir, filepath.FromSlash(rel))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return c.File(candidate)
		}
	}

	index := filepath.Join(h.dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "dashboard not built")
	}
	return c.File(index)
}
