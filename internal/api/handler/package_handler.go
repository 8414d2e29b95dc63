package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

// PackageHandler handles HTTP requests for subscription packages.
type PackageHandler struct {
	service ports.PackageService
}

func NewPackageHandler(service ports.PackageService) *PackageHandler {
	return &PackageHandler{service: service}
}

// Create handles POST /v1/packages.
//
// @Summary      Create a subscription package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPackageRequest  true  "Package; duration is in seconds"
// @Success      201   {object}  domain.SubscriptionPackage
// @Failure      422   {object}  errorResponse
// @Router       /v1/packages [post]
func (h *PackageHandler) Create(c echo.Context) error {
	var req createPackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	p, err := h.service.CreatePackage(c.Request().Context(), ports.CreatePackageInput{
		PackageName: req.PackageName,
		Duration:    req.Duration,
		Price:       req.Price,
		Currency:    req.Currency,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// Get handles GET /v1/packages/:id.
//
// @Summary      Get a subscription package
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Package id"
// @Success      200  {object}  domain.SubscriptionPackage
// @Failure      404  {object}  errorResponse
// @Router       /v1/packages/{id} [get]
func (h *PackageHandler) Get(c echo.Context) error {
	p, err := h.service.GetPackage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// List handles GET /v1/packages.
//
// @Summary      List subscription packages
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.SubscriptionPackage
// @Router       /v1/packages [get]
func (h *PackageHandler) List(c echo.Context) error {
	items, err := h.service.ListPackages(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*domain.SubscriptionPackage{}
	}
	return c.JSON(http.StatusOK, items)
}
