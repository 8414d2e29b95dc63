package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

// MembershipHandler handles HTTP requests for memberships.
type MembershipHandler struct {
	service ports.MembershipService
}

func NewMembershipHandler(service ports.MembershipService) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// Create handles POST /v1/memberships.
//
// @Summary      Create a membership
// @Description  The window opens now when the package has a positive duration.
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMembershipRequest  true  "Membership references"
// @Success      201   {object}  domain.Membership
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/memberships [post]
func (h *MembershipHandler) Create(c echo.Context) error {
	var req createMembershipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	m, err := h.service.CreateMembership(c.Request().Context(), ports.CreateMembershipInput{
		Client:              req.Client,
		SubscriptionPackage: req.SubscriptionPackage,
	})
	if err != nil {
		return referenceError(err)
	}
	return c.JSON(http.StatusCreated, m)
}

// Get handles GET /v1/memberships/:id.
//
// @Summary      Get a membership
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Membership id"
// @Success      200  {object}  domain.Membership
// @Failure      404  {object}  errorResponse
// @Router       /v1/memberships/{id} [get]
func (h *MembershipHandler) Get(c echo.Context) error {
	m, err := h.service.GetMembership(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// Update handles PATCH /v1/memberships/:id.
//
// @Summary      Update a membership
// @Description  Only a change of subscription_package restarts the window.
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Membership id"
// @Param        body  body      updateMembershipRequest  true  "References to change"
// @Success      200   {object}  domain.Membership
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/memberships/{id} [patch]
func (h *MembershipHandler) Update(c echo.Context) error {
	var req updateMembershipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	m, err := h.service.UpdateMembership(c.Request().Context(), c.Param("id"), ports.UpdateMembershipInput{
		Client:              req.Client,
		SubscriptionPackage: req.SubscriptionPackage,
	})
	if err != nil {
		return referenceError(err)
	}
	return c.JSON(http.StatusOK, m)
}

// Refresh handles POST /v1/memberships/:id/refresh.
//
// @Summary      Re-evaluate a membership
// @Description  Re-saves the membership so that enabled reflects the current time.
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Membership id"
// @Success      200  {object}  domain.Membership
// @Failure      404  {object}  errorResponse
// @Router       /v1/memberships/{id}/refresh [post]
func (h *MembershipHandler) Refresh(c echo.Context) error {
	m, err := h.service.RefreshMembership(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// ListByClient handles GET /v1/clients/:id/memberships.
//
// @Summary      List a client's memberships
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {array}   domain.Membership
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id}/memberships [get]
func (h *MembershipHandler) ListByClient(c echo.Context) error {
	items, err := h.service.ListClientMemberships(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if items == nil {
		items = []*domain.Membership{}
	}
	return c.JSON(http.StatusOK, items)
}

// referenceError turns a missing client or package referenced from a
// membership body into 422. The membership itself missing stays 404.
func referenceError(err error) error {
	if errors.Is(err, domain.ErrClientNotFound) || errors.Is(err, domain.ErrPackageNotFound) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return err
}
