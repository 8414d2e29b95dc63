package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ptcoach/personal-trainer/internal/api/metrics"
	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

// Result strings returned by update_client_doc. The dashboard matches on them.
const (
	msgClientUpdated  = "Client document updated successfully."
	msgClientNotFound = "Client not found."
	msgErrorPrefix    = "An error occurred: "
)

// MethodHandler serves the remote procedures called by the dashboard and the
// member app under /api/v2/method.
type MethodHandler struct {
	memberships ports.MembershipService
	clients     ports.ClientService
	log         zerolog.Logger
}

func NewMethodHandler(memberships ports.MembershipService, clients ports.ClientService, log zerolog.Logger) *MethodHandler {
	return &MethodHandler{memberships: memberships, clients: clients, log: log}
}

type authenticateMembershipParams struct {
	MembershipID string `query:"membership_id" json:"membership_id" form:"membership_id"`
}

type updateClientDocParams struct {
	ClientID string `query:"client_id" json:"client_id" form:"client_id"`
	Field    string `query:"field"     json:"field"     form:"field"`
	Value    string `query:"value"     json:"value"     form:"value"`
}

// AuthenticateMembership handles /api/v2/method/authenticate_membership.
//
// @Summary      Authenticate a membership
// @Description  Returns the client and membership when the membership is enabled, and null data when it is disabled.
// @Tags         methods
// @Accept       json
// @Produce      json
// @Param        membership_id  query     string  true  "Membership id"
// @Success      200            {object}  dataResponse
// @Failure      400            {object}  errorResponse
// @Failure      404            {object}  errorResponse
// @Router       /api/v2/method/authenticate_membership [get]
// @Router       /api/v2/method/authenticate_membership [post]
func (h *MethodHandler) AuthenticateMembership(c echo.Context) error {
	var p authenticateMembershipParams
	if err := bindParams(c, &p); err != nil {
		return err
	}
	if p.MembershipID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "membership_id is required")
	}

	result, err := h.memberships.Authenticate(c.Request().Context(), p.MembershipID)
	switch {
	case errors.Is(err, domain.ErrMembershipNotFound):
		metrics.MembershipAuthTotal.WithLabelValues("not_found").Inc()
		return err
	case err != nil:
		metrics.MembershipAuthTotal.WithLabelValues("error").Inc()
		return err
	case result == nil:
		metrics.MembershipAuthTotal.WithLabelValues("disabled").Inc()
		return c.JSON(http.StatusOK, dataResponse{Data: nil})
	}

	metrics.MembershipAuthTotal.WithLabelValues("enabled").Inc()
	return c.JSON(http.StatusOK, dataResponse{Data: result})
}

// UpdateClientDoc handles /api/v2/method/update_client_doc.
// Every outcome is reported as a string with HTTP 200.
//
// @Summary      Set one client field
// @Description  field=weight_log appends a weight sample. Targets are re-derived on save.
// @Tags         methods
// @Accept       json
// @Produce      json
// @Param        client_id  query     string  true  "Client id"
// @Param        field      query     string  true  "Field name"
// @Param        value      query     string  true  "Raw value"
// @Success      200        {object}  dataResponse
// @Router       /api/v2/method/update_client_doc [get]
// @Router       /api/v2/method/update_client_doc [post]
func (h *MethodHandler) UpdateClientDoc(c echo.Context) error {
	var p updateClientDocParams
	if err := bindParams(c, &p); err != nil {
		return c.JSON(http.StatusOK, dataResponse{Data: msgErrorPrefix + "invalid parameters"})
	}

	label := p.Field
	if !domain.IsClientField(label) {
		label = "other"
	}

	err := h.clients.UpdateField(c.Request().Context(), p.ClientID, p.Field, p.Value)
	switch {
	case err == nil:
		metrics.ClientFieldUpdatesTotal.WithLabelValues(label, "ok").Inc()
		return c.JSON(http.StatusOK, dataResponse{Data: msgClientUpdated})
	case errors.Is(err, domain.ErrClientNotFound):
		metrics.ClientFieldUpdatesTotal.WithLabelValues(label, "not_found").Inc()
		return c.JSON(http.StatusOK, dataResponse{Data: msgClientNotFound})
	default:
		metrics.ClientFieldUpdatesTotal.WithLabelValues(label, "error").Inc()
		h.log.Warn().Err(err).
			Str("client_id", p.ClientID).
			Str("field", p.Field).
			Msg("update_client_doc failed")
		return c.JSON(http.StatusOK, dataResponse{Data: msgErrorPrefix + err.Error()})
	}
}

// bindParams binds query parameters and, for requests with a body, the JSON or
// form body on top of them.
func bindParams(c echo.Context, dst any) error {
	b := &echo.DefaultBinder{}
	if err := b.BindQueryParams(c, dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid parameters")
	}
	if c.Request().ContentLength == 0 {
		return nil
	}
	if err := b.BindBody(c, dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid parameters")
	}
	return nil
}
