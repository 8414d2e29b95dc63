package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ptcoach/personal-trainer/internal/api/metrics"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

// ClientHandler handles HTTP requests for client profiles.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Create handles POST /v1/clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client profile"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	in, err := toCreateClientInput(req)
	if err != nil {
		return err
	}
	client, err := h.service.CreateClient(c.Request().Context(), in)
	if err != nil {
		return err
	}

	goal := string(client.Goal)
	if goal == "" {
		goal = "none"
	}
	metrics.ClientsCreatedTotal.WithLabelValues(goal).Inc()
	return c.JSON(http.StatusCreated, client)
}

// Get handles GET /v1/clients/:id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// List handles GET /v1/clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 20, max 100)"
// @Param        search  query     string  false  "Partial match on name or email"
// @Param        goal    query     string  false  "Exact goal"
// @Success      200     {object}  listClientsResponse
// @Failure      422     {object}  errorResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	var q listClientsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.ListClients(c.Request().Context(), ports.ListClientsInput{
		Search: q.Search,
		Goal:   q.Goal,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListClientsResponse(result))
}

// Update handles PATCH /v1/clients/:id.
//
// @Summary      Update a client
// @Description  Partial update. Targets and age are re-derived on save.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Client id"
// @Param        body  body      updateClientRequest  true  "Fields to change"
// @Success      200   {object}  domain.Client
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients/{id} [patch]
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	in, err := toUpdateClientInput(req)
	if err != nil {
		return err
	}
	client, err := h.service.UpdateClient(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /v1/clients/:id.
//
// @Summary      Delete a client
// @Tags         clients
// @Security     BearerAuth
// @Param        id   path  string  true  "Client id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteClient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddWeight handles POST /v1/clients/:id/weights.
//
// @Summary      Record a weight sample
// @Description  Appends to weight_log and re-derives targets. A repeated Idempotency-Key returns the client unchanged.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id               path      string               true   "Client id"
// @Param        Idempotency-Key  header    string               false  "Idempotency key to prevent duplicate samples"
// @Param        body             body      weightSampleRequest  true   "Weight sample"
// @Success      201              {object}  weightSampleResponse
// @Success      200              {object}  weightSampleResponse
// @Failure      404              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/clients/{id}/weights [post]
func (h *ClientHandler) AddWeight(c echo.Context) error {
	var req weightSampleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, replayed, err := h.service.AppendWeight(c.Request().Context(), ports.WeightSampleInput{
		ClientID:       c.Param("id"),
		Weight:         req.Weight,
		RecordedAt:     req.RecordedAt,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
	}
	return c.JSON(status, weightSampleResponse{Client: client, Replayed: replayed})
}
