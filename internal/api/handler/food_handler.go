package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

// FoodHandler handles HTTP requests for the food catalogue.
type FoodHandler struct {
	service ports.FoodService
}

func NewFoodHandler(service ports.FoodService) *FoodHandler {
	return &FoodHandler{service: service}
}

// Create handles POST /v1/foods.
//
// @Summary      Add a food to the catalogue
// @Tags         foods
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFoodRequest  true  "Food"
// @Success      201   {object}  domain.Food
// @Failure      422   {object}  errorResponse
// @Router       /v1/foods [post]
func (h *FoodHandler) Create(c echo.Context) error {
	var req createFoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	facts := make([]ports.NutritionalFactInput, len(req.NutritionalFacts))
	for i, f := range req.NutritionalFacts {
		facts[i] = ports.NutritionalFactInput{Nutrient: f.Nutrient, Value: f.Value, Unit: f.Unit}
	}

	food, err := h.service.CreateFood(c.Request().Context(), ports.CreateFoodInput{
		Ingredient:       req.Ingredient,
		Description:      req.Description,
		Category:         req.Category,
		FDCID:            req.FDCID,
		Image:            req.Image,
		Enabled:          enabled,
		NutritionalFacts: facts,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, food)
}

// Get handles GET /v1/foods/:id.
//
// @Summary      Get a food
// @Tags         foods
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Food id"
// @Success      200  {object}  domain.Food
// @Failure      404  {object}  errorResponse
// @Router       /v1/foods/{id} [get]
func (h *FoodHandler) Get(c echo.Context) error {
	food, err := h.service.GetFood(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, food)
}

// List handles GET /v1/foods.
//
// @Summary      List foods
// @Tags         foods
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Page size (default 20, max 100)"
// @Param        search    query     string  false  "Partial match on ingredient"
// @Param        category  query     string  false  "Exact category"
// @Success      200       {object}  listFoodsResponse
// @Router       /v1/foods [get]
func (h *FoodHandler) List(c echo.Context) error {
	var q listFoodsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.ListFoods(c.Request().Context(), ports.ListFoodsInput{
		Search:   q.Search,
		Category: q.Category,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		return err
	}

	items := result.Items
	if items == nil {
		items = []*domain.Food{}
	}
	return c.JSON(http.StatusOK, listFoodsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Delete handles DELETE /v1/foods/:id.
//
// @Summary      Delete a food
// @Tags         foods
// @Security     BearerAuth
// @Param        id   path  string  true  "Food id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/foods/{id} [delete]
func (h *FoodHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteFood(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
