package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

// WeightDispatcher is the interface the handler uses to enqueue samples.
type WeightDispatcher interface {
	Enqueue(sample ports.WeightSampleInput)
	EnqueueBatch(samples []ports.WeightSampleInput)
}

// WeightHandler handles asynchronous weight sample ingestion.
type WeightHandler struct {
	dispatcher WeightDispatcher
}

// NewWeightHandler creates a WeightHandler backed by the given dispatcher.
func NewWeightHandler(dispatcher WeightDispatcher) *WeightHandler {
	return &WeightHandler{dispatcher: dispatcher}
}

// ReceiveBatch handles POST /v1/weights/batch and returns 202.
//
// @Summary      Ingest a batch of weight samples
// @Description  Samples are applied in order per client by a sharded worker pool.
// @Tags         weights
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []batchWeightSampleRequest  true  "Array of weight samples"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/weights/batch [post]
func (h *WeightHandler) ReceiveBatch(c echo.Context) error {
	var reqs []batchWeightSampleRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("sample[%d]: %s", i, err.Error()))
		}
	}

	h.dispatcher.EnqueueBatch(toBatchInputs(reqs))
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "weight samples accepted",
		Count:   len(reqs),
	})
}
