package api

import (
	"net/http"

	resdto "carental/internal/handler/dto/response"
	"carental/internal/handler/httperr"
	"carental/internal/pkg/errs"
	"carental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	q queries.CarQueries
}

func NewCarHandler(q queries.CarQueries) *CarHandler {
	return &CarHandler{q: q}
}

// @Summary List cars
// @Description List the whole fleet with seasonal prices
// @Tags cars
// @Produce json
// @Success 200 {array} resdto.CarResponse
// @Router /cars [get]
func (h *CarHandler) List(c *gin.Context) {
	cars, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.CarResponse, len(cars))
	for i, view := range cars {
		response[i] = resdto.FromCarView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List available cars
// @Description List cars with at least one free unit over the range, with a price quote
// @Tags cars
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.AvailableCarResponse
// @Failure 400 {object} map[string]string
// @Router /cars/available [get]
func (h *CarHandler) ListAvailable(c *gin.Context) {
	from, to, err := parseRangeParams(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}

	cars, err := h.q.ListAvailable(c.Request.Context(), from, to)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidAvailabilityRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.AvailableCarResponse, len(cars))
	for i, view := range cars {
		response[i] = resdto.FromAvailableCarView(view)
	}

	c.JSON(http.StatusOK, response)
}
