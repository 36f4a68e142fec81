package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/pkg/utils"
	"github.com/place-search-service/internal/usecase"
	"github.com/place-search-service/internal/usecase/dto"
)

type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Search places near a point
// @Description Geocodes the query with proximity to lat/lon and enriches every match with travel duration and distance. Duration and distance are null when routing failed for that place.
// @Tags Search
// @Produce json
// @Param query query string true "Free-text place query"
// @Param lat query number true "Origin latitude"
// @Param lon query number true "Origin longitude"
// @Param mode query string false "Travel mode (driving, walking, cycling)" default(driving)
// @Param limit query int false "Maximum number of results (1-10)" default(5)
// @Success 200 {array} domain.ResultRecord
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	req, err := parseSearchRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	records, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(records)
}

func parseSearchRequest(c *fiber.Ctx) (dto.SearchRequest, error) {
	var req dto.SearchRequest
	var err error

	req.Query = c.Query("query")
	req.Mode = c.Query("mode")
	if req.Lat, err = queryFloat(c, "lat"); err != nil {
		return req, err
	}
	if req.Lon, err = queryFloat(c, "lon"); err != nil {
		return req, err
	}
	if req.Limit, err = queryInt(c, "limit"); err != nil {
		return req, err
	}
	return req, nil
}

// Route godoc
// @Summary Travel metrics between two points
// @Tags Search
// @Produce json
// @Param from_lat query number true "Origin latitude"
// @Param from_lon query number true "Origin longitude"
// @Param to_lat query number true "Destination latitude"
// @Param to_lon query number true "Destination longitude"
// @Param mode query string false "Travel mode (driving, walking, cycling)" default(driving)
// @Success 200 {object} dto.RouteResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/route [get]
func (h *SearchHandler) Route(c *fiber.Ctx) error {
	var req dto.RouteRequest
	var err error

	req.Mode = c.Query("mode")
	params := []struct {
		key string
		dst **float64
	}{
		{"from_lat", &req.FromLat},
		{"from_lon", &req.FromLon},
		{"to_lat", &req.ToLat},
		{"to_lon", &req.ToLon},
	}
	for _, p := range params {
		if *p.dst, err = queryFloat(c, p.key); err != nil {
			return utils.SendError(c, err)
		}
	}

	resp, err := h.searchUC.Route(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(resp)
}
