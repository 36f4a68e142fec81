package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/place-search-service/internal/usecase/dto"
)

// HealthChecker is implemented by optional backing stores.
type HealthChecker interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	provider        string
	tokenConfigured bool
	checks          map[string]HealthChecker
}

func NewHealthHandler(provider string, tokenConfigured bool, checks map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{
		provider:        provider,
		tokenConfigured: tokenConfigured,
		checks:          checks,
	}
}

// Health godoc
// @Summary Liveness probe
// @Description Always answers 200. token_configured is false when no upstream credential is set; dependencies lists optional stores.
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:          "ok",
		Message:         "Place search service is running",
		Provider:        h.provider,
		TokenConfigured: h.tokenConfigured,
		Time:            time.Now().UTC(),
	}

	if len(h.checks) > 0 {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		resp.Dependencies = make(map[string]string, len(h.checks))
		for name, check := range h.checks {
			if err := check.Health(ctx); err != nil {
				resp.Dependencies[name] = "unavailable"
				continue
			}
			resp.Dependencies[name] = "ok"
		}
	}

	return c.JSON(resp)
}
