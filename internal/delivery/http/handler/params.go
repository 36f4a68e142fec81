package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/place-search-service/internal/pkg/errors"
)

// queryFloat returns nil for an absent parameter so validation can report it
// as missing; a present but non-numeric value is rejected here.
func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.ErrValidation.
			WithMessage(fmt.Sprintf("%s must be a number", key)).
			WithDetails(map[string]interface{}{"fields": []string{key}}).
			Wrap(err)
	}
	return &v, nil
}

func queryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.ErrValidation.
			WithMessage(fmt.Sprintf("%s must be an integer", key)).
			WithDetails(map[string]interface{}{"fields": []string{key}}).
			Wrap(err)
	}
	return v, nil
}
