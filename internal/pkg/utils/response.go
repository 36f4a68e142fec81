package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/place-search-service/internal/pkg/errors"
)

// ErrorResponse is the flat error body clients of the search API expect:
// a free-text message plus the error kind.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		details := appErr.Details
		if len(details) == 0 {
			details = nil
		}
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error:   appErr.Message,
			Code:    appErr.Code,
			Details: details,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer.Message,
		Code:  errors.ErrInternalServer.Code,
	})
}
