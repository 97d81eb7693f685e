package server

import (
	"errors"
	"strconv"

	"shanyraq/internal/models"
	"shanyraq/internal/service"

	"github.com/gofiber/fiber/v2"
)

// parseID parses a positive integer route parameter.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + param + " parameter")
	}
	return uint(id), nil
}

// parsePagination reads limit/offset query parameters. Values outside the
// accepted range are rejected rather than clamped.
func parsePagination(c *fiber.Ctx) (limit, offset int, err error) {
	limit = service.DefaultListLimit
	offset = 0

	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, models.NewValidationError("Invalid limit parameter")
		}
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, models.NewValidationError("Invalid offset parameter")
		}
	}

	if limit < 1 || limit > service.MaxListLimit {
		return 0, 0, models.NewValidationError("Limit must be between 1 and 100")
	}
	if offset < 0 {
		return 0, 0, models.NewValidationError("Offset must not be negative")
	}

	return limit, offset, nil
}

// mapServiceError translates an error from the service layer into the HTTP
// status code it should produce.
func mapServiceError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeValidation:
			return fiber.StatusBadRequest
		case models.CodeUnauthorized:
			return fiber.StatusUnauthorized
		case models.CodeForbidden:
			return fiber.StatusForbidden
		case models.CodeNotFound:
			return fiber.StatusNotFound
		case models.CodeConflict:
			return fiber.StatusConflict
		}
	}
	return fiber.StatusInternalServerError
}

// respondServiceError writes the error with its mapped status code.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, mapServiceError(err), err)
}

// currentUserID reads the authenticated user ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok
}
