// handlers/errors.go
package handlers

import (
	"errors"
	"strings"

	"deeper-dungeons/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// StatusName renders an HTTP status as e.g. "NOT_FOUND".
func StatusName(code int) string {
	return strings.ToUpper(strings.ReplaceAll(utils.StatusMessage(code), " ", "_"))
}

// ErrorHandler is the app-wide fiber error handler. Unknown monsters are 404,
// empty remote images 400 and oversized ones 413. Fiber errors keep their
// code; anything else is a 500 carrying the error text.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, services.ErrMonsterNotFound):
		code = fiber.StatusNotFound
		message = services.ErrMonsterNotFound.Error()
	case errors.Is(err, services.ErrImageDownload):
		code = fiber.StatusBadRequest
		message = services.ErrImageDownload.Error()
	case errors.Is(err, services.ErrImageTooLarge):
		code = fiber.StatusRequestEntityTooLarge
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("[HTTP] unexpected error")
	}

	return c.Status(code).JSON(ErrorResponse{
		Message: message,
		Status:  StatusName(code),
	})
}
