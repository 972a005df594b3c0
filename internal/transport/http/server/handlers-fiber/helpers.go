package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/Koushal55/GitReceipt/internal/api"
	"github.com/Koushal55/GitReceipt/internal/entities"
	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrIdentityNotFound):
		// The not-found message names the login verbatim.
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = err.Error()
	case errors.Is(err, entities.ErrSourceUnavailable):
		status = http.StatusBadGateway
		code = api.SOURCEUNAVAILABLE
		msg = "activity source unavailable"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}
