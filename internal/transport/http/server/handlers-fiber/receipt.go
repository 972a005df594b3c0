package handlers_fiber

import (
	"net/http"

	"github.com/Koushal55/GitReceipt/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetReceiptLogin builds and returns the coding receipt for a login.
func (h *Handler) GetReceiptLogin(c *fiber.Ctx, login string) error {
	doc, err := h.uc.BuildReceipt(c.Context(), login)
	if err != nil {
		h.log.Errorw("failed to build receipt", "login", login, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIReceipt(doc))
}
