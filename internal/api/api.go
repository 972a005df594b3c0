package api

import "github.com/gofiber/fiber/v2"

// ServerInterface lists the HTTP operations exposed by the service.
type ServerInterface interface {
	// GetReceiptLogin builds and returns the receipt for one login.
	GetReceiptLogin(c *fiber.Ctx, login string) error
}

// RegisterHandlers attaches all routes to the fiber router.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	router.Get("/api/v1/receipt/:login", func(c *fiber.Ctx) error {
		return si.GetReceiptLogin(c, c.Params("login"))
	})
}
