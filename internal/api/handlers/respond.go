package handlers

import (
	"pricescout/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(dto.OK(data))
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.Fail(msg))
}

// userID resolves the authenticated caller set by the auth middleware. A
// missing or malformed identity is treated as unauthenticated even though the
// middleware should have rejected the request already.
func userID(c *fiber.Ctx) (uuid.UUID, bool) {
	raw, _ := c.Locals("userID").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func unauthorized(c *fiber.Ctx) error {
	return fail(c, fiber.StatusUnauthorized, "Unauthorized")
}
