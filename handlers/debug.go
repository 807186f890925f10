package handlers

import (
	"github.com/andesco/studio-gateway/pkg/config"
	"github.com/andesco/studio-gateway/pkg/diagnostics"
	"github.com/andesco/studio-gateway/pkg/fonts"

	"github.com/gofiber/fiber/v2"
)

// Debug reports the configured backend and which BACKEND* variables are set.
func Debug(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(diagnostics.Snapshot(cfg))
	}
}

func Fonts() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fonts.All())
	}
}

// Font answers one entry of the font table by id.
func Font() fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, ok := fonts.Lookup(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, msgUnknownFont)
		}
		return c.JSON(f)
	}
}

func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
