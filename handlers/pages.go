package handlers

import (
	_ "embed"
	"fmt"

	"github.com/andesco/studio-gateway/pkg/config"
	"github.com/andesco/studio-gateway/pkg/layout"

	"github.com/gofiber/fiber/v2"
)

//go:embed debug.html
var debugPage string

//go:embed test.html
var testPage string

// page renders once at startup since the markup never changes.
func page(l layout.Layout, body string, cfg config.Config) fiber.Handler {
	html, err := layout.Render(l, body, layout.Options{BackendOrigin: cfg.Origin()})
	if err != nil {
		panic(fmt.Sprintf("Failed to render %s page: %v", l, err))
	}

	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(html)
	}
}

// DebugPage is styled but skips the app provider.
func DebugPage(cfg config.Config) fiber.Handler {
	return page(layout.Debug, debugPage, cfg)
}

func TestingPage(cfg config.Config) fiber.Handler {
	return page(layout.Root, testPage, cfg)
}
