package handlers

import (
	"errors"
	"log"

	"github.com/andesco/studio-gateway/pkg/backend"
	"github.com/andesco/studio-gateway/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// ErrorHandler logs and writes every error as {"error": message}. Only
// *fiber.Error messages below 500 reach the caller; anything else is hidden
// behind a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			log.Printf("ERROR: %s %s: %v", c.Method(), c.Path(), fe)
			return c.Status(fe.Code).JSON(errorBody{Error: msgInternal})
		}
		log.Printf("WARN: %s %s: %d %s", c.Method(), c.Path(), fe.Code, fe.Message)
		return c.Status(fe.Code).JSON(errorBody{Error: fe.Message})
	}

	log.Printf("ERROR: %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: msgInternal})
}

// NewApp builds the fiber app with middleware and every route registered.
func NewApp(cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:               cfg.Prefork,
		DisableStartupMessage: cfg.Quiet,
		ErrorHandler:          ErrorHandler,
	})

	app.Use(recover.New())
	if cfg.LogRequests {
		app.Use(logger.New(logger.Config{
			Format: "${time} | ${status} | ${latency} | ${method} | ${path} | ${error}\n",
		}))
	}

	Register(app, cfg, backend.NewClient(cfg.Origin(), cfg.Timeout))
	return app
}

func Register(app *fiber.App, cfg config.Config, client *backend.Client) {
	api := app.Group("/api")
	api.Get("/debug", Debug(cfg))
	api.Get("/fonts", Fonts())
	api.Get("/fonts/:id", Font())
	api.Get("/health", Health())
	api.Delete("/assets/:id", DeleteAsset(client))
	api.Post("/viral-inspiration", SubmitViralInspiration(client))

	app.Get("/debug", DebugPage(cfg))
	app.Get("/test", TestingPage(cfg))
}
