package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/url"
	"strings"

	"github.com/andesco/studio-gateway/pkg/backend"

	"github.com/gofiber/fiber/v2"
)

const (
	msgUnauthorized   = "Unauthorized"
	msgInternal       = "Internal server error"
	msgDeleteFailed   = "Failed to delete asset"
	msgSubmitFailed   = "Failed to submit viral inspiration"
	msgMissingAssetID = "Missing asset id"
	msgInvalidAssetID = "Invalid asset id"
	msgUnknownFont    = "Unknown font"
)

type errorBody struct {
	Error string `json:"error"`
}

// authorization returns the inbound Authorization header exactly as received.
func authorization(c *fiber.Ctx) (string, error) {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.TrimSpace(auth) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, msgUnauthorized)
	}
	return auth, nil
}

// relayFailure maps a backend error to the response sent to the caller.
// Non-2xx statuses pass through with failMsg; anything else becomes a 500.
func relayFailure(c *fiber.Ctx, err error, failMsg string) error {
	var se *backend.StatusError
	if errors.As(err, &se) {
		log.Printf("ERROR: %v", se)
		return c.Status(se.Code).JSON(errorBody{Error: failMsg})
	}

	log.Printf("ERROR: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: msgInternal})
}

// DeleteAsset forwards DELETE /api/assets/:id to the backend and answers
// {"success": true} on any 2xx.
func DeleteAsset(client *backend.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth, err := authorization(c)
		if err != nil {
			return err
		}

		// params are raw path segments
		id, err := url.PathUnescape(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, msgInvalidAssetID)
		}
		if id == "" {
			return fiber.NewError(fiber.StatusBadRequest, msgMissingAssetID)
		}

		_, err = client.Forward(c.UserContext(), backend.Request{
			Method:        fiber.MethodDelete,
			Path:          "/api/v1/assets/" + url.PathEscape(id),
			Authorization: auth,
		})
		if err != nil {
			return relayFailure(c, err, msgDeleteFailed)
		}

		return c.JSON(fiber.Map{"success": true})
	}
}

// SubmitViralInspiration forwards POST /api/viral-inspiration with its JSON
// body and relays the backend's JSON answer untouched.
func SubmitViralInspiration(client *backend.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth, err := authorization(c)
		if err != nil {
			return err
		}

		// A body that is not JSON falls through to the error handler as a 500.
		var payload json.RawMessage
		if err := c.App().Config().JSONDecoder(c.Body(), &payload); err != nil {
			return err
		}

		resp, err := client.Forward(c.UserContext(), backend.Request{
			Method:        fiber.MethodPost,
			Path:          "/api/v1/viral-inspiration",
			Authorization: auth,
			Body:          payload,
		})
		if err != nil {
			return relayFailure(c, err, msgSubmitFailed)
		}

		if !json.Valid(resp.Body) {
			log.Printf("ERROR: backend returned a non-JSON body for viral inspiration (%d bytes)", len(resp.Body))
			return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: msgInternal})
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(resp.Body)
	}
}
