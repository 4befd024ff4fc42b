// Package handlers contains the HTTP route handler functions.
//
// Each exported function follows the handler factory pattern: it takes the
// domain store and returns a fiber.Handler. This injects dependencies without
// global variables and keeps the handlers trivially testable.
//
// Handlers are intentionally thin: they parse and validate the request shape,
// call one store operation, and format the response. Every domain failure is
// translated exactly once, in jsonError below, so no raw database error (and
// no partial write — the store transacts) ever reaches a client.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gophergolf/scorecard/internal/middleware"
	"github.com/gophergolf/scorecard/internal/store"
)

// jsonError translates a store failure into the JSON error contract:
// {status: "error", message: ...} with the mapped status code.
func jsonError(c *fiber.Ctx, err error) error {
	status, msg := classify(err)
	if status == fiber.StatusInternalServerError {
		middleware.Logger(c).Error("unhandled error", "error", err)
		// Don't leak internals to the caller.
		msg = "internal error"
	}
	return c.Status(status).JSON(fiber.Map{"status": "error", "message": msg})
}

// htmlError renders the browser-facing error page for the same taxonomy.
func htmlError(c *fiber.Ctx, err error) error {
	status, msg := classify(err)
	title := "Fehler"
	if status == fiber.StatusNotFound {
		title = "Nicht gefunden"
	}
	if status == fiber.StatusInternalServerError {
		middleware.Logger(c).Error("unhandled error", "error", err)
		msg = "Etwas ist schiefgelaufen. Bitte erneut versuchen."
	}
	return c.Status(status).Render("error", fiber.Map{
		"Code":    status,
		"Title":   title,
		"Message": msg,
	}, "layout")
}

func classify(err error) (int, string) {
	var notFound *store.NotFoundError
	var inUse *store.InUseError
	switch {
	case errors.As(err, &notFound):
		return fiber.StatusNotFound, notFound.Error()
	case errors.As(err, &inUse):
		return fiber.StatusBadRequest, inUse.Error()
	case errors.Is(err, store.ErrInvalidInput):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, store.ErrDuplicateEntity):
		return fiber.StatusBadRequest, err.Error()
	case store.IsUnavailable(err):
		return fiber.StatusServiceUnavailable, store.ErrStorageUnavailable.Error()
	default:
		return fiber.StatusInternalServerError, err.Error()
	}
}

// idParam reads a positive integer path parameter.
func idParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, store.ErrInvalidInput
	}
	return uint(id), nil
}
