// Package problem defines the error kinds returned by the REST handlers and
// renders them, and any other handler error, as JSON.
package problem

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Error keys sent to clients.
const (
	KeyIDExists   = "idexists"
	KeyIDNull     = "idnull"
	KeyIDInvalid  = "idinvalid"
	KeyIDNotFound = "idnotfound"
	KeyBadID      = "badid"
	KeyBadBody    = "badbody"
	KeyNotFound   = "notfound"
)

// Error is a client error tied to an entity.
type Error struct {
	Status     int    `json:"status"`
	Title      string `json:"title"`
	EntityName string `json:"entityName,omitempty"`
	ErrorKey   string `json:"errorKey,omitempty"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	if e.EntityName == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s (%s)", e.EntityName, e.Message, e.ErrorKey)
}

// InvalidRequest returns a 400 error.
func InvalidRequest(message, entityName, errorKey string) *Error {
	return &Error{
		Status:     fiber.StatusBadRequest,
		Title:      "Bad Request",
		EntityName: entityName,
		ErrorKey:   errorKey,
		Message:    message,
	}
}

// NotFound returns a 404 error.
func NotFound(entityName string) *Error {
	return &Error{
		Status:     fiber.StatusNotFound,
		Title:      "Not Found",
		EntityName: entityName,
		ErrorKey:   KeyNotFound,
		Message:    "Entity not found",
	}
}

// ErrorHandler is the fiber.ErrorHandler of the service.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		pe *Error
		fe *fiber.Error
	)

	switch {
	case errors.As(err, &pe):
	case errors.As(err, &fe):
		pe = &Error{Status: fe.Code, Title: fe.Message, Message: fe.Message}
	default:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")

		pe = &Error{
			Status:  fiber.StatusInternalServerError,
			Title:   "Internal Server Error",
			Message: "Internal Server Error",
		}
	}

	return c.Status(pe.Status).JSON(pe)
}
