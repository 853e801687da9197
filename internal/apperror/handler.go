package apperror

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform error response body. Only status, message and
// validationErrors vary between failure kinds.
type Envelope struct {
	Path             string            `json:"path"`
	Timestamp        int64             `json:"timestamp"`
	Message          string            `json:"message"`
	ValidationErrors map[string]string `json:"validationErrors"`
}

// Handler is the central fiber error handler. Every pipeline failure is caught
// here exactly once and turned into the envelope; no handler formats an error
// body itself.
func Handler(c *fiber.Ctx, err error) error {
	var appErr *Error
	if !errors.As(err, &appErr) {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			appErr = &Error{Status: fiberErr.Code, Message: fiberErr.Message}
		} else {
			appErr = &Error{Status: 500, Message: "Internal Server Error"}
		}
	}

	fields := appErr.Fields
	if fields == nil {
		fields = map[string]string{}
	}

	return c.Status(appErr.Status).JSON(Envelope{
		Path:             c.Path(),
		Timestamp:        time.Now().UnixMilli(),
		Message:          appErr.Message,
		ValidationErrors: fields,
	})
}
