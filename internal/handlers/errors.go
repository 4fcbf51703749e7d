package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/dto"
)

// ErrorHandler is the app-wide fiber error handler. Every failed
// request goes through here, so status codes come from one table and
// the envelope shape is uniform.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := apperrors.HTTPStatus(apperrors.KindOf(err))
	message := err.Error()

	// A statement or context deadline means the database is overloaded
	// or unreachable, not that the request was malformed.
	if errors.Is(err, context.DeadlineExceeded) {
		status = apperrors.HTTPStatus(apperrors.KindUnavailable)
		message = "request timed out"
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		message = fe.Message
	}

	if status >= 500 {
		slog.Error("request failed",
			"error", err.Error(),
			"path", c.Path(),
			"method", c.Method(),
		)
		// Internal details stay in the logs; 503 keeps its message so
		// clients can tell a timeout from a crash.
		if status == http.StatusInternalServerError {
			message = "internal server error"
		}
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Path(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
