package middleware

import (
	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse writes data with Content-Type: application/json; charset=utf-8.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SuccessResponse writes the success envelope.
func SuccessResponse(c fiber.Ctx, statusCode int, data interface{}, message string) error {
	if message == "" {
		message = common.MsgSuccess
	}
	return JSONResponse(c, statusCode, fiber.Map{
		"statusCode": statusCode,
		"data":       data,
		"message":    message,
		"success":    true,
	})
}

// HandleErrorResponse writes the error envelope for err.
// Server-side causes are logged and never rendered.
func HandleErrorResponse(c fiber.Ctx, err error) error {
	e := common.AsError(err)

	if e.StatusCode >= common.StatusInternalServerError {
		entry := logger.WithRequest(c).WithField("code", e.Code.Code)
		if e.Cause != nil {
			entry = entry.WithError(e.Cause)
		}
		entry.Error(e.Message)
	}

	if e.Retryable() {
		c.Set("Retry-After", "1")
	}

	return JSONResponse(c, e.StatusCode, fiber.Map{
		"statusCode": e.StatusCode,
		"code":       e.Code.Code,
		"data":       nil,
		"message":    e.Message,
		"success":    false,
		"errors":     subErrors(e.Details),
	})
}

func subErrors(details any) []any {
	switch d := details.(type) {
	case nil:
		return []any{}
	case []any:
		return d
	case []string:
		out := make([]any, 0, len(d))
		for _, s := range d {
			out = append(out, s)
		}
		return out
	default:
		return []any{d}
	}
}
