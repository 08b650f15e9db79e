package basehdl

import (
	"context"
	"errors"
	"time"

	"github.com/anurag2169/RiseStream-backend/internal/api/middleware"
	"github.com/anurag2169/RiseStream-backend/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Pinger is the part of *mongo.Client the health check needs.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// SystemHandler serves the public health check.
type SystemHandler struct {
	*BaseHandler
	db Pinger
}

// NewSystemHandler builds a SystemHandler; db may be nil.
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{BaseHandler: NewBaseHandler(), db: db}
}

// HandleHealth reports whether the API and its database are reachable.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	services := fiber.Map{"api": "ok"}
	data := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services":  services,
	}

	if h.db == nil {
		services["database"] = "not configured"
		return middleware.SuccessResponse(c, common.StatusOK, data, "OK")
	}

	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx, readpref.Primary()); err != nil {
		services["database"] = "error"
		data["status"] = "degraded"
		return middleware.JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
			"statusCode": common.StatusServiceUnavailable,
			"code":       common.ErrCodeDatabaseConnection.Code,
			"data":       data,
			"message":    common.MsgServiceUnavailable,
			"success":    false,
			"errors":     []any{},
		})
	}

	services["database"] = "ok"
	return middleware.SuccessResponse(c, common.StatusOK, data, "OK")
}

// ErrorHandler renders errors that escape a handler, including fiber's own
// routing errors, in the standard envelope.
func ErrorHandler(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return middleware.HandleErrorResponse(c, fromFiberError(fe))
	}
	return middleware.HandleErrorResponse(c, err)
}

func fromFiberError(fe *fiber.Error) error {
	switch {
	case fe.Code == common.StatusTooManyRequests:
		return common.NewError(common.ErrCodeRateLimit, common.MsgTooManyRequests, fe.Code, nil)
	case fe.Code == common.StatusNotFound:
		return common.NewError(common.ErrCodeDatabaseQuery, fe.Message, fe.Code, nil)
	case fe.Code >= common.StatusInternalServerError:
		return common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, fe.Code, nil)
	default:
		return common.NewError(common.ErrCodeValidationInput, fe.Message, fe.Code, nil)
	}
}
