package logger

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// Locals keys shared with the middleware.
const (
	RequestIDLocal = "requestid"
	UserIDLocal    = "user_id"
)

// WithRequest returns an app logger entry carrying request fields.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return GetAppLogger().WithFields(requestFields(c))
}

// requestFields copies every value out of the request: the ctx buffers are
// reused as soon as the handler returns, before the async hook formats.
func requestFields(c fiber.Ctx) logrus.Fields {
	fields := logrus.Fields{
		"method": strings.Clone(c.Method()),
		"path":   strings.Clone(c.Path()),
		"ip":     strings.Clone(c.IP()),
	}
	if rid := requestID(c); rid != "" {
		fields["request_id"] = strings.Clone(rid)
	}
	if uid, ok := c.Locals(UserIDLocal).(string); ok && uid != "" {
		fields["user_id"] = uid
	}
	return fields
}

func requestID(c fiber.Ctx) string {
	if rid, ok := c.Locals(RequestIDLocal).(string); ok && rid != "" {
		return rid
	}
	if rid := c.Get("X-Request-ID"); rid != "" {
		return rid
	}
	return c.GetRespHeader("X-Request-ID")
}

// WithError attaches err to an app logger entry.
func WithError(err error) *logrus.Entry {
	return GetAppLogger().WithError(err)
}

// WithModule tags entries with the API module name.
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}
